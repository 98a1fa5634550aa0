package store

import (
	"context"
	"errors"
	"testing"

	"fixit-be/models"
)

func TestMemoryStorageInsertDuplicate(t *testing.T) {
	m := NewMemoryStorage()
	ctx := context.Background()

	issue := models.Issue{ID: "issue1", Title: "Pothole"}
	if err := m.Insert(ctx, issue); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := m.Insert(ctx, issue); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate insert = %v, want ErrAlreadyExists", err)
	}
}

func TestMemoryStorageListInsertionOrder(t *testing.T) {
	m := NewMemoryStorage()
	ctx := context.Background()

	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		if err := m.Insert(ctx, models.Issue{ID: id}); err != nil {
			t.Fatalf("Insert(%s): %v", id, err)
		}
	}
	if err := m.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("List returned %d issues, want %d", len(got), len(want))
	}
	for i, issue := range got {
		if issue.ID != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, issue.ID, want[i])
		}
	}
}

func TestMemoryStorageListIsSnapshot(t *testing.T) {
	m := NewMemoryStorage()
	ctx := context.Background()

	if err := m.Insert(ctx, models.Issue{ID: "a", Title: "before"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	snapshot, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := m.Update(ctx, models.Issue{ID: "a", Title: "after"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if snapshot[0].Title != "before" {
		t.Errorf("snapshot mutated by later update: %q", snapshot[0].Title)
	}
}
