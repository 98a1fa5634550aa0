package store

import (
	"context"
	"sync"

	"fixit-be/models"
)

// MemoryStorage keeps issues in a map keyed by id behind a single
// lock. Process-lifetime only: a restart loses everything.
type MemoryStorage struct {
	mu     sync.RWMutex
	issues map[string]models.Issue
	order  []string
}

// NewMemoryStorage returns an empty in-memory backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{issues: make(map[string]models.Issue)}
}

func (m *MemoryStorage) Insert(ctx context.Context, issue models.Issue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.issues[issue.ID]; ok {
		return ErrAlreadyExists
	}
	m.issues[issue.ID] = issue
	m.order = append(m.order, issue.ID)
	return nil
}

func (m *MemoryStorage) Get(ctx context.Context, id string) (*models.Issue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	issue, ok := m.issues[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &issue, nil
}

func (m *MemoryStorage) Update(ctx context.Context, issue models.Issue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.issues[issue.ID]; !ok {
		return ErrNotFound
	}
	m.issues[issue.ID] = issue
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.issues[id]; !ok {
		return ErrNotFound
	}
	delete(m.issues, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns a snapshot in insertion order. Callers wanting a
// display order sort the copy themselves.
func (m *MemoryStorage) List(ctx context.Context) ([]models.Issue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Issue, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.issues[id])
	}
	return out, nil
}
