// Package store owns the issue collection. All issue mutations go
// through IssueStore, which computes due dates from the scheduling
// policy and pushes change events to subscribers.
package store

import (
	"context"
	"sync"
	"time"

	"fixit-be/models"
	"fixit-be/scheduling"

	"github.com/google/uuid"
)

// IssueStore is the authoritative issue collection. It serializes
// read-modify-write sequences with its own lock since the storage
// backends only guarantee per-operation atomicity.
type IssueStore struct {
	mu      sync.Mutex
	storage IssueStorage
	events  *broker
	now     func() time.Time
}

// NewIssueStore wraps a storage backend.
func NewIssueStore(storage IssueStorage) *IssueStore {
	return &IssueStore{
		storage: storage,
		events:  newBroker(),
		now:     time.Now,
	}
}

// Create validates nothing beyond what the storage needs: enum and
// coordinate validation happens at the API boundary. The store
// generates the id, stamps ReportedAt if the caller left it zero, and
// derives the due date from the priority.
func (s *IssueStore) Create(ctx context.Context, input models.NewIssueInput) (*models.Issue, error) {
	reportedAt := input.ReportedAt
	if reportedAt.IsZero() {
		reportedAt = s.now()
	}

	issue := models.Issue{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		Priority:     input.Priority,
		Location:     input.Location,
		Status:       models.Pending,
		ReportedByID: input.ReportedByID,
		ReportedAt:   reportedAt,
		DueDate:      scheduling.CalculateDueDate(reportedAt, input.Priority),
		ImageURL:     input.ImageURL,
	}

	if err := s.storage.Insert(ctx, issue); err != nil {
		return nil, err
	}
	s.events.publish(Event{Kind: EventCreated, Issue: issue})
	return &issue, nil
}

// SetStatus moves an issue to any of the three states. Transitioning
// into Resolved stamps ResolvedAt; transitioning away clears it, so
// resolving, reopening and resolving again yields a fresh timestamp.
func (s *IssueStore) SetStatus(ctx context.Context, id string, status models.IssueStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}

	issue.Status = status
	if status == models.Resolved {
		now := s.now()
		issue.ResolvedAt = &now
	} else {
		issue.ResolvedAt = nil
	}

	if err := s.storage.Update(ctx, *issue); err != nil {
		return err
	}
	s.events.publish(Event{Kind: EventUpdated, Issue: *issue})
	return nil
}

// SetPriority changes the priority and recomputes the due date from
// the original report time. This is the only place a due date changes
// after creation.
func (s *IssueStore) SetPriority(ctx context.Context, id string, priority models.IssuePriority) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}

	issue.Priority = priority
	issue.DueDate = scheduling.CalculateDueDate(issue.ReportedAt, priority)

	if err := s.storage.Update(ctx, *issue); err != nil {
		return err
	}
	s.events.publish(Event{Kind: EventUpdated, Issue: *issue})
	return nil
}

// SetAssignment updates the admin-only annotations. Nil fields are
// left untouched.
func (s *IssueStore) SetAssignment(ctx context.Context, id string, assignedTo, adminNotes *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}

	if assignedTo != nil {
		issue.AssignedTo = *assignedTo
	}
	if adminNotes != nil {
		issue.AdminNotes = *adminNotes
	}

	if err := s.storage.Update(ctx, *issue); err != nil {
		return err
	}
	s.events.publish(Event{Kind: EventUpdated, Issue: *issue})
	return nil
}

// Delete removes the record permanently. Ids are never reused.
func (s *IssueStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		return err
	}
	s.events.publish(Event{Kind: EventDeleted, Issue: *issue})
	return nil
}

// Get returns a single issue by id.
func (s *IssueStore) Get(ctx context.Context, id string) (*models.Issue, error) {
	return s.storage.Get(ctx, id)
}

// List returns a filtered snapshot. No sort order is guaranteed;
// handlers re-sort for display.
func (s *IssueStore) List(ctx context.Context, filter Filter) ([]models.Issue, error) {
	all, err := s.storage.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Issue, 0, len(all))
	for _, issue := range all {
		if filter.Matches(issue) {
			out = append(out, issue)
		}
	}
	return out, nil
}

// Subscribe returns a change feed and a cancel func. Cancel must be
// called on teardown or the subscriber slot leaks.
func (s *IssueStore) Subscribe() (<-chan Event, func()) {
	return s.events.subscribe()
}
