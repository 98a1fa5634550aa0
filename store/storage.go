package store

import (
	"context"

	"fixit-be/models"
)

// IssueStorage is the persistence boundary for issue records. The
// default backend is the in-memory map; a Mongo-backed implementation
// can be swapped in without touching any call site.
type IssueStorage interface {
	Insert(ctx context.Context, issue models.Issue) error
	Get(ctx context.Context, id string) (*models.Issue, error)
	Update(ctx context.Context, issue models.Issue) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Issue, error)
}
