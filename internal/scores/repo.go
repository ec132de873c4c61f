package scores

import "context"

// Repo persists score records.
type Repo interface {
	Insert(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	// List returns records newest first, optionally filtered by kind.
	List(ctx context.Context, kind string, limit int) ([]Record, error)
}
