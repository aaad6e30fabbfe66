package renders

import "context"

// Repo defines persistence operations for render records.
type Repo interface {
	Create(ctx context.Context, r Render) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Render, error)
}
