package templates

import "context"

// Repo defines persistence operations for template metadata.
type Repo interface {
	List(ctx context.Context) ([]Template, error)
	GetByID(ctx context.Context, id string) (Template, error)
	Update(ctx context.Context, id string, name, description *string) (Template, error)
}
