package templates

import "time"

// Template is the persisted metadata record for a template. The markup itself
// lives on disk under the templates root; rows here carry the display name and
// description shown when picking a template.
type Template struct {
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
