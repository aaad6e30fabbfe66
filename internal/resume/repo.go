package resume

import "context"

// Repo defines persistence operations for resume content.
type Repo interface {
	// Get returns the user's stored snapshot. ErrNotFound means the user has
	// no content row yet; partial sections come back empty.
	Get(ctx context.Context, userID string) (Snapshot, error)

	// Replace stores the snapshot wholesale: header, socials and education
	// are upserted, experience and skills are replaced to preserve ordering.
	Replace(ctx context.Context, userID string, snap Snapshot) error
}
