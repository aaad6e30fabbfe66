// Package renders keeps a history record per render request.
package renders

import "time"

// Render statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Render is one recorded render request. The artifact itself lives at a fixed
// output path that later renders overwrite; rows here are the durable history.
type Render struct {
	ID           string
	UserID       string
	TemplateName string
	Status       string
	OutputPath   string
	Pages        int
	DurationMs   float64
	Error        string
	CreatedAt    time.Time
}
