// Package resume persists the structured resume content a user maintains and
// aggregates it into the payload shape the render pipeline consumes.
package resume

import "time"

// Content holds the header fields of a resume.
type Content struct {
	ID        string
	UserID    string
	FullName  string
	Email     string
	Phone     string
	Summary   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Social holds the social profile URLs.
type Social struct {
	ID           string
	UserID       string
	LinkedInURL  string
	GitHubURL    string
	PortfolioURL string
}

// Experience is one position. Description holds the bullet strings joined by
// newlines, matching the single text column it maps to.
type Experience struct {
	ID          string
	UserID      string
	Index       int
	Company     string
	Position    string
	StartDate   time.Time
	EndDate     *time.Time
	Description string
}

// Skill is one row of the skills table.
type Skill struct {
	ID       string
	UserID   string
	Index    int
	Category string
	Items    string
}

// Education describes the education section.
type Education struct {
	ID          string
	UserID      string
	Institution string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	Degree      string
}

// Snapshot is a user's complete resume content as stored.
type Snapshot struct {
	Content    Content
	Social     Social
	Experience []Experience
	Skills     []Skill
	Education  *Education
}
