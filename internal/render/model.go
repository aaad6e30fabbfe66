// Package render turns structured resume data plus a named LaTeX template
// into a compiled PDF artifact.
package render

import (
	"strings"

	"resume-builder/internal/latex"
)

// Duration is a structured date range. A nil or empty EndDate means the entry
// is ongoing and renders as "Present".
type Duration struct {
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// ExperienceEntry is one position in the experience section.
type ExperienceEntry struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Duration    Duration `json:"duration"`
	Description []string `json:"description"`
}

// SkillEntry is one row of the skills table. Items is intentionally a
// free-text comma-separated string, not a structured list.
type SkillEntry struct {
	Title string `json:"title"`
	Items string `json:"items"`
}

// EducationEntry describes the education section.
type EducationEntry struct {
	Institution string   `json:"institution"`
	Location    string   `json:"location"`
	Duration    Duration `json:"duration"`
	Degree      string   `json:"degree"`
}

// Socials carries the social profile URLs.
type Socials struct {
	LinkedInURL  string `json:"linkedin_url"`
	GitHubURL    string `json:"github_url"`
	PortfolioURL string `json:"portfolio_url"`
}

// ResumeData is the full structured payload substituted into a template.
// Missing optional fields are empty strings; the engine never fails on them.
type ResumeData struct {
	FullName   string            `json:"full_name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Summary    string            `json:"summary"`
	Socials    Socials           `json:"socials"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []SkillEntry      `json:"skills"`
	Education  EducationEntry    `json:"education"`
}

// RenderRequest is the render endpoint's body: resume data plus the template
// to fill.
type RenderRequest struct {
	ResumeData
	TemplateName string `json:"templateName"`
}

// Validate enforces the date policy: a present but unparsable start date is a
// hard input error, while end dates degrade to "Present" during substitution.
func (d ResumeData) Validate() error {
	if err := validateStartDate(d.Education.Duration); err != nil {
		return err
	}
	for _, exp := range d.Experience {
		if err := validateStartDate(exp.Duration); err != nil {
			return err
		}
	}
	return nil
}

func validateStartDate(d Duration) error {
	if strings.TrimSpace(d.StartDate) == "" {
		return nil
	}
	if _, err := latex.FormatDate(d.StartDate); err != nil {
		return ErrInvalidInput
	}
	return nil
}
