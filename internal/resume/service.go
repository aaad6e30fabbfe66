package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/render"
)

const dateLayout = "2006-01-02"

// Service aggregates stored resume content into the render payload shape and
// persists updates submitted in that same shape.
type Service struct {
	Repo Repo
}

// Get returns the user's resume data. Sections the user has not saved yet
// fall back to placeholder content so a fresh account previews a complete
// document.
func (s *Service) Get(ctx context.Context, userID string) (render.ResumeData, error) {
	snap, err := s.Repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			snap = Snapshot{}
		} else {
			return render.ResumeData{}, err
		}
	}

	data := render.ResumeData{
		FullName: defaultScalar(snap.Content.FullName, "John Doe"),
		Email:    defaultScalar(snap.Content.Email, "john.doe@example.com"),
		Phone:    defaultScalar(snap.Content.Phone, "(123) 456-7890"),
		Summary:  defaultScalar(snap.Content.Summary, "A skilled professional with experience in..."),
		Socials: render.Socials{
			LinkedInURL:  defaultScalar(snap.Social.LinkedInURL, "https://www.linkedin.com/in/johndoe"),
			GitHubURL:    defaultScalar(snap.Social.GitHubURL, "https://github.com/johndoe"),
			PortfolioURL: defaultScalar(snap.Social.PortfolioURL, "https://johndoe.com"),
		},
	}

	if len(snap.Experience) > 0 {
		data.Experience = make([]render.ExperienceEntry, 0, len(snap.Experience))
		for _, exp := range snap.Experience {
			data.Experience = append(data.Experience, render.ExperienceEntry{
				Company:     exp.Company,
				Position:    exp.Position,
				Duration:    toDuration(exp.StartDate, exp.EndDate),
				Description: splitBullets(exp.Description),
			})
		}
	} else {
		data.Experience = defaultExperience()
	}

	if len(snap.Skills) > 0 {
		data.Skills = make([]render.SkillEntry, 0, len(snap.Skills))
		for _, skill := range snap.Skills {
			data.Skills = append(data.Skills, render.SkillEntry{
				Title: skill.Category,
				Items: skill.Items,
			})
		}
	} else {
		data.Skills = defaultSkills()
	}

	if snap.Education != nil {
		data.Education = render.EducationEntry{
			Institution: snap.Education.Institution,
			Location:    snap.Education.Location,
			Duration:    toDuration(snap.Education.StartDate, snap.Education.EndDate),
			Degree:      snap.Education.Degree,
		}
	} else {
		data.Education = defaultEducation()
	}

	return data, nil
}

// Update validates and persists the submitted resume data wholesale.
func (s *Service) Update(ctx context.Context, userID string, data render.ResumeData) error {
	if strings.TrimSpace(data.FullName) == "" || strings.TrimSpace(data.Email) == "" {
		return ErrInvalidInput
	}

	snap := Snapshot{
		Content: Content{
			ID:       uuid.NewString(),
			UserID:   userID,
			FullName: strings.TrimSpace(data.FullName),
			Email:    strings.TrimSpace(data.Email),
			Phone:    strings.TrimSpace(data.Phone),
			Summary:  data.Summary,
		},
		Social: Social{
			ID:           uuid.NewString(),
			UserID:       userID,
			LinkedInURL:  strings.TrimSpace(data.Socials.LinkedInURL),
			GitHubURL:    strings.TrimSpace(data.Socials.GitHubURL),
			PortfolioURL: strings.TrimSpace(data.Socials.PortfolioURL),
		},
	}

	for i, exp := range data.Experience {
		start, end, err := parseDuration(exp.Duration)
		if err != nil {
			return fmt.Errorf("%w: experience %d: %v", ErrInvalidInput, i+1, err)
		}
		snap.Experience = append(snap.Experience, Experience{
			ID:          uuid.NewString(),
			UserID:      userID,
			Index:       i,
			Company:     exp.Company,
			Position:    exp.Position,
			StartDate:   start,
			EndDate:     end,
			Description: strings.Join(exp.Description, "\n"),
		})
	}

	for i, skill := range data.Skills {
		snap.Skills = append(snap.Skills, Skill{
			ID:       uuid.NewString(),
			UserID:   userID,
			Index:    i,
			Category: skill.Title,
			Items:    skill.Items,
		})
	}

	if data.Education.Institution != "" || data.Education.Degree != "" {
		start, end, err := parseDuration(data.Education.Duration)
		if err != nil {
			return fmt.Errorf("%w: education: %v", ErrInvalidInput, err)
		}
		snap.Education = &Education{
			ID:          uuid.NewString(),
			UserID:      userID,
			Institution: data.Education.Institution,
			Location:    data.Education.Location,
			StartDate:   start,
			EndDate:     end,
			Degree:      data.Education.Degree,
		}
	}

	return s.Repo.Replace(ctx, userID, snap)
}

func toDuration(start time.Time, end *time.Time) render.Duration {
	d := render.Duration{StartDate: start.Format(dateLayout)}
	if end != nil {
		formatted := end.Format(dateLayout)
		d.EndDate = &formatted
	}
	return d
}

func parseDuration(d render.Duration) (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(d.StartDate))
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("start date: %v", err)
	}
	if d.EndDate == nil || strings.TrimSpace(*d.EndDate) == "" {
		return start, nil, nil
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(*d.EndDate))
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("end date: %v", err)
	}
	return start, &end, nil
}

func splitBullets(description string) []string {
	if description == "" {
		return []string{}
	}
	parts := strings.Split(description, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
