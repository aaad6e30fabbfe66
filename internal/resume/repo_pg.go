package resume

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Get loads the user's stored snapshot across all five tables.
func (r *PGRepo) Get(ctx context.Context, userID string) (Snapshot, error) {
	var snap Snapshot

	content, err := r.getContent(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Content = content

	if snap.Social, err = r.getSocial(ctx, userID); err != nil {
		return Snapshot{}, err
	}
	if snap.Experience, err = r.listExperience(ctx, userID); err != nil {
		return Snapshot{}, err
	}
	if snap.Skills, err = r.listSkills(ctx, userID); err != nil {
		return Snapshot{}, err
	}
	if snap.Education, err = r.getEducation(ctx, userID); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (r *PGRepo) getContent(ctx context.Context, userID string) (Content, error) {
	const query = `
SELECT id, user_id, full_name, email, phone, summary, created_at, updated_at
FROM resume_content
WHERE user_id = $1`
	var content Content
	var phone, summary sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&content.ID,
		&content.UserID,
		&content.FullName,
		&content.Email,
		&phone,
		&summary,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Content{}, ErrNotFound
		}
		return Content{}, err
	}
	if phone.Valid {
		content.Phone = phone.String
	}
	if summary.Valid {
		content.Summary = summary.String
	}
	return content, nil
}

func (r *PGRepo) getSocial(ctx context.Context, userID string) (Social, error) {
	const query = `
SELECT id, user_id, linkedin_url, github_url, portfolio_url
FROM socials
WHERE user_id = $1`
	var social Social
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&social.ID,
		&social.UserID,
		&social.LinkedInURL,
		&social.GitHubURL,
		&social.PortfolioURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Social{}, nil
		}
		return Social{}, err
	}
	return social, nil
}

func (r *PGRepo) listExperience(ctx context.Context, userID string) ([]Experience, error) {
	const query = `
SELECT id, user_id, position_index, company, position, start_date, end_date, description
FROM experience
WHERE user_id = $1
ORDER BY position_index`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Experience
	for rows.Next() {
		var exp Experience
		var endDate sql.NullTime
		var description sql.NullString
		if err := rows.Scan(
			&exp.ID,
			&exp.UserID,
			&exp.Index,
			&exp.Company,
			&exp.Position,
			&exp.StartDate,
			&endDate,
			&description,
		); err != nil {
			return nil, err
		}
		if endDate.Valid {
			exp.EndDate = &endDate.Time
		}
		if description.Valid {
			exp.Description = description.String
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}

func (r *PGRepo) listSkills(ctx context.Context, userID string) ([]Skill, error) {
	const query = `
SELECT id, user_id, position_index, category, items
FROM skills
WHERE user_id = $1
ORDER BY position_index`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Skill
	for rows.Next() {
		var skill Skill
		if err := rows.Scan(&skill.ID, &skill.UserID, &skill.Index, &skill.Category, &skill.Items); err != nil {
			return nil, err
		}
		out = append(out, skill)
	}
	return out, rows.Err()
}

func (r *PGRepo) getEducation(ctx context.Context, userID string) (*Education, error) {
	const query = `
SELECT id, user_id, institution, location, start_date, end_date, degree
FROM education
WHERE user_id = $1`
	var edu Education
	var endDate sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&edu.ID,
		&edu.UserID,
		&edu.Institution,
		&edu.Location,
		&edu.StartDate,
		&endDate,
		&edu.Degree,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if endDate.Valid {
		edu.EndDate = &endDate.Time
	}
	return &edu, nil
}

// Replace stores the snapshot in one transaction: header, socials and
// education are upserted, experience and skills are deleted and re-inserted
// so ordering follows the submitted sequence.
func (r *PGRepo) Replace(ctx context.Context, userID string, snap Snapshot) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	const upsertContent = `
INSERT INTO resume_content (id, user_id, full_name, email, phone, summary, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
ON CONFLICT (user_id) DO UPDATE
SET full_name = EXCLUDED.full_name,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    summary = EXCLUDED.summary,
    updated_at = NOW()`
	if _, err := tx.ExecContext(ctx, upsertContent,
		snap.Content.ID, userID, snap.Content.FullName, snap.Content.Email,
		nullString(snap.Content.Phone), nullString(snap.Content.Summary),
	); err != nil {
		return fmt.Errorf("upsert content: %w", err)
	}

	const upsertSocial = `
INSERT INTO socials (id, user_id, linkedin_url, github_url, portfolio_url)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE
SET linkedin_url = EXCLUDED.linkedin_url,
    github_url = EXCLUDED.github_url,
    portfolio_url = EXCLUDED.portfolio_url`
	if _, err := tx.ExecContext(ctx, upsertSocial,
		snap.Social.ID, userID, snap.Social.LinkedInURL, snap.Social.GitHubURL, snap.Social.PortfolioURL,
	); err != nil {
		return fmt.Errorf("upsert socials: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM experience WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear experience: %w", err)
	}
	const insertExperience = `
INSERT INTO experience (id, user_id, position_index, company, position, start_date, end_date, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, exp := range snap.Experience {
		if _, err := tx.ExecContext(ctx, insertExperience,
			exp.ID, userID, exp.Index, exp.Company, exp.Position,
			exp.StartDate, nullTime(exp.EndDate), nullString(exp.Description),
		); err != nil {
			return fmt.Errorf("insert experience: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM skills WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear skills: %w", err)
	}
	const insertSkill = `
INSERT INTO skills (id, user_id, position_index, category, items)
VALUES ($1, $2, $3, $4, $5)`
	for _, skill := range snap.Skills {
		if _, err := tx.ExecContext(ctx, insertSkill,
			skill.ID, userID, skill.Index, skill.Category, skill.Items,
		); err != nil {
			return fmt.Errorf("insert skill: %w", err)
		}
	}

	if snap.Education != nil {
		const upsertEducation = `
INSERT INTO education (id, user_id, institution, location, start_date, end_date, degree)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE
SET institution = EXCLUDED.institution,
    location = EXCLUDED.location,
    start_date = EXCLUDED.start_date,
    end_date = EXCLUDED.end_date,
    degree = EXCLUDED.degree`
		if _, err := tx.ExecContext(ctx, upsertEducation,
			snap.Education.ID, userID, snap.Education.Institution, snap.Education.Location,
			snap.Education.StartDate, nullTime(snap.Education.EndDate), snap.Education.Degree,
		); err != nil {
			return fmt.Errorf("upsert education: %w", err)
		}
	}

	return tx.Commit()
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
