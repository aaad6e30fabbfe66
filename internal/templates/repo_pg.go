package templates

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// List returns all template records ordered by slug.
func (r *PGRepo) List(ctx context.Context) ([]Template, error) {
	const query = `
SELECT id, name, slug, description, created_at, updated_at
FROM resume_templates
ORDER BY slug`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Template
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tpl)
	}
	return out, rows.Err()
}

// GetByID returns a template record by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Template, error) {
	const query = `
SELECT id, name, slug, description, created_at, updated_at
FROM resume_templates
WHERE id = $1`

	tpl, err := scanTemplate(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	return tpl, nil
}

// Update applies a partial update and returns the updated record. COALESCE
// keeps columns untouched when the corresponding field is nil.
func (r *PGRepo) Update(ctx context.Context, id string, name, description *string) (Template, error) {
	const query = `
UPDATE resume_templates
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    updated_at = NOW()
WHERE id = $1
RETURNING id, name, slug, description, created_at, updated_at`

	tpl, err := scanTemplate(r.DB.QueryRowContext(ctx, query, id, name, description))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	return tpl, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (Template, error) {
	var tpl Template
	var description sql.NullString
	if err := row.Scan(&tpl.ID, &tpl.Name, &tpl.Slug, &description, &tpl.CreatedAt, &tpl.UpdatedAt); err != nil {
		return Template{}, err
	}
	if description.Valid {
		tpl.Description = description.String
	}
	return tpl, nil
}

var _ Repo = (*PGRepo)(nil)
