package renders

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a render record.
func (r *PGRepo) Create(ctx context.Context, rec Render) error {
	const query = `
INSERT INTO renders (
    id,
    user_id,
    template_name,
    status,
    output_path,
    pages,
    duration_ms,
    error,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var outputPath sql.NullString
	if rec.OutputPath != "" {
		outputPath = sql.NullString{String: rec.OutputPath, Valid: true}
	}
	var pages sql.NullInt64
	if rec.Pages > 0 {
		pages = sql.NullInt64{Int64: int64(rec.Pages), Valid: true}
	}
	var errMsg sql.NullString
	if rec.Error != "" {
		errMsg = sql.NullString{String: rec.Error, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		rec.TemplateName,
		rec.Status,
		outputPath,
		pages,
		rec.DurationMs,
		errMsg,
		rec.CreatedAt,
	)
	return err
}

// ListByUser lists render records ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Render, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, template_name, status, output_path, pages, duration_ms, error, created_at
FROM renders
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Render
	for rows.Next() {
		var rec Render
		var outputPath sql.NullString
		var pages sql.NullInt64
		var errMsg sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.TemplateName,
			&rec.Status,
			&outputPath,
			&pages,
			&rec.DurationMs,
			&errMsg,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if outputPath.Valid {
			rec.OutputPath = outputPath.String
		}
		if pages.Valid {
			rec.Pages = int(pages.Int64)
		}
		if errMsg.Valid {
			rec.Error = errMsg.String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
