package scores

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo is a Postgres-backed Repo.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Insert(ctx context.Context, rec Record) error {
	var detail any
	if len(rec.Detail) > 0 {
		detail = []byte(rec.Detail)
	}
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO scores (id, kind, score, detail, created_at)
VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.Kind, rec.Score, detail, rec.CreatedAt)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	row := r.DB.QueryRowContext(ctx, `
SELECT id, kind, score, detail, created_at
FROM scores WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

func (r *PGRepo) List(ctx context.Context, kind string, limit int) ([]Record, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if kind != "" {
		rows, err = r.DB.QueryContext(ctx, `
SELECT id, kind, score, detail, created_at
FROM scores WHERE kind = $1
ORDER BY created_at DESC LIMIT $2`, kind, limit)
	} else {
		rows, err = r.DB.QueryContext(ctx, `
SELECT id, kind, score, detail, created_at
FROM scores
ORDER BY created_at DESC LIMIT $1`, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var detail sql.NullString
	if err := row.Scan(&rec.ID, &rec.Kind, &rec.Score, &detail, &rec.CreatedAt); err != nil {
		return Record{}, err
	}
	if detail.Valid {
		rec.Detail = []byte(detail.String)
	}
	return rec, nil
}
