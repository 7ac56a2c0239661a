package store

import (
	"context"
	"database/sql"
	"time"
)

var ErrNotFound = sql.ErrNoRows

type PredictionRepo struct{ DB *sql.DB }

func NewPredictionRepo(db *sql.DB) *PredictionRepo { return &PredictionRepo{DB: db} }

// PredictionRow mirrors one classified upload, kept for the history view.
type PredictionRow struct {
	ID         int64
	CreatedAt  time.Time
	Label      string
	Confidence float64
	ImageB64   string
}

func (r *PredictionRepo) Insert(ctx context.Context, label string, confidence float64, imageB64 string) (int64, error) {
	const q = `
insert into predictions (predicted_class_name, confidence, image_base64)
values ($1, $2, $3)
returning id`
	var id int64
	if err := r.DB.QueryRowContext(ctx, q, label, confidence, imageB64).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRecent returns the newest rows first.
func (r *PredictionRepo) ListRecent(ctx context.Context, limit int) ([]PredictionRow, error) {
	const q = `
select id, created_at,
       predicted_class_name,
       coalesce(confidence, 0) as confidence,
       coalesce(image_base64, '') as image_base64
from predictions
order by created_at desc
limit $1`
	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PredictionRow
	for rows.Next() {
		var p PredictionRow
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.Label, &p.Confidence, &p.ImageB64); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
