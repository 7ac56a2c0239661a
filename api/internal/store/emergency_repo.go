package store

import (
	"context"
	"database/sql"
	"encoding/json"
)

type EmergencyRepo struct{ DB *sql.DB }

func NewEmergencyRepo(db *sql.DB) *EmergencyRepo { return &EmergencyRepo{DB: db} }

// ImageRef points at an uploaded issue photo in the blob store.
type ImageRef struct {
	Bucket      string `json:"bucket"`
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	GSURI       string `json:"gs_uri"`
}

// Insert stores a new support request with status "new". img may be nil.
func (r *EmergencyRepo) Insert(ctx context.Context, name, phone, issue string, img *ImageRef, userAgent, ip string) (int64, error) {
	var imgJSON any
	if img != nil {
		b, err := json.Marshal(img)
		if err != nil {
			return 0, err
		}
		imgJSON = b
	}

	const q = `
insert into emergency_issues (status, name, phone, issue, image, user_agent, ip)
values ('new', $1, $2, $3, $4, $5, $6)
returning id`
	var id int64
	if err := r.DB.QueryRowContext(ctx, q, name, phone, issue, imgJSON, userAgent, ip).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateStatus moves an issue through its support lifecycle.
func (r *EmergencyRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	const q = `update emergency_issues set status = $2 where id = $1`
	res, err := r.DB.ExecContext(ctx, q, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
