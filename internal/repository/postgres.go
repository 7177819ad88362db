package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// postgresBlobRepo persists encrypted session blobs in a single table. It is
// the durable backend; the blob column stays opaque to the database.
type postgresBlobRepo struct {
	db *sqlx.DB
}

func NewPostgresBlobRepository(db *sqlx.DB) BlobRepository {
	return &postgresBlobRepo{db: db}
}

func (r *postgresBlobRepo) Put(ctx context.Context, id string, blob string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_blobs (id, blob, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET blob = EXCLUDED.blob, updated_at = NOW()
	`, id, blob)
	return err
}

func (r *postgresBlobRepo) Get(ctx context.Context, id string) (string, bool, error) {
	var blob string
	err := r.db.GetContext(ctx, &blob, `
		SELECT blob FROM session_blobs WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return blob, true, nil
}

func (r *postgresBlobRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM session_blobs WHERE id = $1
	`, id)
	return err
}

func (r *postgresBlobRepo) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids, `
		SELECT id FROM session_blobs
	`)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *postgresBlobRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM session_blobs
	`)
	if err != nil {
		return 0, err
	}
	return count, nil
}
