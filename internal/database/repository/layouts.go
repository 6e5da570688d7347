package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jask/splitpane/internal/database"
)

// LayoutRepo stores splitter state keyed by splitter id. It satisfies
// layout.Store.
type LayoutRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db, now: database.Now}
}

func (r *LayoutRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM layouts WHERE key = ?`, key)
	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (r *LayoutRepo) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO layouts(key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
	 value=excluded.value,
	 updated_at=excluded.updated_at;
	`, key, value, r.now())
	return err
}

func (r *LayoutRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM layouts WHERE key = ?`, key)
	return err
}

func (r *LayoutRepo) Keys(ctx context.Context) ([]string, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Key)
	}
	return out, nil
}

func (r *LayoutRepo) List(ctx context.Context) ([]LayoutEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM layouts ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LayoutEntry
	for rows.Next() {
		var e LayoutEntry
		if err := rows.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
