package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStore struct {
	pool  *pgxpool.Pool
	scope string
}

// NewPostgres returns a Store backed by the state_entries table. The scope
// isolates entries of one client instance from another, the way a cookie jar
// is isolated per browser.
func NewPostgres(pool *pgxpool.Pool, scope string) Store {
	return &postgresStore{pool: pool, scope: scope}
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `
SELECT value
FROM state_entries
WHERE scope = $1 AND key = $2 AND (expires_at IS NULL OR expires_at > now())
LIMIT 1
`
	var value string
	if err := s.pool.QueryRow(ctx, q, s.scope, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string, ttlDays int) error {
	const q = `
INSERT INTO state_entries (scope, key, value, expires_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (scope, key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at
`
	var expiresAt *time.Time
	if ttlDays > 0 {
		t := time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour)
		expiresAt = &t
	}
	_, err := s.pool.Exec(ctx, q, s.scope, key, value, expiresAt)
	return err
}

func (s *postgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM state_entries WHERE scope = $1 AND key = $2`, s.scope, key)
	return err
}
