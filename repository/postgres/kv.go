package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

type kvStore struct {
	pool *pgxpool.Pool
}

// NewKV returns a Postgres-backed key-value store over the kv_entries table.
func NewKV(pool *pgxpool.Pool) repository.KV {
	return &kvStore{pool: pool}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM kv_entries WHERE key = $1`

	var value string
	if err := s.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	const query = `
	INSERT INTO kv_entries (key, value)
	VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := s.pool.Exec(ctx, query, key, value)
	return err
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE key = $1`
	_, err := s.pool.Exec(ctx, query, key)
	return err
}

func (s *kvStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
