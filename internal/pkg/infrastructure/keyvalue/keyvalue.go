// Package keyvalue backs the TTL bounded flags and counters the sync
// protocol keeps outside the relational catalog: announced hashes, sync
// cursors, force sync signals and the metadata change sets.
package keyvalue

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate moq -rm -out keyvalue_mock.go . Store
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Increment(ctx context.Context, key string) (int64, error)

	SetAdd(ctx context.Context, key string, members ...string) error
	SetRemove(ctx context.Context, key string, members ...string) error
	SetMembers(ctx context.Context, key string) ([]string, error)
}

type store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

func Initialize(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS keyvalue (
			key			TEXT NOT NULL,
			value		TEXT NOT NULL,
			expires_on	timestamp with time zone NULL,
			CONSTRAINT pkey_keyvalue PRIMARY KEY (key)
		);

		CREATE TABLE IF NOT EXISTS keyvalue_sets (
			key		TEXT NOT NULL,
			member	TEXT NOT NULL,
			CONSTRAINT pkey_keyvalue_sets PRIMARY KEY (key, member)
		);
	`)

	return err
}

func (s *store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, `
		SELECT value FROM keyvalue
		WHERE key = $1 AND (expires_on IS NULL OR expires_on > CURRENT_TIMESTAMP)
	`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}

	return value, true, nil
}

func (s *store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	var expires *time.Time
	if ttl > 0 {
		e := time.Now().UTC().Add(ttl)
		expires = &e
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO keyvalue (key, value, expires_on) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = $2, expires_on = $3
	`, key, value, expires)

	return err
}

func (s *store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := s.pool.Exec(ctx, `DELETE FROM keyvalue WHERE key = ANY($1)`, keys)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `DELETE FROM keyvalue_sets WHERE key = ANY($1)`, keys)
	return err
}

// Increment adds one to the integer stored under key, starting from zero.
// Expired or non numeric values restart the counter.
func (s *store) Increment(ctx context.Context, key string) (int64, error) {
	var next int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO keyvalue (key, value, expires_on) VALUES ($1, '1', NULL)
		ON CONFLICT (key) DO UPDATE
		SET value = CASE
			WHEN keyvalue.expires_on IS NOT NULL AND keyvalue.expires_on <= CURRENT_TIMESTAMP THEN '1'
			WHEN keyvalue.value ~ '^[0-9]+$' THEN (keyvalue.value::bigint + 1)::text
			ELSE '1'
		END, expires_on = NULL
		RETURNING value::bigint
	`, key).Scan(&next)
	if err != nil {
		return 0, err
	}

	return next, nil
}

func (s *store) SetAdd(ctx context.Context, key string, members ...string) error {
	for _, member := range members {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO keyvalue_sets (key, member) VALUES ($1, $2)
			ON CONFLICT (key, member) DO NOTHING
		`, key, member)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *store) SetRemove(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	_, err := s.pool.Exec(ctx, `DELETE FROM keyvalue_sets WHERE key = $1 AND member = ANY($2)`, key, members)
	return err
}

func (s *store) SetMembers(ctx context.Context, key string) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT member FROM keyvalue_sets WHERE key = $1 ORDER BY member`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var member string
		if err := rows.Scan(&member); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
