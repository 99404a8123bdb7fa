// Package stream provides an append only message log with consumer groups,
// pending entry tracking and reclaiming of entries whose consumer stopped
// acknowledging. Multiple groups read the same stream with fully
// independent progress.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const DatapointStream = "datapoints"

var ErrEmptyStreamName = errors.New("stream name must not be empty")

type Entry struct {
	ID     uint64
	Fields map[string]string
}

//go:generate moq -rm -out queue_mock.go . Queue
type Queue interface {
	Add(ctx context.Context, stream string, fields map[string]string) (uint64, error)
	EnsureGroup(ctx context.Context, stream, group string) error
	ReadNew(ctx context.Context, stream, group, consumer string, limit int) ([]Entry, error)
	ReclaimStale(ctx context.Context, stream, group, consumer string, maxIdle time.Duration, limit int) ([]Entry, error)
	Ack(ctx context.Context, stream, group string, ids []uint64) error
	Trim(ctx context.Context, stream string, maxLen int64) error
}

type queue struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) Queue {
	return &queue{pool: pool}
}

func Initialize(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS stream_entries (
			entry_id	BIGSERIAL,
			stream		TEXT NOT NULL,
			fields		JSONB NOT NULL,
			added_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_stream_entries PRIMARY KEY (entry_id)
		);

		CREATE INDEX IF NOT EXISTS idx_stream_entries_stream ON stream_entries (stream, entry_id);

		CREATE TABLE IF NOT EXISTS stream_groups (
			stream		TEXT NOT NULL,
			group_name	TEXT NOT NULL,
			cursor		BIGINT NOT NULL DEFAULT 0,
			CONSTRAINT pkey_stream_groups PRIMARY KEY (stream, group_name)
		);

		CREATE TABLE IF NOT EXISTS stream_pending (
			stream			TEXT NOT NULL,
			group_name		TEXT NOT NULL,
			entry_id		BIGINT NOT NULL,
			consumer		TEXT NOT NULL,
			delivered_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deliveries		INTEGER NOT NULL DEFAULT 1,
			CONSTRAINT pkey_stream_pending PRIMARY KEY (stream, group_name, entry_id)
		);
	`)

	return err
}

func (q *queue) Add(ctx context.Context, stream string, fields map[string]string) (uint64, error) {
	if stream == "" {
		return 0, ErrEmptyStreamName
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return 0, err
	}

	var id uint64
	err = q.pool.QueryRow(ctx, `
		INSERT INTO stream_entries (stream, fields) VALUES ($1, $2) RETURNING entry_id
	`, stream, string(b)).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// EnsureGroup creates the consumer group at the current tail of the stream
// if it does not exist. Safe to call on every iteration.
func (q *queue) EnsureGroup(ctx context.Context, stream, group string) error {
	if stream == "" {
		return ErrEmptyStreamName
	}

	_, err := q.pool.Exec(ctx, `
		INSERT INTO stream_groups (stream, group_name, cursor)
		VALUES ($1, $2, coalesce((SELECT max(entry_id) FROM stream_entries WHERE stream = $1), 0))
		ON CONFLICT (stream, group_name) DO NOTHING
	`, stream, group)

	return err
}

// ReadNew assigns entries beyond the group cursor to the calling consumer
// and returns them. Assigned entries stay pending until acknowledged.
func (q *queue) ReadNew(ctx context.Context, stream, group, consumer string, limit int) ([]Entry, error) {
	tx, err := q.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var cursor uint64
	err = tx.QueryRow(ctx, `
		SELECT cursor FROM stream_groups WHERE stream = $1 AND group_name = $2 FOR UPDATE
	`, stream, group).Scan(&cursor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	entries, err := scanEntries(tx.Query(ctx, `
		SELECT entry_id, fields FROM stream_entries
		WHERE stream = $1 AND entry_id > $2
		ORDER BY entry_id
		LIMIT $3
	`, stream, cursor, limit))
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, tx.Commit(ctx)
	}

	for _, entry := range entries {
		_, err = tx.Exec(ctx, `
			INSERT INTO stream_pending (stream, group_name, entry_id, consumer)
			VALUES ($1, $2, $3, $4)
		`, stream, group, entry.ID, consumer)
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE stream_groups SET cursor = $3 WHERE stream = $1 AND group_name = $2
	`, stream, group, entries[len(entries)-1].ID)
	if err != nil {
		return nil, err
	}

	return entries, tx.Commit(ctx)
}

// ReclaimStale reassigns entries that have been pending longer than maxIdle
// under any consumer to the calling consumer, bounding redelivery latency
// after a consumer crash. The row locks skip entries another reclaimer is
// taking concurrently.
func (q *queue) ReclaimStale(ctx context.Context, stream, group, consumer string, maxIdle time.Duration, limit int) ([]Entry, error) {
	tx, err := q.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	entries, err := scanEntries(tx.Query(ctx, `
		WITH stale AS (
			SELECT entry_id FROM stream_pending
			WHERE stream = $1 AND group_name = $2 AND delivered_on <= CURRENT_TIMESTAMP - make_interval(secs => $3)
			ORDER BY entry_id
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		UPDATE stream_pending p
		SET consumer = $5, delivered_on = CURRENT_TIMESTAMP, deliveries = deliveries + 1
		FROM stale, stream_entries e
		WHERE p.stream = $1 AND p.group_name = $2 AND p.entry_id = stale.entry_id AND e.entry_id = stale.entry_id
		RETURNING p.entry_id, e.fields
	`, stream, group, maxIdle.Seconds(), limit, consumer))
	if err != nil {
		return nil, err
	}

	return entries, tx.Commit(ctx)
}

// Ack removes entries from the pending list. The log itself is untouched,
// trimming is a capacity policy and not a correctness concern.
func (q *queue) Ack(ctx context.Context, stream, group string, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}

	ints := make([]int64, 0, len(ids))
	for _, id := range ids {
		ints = append(ints, int64(id))
	}

	_, err := q.pool.Exec(ctx, `
		DELETE FROM stream_pending WHERE stream = $1 AND group_name = $2 AND entry_id = ANY($3)
	`, stream, group, ints)

	return err
}

func (q *queue) Trim(ctx context.Context, stream string, maxLen int64) error {
	_, err := q.pool.Exec(ctx, `
		DELETE FROM stream_entries
		WHERE stream = $1 AND entry_id <= (
			SELECT coalesce(max(entry_id), 0) - $2 FROM stream_entries WHERE stream = $1
		)
	`, stream, maxLen)

	return err
}

func scanEntries(rows pgx.Rows, err error) ([]Entry, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var entry Entry
		var fields []byte

		err = rows.Scan(&entry.ID, &fields)
		if err != nil {
			return nil, err
		}

		err = json.Unmarshal(fields, &entry.Fields)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
