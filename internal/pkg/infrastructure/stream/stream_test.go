package stream

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"

	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/storage"
)

func testSetup(t *testing.T) (context.Context, Queue, string) {
	ctx := context.Background()

	config := storage.NewConfig("localhost", "postgres", "password", "5432", "postgres", "disable")

	pool, err := storage.NewPool(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = Initialize(ctx, pool)
	if err != nil {
		t.SkipNow()
	}

	// a unique stream name keeps runs isolated in a shared database
	return ctx, New(pool), uuid.NewString()
}

func TestReadNewAssignsEntriesInOrder(t *testing.T) {
	is := is.New(t)
	ctx, q, stream := testSetup(t)

	err := q.EnsureGroup(ctx, stream, "relay")
	is.NoErr(err)

	ids := make([]uint64, 0, 3)
	for _, deviceID := range []string{"d-1", "d-2", "d-3"} {
		id, err := q.Add(ctx, stream, map[string]string{"device_id": deviceID})
		is.NoErr(err)
		ids = append(ids, id)
	}

	entries, err := q.ReadNew(ctx, stream, "relay", "c-1", 10)
	is.NoErr(err)
	is.Equal(len(entries), 3)

	for i, entry := range entries {
		is.Equal(entry.ID, ids[i])
	}
	is.Equal(entries[0].Fields["device_id"], "d-1")

	// cursor advanced, nothing new to hand out
	entries, err = q.ReadNew(ctx, stream, "relay", "c-1", 10)
	is.NoErr(err)
	is.Equal(len(entries), 0)
}

func TestGroupCreatedAtTailSkipsOlderEntries(t *testing.T) {
	is := is.New(t)
	ctx, q, stream := testSetup(t)

	_, err := q.Add(ctx, stream, map[string]string{"device_id": "d-before"})
	is.NoErr(err)

	err = q.EnsureGroup(ctx, stream, "relay")
	is.NoErr(err)

	_, err = q.Add(ctx, stream, map[string]string{"device_id": "d-after"})
	is.NoErr(err)

	entries, err := q.ReadNew(ctx, stream, "relay", "c-1", 10)
	is.NoErr(err)
	is.Equal(len(entries), 1)
	is.Equal(entries[0].Fields["device_id"], "d-after")
}

func TestReclaimStaleImmediatelyReassignsUnackedEntries(t *testing.T) {
	is := is.New(t)
	ctx, q, stream := testSetup(t)

	err := q.EnsureGroup(ctx, stream, "relay")
	is.NoErr(err)

	for _, deviceID := range []string{"d-1", "d-2"} {
		_, err := q.Add(ctx, stream, map[string]string{"device_id": deviceID})
		is.NoErr(err)
	}

	entries, err := q.ReadNew(ctx, stream, "relay", "c-1", 10)
	is.NoErr(err)
	is.Equal(len(entries), 2)

	err = q.Ack(ctx, stream, "relay", []uint64{entries[0].ID})
	is.NoErr(err)

	// with a zero idle threshold the unacked entry is stale the moment
	// another consumer asks for it
	reclaimed, err := q.ReclaimStale(ctx, stream, "relay", "c-2", 0, 10)
	is.NoErr(err)
	is.Equal(len(reclaimed), 1)
	is.Equal(reclaimed[0].ID, entries[1].ID)
	is.Equal(reclaimed[0].Fields["device_id"], "d-2")

	err = q.Ack(ctx, stream, "relay", []uint64{reclaimed[0].ID})
	is.NoErr(err)

	reclaimed, err = q.ReclaimStale(ctx, stream, "relay", "c-2", 0, 10)
	is.NoErr(err)
	is.Equal(len(reclaimed), 0)
}

func TestGroupsProgressIndependently(t *testing.T) {
	is := is.New(t)
	ctx, q, stream := testSetup(t)

	err := q.EnsureGroup(ctx, stream, "relay")
	is.NoErr(err)
	err = q.EnsureGroup(ctx, stream, "audit")
	is.NoErr(err)

	_, err = q.Add(ctx, stream, map[string]string{"device_id": "d-1"})
	is.NoErr(err)

	entries, err := q.ReadNew(ctx, stream, "relay", "c-1", 10)
	is.NoErr(err)
	is.Equal(len(entries), 1)

	entries, err = q.ReadNew(ctx, stream, "audit", "c-1", 10)
	is.NoErr(err)
	is.Equal(len(entries), 1)
}

func TestReclaimRespectsTheIdleThreshold(t *testing.T) {
	is := is.New(t)
	ctx, q, stream := testSetup(t)

	err := q.EnsureGroup(ctx, stream, "relay")
	is.NoErr(err)

	_, err = q.Add(ctx, stream, map[string]string{"device_id": "d-1"})
	is.NoErr(err)

	entries, err := q.ReadNew(ctx, stream, "relay", "c-1", 10)
	is.NoErr(err)
	is.Equal(len(entries), 1)

	reclaimed, err := q.ReclaimStale(ctx, stream, "relay", "c-2", time.Hour, 10)
	is.NoErr(err)
	is.Equal(len(reclaimed), 0)
}
