package hubsync

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/keyvalue"
)

// fakeKV is a map backed keyvalue store for counter and set semantics the
// function mocks are too clumsy for.
func fakeKV() *keyvalue.StoreMock {
	values := map[string]string{}
	sets := map[string]map[string]struct{}{}

	return &keyvalue.StoreMock{
		GetFunc: func(ctx context.Context, key string) (string, bool, error) {
			value, ok := values[key]
			return value, ok, nil
		},
		SetFunc: func(ctx context.Context, key, value string, ttl time.Duration) error {
			values[key] = value
			return nil
		},
		DeleteFunc: func(ctx context.Context, keys ...string) error {
			for _, key := range keys {
				delete(values, key)
				delete(sets, key)
			}
			return nil
		},
		IncrementFunc: func(ctx context.Context, key string) (int64, error) {
			current, _ := strconv.ParseInt(values[key], 10, 64)
			current++
			values[key] = strconv.FormatInt(current, 10)
			return current, nil
		},
		SetAddFunc: func(ctx context.Context, key string, members ...string) error {
			if sets[key] == nil {
				sets[key] = map[string]struct{}{}
			}
			for _, m := range members {
				sets[key][m] = struct{}{}
			}
			return nil
		},
		SetRemoveFunc: func(ctx context.Context, key string, members ...string) error {
			for _, m := range members {
				delete(sets[key], m)
			}
			return nil
		},
		SetMembersFunc: func(ctx context.Context, key string) ([]string, error) {
			members := make([]string, 0, len(sets[key]))
			for m := range sets[key] {
				members = append(members, m)
			}
			return members, nil
		},
	}
}

func TestVersionCounterStartsAtZeroAndOnlyMovesForward(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	counter := NewVersionCounter(fakeKV())

	current, err := counter.Current(ctx)
	is.NoErr(err)
	is.Equal(current, int64(0))

	next, err := counter.Increment(ctx)
	is.NoErr(err)
	is.Equal(next, int64(1))

	next, err = counter.Increment(ctx)
	is.NoErr(err)
	is.Equal(next, int64(2))

	current, err = counter.Current(ctx)
	is.NoErr(err)
	is.Equal(current, int64(2))
}

func TestChangeTrackerEvictsBetweenChangedAndDeleted(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	tracker := NewChangeTracker(fakeKV())

	is.NoErr(tracker.RecordChanged(ctx, EntityKindTemplate, "node-1", "t-1", "t-2"))
	is.NoErr(tracker.RecordDeleted(ctx, EntityKindTemplate, "node-1", "t-2"))

	pending, err := tracker.Pending(ctx, "node-1")
	is.NoErr(err)

	is.Equal(pending.ChangedTemplateIDs, []string{"t-1"})
	is.Equal(pending.DeletedTemplateIDs, []string{"t-2"})
	is.True(pending.HasChanges())

	// changing the id again pulls it back out of the deleted set
	is.NoErr(tracker.RecordChanged(ctx, EntityKindTemplate, "node-1", "t-2"))

	pending, err = tracker.Pending(ctx, "node-1")
	is.NoErr(err)
	is.Equal(len(pending.ChangedTemplateIDs), 2)
	is.Equal(len(pending.DeletedTemplateIDs), 0)
}

func TestChangeTrackerScopesChangeSetsPerEdgeNode(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	tracker := NewChangeTracker(fakeKV())

	is.NoErr(tracker.RecordChanged(ctx, EntityKindDevice, "node-1", "d-1"))
	is.NoErr(tracker.RecordChanged(ctx, EntityKindDevice, "node-2", "d-1"))

	is.NoErr(tracker.MarkApplied(ctx, "node-1", 7))

	pendingOne, err := tracker.Pending(ctx, "node-1")
	is.NoErr(err)
	is.True(!pendingOne.HasChanges())

	// one edge syncing must not clear what another edge still has pending
	pendingTwo, err := tracker.Pending(ctx, "node-2")
	is.NoErr(err)
	is.Equal(pendingTwo.ChangedDeviceIDs, []string{"d-1"})

	version, ok, err := tracker.LastAppliedVersion(ctx, "node-1")
	is.NoErr(err)
	is.True(ok)
	is.Equal(version, int64(7))

	_, ok, err = tracker.LastAppliedVersion(ctx, "node-2")
	is.NoErr(err)
	is.True(!ok)
}
