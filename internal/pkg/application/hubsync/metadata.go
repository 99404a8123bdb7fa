package hubsync

import (
	"context"
	"fmt"
	"strconv"

	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/keyvalue"
)

const (
	metadataVersionKey = "hubsync:metadata:version"

	EntityKindTemplate = "templates"
	EntityKindDevice   = "devices"
)

func changedKey(kind, edgeNodeID string) string {
	return fmt.Sprintf("hubsync:metadata:changed:%s:%s", kind, edgeNodeID)
}

func deletedKey(kind, edgeNodeID string) string {
	return fmt.Sprintf("hubsync:metadata:deleted:%s:%s", kind, edgeNodeID)
}

func appliedVersionKey(edgeNodeID string) string {
	return fmt.Sprintf("hubsync:metadata:applied:%s", edgeNodeID)
}

// VersionCounter is the global catalog version. It only ever moves forward
// and is incremented exactly once per accepted catalog mutation.
type VersionCounter struct {
	kv keyvalue.Store
}

func NewVersionCounter(kv keyvalue.Store) *VersionCounter {
	return &VersionCounter{kv: kv}
}

func (v *VersionCounter) Current(ctx context.Context) (int64, error) {
	value, ok, err := v.kv.Get(ctx, metadataVersionKey)
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, v.kv.Set(ctx, metadataVersionKey, "0", 0)
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 0 {
		return 0, v.kv.Set(ctx, metadataVersionKey, "0", 0)
	}

	return parsed, nil
}

func (v *VersionCounter) Increment(ctx context.Context) (int64, error) {
	return v.kv.Increment(ctx, metadataVersionKey)
}

// ChangeSet accumulates changed and deleted entity ids per kind. Inserting
// an id into one side evicts it from the other.
type ChangeSet struct {
	ChangedTemplateIDs []string
	DeletedTemplateIDs []string
	ChangedDeviceIDs   []string
	DeletedDeviceIDs   []string
}

func (c ChangeSet) HasChanges() bool {
	return len(c.ChangedTemplateIDs) > 0 || len(c.DeletedTemplateIDs) > 0 ||
		len(c.ChangedDeviceIDs) > 0 || len(c.DeletedDeviceIDs) > 0
}

// ChangeTracker keeps one change set per registered edge node. The sets are
// advisory, reconciliation always pulls and re-diffs the full snapshot. The
// per edge scoping keeps one edge's applied cursor from masking drift on
// another.
type ChangeTracker struct {
	kv keyvalue.Store
}

func NewChangeTracker(kv keyvalue.Store) *ChangeTracker {
	return &ChangeTracker{kv: kv}
}

func (t *ChangeTracker) RecordChanged(ctx context.Context, kind, edgeNodeID string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	err := t.kv.SetAdd(ctx, changedKey(kind, edgeNodeID), ids...)
	if err != nil {
		return err
	}

	return t.kv.SetRemove(ctx, deletedKey(kind, edgeNodeID), ids...)
}

func (t *ChangeTracker) RecordDeleted(ctx context.Context, kind, edgeNodeID string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	err := t.kv.SetAdd(ctx, deletedKey(kind, edgeNodeID), ids...)
	if err != nil {
		return err
	}

	return t.kv.SetRemove(ctx, changedKey(kind, edgeNodeID), ids...)
}

func (t *ChangeTracker) Pending(ctx context.Context, edgeNodeID string) (ChangeSet, error) {
	var set ChangeSet
	var err error

	set.ChangedTemplateIDs, err = t.kv.SetMembers(ctx, changedKey(EntityKindTemplate, edgeNodeID))
	if err != nil {
		return ChangeSet{}, err
	}

	set.DeletedTemplateIDs, err = t.kv.SetMembers(ctx, deletedKey(EntityKindTemplate, edgeNodeID))
	if err != nil {
		return ChangeSet{}, err
	}

	set.ChangedDeviceIDs, err = t.kv.SetMembers(ctx, changedKey(EntityKindDevice, edgeNodeID))
	if err != nil {
		return ChangeSet{}, err
	}

	set.DeletedDeviceIDs, err = t.kv.SetMembers(ctx, deletedKey(EntityKindDevice, edgeNodeID))
	if err != nil {
		return ChangeSet{}, err
	}

	return set, nil
}

func (t *ChangeTracker) LastAppliedVersion(ctx context.Context, edgeNodeID string) (int64, bool, error) {
	value, ok, err := t.kv.Get(ctx, appliedVersionKey(edgeNodeID))
	if err != nil || !ok {
		return 0, false, err
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 0 {
		return 0, false, nil
	}

	return parsed, true, nil
}

// MarkApplied records the catalog version an edge has fully reconciled and
// clears that edge's accumulated change sets.
func (t *ChangeTracker) MarkApplied(ctx context.Context, edgeNodeID string, version int64) error {
	if version < 0 {
		version = 0
	}

	err := t.kv.Set(ctx, appliedVersionKey(edgeNodeID), strconv.FormatInt(version, 10), 0)
	if err != nil {
		return err
	}

	return t.kv.Delete(ctx,
		changedKey(EntityKindTemplate, edgeNodeID),
		deletedKey(EntityKindTemplate, edgeNodeID),
		changedKey(EntityKindDevice, edgeNodeID),
		deletedKey(EntityKindDevice, edgeNodeID),
	)
}
