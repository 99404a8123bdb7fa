package edgesync

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/files"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/keyvalue"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/stream"
	"github.com/diwise/iot-edge-sync/pkg/client"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

func testSnapshot() types.Snapshot {
	templateID := "t-1"

	return types.Snapshot{
		Templates: []types.Template{
			{
				ID:         "t-1",
				Name:       "soil sensor",
				OwnerEmail: "Alice@Example.com",
				Firmwares: []types.Firmware{
					{ID: "fw-1", VersionNumber: "2.0", OriginalFileName: "v2.bin", StoredFileName: "fw-1.bin"},
				},
			},
			{ID: "t-2", Name: "orphaned", OwnerEmail: "nobody@example.com"},
		},
		Devices: []types.Device{
			{ID: "d-1", Name: "field sensor", OwnerEmail: "alice@example.com", TemplateID: &templateID},
			{ID: "d-2", Name: "unowned", OwnerEmail: "nobody@example.com"},
		},
	}
}

func newReconcilerStoreMock() *StoreMock {
	return &StoreMock{
		GetNodeSettingsFunc: func(ctx context.Context) (types.NodeSettings, error) {
			return edgeSettings(), nil
		},
		UsersByEmailFunc: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{"alice@example.com": "user-1"}, nil
		},
		UpsertSyncedTemplateFunc: func(ctx context.Context, t types.Template, ownerID string) (bool, error) {
			return true, nil
		},
		UpsertSyncedDeviceFunc: func(ctx context.Context, d types.Device, ownerID string) (bool, error) {
			return false, nil
		},
		DeleteStaleSyncedTemplatesFunc: func(ctx context.Context, keep []string) (int, []string, error) {
			return 0, nil, nil
		},
		DeleteStaleSyncedDevicesFunc: func(ctx context.Context, keep []string) (int, error) {
			return 0, nil
		},
	}
}

func newReconcilerService(store *StoreMock, kv *keyvalue.StoreMock, fileStore *files.StoreMock, hub *client.HubClientMock) *service {
	svc := New(store, &stream.QueueMock{}, kv, fileStore, nil, nil).(*service)
	svc.newClient = func(hubURL, edgeToken string) client.HubClient { return hub }
	return svc
}

func newFileStoreMock() *files.StoreMock {
	return &files.StoreMock{
		ExistsFunc: func(name string) bool { return false },
		SaveFunc:   func(name string, r io.Reader) error { return nil },
		DeleteFunc: func(name string) error { return nil },
	}
}

func TestReconcileRequiresEdgeConfiguration(t *testing.T) {
	is := is.New(t)

	store := newReconcilerStoreMock()
	store.GetNodeSettingsFunc = func(ctx context.Context) (types.NodeSettings, error) {
		return types.NodeSettings{Role: types.NodeRoleHub}, nil
	}

	svc := newReconcilerService(store, newEdgeKVMock(), newFileStoreMock(), &client.HubClientMock{})

	_, err := svc.Reconcile(context.Background())
	is.True(errors.Is(err, ErrNotConfigured))
}

func TestReconcileFailsClosedOnRejectedToken(t *testing.T) {
	is := is.New(t)

	store := newReconcilerStoreMock()

	hub := &client.HubClientMock{
		SnapshotFunc: func(ctx context.Context) (types.Snapshot, error) {
			return types.Snapshot{}, client.ErrUnauthorized
		},
	}

	svc := newReconcilerService(store, newEdgeKVMock(), newFileStoreMock(), hub)

	_, err := svc.Reconcile(context.Background())
	is.True(errors.Is(err, ErrUnauthorized))

	is.Equal(len(store.UpsertSyncedTemplateCalls()), 0)
	is.Equal(len(store.DeleteStaleSyncedTemplatesCalls()), 0)
}

func TestReconcileMergesSnapshot(t *testing.T) {
	is := is.New(t)

	store := newReconcilerStoreMock()

	hub := &client.HubClientMock{
		SnapshotFunc: func(ctx context.Context) (types.Snapshot, error) {
			return testSnapshot(), nil
		},
		DownloadFirmwareFunc: func(ctx context.Context, templateID, firmwareID string) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("firmware bytes")), nil
		},
	}

	fileStore := newFileStoreMock()

	svc := newReconcilerService(store, newEdgeKVMock(), fileStore, hub)

	summary, err := svc.Reconcile(context.Background())
	is.NoErr(err)

	// owner emails resolve case-insensitively, unresolvable owners are skipped
	is.Equal(summary.TemplatesCreated, 1)
	is.Equal(summary.TemplatesSkipped, 1)
	is.Equal(summary.DevicesUpdated, 1)
	is.Equal(summary.DevicesSkipped, 1)
	is.Equal(summary.OwnersNotFound, 2)

	is.Equal(len(store.UpsertSyncedTemplateCalls()), 1)
	is.Equal(store.UpsertSyncedTemplateCalls()[0].OwnerID, "user-1")

	is.Equal(summary.FirmwaresDownloaded, 1)
	is.Equal(len(fileStore.SaveCalls()), 1)
	is.Equal(fileStore.SaveCalls()[0].Name, "fw-1.bin")
}

func TestReconcileNullsUnresolvedTemplateReferences(t *testing.T) {
	is := is.New(t)

	orphanTemplateID := "t-gone"

	store := newReconcilerStoreMock()

	var upserted types.Device
	store.UpsertSyncedDeviceFunc = func(ctx context.Context, d types.Device, ownerID string) (bool, error) {
		upserted = d
		return true, nil
	}

	hub := &client.HubClientMock{
		SnapshotFunc: func(ctx context.Context) (types.Snapshot, error) {
			return types.Snapshot{
				Devices: []types.Device{
					{ID: "d-1", OwnerEmail: "alice@example.com", TemplateID: &orphanTemplateID},
				},
			}, nil
		},
	}

	svc := newReconcilerService(store, newEdgeKVMock(), newFileStoreMock(), hub)

	summary, err := svc.Reconcile(context.Background())
	is.NoErr(err)

	is.Equal(summary.UnresolvedTemplateRefs, 1)
	is.Equal(upserted.TemplateID, nil)
}

func TestReconcileSweepsStaleStateAndFirmwareFiles(t *testing.T) {
	is := is.New(t)

	store := newReconcilerStoreMock()
	store.DeleteStaleSyncedTemplatesFunc = func(ctx context.Context, keep []string) (int, []string, error) {
		return 2, []string{"old-1.bin", "old-1.bin", "old-2.bin"}, nil
	}
	store.DeleteStaleSyncedDevicesFunc = func(ctx context.Context, keep []string) (int, error) {
		return 3, nil
	}

	hub := &client.HubClientMock{
		SnapshotFunc: func(ctx context.Context) (types.Snapshot, error) {
			return types.Snapshot{}, nil
		},
	}

	fileStore := newFileStoreMock()

	svc := newReconcilerService(store, newEdgeKVMock(), fileStore, hub)

	summary, err := svc.Reconcile(context.Background())
	is.NoErr(err)

	is.Equal(summary.TemplatesDeleted, 2)
	is.Equal(summary.DevicesDeleted, 3)
	is.Equal(len(fileStore.DeleteCalls()), 2)
}

func TestReconcileSwallowsFirmwareDownloadFailures(t *testing.T) {
	is := is.New(t)

	store := newReconcilerStoreMock()

	hub := &client.HubClientMock{
		SnapshotFunc: func(ctx context.Context) (types.Snapshot, error) {
			return testSnapshot(), nil
		},
		DownloadFirmwareFunc: func(ctx context.Context, templateID, firmwareID string) (io.ReadCloser, error) {
			return nil, errors.New("connection reset")
		},
	}

	svc := newReconcilerService(store, newEdgeKVMock(), newFileStoreMock(), hub)

	summary, err := svc.Reconcile(context.Background())
	is.NoErr(err)

	is.Equal(summary.FirmwaresDownloaded, 0)
	is.Equal(summary.FirmwareDownloadFailures, 1)
}

func TestReconcileRecordsTheAppliedHash(t *testing.T) {
	is := is.New(t)

	kv := newEdgeKVMock()
	kv.GetFunc = func(ctx context.Context, key string) (string, bool, error) {
		if key == announcedHashKey {
			return "abc123", true, nil
		}
		return "", false, nil
	}

	hub := &client.HubClientMock{
		SnapshotFunc: func(ctx context.Context) (types.Snapshot, error) {
			return types.Snapshot{}, nil
		},
	}

	svc := newReconcilerService(newReconcilerStoreMock(), kv, newFileStoreMock(), hub)

	summary, err := svc.Reconcile(context.Background())
	is.NoErr(err)

	is.Equal(summary.AppliedHash, "abc123")

	applied := ""
	for _, call := range kv.SetCalls() {
		if call.Key == appliedHashKey {
			applied = call.Value
		}
	}
	is.Equal(applied, "abc123")
}

func TestCatalogStale(t *testing.T) {
	is := is.New(t)

	hashes := map[string]string{}

	kv := newEdgeKVMock()
	kv.GetFunc = func(ctx context.Context, key string) (string, bool, error) {
		value, ok := hashes[key]
		return value, ok, nil
	}

	svc := newReconcilerService(newReconcilerStoreMock(), kv, newFileStoreMock(), &client.HubClientMock{})

	// nothing announced or applied yet: a fresh edge must pull
	stale, err := svc.catalogStale(context.Background())
	is.NoErr(err)
	is.True(stale)

	hashes[announcedHashKey] = "abc123"
	stale, err = svc.catalogStale(context.Background())
	is.NoErr(err)
	is.True(stale)

	hashes[appliedHashKey] = "abc123"
	stale, err = svc.catalogStale(context.Background())
	is.NoErr(err)
	is.True(!stale)

	hashes[announcedHashKey] = "def456"
	stale, err = svc.catalogStale(context.Background())
	is.NoErr(err)
	is.True(stale)
}

func TestSyncSecondsIsFlooredAndDefaulted(t *testing.T) {
	is := is.New(t)

	values := map[string]string{}

	kv := newEdgeKVMock()
	kv.GetFunc = func(ctx context.Context, key string) (string, bool, error) {
		value, ok := values[key]
		return value, ok, nil
	}

	svc := newReconcilerService(newReconcilerStoreMock(), kv, newFileStoreMock(), &client.HubClientMock{})

	is.Equal(svc.syncSeconds(context.Background()), defaultSyncSeconds)

	values[expectedSyncSecondsKey] = "2"
	is.Equal(svc.syncSeconds(context.Background()), minSyncSeconds)

	values[expectedSyncSecondsKey] = "45"
	is.Equal(svc.syncSeconds(context.Background()), 45)

	values[expectedSyncSecondsKey] = "garbage"
	is.Equal(svc.syncSeconds(context.Background()), defaultSyncSeconds)
}

func TestStopTerminatesTheLoops(t *testing.T) {
	store := newReconcilerStoreMock()
	store.GetNodeSettingsFunc = func(ctx context.Context) (types.NodeSettings, error) {
		return types.NodeSettings{Role: types.NodeRoleHub}, nil
	}

	svc := New(store, newRelayQueueMock(nil), newEdgeKVMock(), newFileStoreMock(), nil, nil)

	ctx := context.Background()
	svc.Start(ctx)

	stopped := make(chan struct{})
	go func() {
		svc.Stop(ctx)
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestStopReturnsWhenTheContextWasAlreadyCancelled(t *testing.T) {
	store := newReconcilerStoreMock()
	store.GetNodeSettingsFunc = func(ctx context.Context) (types.NodeSettings, error) {
		return types.NodeSettings{Role: types.NodeRoleHub}, nil
	}

	svc := New(store, newRelayQueueMock(nil), newEdgeKVMock(), newFileStoreMock(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)

	// the loops exit through context cancellation, leaving no receiver
	// behind for Stop to hand off to
	cancel()
	time.Sleep(50 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		svc.Stop(context.Background())
		svc.Stop(context.Background())
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
