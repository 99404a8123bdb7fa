package hubsync

import (
	"context"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/iot-edge-sync/internal/pkg/application/webevents"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/files"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/keyvalue"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/stream"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

const (
	knownDeviceID   = "0b2f07c4-9f9e-4a74-b0b0-3f4d720be49c"
	unknownDeviceID = "11f2db31-1089-4dcb-a57e-a002c27cf0a8"
)

func testEdgeNode() types.EdgeNode {
	return types.EdgeNode{ID: "node-1", Name: "barn", Token: "token-1", UpdateRateSeconds: 10}
}

func newStoreMock() *StoreMock {
	return &StoreMock{
		GetEdgeNodeByTokenFunc: func(ctx context.Context, token string) (types.EdgeNode, error) {
			if token != "token-1" {
				return types.EdgeNode{}, storage.ErrNoRows
			}
			return testEdgeNode(), nil
		},
		GetEdgeNodesFunc: func(ctx context.Context) ([]types.EdgeNode, error) {
			return []types.EdgeNode{testEdgeNode()}, nil
		},
		ExistingDeviceIDsFunc: func(ctx context.Context, candidates []string) (map[string]struct{}, error) {
			existing := map[string]struct{}{}
			for _, id := range candidates {
				if id == knownDeviceID {
					existing[id] = struct{}{}
				}
			}
			return existing, nil
		},
		MarkDevicesSyncedFromEdgeFunc: func(ctx context.Context, deviceIDs []string, edgeNodeID string) ([]string, error) {
			return deviceIDs, nil
		},
		CatalogSignaturesFunc: func(ctx context.Context) ([]storage.TableSignature, error) {
			return []storage.TableSignature{{TableName: "devices", Count: 1, MaxUpdatedAt: 1700000000}}, nil
		},
	}
}

func newQueueMock() *stream.QueueMock {
	return &stream.QueueMock{
		AddFunc: func(ctx context.Context, streamName string, fields map[string]string) (uint64, error) {
			return 1, nil
		},
		TrimFunc: func(ctx context.Context, streamName string, maxLen int64) error {
			return nil
		},
	}
}

func newKVMock() *keyvalue.StoreMock {
	return &keyvalue.StoreMock{
		GetFunc: func(ctx context.Context, key string) (string, bool, error) {
			return "", false, nil
		},
		SetFunc: func(ctx context.Context, key, value string, ttl time.Duration) error {
			return nil
		},
		DeleteFunc: func(ctx context.Context, keys ...string) error {
			return nil
		},
		IncrementFunc: func(ctx context.Context, key string) (int64, error) {
			return 1, nil
		},
		SetAddFunc: func(ctx context.Context, key string, members ...string) error {
			return nil
		},
		SetRemoveFunc: func(ctx context.Context, key string, members ...string) error {
			return nil
		},
	}
}

func TestSyncDatapointsRejectsUnknownToken(t *testing.T) {
	is := is.New(t)

	svc := New(newStoreMock(), newQueueMock(), newKVMock(), &files.StoreMock{}, webevents.New())

	_, err := svc.SyncDatapoints(context.Background(), "bad-token", types.SyncDatapointsRequest{})
	is.True(errors.Is(err, ErrUnauthorized))

	_, err = svc.SyncDatapoints(context.Background(), "  ", types.SyncDatapointsRequest{})
	is.True(errors.Is(err, ErrUnauthorized))
}

func TestSyncDatapointsRepublishesValidReadings(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	queue := newQueueMock()
	kv := newKVMock()

	svc := New(store, queue, kv, &files.StoreMock{}, webevents.New())

	response, err := svc.SyncDatapoints(context.Background(), "token-1", types.SyncDatapointsRequest{
		Datapoints: []types.Datapoint{
			{DeviceID: knownDeviceID, SensorTag: "temperature", Value: 21.5, TimestampUnixMs: 1709294400000},
		},
	})
	is.NoErr(err)

	is.Equal(response.AcceptedCount, 1)
	is.Equal(response.SkippedCount, 0)
	is.Equal(response.NextSyncSeconds, 10)
	is.True(response.Hash != "")

	is.Equal(len(queue.AddCalls()), 1)
	is.Equal(queue.AddCalls()[0].Stream, stream.DatapointStream)
	is.Equal(queue.AddCalls()[0].Fields["device_id"], knownDeviceID)
	is.Equal(len(queue.TrimCalls()), 1)
}

func TestSyncDatapointsTouchesHeartbeat(t *testing.T) {
	is := is.New(t)

	kv := newKVMock()

	svc := New(newStoreMock(), newQueueMock(), kv, &files.StoreMock{}, webevents.New())

	_, err := svc.SyncDatapoints(context.Background(), "token-1", types.SyncDatapointsRequest{})
	is.NoErr(err)

	touched := false
	for _, call := range kv.SetCalls() {
		if call.Key == "edge-node:node-1:last-sync" {
			touched = true
			is.Equal(call.TTL, 7*24*time.Hour)
		}
	}
	is.True(touched)
}

func TestSyncDatapointsSkipsInvalidReadings(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	queue := newQueueMock()

	svc := New(store, queue, newKVMock(), &files.StoreMock{}, webevents.New())

	response, err := svc.SyncDatapoints(context.Background(), "token-1", types.SyncDatapointsRequest{
		Datapoints: []types.Datapoint{
			{DeviceID: unknownDeviceID, SensorTag: "temperature", Value: 1},
			{DeviceID: knownDeviceID, SensorTag: "", Value: 1},
			{DeviceID: knownDeviceID, SensorTag: "temperature", Value: math.NaN()},
			{DeviceID: knownDeviceID, SensorTag: "temperature", Value: math.Inf(1)},
			{DeviceID: knownDeviceID, SensorTag: "temperature", Value: 2},
		},
	})
	is.NoErr(err)

	is.Equal(response.AcceptedCount, 1)
	is.Equal(response.SkippedCount, 4)

	// only devices that exist locally may be bound to the edge
	marked := store.MarkDevicesSyncedFromEdgeCalls()
	is.Equal(len(marked), 1)
	is.Equal(marked[0].DeviceIDs, []string{knownDeviceID})
	is.Equal(marked[0].EdgeNodeID, "node-1")
}

func TestSyncDatapointsNormalizesBadTimestamps(t *testing.T) {
	is := is.New(t)

	queue := newQueueMock()

	svc := New(newStoreMock(), queue, newKVMock(), &files.StoreMock{}, webevents.New())

	before := time.Now().UTC().UnixMilli()

	_, err := svc.SyncDatapoints(context.Background(), "token-1", types.SyncDatapointsRequest{
		Datapoints: []types.Datapoint{
			{DeviceID: knownDeviceID, SensorTag: "temperature", Value: 1, TimestampUnixMs: 0},
			{DeviceID: knownDeviceID, SensorTag: "temperature", Value: 2, TimestampUnixMs: 999999999999999999},
		},
	})
	is.NoErr(err)

	is.Equal(len(queue.AddCalls()), 2)

	for _, call := range queue.AddCalls() {
		millis, parseErr := strconv.ParseInt(call.Fields["timestamp"], 10, 64)
		is.NoErr(parseErr)
		is.True(millis >= before)
	}
}

func TestSyncDatapointsConsumesForceFullSyncFlag(t *testing.T) {
	is := is.New(t)

	kv := newKVMock()
	kv.GetFunc = func(ctx context.Context, key string) (string, bool, error) {
		if strings.HasSuffix(key, ":force-full-sync") {
			return "1700000000", true, nil
		}
		return "", false, nil
	}

	svc := New(newStoreMock(), newQueueMock(), kv, &files.StoreMock{}, webevents.New())

	response, err := svc.SyncDatapoints(context.Background(), "token-1", types.SyncDatapointsRequest{})
	is.NoErr(err)

	is.True(response.ForceFullSync)
	is.Equal(len(kv.DeleteCalls()), 1)
	is.Equal(kv.DeleteCalls()[0].Keys, []string{"edge-node:node-1:force-full-sync"})
}

func TestSyncDatapointsBumpsCatalogVersionOnFirstBinding(t *testing.T) {
	is := is.New(t)

	kv := newKVMock()

	svc := New(newStoreMock(), newQueueMock(), kv, &files.StoreMock{}, webevents.New())

	_, err := svc.SyncDatapoints(context.Background(), "token-1", types.SyncDatapointsRequest{
		Datapoints: []types.Datapoint{
			{DeviceID: knownDeviceID, SensorTag: "temperature", Value: 1, TimestampUnixMs: 1709294400000},
		},
	})
	is.NoErr(err)

	is.Equal(len(kv.IncrementCalls()), 1)
	is.Equal(kv.IncrementCalls()[0].Key, "hubsync:metadata:version")
	is.Equal(len(kv.SetAddCalls()), 1)
	is.Equal(kv.SetAddCalls()[0].Members, []string{knownDeviceID})
}

func TestSyncDatapointsLeavesVersionAloneWhenNothingNewWasBound(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	store.MarkDevicesSyncedFromEdgeFunc = func(ctx context.Context, deviceIDs []string, edgeNodeID string) ([]string, error) {
		return nil, nil
	}

	kv := newKVMock()

	svc := New(store, newQueueMock(), kv, &files.StoreMock{}, webevents.New())

	_, err := svc.SyncDatapoints(context.Background(), "token-1", types.SyncDatapointsRequest{
		Datapoints: []types.Datapoint{
			{DeviceID: knownDeviceID, SensorTag: "temperature", Value: 1, TimestampUnixMs: 1709294400000},
		},
	})
	is.NoErr(err)

	is.Equal(len(kv.IncrementCalls()), 0)
}

func TestSnapshotExcludesEdgeSourcedDevices(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	store.GetTemplatesFunc = func(ctx context.Context) ([]types.Template, error) {
		return []types.Template{{ID: "t-1", Name: "soil sensor"}}, nil
	}
	store.GetDevicesFunc = func(ctx context.Context, includeEdgeSourced bool) ([]types.Device, error) {
		return []types.Device{
			{ID: "d-1", Name: "hub authored"},
			{ID: "d-2", Name: "edge authored", SyncedFromEdge: true},
		}, nil
	}

	svc := New(store, newQueueMock(), newKVMock(), &files.StoreMock{}, webevents.New())

	snapshot, err := svc.Snapshot(context.Background(), "token-1")
	is.NoErr(err)

	is.Equal(len(snapshot.Templates), 1)
	is.Equal(len(snapshot.Devices), 1)
	is.Equal(snapshot.Devices[0].ID, "d-1")
}

func TestSnapshotRequiresValidToken(t *testing.T) {
	is := is.New(t)

	svc := New(newStoreMock(), newQueueMock(), newKVMock(), &files.StoreMock{}, webevents.New())

	_, err := svc.Snapshot(context.Background(), "bad-token")
	is.True(errors.Is(err, ErrUnauthorized))
}

func TestSnapshotClearsTheCallersChangeSet(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	store.GetTemplatesFunc = func(ctx context.Context) ([]types.Template, error) { return nil, nil }
	store.GetDevicesFunc = func(ctx context.Context, includeEdgeSourced bool) ([]types.Device, error) { return nil, nil }

	kv := newKVMock()

	svc := New(store, newQueueMock(), kv, &files.StoreMock{}, webevents.New())

	_, err := svc.Snapshot(context.Background(), "token-1")
	is.NoErr(err)

	cleared := false
	for _, call := range kv.DeleteCalls() {
		for _, key := range call.Keys {
			if key == "hubsync:metadata:changed:devices:node-1" {
				cleared = true
			}
		}
	}
	is.True(cleared)
}

func TestOpenFirmwareReturnsNotFoundForUnknownFirmware(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	store.GetTemplateFirmwareFunc = func(ctx context.Context, templateID, firmwareID string) (types.Firmware, error) {
		return types.Firmware{}, storage.ErrNoRows
	}

	svc := New(store, newQueueMock(), newKVMock(), &files.StoreMock{}, webevents.New())

	_, _, err := svc.OpenFirmware(context.Background(), "token-1", "t-1", "fw-1")
	is.True(errors.Is(err, ErrFirmwareNotFound))
}

func TestOpenFirmwareReturnsNotFoundForMissingFile(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	store.GetTemplateFirmwareFunc = func(ctx context.Context, templateID, firmwareID string) (types.Firmware, error) {
		return types.Firmware{ID: "fw-1", OriginalFileName: "v2.bin", StoredFileName: "fw-1.bin"}, nil
	}

	fileStore := &files.StoreMock{
		OpenFunc: func(name string) (io.ReadCloser, error) {
			return nil, files.ErrNotFound
		},
	}

	svc := New(store, newQueueMock(), newKVMock(), fileStore, webevents.New())

	_, _, err := svc.OpenFirmware(context.Background(), "token-1", "t-1", "fw-1")
	is.True(errors.Is(err, ErrFirmwareNotFound))
}

func TestOpenFirmwareStreamsTheStoredFile(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	store.GetTemplateFirmwareFunc = func(ctx context.Context, templateID, firmwareID string) (types.Firmware, error) {
		return types.Firmware{ID: "fw-1", OriginalFileName: "v2.bin", StoredFileName: "fw-1.bin"}, nil
	}

	fileStore := &files.StoreMock{
		OpenFunc: func(name string) (io.ReadCloser, error) {
			is.Equal(name, "fw-1.bin")
			return io.NopCloser(strings.NewReader("firmware bytes")), nil
		},
	}

	svc := New(store, newQueueMock(), newKVMock(), fileStore, webevents.New())

	body, fileName, err := svc.OpenFirmware(context.Background(), "token-1", "t-1", "fw-1")
	is.NoErr(err)
	defer body.Close()

	is.Equal(fileName, "v2.bin")

	content, err := io.ReadAll(body)
	is.NoErr(err)
	is.Equal(string(content), "firmware bytes")
}

func TestRequestFullSyncSetsTheFlag(t *testing.T) {
	is := is.New(t)

	kv := newKVMock()

	svc := New(newStoreMock(), newQueueMock(), kv, &files.StoreMock{}, webevents.New())

	err := svc.RequestFullSync(context.Background(), "node-1")
	is.NoErr(err)

	is.Equal(len(kv.SetCalls()), 1)
	is.Equal(kv.SetCalls()[0].Key, "edge-node:node-1:force-full-sync")
	is.Equal(kv.SetCalls()[0].TTL, 10*time.Minute)
}

func TestLastHeartbeat(t *testing.T) {
	is := is.New(t)

	kv := newKVMock()
	kv.GetFunc = func(ctx context.Context, key string) (string, bool, error) {
		return "1700000000", true, nil
	}

	svc := New(newStoreMock(), newQueueMock(), kv, &files.StoreMock{}, webevents.New())

	heartbeat, err := svc.LastHeartbeat(context.Background(), "node-1")
	is.NoErr(err)
	is.Equal(*heartbeat, time.Unix(1700000000, 0).UTC())
}

func TestLastHeartbeatIsNilWhenNeverSeen(t *testing.T) {
	is := is.New(t)

	svc := New(newStoreMock(), newQueueMock(), newKVMock(), &files.StoreMock{}, webevents.New())

	heartbeat, err := svc.LastHeartbeat(context.Background(), "node-1")
	is.NoErr(err)
	is.Equal(heartbeat, nil)
}

func TestNextSyncSecondsFallsBackToDefault(t *testing.T) {
	is := is.New(t)

	is.Equal(nextSyncSeconds(types.EdgeNode{UpdateRateSeconds: 0}), defaultNextSyncSeconds)
	is.Equal(nextSyncSeconds(types.EdgeNode{UpdateRateSeconds: -3}), defaultNextSyncSeconds)
	is.Equal(nextSyncSeconds(types.EdgeNode{UpdateRateSeconds: 30}), 30)
}

func TestSyncDatapointsAcceptsNonCanonicalDeviceIDs(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	queue := newQueueMock()

	svc := New(store, queue, newKVMock(), &files.StoreMock{}, webevents.New())

	response, err := svc.SyncDatapoints(context.Background(), "token-1", types.SyncDatapointsRequest{
		Datapoints: []types.Datapoint{
			{DeviceID: strings.ToUpper(knownDeviceID), SensorTag: "temp", Value: 21.5},
		},
	})

	is.NoErr(err)
	is.Equal(response.AcceptedCount, 1)
	is.Equal(response.SkippedCount, 0)

	is.Equal(store.MarkDevicesSyncedFromEdgeCalls()[0].DeviceIDs, []string{knownDeviceID})
	is.Equal(queue.AddCalls()[0].Fields["device_id"], knownDeviceID)
}

func TestSyncStatusFollowsTheCatalogCursor(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	store.GetTemplatesFunc = func(ctx context.Context) ([]types.Template, error) {
		return []types.Template{}, nil
	}
	store.GetDevicesFunc = func(ctx context.Context, includeEdgeSourced bool) ([]types.Device, error) {
		return []types.Device{}, nil
	}

	svc := New(store, newQueueMock(), fakeKV(), &files.StoreMock{}, webevents.New())

	_, err := svc.SyncDatapoints(context.Background(), "token-1", types.SyncDatapointsRequest{
		Datapoints: []types.Datapoint{{DeviceID: knownDeviceID, SensorTag: "temp", Value: 21.5}},
	})
	is.NoErr(err)

	status, err := svc.SyncStatus(context.Background(), "node-1")
	is.NoErr(err)
	is.Equal(status.CatalogVersion, int64(1))
	is.Equal(status.AppliedVersion, nil)
	is.Equal(status.Pending.ChangedDeviceIDs, []string{knownDeviceID})

	_, err = svc.Snapshot(context.Background(), "token-1")
	is.NoErr(err)

	status, err = svc.SyncStatus(context.Background(), "node-1")
	is.NoErr(err)
	is.Equal(*status.AppliedVersion, int64(1))
	is.True(!status.Pending.HasChanges())
}

func TestReleaseEdgeNodeRecordsDeletionsForRemainingEdges(t *testing.T) {
	is := is.New(t)

	store := newStoreMock()
	store.GetEdgeNodesFunc = func(ctx context.Context) ([]types.EdgeNode, error) {
		return []types.EdgeNode{
			testEdgeNode(),
			{ID: "node-2", Name: "greenhouse", Token: "token-2"},
		}, nil
	}
	store.DeleteEdgeSourcedDevicesFunc = func(ctx context.Context, edgeNodeID string) ([]string, error) {
		return []string{knownDeviceID}, nil
	}

	svc := New(store, newQueueMock(), fakeKV(), &files.StoreMock{}, webevents.New())

	err := svc.ReleaseEdgeNode(context.Background(), "node-1")
	is.NoErr(err)

	remaining, err := svc.SyncStatus(context.Background(), "node-2")
	is.NoErr(err)
	is.Equal(remaining.CatalogVersion, int64(1))
	is.Equal(remaining.Pending.DeletedDeviceIDs, []string{knownDeviceID})

	released, err := svc.SyncStatus(context.Background(), "node-1")
	is.NoErr(err)
	is.True(!released.Pending.HasChanges())
	is.Equal(released.AppliedVersion, nil)
}
