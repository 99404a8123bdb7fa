package edgesync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/iot-edge-sync/internal/pkg/application/telemetry"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/files"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/keyvalue"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/stream"
	"github.com/diwise/iot-edge-sync/pkg/client"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

const (
	hubOwnedDeviceID = "0b2f07c4-9f9e-4a74-b0b0-3f4d720be49c"
	localDeviceID    = "11f2db31-1089-4dcb-a57e-a002c27cf0a8"
)

func edgeSettings() types.NodeSettings {
	return types.NodeSettings{
		Role:            types.NodeRoleEdge,
		HubURL:          "http://hub.local",
		HubToken:        "token-1",
		DataSyncSeconds: 30,
	}
}

func newEdgeStoreMock() *StoreMock {
	return &StoreMock{
		GetNodeSettingsFunc: func(ctx context.Context) (types.NodeSettings, error) {
			return edgeSettings(), nil
		},
		SyncedFromHubDeviceIDsFunc: func(ctx context.Context, candidates []string) (map[string]struct{}, error) {
			owned := map[string]struct{}{}
			for _, id := range candidates {
				if id == hubOwnedDeviceID {
					owned[id] = struct{}{}
				}
			}
			return owned, nil
		},
	}
}

func newRelayQueueMock(entries []stream.Entry) *stream.QueueMock {
	return &stream.QueueMock{
		EnsureGroupFunc: func(ctx context.Context, streamName, group string) error {
			return nil
		},
		ReclaimStaleFunc: func(ctx context.Context, streamName, group, consumer string, maxIdle time.Duration, limit int) ([]stream.Entry, error) {
			return nil, nil
		},
		ReadNewFunc: func(ctx context.Context, streamName, group, consumer string, limit int) ([]stream.Entry, error) {
			return entries, nil
		},
		AckFunc: func(ctx context.Context, streamName, group string, ids []uint64) error {
			return nil
		},
	}
}

func newEdgeKVMock() *keyvalue.StoreMock {
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
	}
}

func newRelayService(store *StoreMock, queue *stream.QueueMock, kv *keyvalue.StoreMock, hub *client.HubClientMock) *service {
	svc := New(store, queue, kv, &files.StoreMock{}, nil, nil).(*service)
	svc.newClient = func(hubURL, edgeToken string) client.HubClient { return hub }
	return svc
}

func entryFor(id uint64, deviceID string) stream.Entry {
	dp := types.Datapoint{DeviceID: deviceID, SensorTag: "temperature", Value: 21.5}
	return stream.Entry{ID: id, Fields: telemetry.Fields(dp, time.Now().UTC())}
}

func TestRelayIsIdleWithoutEdgeConfiguration(t *testing.T) {
	is := is.New(t)

	store := newEdgeStoreMock()
	store.GetNodeSettingsFunc = func(ctx context.Context) (types.NodeSettings, error) {
		return types.NodeSettings{Role: types.NodeRoleHub}, nil
	}

	queue := newRelayQueueMock(nil)
	hub := &client.HubClientMock{}

	svc := newRelayService(store, queue, newEdgeKVMock(), hub)

	delay := svc.relayOnce(context.Background())
	is.Equal(delay, defaultRelaySeconds)

	is.Equal(len(queue.ReadNewCalls()), 0)
	is.Equal(len(hub.SyncDatapointsCalls()), 0)
}

func TestRelayAcksOnlyAfterSuccessfulSync(t *testing.T) {
	is := is.New(t)

	queue := newRelayQueueMock([]stream.Entry{entryFor(1, hubOwnedDeviceID), entryFor(2, hubOwnedDeviceID)})
	kv := newEdgeKVMock()

	hub := &client.HubClientMock{
		SyncDatapointsFunc: func(ctx context.Context, datapoints []types.Datapoint) (types.SyncDatapointsResponse, error) {
			return types.SyncDatapointsResponse{NextSyncSeconds: 10, AcceptedCount: len(datapoints), Hash: "abc123"}, nil
		},
	}

	svc := newRelayService(newEdgeStoreMock(), queue, kv, hub)

	delay := svc.relayOnce(context.Background())
	is.Equal(delay, 10)

	is.Equal(len(hub.SyncDatapointsCalls()), 1)
	is.Equal(len(hub.SyncDatapointsCalls()[0].Datapoints), 2)

	is.Equal(len(queue.AckCalls()), 1)
	is.Equal(queue.AckCalls()[0].IDs, []uint64{1, 2})

	persisted := map[string]string{}
	for _, call := range kv.SetCalls() {
		persisted[call.Key] = call.Value
	}
	is.Equal(persisted[expectedSyncSecondsKey], "10")
	is.Equal(persisted[announcedHashKey], "abc123")
}

func TestRelayLeavesEntriesPendingOnHubError(t *testing.T) {
	is := is.New(t)

	queue := newRelayQueueMock([]stream.Entry{entryFor(1, hubOwnedDeviceID)})

	hub := &client.HubClientMock{
		SyncDatapointsFunc: func(ctx context.Context, datapoints []types.Datapoint) (types.SyncDatapointsResponse, error) {
			return types.SyncDatapointsResponse{}, errors.New("connection refused")
		},
	}

	svc := newRelayService(newEdgeStoreMock(), queue, newEdgeKVMock(), hub)

	delay := svc.relayOnce(context.Background())
	is.Equal(delay, defaultRelaySeconds)

	is.Equal(len(queue.AckCalls()), 0)
}

func TestRelayLeavesEntriesPendingOnRejectedToken(t *testing.T) {
	is := is.New(t)

	queue := newRelayQueueMock([]stream.Entry{entryFor(1, hubOwnedDeviceID)})

	hub := &client.HubClientMock{
		SyncDatapointsFunc: func(ctx context.Context, datapoints []types.Datapoint) (types.SyncDatapointsResponse, error) {
			return types.SyncDatapointsResponse{}, client.ErrUnauthorized
		},
	}

	svc := newRelayService(newEdgeStoreMock(), queue, newEdgeKVMock(), hub)

	svc.relayOnce(context.Background())

	is.Equal(len(queue.AckCalls()), 0)
}

func TestRelayAcksMalformedEntriesImmediately(t *testing.T) {
	is := is.New(t)

	malformed := stream.Entry{ID: 7, Fields: map[string]string{"value": "21.5"}}
	queue := newRelayQueueMock([]stream.Entry{malformed})

	hub := &client.HubClientMock{
		SyncDatapointsFunc: func(ctx context.Context, datapoints []types.Datapoint) (types.SyncDatapointsResponse, error) {
			is.Equal(len(datapoints), 0)
			return types.SyncDatapointsResponse{NextSyncSeconds: 5}, nil
		},
	}

	svc := newRelayService(newEdgeStoreMock(), queue, newEdgeKVMock(), hub)

	svc.relayOnce(context.Background())

	is.Equal(len(queue.AckCalls()), 1)
	is.Equal(queue.AckCalls()[0].IDs, []uint64{7})
}

func TestRelayDiscardsLocallyAuthoredDevices(t *testing.T) {
	is := is.New(t)

	queue := newRelayQueueMock([]stream.Entry{entryFor(1, localDeviceID), entryFor(2, hubOwnedDeviceID)})

	hub := &client.HubClientMock{
		SyncDatapointsFunc: func(ctx context.Context, datapoints []types.Datapoint) (types.SyncDatapointsResponse, error) {
			is.Equal(len(datapoints), 1)
			is.Equal(datapoints[0].DeviceID, hubOwnedDeviceID)
			return types.SyncDatapointsResponse{NextSyncSeconds: 5}, nil
		},
	}

	svc := newRelayService(newEdgeStoreMock(), queue, newEdgeKVMock(), hub)

	svc.relayOnce(context.Background())

	acked := []uint64{}
	for _, call := range queue.AckCalls() {
		acked = append(acked, call.IDs...)
	}
	is.Equal(len(acked), 2)
}

func TestRelayEmptyBatchStillSyncs(t *testing.T) {
	is := is.New(t)

	queue := newRelayQueueMock(nil)

	hub := &client.HubClientMock{
		SyncDatapointsFunc: func(ctx context.Context, datapoints []types.Datapoint) (types.SyncDatapointsResponse, error) {
			return types.SyncDatapointsResponse{NextSyncSeconds: 5, Hash: "abc123"}, nil
		},
	}

	svc := newRelayService(newEdgeStoreMock(), queue, newEdgeKVMock(), hub)

	svc.relayOnce(context.Background())

	// the empty POST doubles as heartbeat and hash fetch
	is.Equal(len(hub.SyncDatapointsCalls()), 1)
	is.Equal(len(queue.AckCalls()), 0)
}

func TestRelayForceFullSyncClearsAppliedHash(t *testing.T) {
	is := is.New(t)

	kv := newEdgeKVMock()

	hub := &client.HubClientMock{
		SyncDatapointsFunc: func(ctx context.Context, datapoints []types.Datapoint) (types.SyncDatapointsResponse, error) {
			return types.SyncDatapointsResponse{NextSyncSeconds: 5, ForceFullSync: true}, nil
		},
	}

	svc := newRelayService(newEdgeStoreMock(), newRelayQueueMock(nil), kv, hub)

	svc.relayOnce(context.Background())

	is.Equal(len(kv.DeleteCalls()), 1)
	is.Equal(kv.DeleteCalls()[0].Keys, []string{appliedHashKey})
}

func TestRelayFloorsTheServerDirectedInterval(t *testing.T) {
	is := is.New(t)

	is.Equal(clampRelaySeconds(0), defaultRelaySeconds)
	is.Equal(clampRelaySeconds(1), minRelaySeconds)
	is.Equal(clampRelaySeconds(60), 60)
}
