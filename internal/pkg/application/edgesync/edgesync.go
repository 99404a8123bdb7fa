// Package edgesync runs the edge side of hub synchronization: a telemetry
// relay loop pushing local readings to the hub and a metadata loop pulling
// catalog snapshots back down.
package edgesync

import (
	"context"
	"os"
	"sync"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/diwise/iot-edge-sync/internal/pkg/application/events"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/files"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/keyvalue"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/stream"
	"github.com/diwise/iot-edge-sync/pkg/client"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

var tracer = otel.Tracer("iot-edge-sync/edgesync")

const (
	relayGroup = "edge_hub_sync"

	expectedSyncSecondsKey = "edge:hub:expected-sync-seconds"
	announcedHashKey       = "edge:hub:last-announced-hash"
	appliedHashKey         = "edge:hub:last-applied-hash"
)

//go:generate moq -rm -out store_mock.go . Store
type Store interface {
	GetNodeSettings(ctx context.Context) (types.NodeSettings, error)
	SyncedFromHubDeviceIDs(ctx context.Context, candidates []string) (map[string]struct{}, error)
	UsersByEmail(ctx context.Context) (map[string]string, error)
	UpsertSyncedTemplate(ctx context.Context, t types.Template, ownerID string) (bool, error)
	UpsertSyncedDevice(ctx context.Context, d types.Device, ownerID string) (bool, error)
	DeleteStaleSyncedTemplates(ctx context.Context, keep []string) (int, []string, error)
	DeleteStaleSyncedDevices(ctx context.Context, keep []string) (int, error)
}

type EdgeSync interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)

	Reconcile(ctx context.Context) (Summary, error)
}

type service struct {
	store     Store
	queue     stream.Queue
	kv        keyvalue.Store
	firmwares files.Store
	messenger messaging.MsgContext
	sender    events.EventSender

	newClient func(hubURL, edgeToken string) client.HubClient
	consumer  string

	reconcileMutex sync.Mutex

	stopOnce  sync.Once
	relayDone chan bool
	syncDone  chan bool
}

func New(store Store, queue stream.Queue, kv keyvalue.Store, firmwares files.Store, messenger messaging.MsgContext, sender events.EventSender) EdgeSync {
	return &service{
		store:     store,
		queue:     queue,
		kv:        kv,
		firmwares: firmwares,
		messenger: messenger,
		sender:    sender,
		newClient: client.New,
		consumer:  consumerName(),
		relayDone: make(chan bool),
		syncDone:  make(chan bool),
	}
}

func (s *service) Start(ctx context.Context) {
	go s.relayLoop(ctx, s.relayDone)
	go s.autoSyncLoop(ctx, s.syncDone)
}

// Stop is idempotent and must not block when the loops have already exited
// through context cancellation, so the done channels are closed, not sent on.
func (s *service) Stop(ctx context.Context) {
	s.stopOnce.Do(func() {
		close(s.relayDone)
		close(s.syncDone)
	})
}

func consumerName() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return "edge-relay-" + uuid.NewString()
	}
	return hostname
}
