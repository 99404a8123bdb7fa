package hubsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"

	"github.com/diwise/iot-edge-sync/internal/pkg/application/telemetry"
	"github.com/diwise/iot-edge-sync/internal/pkg/application/webevents"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/keyvalue"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/stream"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

var tracer = otel.Tracer("iot-edge-sync/hubsync")

var ErrUnauthorized = errors.New("unknown edge token")
var ErrFirmwareNotFound = errors.New("firmware not found")

const (
	defaultNextSyncSeconds = 5
	minNextSyncSeconds     = 1

	heartbeatTTL = 7 * 24 * time.Hour
	connectedTTL = 30 * time.Minute
	lastValueTTL = time.Hour
	forceSyncTTL = 10 * time.Minute
	streamMaxLen = 500000
)

//go:generate moq -rm -out store_mock.go . Store
type Store interface {
	GetEdgeNodeByToken(ctx context.Context, token string) (types.EdgeNode, error)
	GetEdgeNodes(ctx context.Context) ([]types.EdgeNode, error)
	GetTemplates(ctx context.Context) ([]types.Template, error)
	GetDevices(ctx context.Context, includeEdgeSourced bool) ([]types.Device, error)
	CatalogSignatures(ctx context.Context) ([]storage.TableSignature, error)
	ExistingDeviceIDs(ctx context.Context, candidates []string) (map[string]struct{}, error)
	MarkDevicesSyncedFromEdge(ctx context.Context, deviceIDs []string, edgeNodeID string) ([]string, error)
	DeleteEdgeSourcedDevices(ctx context.Context, edgeNodeID string) ([]string, error)
	GetTemplateFirmware(ctx context.Context, templateID, firmwareID string) (types.Firmware, error)
}

//go:generate moq -rm -out hubsync_mock.go . HubSync
type HubSync interface {
	SyncDatapoints(ctx context.Context, edgeToken string, req types.SyncDatapointsRequest) (types.SyncDatapointsResponse, error)
	Snapshot(ctx context.Context, edgeToken string) (types.Snapshot, error)
	OpenFirmware(ctx context.Context, edgeToken, templateID, firmwareID string) (io.ReadCloser, string, error)

	RequestFullSync(ctx context.Context, edgeNodeID string) error
	LastHeartbeat(ctx context.Context, edgeNodeID string) (*time.Time, error)
	SyncStatus(ctx context.Context, edgeNodeID string) (SyncStatus, error)
	ReleaseEdgeNode(ctx context.Context, edgeNodeID string) error
}

// SyncStatus describes how far behind the hub catalog a single edge node is.
type SyncStatus struct {
	CatalogVersion int64     `json:"catalogVersion"`
	AppliedVersion *int64    `json:"appliedVersion,omitempty"`
	Pending        ChangeSet `json:"pending"`
}

type service struct {
	store     Store
	queue     stream.Queue
	kv        keyvalue.Store
	files     FirmwareFiles
	webevents webevents.WebEvents

	version *VersionCounter
	changes *ChangeTracker
}

type FirmwareFiles interface {
	Open(name string) (io.ReadCloser, error)
}

func New(store Store, queue stream.Queue, kv keyvalue.Store, files FirmwareFiles, we webevents.WebEvents) HubSync {
	return &service{
		store:     store,
		queue:     queue,
		kv:        kv,
		files:     files,
		webevents: we,
		version:   NewVersionCounter(kv),
		changes:   NewChangeTracker(kv),
	}
}

// SyncDatapoints authenticates the calling edge, republishes its valid
// readings onto the hub's own durable stream and refreshes the live caches.
// Rejected readings are counted, never fatal, so a redelivered batch from a
// crashed edge overwrites rather than accumulates.
func (s *service) SyncDatapoints(ctx context.Context, edgeToken string, req types.SyncDatapointsRequest) (types.SyncDatapointsResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "sync-datapoints")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	edgeNode, err := s.authorize(ctx, edgeToken)
	if err != nil {
		return types.SyncDatapointsResponse{}, err
	}

	response := types.SyncDatapointsResponse{
		NextSyncSeconds: nextSyncSeconds(edgeNode),
	}

	response.ForceFullSync, err = s.consumeForceFullSync(ctx, edgeNode.ID)
	if err != nil {
		log.Warn("could not read force sync flag", "edge_node_id", edgeNode.ID, "err", err.Error())
	}

	now := time.Now().UTC()

	if len(req.Datapoints) > 0 {
		// lookups and republished entries all use the canonical form, so a
		// client sending uppercase uuids still matches its devices
		canonical := map[string]string{}
		for _, dp := range req.Datapoints {
			if id, parseErr := uuid.Parse(dp.DeviceID); parseErr == nil {
				canonical[dp.DeviceID] = id.String()
			}
		}

		candidateIDs := lo.Uniq(lo.Values(canonical))

		var existing map[string]struct{}

		existing, err = s.store.ExistingDeviceIDs(ctx, candidateIDs)
		if err != nil {
			return types.SyncDatapointsResponse{}, err
		}

		known := lo.Filter(candidateIDs, func(id string, _ int) bool {
			_, ok := existing[id]
			return ok
		})

		var newlyMarked []string

		newlyMarked, err = s.store.MarkDevicesSyncedFromEdge(ctx, known, edgeNode.ID)
		if err != nil {
			return types.SyncDatapointsResponse{}, err
		}

		if len(newlyMarked) > 0 {
			s.recordCatalogMutation(ctx, EntityKindDevice, newlyMarked)
		}

		for _, dp := range req.Datapoints {
			deviceID, ok := canonical[dp.DeviceID]
			if !ok {
				response.SkippedCount++
				continue
			}

			if _, ok := existing[deviceID]; !ok {
				response.SkippedCount++
				continue
			}

			if dp.SensorTag == "" || math.IsNaN(dp.Value) || math.IsInf(dp.Value, 0) {
				response.SkippedCount++
				continue
			}

			dp.DeviceID = deviceID

			timestamp := normalizeTimestamp(dp.TimestampUnixMs, now)

			err = s.publishDatapoint(ctx, dp, timestamp, now)
			if err != nil {
				log.Error("could not republish datapoint", "device_id", dp.DeviceID, "err", err.Error())
				response.SkippedCount++
				continue
			}

			response.AcceptedCount++
		}
	}

	response.Hash, err = s.CatalogHash(ctx)
	if err != nil {
		return types.SyncDatapointsResponse{}, err
	}

	return response, nil
}

func (s *service) publishDatapoint(ctx context.Context, dp types.Datapoint, timestamp, now time.Time) error {
	_, err := s.queue.Add(ctx, stream.DatapointStream, telemetry.Fields(dp, timestamp))
	if err != nil {
		return err
	}

	s.queue.Trim(ctx, stream.DatapointStream, streamMaxLen)

	s.kv.Set(ctx, fmt.Sprintf("device:%s:connected", dp.DeviceID), "1", connectedTTL)
	s.kv.Set(ctx, fmt.Sprintf("device:%s:lastSeen", dp.DeviceID), strconv.FormatInt(now.Unix(), 10), 0)

	last := webevents.SensorLastDatapoint{
		DeviceID:  dp.DeviceID,
		SensorTag: dp.SensorTag,
		Value:     dp.Value,
		Latitude:  dp.Latitude,
		Longitude: dp.Longitude,
		GridX:     dp.GridX,
		GridY:     dp.GridY,
		Timestamp: timestamp,
	}

	s.kv.Set(ctx, fmt.Sprintf("device:%s:%s:last", dp.DeviceID, dp.SensorTag),
		mustJSON(last), lastValueTTL)

	s.webevents.PublishLastDatapoint(last)

	return nil
}

// recordCatalogMutation bumps the catalog version and files the mutated ids
// into the changed set of every registered edge node.
func (s *service) recordCatalogMutation(ctx context.Context, kind string, ids []string) {
	log := logging.GetFromContext(ctx)

	_, err := s.version.Increment(ctx)
	if err != nil {
		log.Error("could not increment catalog version", "err", err.Error())
	}

	edgeNodes, err := s.store.GetEdgeNodes(ctx)
	if err != nil {
		log.Error("could not list edge nodes for change tracking", "err", err.Error())
		return
	}

	for _, node := range edgeNodes {
		err = s.changes.RecordChanged(ctx, kind, node.ID, ids...)
		if err != nil {
			log.Error("could not record changed ids", "edge_node_id", node.ID, "err", err.Error())
		}
	}
}

func (s *service) Snapshot(ctx context.Context, edgeToken string) (types.Snapshot, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-snapshot")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	edgeNode, err := s.authorize(ctx, edgeToken)
	if err != nil {
		return types.Snapshot{}, err
	}

	snapshot, err := s.BuildSnapshot(ctx)
	if err != nil {
		return types.Snapshot{}, err
	}

	// a full snapshot carries everything up to the current version, so the
	// caller's accumulated change set can be cleared
	current, err := s.version.Current(ctx)
	if err == nil {
		err = s.changes.MarkApplied(ctx, edgeNode.ID, current)
	}
	if err != nil {
		log.Warn("could not mark catalog version applied", "edge_node_id", edgeNode.ID, "err", err.Error())
		err = nil
	}

	return snapshot, nil
}

func (s *service) OpenFirmware(ctx context.Context, edgeToken, templateID, firmwareID string) (io.ReadCloser, string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "download-firmware")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, err = s.authorize(ctx, edgeToken)
	if err != nil {
		return nil, "", err
	}

	firmware, err := s.store.GetTemplateFirmware(ctx, templateID, firmwareID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil, "", ErrFirmwareNotFound
		}
		return nil, "", err
	}

	f, err := s.files.Open(firmware.StoredFileName)
	if err != nil {
		return nil, "", ErrFirmwareNotFound
	}

	return f, firmware.OriginalFileName, nil
}

// RequestFullSync sets the force sync flag consumed by the edge on its next
// datapoint sync. The flag expires if the edge never calls in.
func (s *service) RequestFullSync(ctx context.Context, edgeNodeID string) error {
	return s.kv.Set(ctx, forceFullSyncKey(edgeNodeID),
		strconv.FormatInt(time.Now().UTC().Unix(), 10), forceSyncTTL)
}

func (s *service) LastHeartbeat(ctx context.Context, edgeNodeID string) (*time.Time, error) {
	value, ok, err := s.kv.Get(ctx, heartbeatKey(edgeNodeID))
	if err != nil || !ok {
		return nil, err
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, nil
	}

	t := time.Unix(seconds, 0).UTC()
	return &t, nil
}

// SyncStatus reports the catalog version cursor and the accumulated change
// sets for one edge node.
func (s *service) SyncStatus(ctx context.Context, edgeNodeID string) (SyncStatus, error) {
	var err error
	ctx, span := tracer.Start(ctx, "sync-status")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	status := SyncStatus{}

	status.CatalogVersion, err = s.version.Current(ctx)
	if err != nil {
		return SyncStatus{}, err
	}

	applied, ok, err := s.changes.LastAppliedVersion(ctx, edgeNodeID)
	if err != nil {
		return SyncStatus{}, err
	}
	if ok {
		status.AppliedVersion = &applied
	}

	status.Pending, err = s.changes.Pending(ctx, edgeNodeID)
	if err != nil {
		return SyncStatus{}, err
	}

	return status, nil
}

// ReleaseEdgeNode drops everything the hub tracks for a deregistered edge
// node. Devices the node had bound are removed from the catalog and the
// removal is filed as a deletion for the remaining edges.
func (s *service) ReleaseEdgeNode(ctx context.Context, edgeNodeID string) error {
	var err error
	ctx, span := tracer.Start(ctx, "release-edge-node")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	deleted, err := s.store.DeleteEdgeSourcedDevices(ctx, edgeNodeID)
	if err != nil {
		return err
	}

	if len(deleted) > 0 {
		if _, incErr := s.version.Increment(ctx); incErr != nil {
			log.Error("could not increment catalog version", "err", incErr.Error())
		}

		edgeNodes, listErr := s.store.GetEdgeNodes(ctx)
		if listErr != nil {
			log.Error("could not list edge nodes for change tracking", "err", listErr.Error())
		}

		for _, node := range edgeNodes {
			if node.ID == edgeNodeID {
				continue
			}

			recErr := s.changes.RecordDeleted(ctx, EntityKindDevice, node.ID, deleted...)
			if recErr != nil {
				log.Error("could not record deleted ids", "edge_node_id", node.ID, "err", recErr.Error())
			}
		}
	}

	err = s.kv.Delete(ctx,
		heartbeatKey(edgeNodeID),
		forceFullSyncKey(edgeNodeID),
		changedKey(EntityKindTemplate, edgeNodeID),
		deletedKey(EntityKindTemplate, edgeNodeID),
		changedKey(EntityKindDevice, edgeNodeID),
		deletedKey(EntityKindDevice, edgeNodeID),
		appliedVersionKey(edgeNodeID),
	)

	return err
}

func (s *service) authorize(ctx context.Context, token string) (types.EdgeNode, error) {
	normalized := strings.TrimSpace(token)
	if normalized == "" {
		return types.EdgeNode{}, ErrUnauthorized
	}

	edgeNode, err := s.store.GetEdgeNodeByToken(ctx, normalized)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.EdgeNode{}, ErrUnauthorized
		}
		return types.EdgeNode{}, err
	}

	s.kv.Set(ctx, heartbeatKey(edgeNode.ID),
		strconv.FormatInt(time.Now().UTC().Unix(), 10), heartbeatTTL)

	return edgeNode, nil
}

func (s *service) consumeForceFullSync(ctx context.Context, edgeNodeID string) (bool, error) {
	key := forceFullSyncKey(edgeNodeID)

	_, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}

	return true, s.kv.Delete(ctx, key)
}

func forceFullSyncKey(edgeNodeID string) string {
	return fmt.Sprintf("edge-node:%s:force-full-sync", edgeNodeID)
}

func heartbeatKey(edgeNodeID string) string {
	return fmt.Sprintf("edge-node:%s:last-sync", edgeNodeID)
}

func nextSyncSeconds(node types.EdgeNode) int {
	if node.UpdateRateSeconds <= 0 {
		return defaultNextSyncSeconds
	}

	if node.UpdateRateSeconds < minNextSyncSeconds {
		return minNextSyncSeconds
	}

	return node.UpdateRateSeconds
}

func normalizeTimestamp(unixMs int64, now time.Time) time.Time {
	if unixMs <= 0 {
		return now
	}

	t := time.UnixMilli(unixMs).UTC()
	if t.Year() > 9999 || t.Year() < 1970 {
		return now
	}

	return t
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
