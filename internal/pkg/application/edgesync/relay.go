package edgesync

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/samber/lo"

	"github.com/diwise/iot-edge-sync/internal/pkg/application/telemetry"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/stream"
	"github.com/diwise/iot-edge-sync/pkg/client"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

const (
	defaultRelaySeconds = 5
	minRelaySeconds     = 2

	reclaimIdle    = 20 * time.Second
	relayBatchSize = 100
)

func (s *service) relayLoop(ctx context.Context, done <-chan bool) {
	for {
		delaySeconds := s.relayOnce(ctx)

		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(delaySeconds) * time.Second):
		}
	}
}

// relayOnce performs one relay iteration and returns the number of seconds
// to sleep before the next one.
func (s *service) relayOnce(ctx context.Context) int {
	var err error
	ctx, span := tracer.Start(ctx, "relay-telemetry")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	settings, err := s.store.GetNodeSettings(ctx)
	if err != nil {
		log.Error("could not read node settings", "err", err.Error())
		return defaultRelaySeconds
	}

	if !settings.EdgeConfigured() {
		return defaultRelaySeconds
	}

	err = s.queue.EnsureGroup(ctx, stream.DatapointStream, relayGroup)
	if err != nil {
		log.Error("could not ensure consumer group", "err", err.Error())
		return defaultRelaySeconds
	}

	entries, err := s.queue.ReclaimStale(ctx, stream.DatapointStream, relayGroup, s.consumer, reclaimIdle, relayBatchSize)
	if err != nil {
		log.Error("could not reclaim stale entries", "err", err.Error())
		return defaultRelaySeconds
	}

	fresh, err := s.queue.ReadNew(ctx, stream.DatapointStream, relayGroup, s.consumer, relayBatchSize)
	if err != nil {
		log.Error("could not read new entries", "err", err.Error())
		return defaultRelaySeconds
	}

	entries = append(entries, fresh...)

	datapoints, relayableIDs, malformedIDs := s.parseEntries(ctx, entries)

	if len(malformedIDs) > 0 {
		err = s.queue.Ack(ctx, stream.DatapointStream, relayGroup, malformedIDs)
		if err != nil {
			log.Error("could not acknowledge malformed entries", "err", err.Error())
		}
	}

	hub := s.newClient(settings.HubURL, settings.HubToken)

	response, err := hub.SyncDatapoints(ctx, datapoints)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			log.Warn("hub rejected the configured edge token")
		} else {
			log.Error("failed to sync datapoints with hub", "err", err.Error())
		}
		return s.expectedSyncSeconds(ctx)
	}

	s.kv.Set(ctx, expectedSyncSecondsKey, strconv.Itoa(response.NextSyncSeconds), 0)
	if response.Hash != "" {
		s.kv.Set(ctx, announcedHashKey, response.Hash, 0)
	}

	if response.ForceFullSync {
		s.kv.Delete(ctx, appliedHashKey)
	}

	if len(relayableIDs) > 0 {
		err = s.queue.Ack(ctx, stream.DatapointStream, relayGroup, relayableIDs)
		if err != nil {
			log.Error("could not acknowledge relayed entries", "err", err.Error())
			return s.expectedSyncSeconds(ctx)
		}

		log.Debug("relayed datapoints to hub",
			"count", len(datapoints),
			"accepted", response.AcceptedCount,
			"skipped", response.SkippedCount,
		)
	}

	return clampRelaySeconds(response.NextSyncSeconds)
}

// parseEntries splits a batch into relayable datapoints, the entry ids that
// carried them, and the ids of entries that can never be relayed and should
// be acknowledged right away.
func (s *service) parseEntries(ctx context.Context, entries []stream.Entry) ([]types.Datapoint, []uint64, []uint64) {
	log := logging.GetFromContext(ctx)

	datapoints := make([]types.Datapoint, 0, len(entries))
	relayable := make([]uint64, 0, len(entries))
	discard := make([]uint64, 0)

	parsed := make(map[uint64]types.Datapoint, len(entries))

	for _, entry := range entries {
		dp, err := telemetry.Parse(entry.Fields)
		if err != nil {
			log.Warn("discarding malformed telemetry entry", "entry_id", entry.ID, "err", err.Error())
			discard = append(discard, entry.ID)
			continue
		}
		parsed[entry.ID] = dp
	}

	if len(parsed) == 0 {
		return datapoints, relayable, discard
	}

	candidateIDs := lo.Uniq(lo.MapToSlice(parsed, func(_ uint64, dp types.Datapoint) string {
		return dp.DeviceID
	}))

	hubOwned, err := s.store.SyncedFromHubDeviceIDs(ctx, candidateIDs)
	if err != nil {
		log.Error("could not look up hub owned devices", "err", err.Error())
		// leave everything pending, it will be reclaimed next iteration
		return nil, nil, discard
	}

	for _, entry := range entries {
		dp, ok := parsed[entry.ID]
		if !ok {
			continue
		}

		if _, ok := hubOwned[dp.DeviceID]; !ok {
			// locally authored device, the hub does not know it
			discard = append(discard, entry.ID)
			continue
		}

		datapoints = append(datapoints, dp)
		relayable = append(relayable, entry.ID)
	}

	return datapoints, relayable, discard
}

func (s *service) expectedSyncSeconds(ctx context.Context) int {
	value, ok, err := s.kv.Get(ctx, expectedSyncSecondsKey)
	if err != nil || !ok {
		return defaultRelaySeconds
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultRelaySeconds
	}

	return clampRelaySeconds(seconds)
}

func clampRelaySeconds(seconds int) int {
	if seconds <= 0 {
		return defaultRelaySeconds
	}

	if seconds < minRelaySeconds {
		return minRelaySeconds
	}

	return seconds
}
