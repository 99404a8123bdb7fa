package edgesync

import (
	"context"
	"strconv"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	defaultSyncSeconds = 30
	minSyncSeconds     = 5
)

// autoSyncLoop watches the hash the relay last heard from the hub and
// reconciles whenever it no longer matches what was last applied. Errors
// are logged and the loop keeps running.
func (s *service) autoSyncLoop(ctx context.Context, done <-chan bool) {
	log := logging.GetFromContext(ctx)

	for {
		delaySeconds := defaultSyncSeconds

		settings, err := s.store.GetNodeSettings(ctx)
		if err != nil {
			log.Error("could not read node settings", "err", err.Error())
		} else if settings.EdgeConfigured() {
			delaySeconds = s.syncSeconds(ctx)

			stale, err := s.catalogStale(ctx)
			if err != nil {
				log.Error("could not compare catalog hashes", "err", err.Error())
			} else if stale {
				_, err = s.Reconcile(ctx)
				if err != nil {
					log.Error("catalog reconciliation failed", "err", err.Error())
				}
			}
		}

		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(delaySeconds) * time.Second):
		}
	}
}

// catalogStale reports whether the local catalog lags the hub's. Absent
// hashes count as stale so a fresh edge pulls its first snapshot.
func (s *service) catalogStale(ctx context.Context) (bool, error) {
	announced, announcedOK, err := s.kv.Get(ctx, announcedHashKey)
	if err != nil {
		return false, err
	}

	applied, appliedOK, err := s.kv.Get(ctx, appliedHashKey)
	if err != nil {
		return false, err
	}

	if !announcedOK || !appliedOK {
		return true, nil
	}

	return announced != applied, nil
}

func (s *service) syncSeconds(ctx context.Context) int {
	value, ok, err := s.kv.Get(ctx, expectedSyncSecondsKey)
	if err != nil || !ok {
		return defaultSyncSeconds
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultSyncSeconds
	}

	if seconds < minSyncSeconds {
		return minSyncSeconds
	}

	return seconds
}
