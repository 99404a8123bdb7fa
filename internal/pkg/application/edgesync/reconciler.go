package edgesync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/samber/lo"

	"github.com/diwise/iot-edge-sync/pkg/client"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

var ErrNotConfigured = errors.New("node is not configured as an edge")
var ErrUnauthorized = errors.New("hub rejected the edge token")

// Summary describes the outcome of one reconciliation run.
type Summary struct {
	TemplatesCreated int `json:"templatesCreated"`
	TemplatesUpdated int `json:"templatesUpdated"`
	TemplatesDeleted int `json:"templatesDeleted"`
	TemplatesSkipped int `json:"templatesSkipped"`

	DevicesCreated int `json:"devicesCreated"`
	DevicesUpdated int `json:"devicesUpdated"`
	DevicesDeleted int `json:"devicesDeleted"`
	DevicesSkipped int `json:"devicesSkipped"`

	OwnersNotFound         int `json:"ownersNotFound"`
	UnresolvedTemplateRefs int `json:"unresolvedTemplateRefs"`

	FirmwaresDownloaded      int `json:"firmwaresDownloaded"`
	FirmwareDownloadFailures int `json:"firmwareDownloadFailures"`

	AppliedHash string        `json:"appliedHash,omitempty"`
	Duration    time.Duration `json:"-"`
}

// Reconcile pulls a full catalog snapshot from the hub and merges it into
// the local store. Only one reconciliation runs at a time, a second caller
// blocks until the first finishes.
func (s *service) Reconcile(ctx context.Context) (Summary, error) {
	s.reconcileMutex.Lock()
	defer s.reconcileMutex.Unlock()

	var err error
	ctx, span := tracer.Start(ctx, "reconcile-snapshot")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	started := time.Now()

	settings, err := s.store.GetNodeSettings(ctx)
	if err != nil {
		return Summary{}, err
	}

	if !settings.EdgeConfigured() {
		err = ErrNotConfigured
		return Summary{}, err
	}

	hub := s.newClient(settings.HubURL, settings.HubToken)

	snapshot, err := hub.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			err = ErrUnauthorized
			return Summary{}, err
		}
		err = fmt.Errorf("failed to fetch snapshot from hub: %w", err)
		return Summary{}, err
	}

	users, err := s.store.UsersByEmail(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{}

	keptTemplates, downloads := s.mergeTemplates(ctx, snapshot.Templates, users, &summary)
	s.mergeDevices(ctx, snapshot, keptTemplates, users, &summary)

	// binaries are fetched after the metadata has been committed, a
	// missing file must not undo a finished merge
	s.downloadFirmwares(ctx, hub, downloads, &summary)

	announced, ok, err := s.kv.Get(ctx, announcedHashKey)
	if err == nil && ok {
		s.kv.Set(ctx, appliedHashKey, announced, 0)
		summary.AppliedHash = announced
	}

	summary.Duration = time.Since(started)

	log.Info("reconciled catalog snapshot",
		"templates_created", summary.TemplatesCreated,
		"templates_updated", summary.TemplatesUpdated,
		"templates_deleted", summary.TemplatesDeleted,
		"devices_created", summary.DevicesCreated,
		"devices_updated", summary.DevicesUpdated,
		"devices_deleted", summary.DevicesDeleted,
		"owners_not_found", summary.OwnersNotFound,
		"duration", summary.Duration.String(),
	)

	s.publishSummary(ctx, summary)

	return summary, nil
}

type firmwareDownload struct {
	templateID string
	firmware   types.Firmware
}

// mergeTemplates upserts every owner resolvable template and sweeps out
// synced templates the hub stopped exporting. It returns the set of
// template ids present locally after the merge and the firmware binaries
// that still need downloading.
func (s *service) mergeTemplates(ctx context.Context, remote []types.Template, users map[string]string, summary *Summary) (map[string]struct{}, []firmwareDownload) {
	log := logging.GetFromContext(ctx)

	kept := make(map[string]struct{}, len(remote))
	downloads := make([]firmwareDownload, 0)

	keepIDs := lo.Map(remote, func(t types.Template, _ int) string { return t.ID })

	deleted, staleFirmwareFiles, err := s.store.DeleteStaleSyncedTemplates(ctx, keepIDs)
	if err != nil {
		log.Error("could not delete stale templates", "err", err.Error())
	} else {
		summary.TemplatesDeleted = deleted

		for _, fileName := range lo.Uniq(staleFirmwareFiles) {
			err = s.firmwares.Delete(fileName)
			if err != nil {
				log.Warn("could not delete stale firmware file", "file", fileName, "err", err.Error())
			}
		}
	}

	for _, t := range remote {
		ownerID, ok := users[strings.ToLower(strings.TrimSpace(t.OwnerEmail))]
		if !ok {
			summary.OwnersNotFound++
			summary.TemplatesSkipped++
			continue
		}

		created, err := s.store.UpsertSyncedTemplate(ctx, t, ownerID)
		if err != nil {
			log.Error("could not upsert template", "template_id", t.ID, "err", err.Error())
			summary.TemplatesSkipped++
			continue
		}

		if created {
			summary.TemplatesCreated++
		} else {
			summary.TemplatesUpdated++
		}

		kept[t.ID] = struct{}{}

		for _, fw := range t.Firmwares {
			if fw.StoredFileName == "" || s.firmwares.Exists(fw.StoredFileName) {
				continue
			}
			downloads = append(downloads, firmwareDownload{templateID: t.ID, firmware: fw})
		}
	}

	return kept, downloads
}

func (s *service) mergeDevices(ctx context.Context, snapshot types.Snapshot, keptTemplates map[string]struct{}, users map[string]string, summary *Summary) {
	log := logging.GetFromContext(ctx)

	keepIDs := lo.Map(snapshot.Devices, func(d types.Device, _ int) string { return d.ID })

	deleted, err := s.store.DeleteStaleSyncedDevices(ctx, keepIDs)
	if err != nil {
		log.Error("could not delete stale devices", "err", err.Error())
	} else {
		summary.DevicesDeleted = deleted
	}

	for _, d := range snapshot.Devices {
		ownerID, ok := users[strings.ToLower(strings.TrimSpace(d.OwnerEmail))]
		if !ok {
			summary.OwnersNotFound++
			summary.DevicesSkipped++
			continue
		}

		if d.TemplateID != nil {
			if _, ok := keptTemplates[*d.TemplateID]; !ok {
				summary.UnresolvedTemplateRefs++
				d.TemplateID = nil
			}
		}

		created, err := s.store.UpsertSyncedDevice(ctx, d, ownerID)
		if err != nil {
			log.Error("could not upsert device", "device_id", d.ID, "err", err.Error())
			summary.DevicesSkipped++
			continue
		}

		if created {
			summary.DevicesCreated++
		} else {
			summary.DevicesUpdated++
		}
	}
}

// downloadFirmwares streams missing firmware binaries into local storage.
// Failures are logged and counted, never propagated, so the metadata stays
// synced even when a subset of binaries is unavailable.
func (s *service) downloadFirmwares(ctx context.Context, hub client.HubClient, downloads []firmwareDownload, summary *Summary) {
	log := logging.GetFromContext(ctx)

	for _, dl := range downloads {
		body, err := hub.DownloadFirmware(ctx, dl.templateID, dl.firmware.ID)
		if err != nil {
			log.Warn("could not download firmware",
				"template_id", dl.templateID,
				"firmware_id", dl.firmware.ID,
				"err", err.Error(),
			)
			summary.FirmwareDownloadFailures++
			continue
		}

		err = s.firmwares.Save(dl.firmware.StoredFileName, body)
		body.Close()
		if err != nil {
			log.Warn("could not store firmware file", "file", dl.firmware.StoredFileName, "err", err.Error())
			summary.FirmwareDownloadFailures++
			continue
		}

		summary.FirmwaresDownloaded++
	}
}
