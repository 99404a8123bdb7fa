package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/diwise/iot-edge-sync/internal/pkg/application/hubsync"
	"github.com/diwise/iot-edge-sync/internal/pkg/application/nodes"
	"github.com/diwise/iot-edge-sync/internal/pkg/application/webevents"
	"github.com/diwise/iot-edge-sync/internal/pkg/presentation/api/auth"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

var tracer = otel.Tracer("iot-edge-sync/api")

const edgeTokenHeader = "x-edge-token"

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, log *slog.Logger, sync hubsync.HubSync, registry nodes.Registry, we webevents.WebEvents) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		// edge facing endpoints authenticate with the edge token header,
		// not with a bearer token
		r.Route("/hubsync", func(r chi.Router) {
			r.Post("/datapoints", syncDatapointsHandler(log, sync))
			r.Get("/snapshot", getSnapshotHandler(log, sync))
			r.Get("/firmwares/{templateID}/{firmwareID}", downloadFirmwareHandler(log, sync))
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireAccess(auth.ScopeAdmin))

			r.Route("/edgenodes", func(r chi.Router) {
				r.Get("/", listEdgeNodesHandler(log, registry))
				r.Post("/", createEdgeNodeHandler(log, registry))
				r.Post("/syncnow", syncAllHandler(log, registry))
				r.Get("/{edgeNodeID}", getEdgeNodeHandler(log, registry))
				r.Put("/{edgeNodeID}", updateEdgeNodeHandler(log, registry))
				r.Delete("/{edgeNodeID}", deleteEdgeNodeHandler(log, registry))
				r.Post("/{edgeNodeID}/syncnow", syncNowHandler(log, registry))
				r.Get("/{edgeNodeID}/status", syncStatusHandler(log, registry))
			})

			r.Get("/nodesettings", getNodeSettingsHandler(log, registry))
			r.Put("/nodesettings", updateNodeSettingsHandler(log, registry))
		})

		if we != nil {
			r.Mount("/events", we.Server())
		}
	})

	return router, nil
}

func syncDatapointsHandler(log *slog.Logger, sync hubsync.HubSync) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "sync-datapoints")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var req types.SyncDatapointsRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			requestLogger.Error("unable to decode request body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		response, err := sync.SyncDatapoints(ctx, r.Header.Get(edgeTokenHeader), req)
		if err != nil {
			writeSyncError(w, requestLogger, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func getSnapshotHandler(log *slog.Logger, sync hubsync.HubSync) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-snapshot")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		snapshot, err := sync.Snapshot(ctx, r.Header.Get(edgeTokenHeader))
		if err != nil {
			writeSyncError(w, requestLogger, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

func downloadFirmwareHandler(log *slog.Logger, sync hubsync.HubSync) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "download-firmware")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		templateID := chi.URLParam(r, "templateID")
		firmwareID := chi.URLParam(r, "firmwareID")

		body, fileName, err := sync.OpenFirmware(ctx, r.Header.Get(edgeTokenHeader), templateID, firmwareID)
		if err != nil {
			if errors.Is(err, hubsync.ErrFirmwareNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeSyncError(w, requestLogger, err)
			return
		}
		defer body.Close()

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.WriteHeader(http.StatusOK)

		_, err = io.Copy(w, body)
		if err != nil {
			requestLogger.Error("failed to stream firmware file", "err", err.Error())
		}
	}
}

func listEdgeNodesHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "list-edge-nodes")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		edgeNodes, err := registry.List(ctx)
		if err != nil {
			requestLogger.Error("unable to list edge nodes", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, types.Collection[types.EdgeNode]{
			Data:       edgeNodes,
			Count:      uint64(len(edgeNodes)),
			Limit:      uint64(len(edgeNodes)),
			TotalCount: uint64(len(edgeNodes)),
		})
	}
}

func createEdgeNodeHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-edge-node")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		payload := struct {
			Name              string `json:"name"`
			UpdateRateSeconds int    `json:"updateRateSeconds"`
		}{}

		err = json.NewDecoder(r.Body).Decode(&payload)
		if err != nil {
			requestLogger.Error("unable to decode request body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		node, err := registry.Create(ctx, payload.Name, payload.UpdateRateSeconds)
		if err != nil {
			if errors.Is(err, nodes.ErrInvalidName) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			requestLogger.Error("unable to create edge node", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, node)
	}
}

func getEdgeNodeHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-edge-node")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		node, err := registry.Get(ctx, chi.URLParam(r, "edgeNodeID"))
		if err != nil {
			if errors.Is(err, nodes.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to get edge node", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, node)
	}
}

func updateEdgeNodeHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-edge-node")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var node types.EdgeNode
		err = json.NewDecoder(r.Body).Decode(&node)
		if err != nil {
			requestLogger.Error("unable to decode request body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		node.ID = chi.URLParam(r, "edgeNodeID")

		err = registry.Update(ctx, node)
		if err != nil {
			switch {
			case errors.Is(err, nodes.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, nodes.ErrInvalidName):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				requestLogger.Error("unable to update edge node", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteEdgeNodeHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-edge-node")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		err = registry.Delete(ctx, chi.URLParam(r, "edgeNodeID"))
		if err != nil {
			if errors.Is(err, nodes.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to delete edge node", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func syncNowHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "request-full-sync")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		err = registry.SyncNow(ctx, chi.URLParam(r, "edgeNodeID"))
		if err != nil {
			switch {
			case errors.Is(err, nodes.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, nodes.ErrNotHub):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				requestLogger.Error("unable to request full sync", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

func syncStatusHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-sync-status")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		status, err := registry.SyncStatus(ctx, chi.URLParam(r, "edgeNodeID"))
		if err != nil {
			if errors.Is(err, nodes.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to read sync status", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func syncAllHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "request-full-sync-all")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		err = registry.SyncAll(ctx)
		if err != nil {
			if errors.Is(err, nodes.ErrNotHub) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			requestLogger.Error("unable to request full sync", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

func getNodeSettingsHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-node-settings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		settings, err := registry.Settings(ctx)
		if err != nil {
			requestLogger.Error("unable to read node settings", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

func updateNodeSettingsHandler(log *slog.Logger, registry nodes.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-node-settings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var settings types.NodeSettings
		err = json.NewDecoder(r.Body).Decode(&settings)
		if err != nil {
			requestLogger.Error("unable to decode request body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = registry.UpdateSettings(ctx, settings)
		if err != nil {
			if errors.Is(err, nodes.ErrInvalidRole) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			requestLogger.Error("unable to update node settings", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeSyncError(w http.ResponseWriter, log *slog.Logger, err error) {
	if errors.Is(err, hubsync.ErrUnauthorized) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	log.Error("hub sync request failed", "err", err.Error())
	w.WriteHeader(http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	bytes, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(bytes)
}
