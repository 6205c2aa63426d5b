package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/alerts"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/analysis"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/catalog"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/explorations"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/lineage"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/webevents"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/cache"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/presentation/api/auth"
	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("data-platform-mgmt/api")

type Services struct {
	Alerts       alerts.AlertService
	Lineage      lineage.LineageService
	Analysis     analysis.AnalysisService
	Catalog      catalog.CatalogService
	Explorations explorations.ExplorationService
	Warehouse    warehouse.Client
	Cache        cache.Cache
	WebEvents    webevents.WebEvents
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svcs Services) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	// Handle valid / invalid tokens.
	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api", func(r chi.Router) {
		r.Route("/explorations", func(r chi.Router) {
			// shared links carry their secret in the path and work without a token
			r.Get("/shared/{token}", getSharedExplorationHandler(log, svcs.Explorations))

			r.Group(func(r chi.Router) {
				r.Use(authenticator.RequireAccess(auth.AnyScope))

				r.Get("/", queryExplorationsHandler(log, svcs.Explorations))
				r.Post("/", createExplorationHandler(log, svcs.Explorations))

				r.Route("/{explorationID}", func(r chi.Router) {
					r.Get("/", getExplorationHandler(log, svcs.Explorations))
					r.Put("/", updateExplorationHandler(log, svcs.Explorations))
					r.Delete("/", deleteExplorationHandler(log, svcs.Explorations))
					r.Post("/duplicate", duplicateExplorationHandler(log, svcs.Explorations))
					r.Get("/export", exportExplorationHandler(log, svcs.Explorations))

					r.Route("/cells", func(r chi.Router) {
						r.Post("/", addCellHandler(log, svcs.Explorations))
						r.Put("/reorder", reorderCellsHandler(log, svcs.Explorations))
						r.Put("/{cellID}", updateCellHandler(log, svcs.Explorations))
						r.Delete("/{cellID}", deleteCellHandler(log, svcs.Explorations))
						r.Post("/{cellID}/execute", executeCellHandler(log, svcs.Explorations))
					})

					r.Route("/shares", func(r chi.Router) {
						r.Get("/", getSharesHandler(log, svcs.Explorations))
						r.Post("/", addShareHandler(log, svcs.Explorations))
						r.Delete("/{shareID}", revokeShareHandler(log, svcs.Explorations))
					})
				})
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireAccess(auth.AnyScope))

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", queryAlertsHandler(log, svcs.Alerts))
				r.Post("/", createAlertHandler(log, svcs.Alerts))
				r.Get("/stream", svcs.WebEvents.Server().ServeHTTP)
				r.Get("/{alertID}", getAlertHandler(log, svcs.Alerts))
				r.Patch("/{alertID}", transitionAlertHandler(log, svcs.Alerts))
				r.Delete("/{alertID}", deleteAlertHandler(log, svcs.Alerts))
			})

			r.Route("/bigquery", func(r chi.Router) {
				r.Get("/assets", getAssetsHandler(log, svcs.Catalog))
				r.Get("/schema", getSchemaHandler(log, svcs.Catalog))
				r.Post("/execute", executeQueryHandler(log, svcs.Warehouse, svcs.Cache))
				r.Get("/lineage/{projectID}/{datasetID}/{assetName}", getLineageHandler(log, svcs.Lineage))
				r.Post("/lineage/summary", summarizeLineageHandler(log))
				r.Get("/edge-query/{sourceTable}/{targetTable}", getEdgeDetailHandler(log, svcs.Lineage))
				r.Get("/root-cause/{projectID}/{datasetID}/{tableID}", rootCauseHandler(log, svcs.Analysis))
			})

			r.Route("/cache", func(r chi.Router) {
				r.Get("/stats", cacheStatsHandler(log, svcs.Cache))
				r.Delete("/clear", clearCacheHandler(log, svcs.Cache))
			})
		})
	})

	return router, nil
}

func queryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedWorkspaces := auth.GetAllowedWorkspacesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.Query(ctx, r.URL.Query(), allowedWorkspaces)
		if err != nil {
			requestLogger.Error("unable to query alerts", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to query alerts")
			return
		}

		stats, err := svc.Stats(ctx, allowedWorkspaces)
		if err != nil {
			requestLogger.Error("unable to aggregate alert stats", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to aggregate alert stats")
			return
		}

		writeJSON(w, http.StatusOK, newAlertListResponse(collection, stats))
	}
}

func createAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedWorkspaces := auth.GetAllowedWorkspacesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "create-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var alert types.Alert
		err = json.Unmarshal(body, &alert)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed alert")
			return
		}

		if alert.Workspace == "" && len(allowedWorkspaces) > 0 {
			alert.Workspace = allowedWorkspaces[0]
		}

		if !lo.Contains(allowedWorkspaces, alert.Workspace) {
			err = fmt.Errorf("workspace %q is not allowed", alert.Workspace)
			requestLogger.Warn(err.Error())
			writeError(w, http.StatusForbidden, "workspace not allowed")
			return
		}

		alert, err = svc.Add(ctx, alert)
		if err != nil {
			if errors.Is(err, alerts.ErrInvalidInput) {
				requestLogger.Info("invalid alert rejected", "err", err.Error())
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			requestLogger.Error("unable to create alert", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to create alert")
			return
		}

		writeJSON(w, http.StatusCreated, alert)
	}
}

func getAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedWorkspaces := auth.GetAllowedWorkspacesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		alert, err := svc.GetByID(ctx, alertID, allowedWorkspaces)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			writeError(w, http.StatusNotFound, "alert not found")
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alert", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "could not fetch alert")
			return
		}

		writeJSON(w, http.StatusOK, alert)
	}
}

func transitionAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedWorkspaces := auth.GetAllowedWorkspacesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "transition-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var req transitionRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed request")
			return
		}

		alert, err := svc.Transition(ctx, alertID, req.Action, time.Duration(req.SnoozeDuration)*time.Hour, allowedWorkspaces)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			writeError(w, http.StatusNotFound, "alert not found")
			return
		}
		if errors.Is(err, alerts.ErrInvalidAction) {
			requestLogger.Info("invalid transition rejected", "action", req.Action)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			requestLogger.Error("unable to transition alert", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to transition alert")
			return
		}

		writeJSON(w, http.StatusOK, alert)
	}
}

func deleteAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedWorkspaces := auth.GetAllowedWorkspacesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "delete-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		err = svc.Delete(ctx, alertID, allowedWorkspaces)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			writeError(w, http.StatusNotFound, "alert not found")
			return
		}
		if err != nil {
			requestLogger.Error("unable to delete alert", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to delete alert")
			return
		}

		writeJSON(w, http.StatusOK, deleteAlertResponse{Success: true, ID: alertID})
	}
}

func cacheStatsHandler(log *slog.Logger, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "cache-stats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		stats := c.Stats(ctx)

		requestLogger.Debug("returning cache stats", "total_keys", stats.TotalKeys)

		writeJSON(w, http.StatusOK, stats)
	}
}

func clearCacheHandler(log *slog.Logger, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "clear-cache")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		err = c.Flush(ctx)
		if err != nil {
			requestLogger.Error("unable to flush cache", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to flush cache")
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{Status: "cache cleared"})
	}
}
