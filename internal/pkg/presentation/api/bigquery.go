package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/analysis"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/catalog"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/explorations"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/lineage"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/cache"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func getAssetsHandler(log *slog.Logger, svc catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-assets")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		assets, err := svc.Assets(ctx)
		if err != nil {
			requestLogger.Error("unable to fetch assets", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to fetch assets")
			return
		}

		writeJSON(w, http.StatusOK, assets)
	}
}

func getSchemaHandler(log *slog.Logger, svc catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-schema")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		schema, err := svc.Schema(ctx)
		if err != nil {
			requestLogger.Error("unable to fetch schema", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to fetch schema")
			return
		}

		writeJSON(w, http.StatusOK, schema)
	}
}

func executeQueryHandler(log *slog.Logger, client warehouse.Client, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "execute-query")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var req executeRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed request")
			return
		}

		query := strings.TrimSpace(req.Query)
		if query == "" {
			err = errors.New("empty query")
			requestLogger.Info(err.Error())
			writeError(w, http.StatusBadRequest, "empty query")
			return
		}

		// only SELECT results are safe to serve from cache
		isSelect := strings.HasPrefix(strings.ToUpper(query), "SELECT")
		key := cache.QueryKey(query)

		if isSelect {
			var result types.QueryResult
			if c.Get(ctx, key, &result) {
				result.Cached = true
				writeJSON(w, http.StatusOK, result)
				return
			}
		}

		result, err := client.Query(ctx, query, explorations.MaxQueryRows)
		if err != nil {
			requestLogger.Error("query execution failed", "err", err.Error())
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if isSelect {
			c.Set(ctx, key, result, cache.QueryTTL)
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func getLineageHandler(log *slog.Logger, svc lineage.LineageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-lineage")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		projectID := chi.URLParam(r, "projectID")
		datasetID := chi.URLParam(r, "datasetID")
		assetName := chi.URLParam(r, "assetName")

		requestLogger = requestLogger.With(slog.String("table_id", fmt.Sprintf("%s.%s.%s", projectID, datasetID, assetName)))

		direction := r.URL.Query().Get("direction")

		depth := 0
		if n, err := strconv.Atoi(r.URL.Query().Get("depth")); err == nil && n > 0 {
			depth = n
		}

		graph, err := svc.GetLineage(ctx, projectID, datasetID, assetName, direction, depth)
		if errors.Is(err, lineage.ErrInvalidDirection) {
			requestLogger.Info("invalid direction rejected", "direction", direction)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			requestLogger.Error("unable to fetch lineage", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to fetch lineage")
			return
		}

		writeJSON(w, http.StatusOK, graph)
	}
}

func summarizeLineageHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "summarize-lineage")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, _, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var req summarizeRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed graph")
			return
		}

		writeJSON(w, http.StatusOK, lineage.Summarize(req.Nodes, req.Edges, req.RootNodeID))
	}
}

func getEdgeDetailHandler(log *slog.Logger, svc lineage.LineageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-edge-detail")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sourceTable := chi.URLParam(r, "sourceTable")
		targetTable := chi.URLParam(r, "targetTable")

		detail, err := svc.EdgeDetail(ctx, sourceTable, targetTable)
		if err != nil {
			requestLogger.Error("unable to fetch edge detail", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to fetch edge detail")
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}

func rootCauseHandler(log *slog.Logger, svc analysis.AnalysisService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "root-cause")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		projectID := chi.URLParam(r, "projectID")
		datasetID := chi.URLParam(r, "datasetID")
		tableID := chi.URLParam(r, "tableID")

		requestLogger = requestLogger.With(slog.String("table_id", fmt.Sprintf("%s.%s.%s", projectID, datasetID, tableID)))

		report, err := svc.RootCause(ctx, projectID, datasetID, tableID)
		if err != nil {
			requestLogger.Error("root cause analysis failed", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "root cause analysis failed")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
