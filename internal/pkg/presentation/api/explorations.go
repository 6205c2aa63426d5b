package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/explorations"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/presentation/api/auth"
	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func explorationStatus(err error) int {
	switch {
	case errors.Is(err, explorations.ErrExplorationNotFound),
		errors.Is(err, explorations.ErrCellNotFound),
		errors.Is(err, explorations.ErrShareNotFound):
		return http.StatusNotFound
	case errors.Is(err, explorations.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, explorations.ErrShareExpired):
		return http.StatusGone
	case errors.Is(err, explorations.ErrInvalidInput),
		errors.Is(err, explorations.ErrExecutionFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeExplorationError maps service errors onto http status codes. Client
// errors echo the cause, anything unexpected stays a generic 500.
func writeExplorationError(w http.ResponseWriter, log *slog.Logger, err error, msg string) {
	status := explorationStatus(err)

	if status == http.StatusInternalServerError {
		log.Error(msg, "err", err.Error())
		writeError(w, status, msg)
		return
	}

	log.Info(msg, "err", err.Error())
	writeError(w, status, err.Error())
}

func queryExplorationsHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-explorations")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.Query(ctx, r.URL.Query(), userID)
		if err != nil {
			requestLogger.Error("unable to query explorations", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "unable to query explorations")
			return
		}

		writeJSON(w, http.StatusOK, newExplorationListResponse(collection))
	}
}

func createExplorationHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "create-exploration")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var exploration types.Exploration
		err = json.Unmarshal(body, &exploration)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed exploration")
			return
		}

		// the caller always owns what it creates
		exploration.UserID = userID

		exploration, err = svc.Create(ctx, exploration)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to create exploration")
			return
		}

		writeJSON(w, http.StatusCreated, exploration)
	}
}

func getExplorationHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-exploration")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		if explorationID != "" {
			requestLogger = requestLogger.With(slog.String("exploration_id", explorationID))
		}

		exploration, err := svc.Get(ctx, explorationID, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to fetch exploration")
			return
		}

		writeJSON(w, http.StatusOK, exploration)
	}
}

func updateExplorationHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "update-exploration")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		if explorationID != "" {
			requestLogger = requestLogger.With(slog.String("exploration_id", explorationID))
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var fields map[string]any
		err = json.Unmarshal(b, &fields)
		if err != nil {
			requestLogger.Error("unable to unmarshal body into map", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed request")
			return
		}

		exploration, err := svc.Update(ctx, explorationID, fields, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to update exploration")
			return
		}

		writeJSON(w, http.StatusOK, exploration)
	}
}

func deleteExplorationHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "delete-exploration")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		if explorationID != "" {
			requestLogger = requestLogger.With(slog.String("exploration_id", explorationID))
		}

		err = svc.Delete(ctx, explorationID, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to delete exploration")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func duplicateExplorationHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "duplicate-exploration")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		if explorationID != "" {
			requestLogger = requestLogger.With(slog.String("exploration_id", explorationID))
		}

		duplicate, err := svc.Duplicate(ctx, explorationID, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to duplicate exploration")
			return
		}

		writeJSON(w, http.StatusOK, duplicate)
	}
}

func exportExplorationHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "export-exploration")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		if explorationID != "" {
			requestLogger = requestLogger.With(slog.String("exploration_id", explorationID))
		}

		export, err := svc.Export(ctx, explorationID, r.URL.Query().Get("format"), userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to export exploration")
			return
		}

		writeJSON(w, http.StatusOK, export)
	}
}

func addCellHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "add-cell")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		if explorationID != "" {
			requestLogger = requestLogger.With(slog.String("exploration_id", explorationID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var cell types.Cell
		err = json.Unmarshal(body, &cell)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed cell")
			return
		}

		cell, err = svc.AddCell(ctx, explorationID, cell, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to add cell")
			return
		}

		writeJSON(w, http.StatusCreated, cell)
	}
}

func updateCellHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "update-cell")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		cellID := chi.URLParam(r, "cellID")
		if cellID != "" {
			requestLogger = requestLogger.With(slog.String("cell_id", cellID))
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var fields map[string]any
		err = json.Unmarshal(b, &fields)
		if err != nil {
			requestLogger.Error("unable to unmarshal body into map", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed request")
			return
		}

		cell, err := svc.UpdateCell(ctx, explorationID, cellID, fields, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to update cell")
			return
		}

		writeJSON(w, http.StatusOK, cell)
	}
}

func deleteCellHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "delete-cell")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		cellID := chi.URLParam(r, "cellID")
		if cellID != "" {
			requestLogger = requestLogger.With(slog.String("cell_id", cellID))
		}

		err = svc.DeleteCell(ctx, explorationID, cellID, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to delete cell")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func reorderCellsHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "reorder-cells")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		if explorationID != "" {
			requestLogger = requestLogger.With(slog.String("exploration_id", explorationID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var req reorderRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed request")
			return
		}

		err = svc.ReorderCells(ctx, explorationID, req.CellIDs, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to reorder cells")
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
	}
}

func executeCellHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "execute-cell")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		cellID := chi.URLParam(r, "cellID")
		if cellID != "" {
			requestLogger = requestLogger.With(slog.String("cell_id", cellID))
		}

		cell, err := svc.ExecuteCell(ctx, explorationID, cellID, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to execute cell")
			return
		}

		writeJSON(w, http.StatusOK, cell)
	}
}

func getSharesHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-shares")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		if explorationID != "" {
			requestLogger = requestLogger.With(slog.String("exploration_id", explorationID))
		}

		shares, err := svc.Shares(ctx, explorationID, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to fetch shares")
			return
		}

		if shares == nil {
			shares = []types.Share{}
		}

		writeJSON(w, http.StatusOK, shares)
	}
}

func addShareHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "add-share")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		if explorationID != "" {
			requestLogger = requestLogger.With(slog.String("exploration_id", explorationID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var req shareRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "malformed request")
			return
		}

		share := types.Share{
			SharedWithUserID: req.SharedWithUserID,
			SharedWithEmail:  req.SharedWithEmail,
			PermissionLevel:  req.PermissionLevel,
		}

		if req.ExpiresInHours > 0 {
			expiresAt := time.Now().UTC().Add(time.Duration(req.ExpiresInHours) * time.Hour)
			share.ExpiresAt = &expiresAt
		}

		share, err = svc.AddShare(ctx, explorationID, share, req.CreateLink, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to share exploration")
			return
		}

		writeJSON(w, http.StatusCreated, share)
	}
}

func revokeShareHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		userID := auth.GetUserIDFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "revoke-share")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		explorationID := chi.URLParam(r, "explorationID")
		shareID := chi.URLParam(r, "shareID")
		if shareID != "" {
			requestLogger = requestLogger.With(slog.String("share_id", shareID))
		}

		err = svc.RevokeShare(ctx, explorationID, shareID, userID)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to revoke share")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getSharedExplorationHandler(log *slog.Logger, svc explorations.ExplorationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-shared-exploration")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		token := chi.URLParam(r, "token")

		exploration, share, err := svc.GetShared(ctx, token)
		if err != nil {
			writeExplorationError(w, requestLogger, err, "unable to resolve share link")
			return
		}

		writeJSON(w, http.StatusOK, sharedExplorationResponse{
			Exploration:     exploration,
			PermissionLevel: share.PermissionLevel,
			Shared:          true,
		})
	}
}
