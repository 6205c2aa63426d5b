package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/explorations"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/presentation/api/auth"
	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestQueryExplorationsWrapsCollection(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		QueryFunc: func(ctx context.Context, params map[string][]string, userID string) (types.Collection[types.Exploration], error) {
			is.Equal("alice", userID)

			return types.Collection[types.Exploration]{
				Data:       []types.Exploration{{ID: "e-1"}},
				Count:      1,
				Offset:     40,
				Limit:      20,
				TotalCount: 95,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/explorations?offset=40&limit=20", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	res := httptest.NewRecorder()

	queryExplorationsHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var response explorationListResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))

	is.Equal(1, len(response.Items))
	is.Equal(uint64(95), response.Total)
	is.Equal(3, response.Page)
	is.Equal(20, response.PageSize)
	is.Equal(5, response.TotalPages)
}

func TestCreateExplorationForcesCallerAsOwner(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		CreateFunc: func(ctx context.Context, exploration types.Exploration) (types.Exploration, error) {
			exploration.ID = "e-1"
			return exploration, nil
		},
	}

	body := bytes.NewBufferString(`{"name":"Revenue deep dive","userId":"mallory"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/explorations", body)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	res := httptest.NewRecorder()

	createExplorationHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(svc.CreateCalls()))
	is.Equal("alice", svc.CreateCalls()[0].Exploration.UserID)
}

func TestGetExplorationMapsAccessDenied(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		GetFunc: func(ctx context.Context, explorationID, userID string) (types.Exploration, error) {
			return types.Exploration{}, explorations.ErrAccessDenied
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/explorations/e-1", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "bob"))
	req = withURLParam(req, "explorationID", "e-1")
	res := httptest.NewRecorder()

	getExplorationHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusForbidden, res.Code)
}

func TestUpdateExplorationPassesFields(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		UpdateFunc: func(ctx context.Context, explorationID string, fields map[string]any, userID string) (types.Exploration, error) {
			is.Equal("e-1", explorationID)
			is.Equal("Renamed", fields["name"])

			return types.Exploration{ID: explorationID, Name: "Renamed"}, nil
		},
	}

	body := bytes.NewBufferString(`{"name":"Renamed"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/explorations/e-1", body)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	res := httptest.NewRecorder()

	updateExplorationHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
}

func TestDeleteExplorationRespondsWithNoContent(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		DeleteFunc: func(ctx context.Context, explorationID, userID string) error {
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/explorations/e-1", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	res := httptest.NewRecorder()

	deleteExplorationHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		ExportFunc: func(ctx context.Context, explorationID, format, userID string) (explorations.Export, error) {
			return explorations.Export{}, fmt.Errorf("unsupported format %q: %w", format, explorations.ErrInvalidInput)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/explorations/e-1/export?format=pdf", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	res := httptest.NewRecorder()

	exportExplorationHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)

	var response errorResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.True(strings.Contains(response.Error, "pdf"))
}

func TestAddCellRespondsWithCreated(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		AddCellFunc: func(ctx context.Context, explorationID string, cell types.Cell, userID string) (types.Cell, error) {
			cell.ID = "c-1"
			cell.ExplorationID = explorationID
			return cell, nil
		},
	}

	body := bytes.NewBufferString(`{"cellType":"sql","content":{"query":"SELECT 1"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/explorations/e-1/cells", body)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	res := httptest.NewRecorder()

	addCellHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)

	var cell types.Cell
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &cell))
	is.Equal("c-1", cell.ID)
	is.Equal("e-1", cell.ExplorationID)
}

func TestDeleteCellRespondsWithNoContent(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		DeleteCellFunc: func(ctx context.Context, explorationID, cellID, userID string) error {
			is.Equal("c-2", cellID)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/explorations/e-1/cells/c-2", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	req = withURLParam(req, "cellID", "c-2")
	res := httptest.NewRecorder()

	deleteCellHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
}

func TestReorderCellsPassesOrderedIDs(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		ReorderCellsFunc: func(ctx context.Context, explorationID string, cellIDs []string, userID string) error {
			is.Equal([]string{"c-2", "c-1"}, cellIDs)
			return nil
		},
	}

	body := bytes.NewBufferString(`{"cellIds":["c-2","c-1"]}`)
	req := httptest.NewRequest(http.MethodPut, "/api/explorations/e-1/cells/reorder", body)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	res := httptest.NewRecorder()

	reorderCellsHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.True(strings.Contains(res.Body.String(), "success"))
}

func TestExecuteCellFailureReturnsBadRequest(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		ExecuteCellFunc: func(ctx context.Context, explorationID, cellID, userID string) (types.Cell, error) {
			return types.Cell{}, fmt.Errorf("%w: table not found: analytics.missing", explorations.ErrExecutionFailed)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/explorations/e-1/cells/c-1/execute", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	req = withURLParam(req, "cellID", "c-1")
	res := httptest.NewRecorder()

	executeCellHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)

	var response errorResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.True(strings.Contains(response.Error, "analytics.missing"))
}

func TestGetSharesReturnsEmptyListNotNull(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		SharesFunc: func(ctx context.Context, explorationID, userID string) ([]types.Share, error) {
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/explorations/e-1/shares", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	res := httptest.NewRecorder()

	getSharesHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal("[]", strings.TrimSpace(res.Body.String()))
}

func TestAddShareBuildsExpiryFromHours(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		AddShareFunc: func(ctx context.Context, explorationID string, share types.Share, createLink bool, userID string) (types.Share, error) {
			is.True(createLink)
			is.Equal(types.PermissionView, share.PermissionLevel)

			is.True(share.ExpiresAt != nil)
			expiresIn := time.Until(*share.ExpiresAt)
			is.True(expiresIn > 23*time.Hour && expiresIn <= 24*time.Hour)

			share.ID = "s-1"
			share.ShareToken = "tok-123"
			return share, nil
		},
	}

	body := bytes.NewBufferString(`{"permissionLevel":"view","createLink":true,"expiresInHours":24}`)
	req := httptest.NewRequest(http.MethodPost, "/api/explorations/e-1/shares", body)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	res := httptest.NewRecorder()

	addShareHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)

	var share types.Share
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &share))
	is.Equal("tok-123", share.ShareToken)
}

func TestRevokeShareRespondsWithNoContent(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		RevokeShareFunc: func(ctx context.Context, explorationID, shareID, userID string) error {
			is.Equal("s-1", shareID)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/explorations/e-1/shares/s-1", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "alice"))
	req = withURLParam(req, "explorationID", "e-1")
	req = withURLParam(req, "shareID", "s-1")
	res := httptest.NewRecorder()

	revokeShareHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
}

func TestSharedLinkWrapsExploration(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		GetSharedFunc: func(ctx context.Context, token string) (types.Exploration, types.Share, error) {
			is.Equal("tok-123", token)

			return types.Exploration{ID: "e-1", Name: "Shared"},
				types.Share{PermissionLevel: types.PermissionEdit}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/explorations/shared/tok-123", nil)
	req = withURLParam(req, "token", "tok-123")
	res := httptest.NewRecorder()

	getSharedExplorationHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var response sharedExplorationResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal("e-1", response.ID)
	is.Equal(types.PermissionEdit, response.PermissionLevel)
	is.True(response.Shared)
}

func TestSharedLinkExpiredReturnsGone(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		GetSharedFunc: func(ctx context.Context, token string) (types.Exploration, types.Share, error) {
			return types.Exploration{}, types.Share{}, explorations.ErrShareExpired
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/explorations/shared/tok-old", nil)
	req = withURLParam(req, "token", "tok-old")
	res := httptest.NewRecorder()

	getSharedExplorationHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusGone, res.Code)
}

func TestSharedLinkUnknownReturnsNotFound(t *testing.T) {
	is := is.New(t)

	svc := &explorations.ExplorationServiceMock{
		GetSharedFunc: func(ctx context.Context, token string) (types.Exploration, types.Share, error) {
			return types.Exploration{}, types.Share{}, explorations.ErrShareNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/explorations/shared/nosuch", nil)
	req = withURLParam(req, "token", "nosuch")
	res := httptest.NewRecorder()

	getSharedExplorationHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}
