package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/alerts"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/analysis"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/catalog"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/explorations"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/lineage"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/webevents"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/cache"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/router"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/presentation/api/auth"
	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestRegisterHandlers(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svcs := Services{
		Alerts: &alerts.AlertServiceMock{
			QueryFunc: func(ctx context.Context, params map[string][]string, workspaces []string) (types.Collection[types.Alert], error) {
				return types.Collection[types.Alert]{Limit: 20}, nil
			},
			StatsFunc: func(ctx context.Context, workspaces []string) (types.AlertStats, error) {
				return types.AlertStats{}, nil
			},
		},
		Lineage:  &lineage.LineageServiceMock{},
		Analysis: &analysis.AnalysisServiceMock{},
		Catalog:  &catalog.CatalogServiceMock{},
		Explorations: &explorations.ExplorationServiceMock{
			GetSharedFunc: func(ctx context.Context, token string) (types.Exploration, types.Share, error) {
				return types.Exploration{ID: "e-1", Name: "Shared"}, types.Share{PermissionLevel: types.PermissionView}, nil
			},
		},
		Warehouse: &warehouse.ClientMock{},
		Cache:     cache.NewInMemory(),
		WebEvents: webevents.New(&messaging.MsgContextMock{
			RegisterTopicMessageHandlerFunc: func(routingKey string, handler messaging.TopicMessageHandler) error {
				return nil
			},
		}),
	}

	mux, err := RegisterHandlers(ctx, router.New("test"), strings.NewReader(policies), svcs)
	is.NoErr(err)

	server := httptest.NewServer(mux)
	defer server.Close()

	// health is reachable without a token
	res, err := http.Get(server.URL + "/health")
	is.NoErr(err)
	res.Body.Close()
	is.Equal(http.StatusNoContent, res.StatusCode)

	// api routes are not
	res, err = http.Get(server.URL + "/api/alerts")
	is.NoErr(err)
	res.Body.Close()
	is.Equal(http.StatusUnauthorized, res.StatusCode)

	// a valid token gets through
	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/alerts", nil)
	is.NoErr(err)
	req.Header.Set("Authorization", "Bearer user-token")

	res, err = http.DefaultClient.Do(req)
	is.NoErr(err)
	res.Body.Close()
	is.Equal(http.StatusOK, res.StatusCode)

	// shared exploration links bypass the authorizer
	res, err = http.Get(server.URL + "/api/explorations/shared/tok-123")
	is.NoErr(err)
	res.Body.Close()
	is.Equal(http.StatusOK, res.StatusCode)
}

func TestQueryAlertsWrapsCollectionAndStats(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, params map[string][]string, workspaces []string) (types.Collection[types.Alert], error) {
			is.Equal([]string{"critical"}, params["severity"])
			is.Equal([]string{"default"}, workspaces)

			return types.Collection[types.Alert]{
				Data:       []types.Alert{{ID: "a-1"}, {ID: "a-2"}},
				Count:      2,
				Offset:     0,
				Limit:      20,
				TotalCount: 42,
			}, nil
		},
		StatsFunc: func(ctx context.Context, workspaces []string) (types.AlertStats, error) {
			return types.AlertStats{Total: 42}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/alerts?severity=critical", nil)
	req = req.WithContext(auth.WithAllowedWorkspaces(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	queryAlertsHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var response alertListResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))

	is.Equal(2, len(response.Alerts))
	is.Equal(uint64(42), response.Total)
	is.Equal(1, response.Page)
	is.Equal(20, response.Limit)
	is.Equal(3, response.TotalPages)
	is.Equal(uint64(42), response.Stats.Total)
}

func TestQueryAlertsReturnsEmptyListNotNull(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, params map[string][]string, workspaces []string) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{Limit: 20}, nil
		},
		StatsFunc: func(ctx context.Context, workspaces []string) (types.AlertStats, error) {
			return types.AlertStats{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	req = req.WithContext(auth.WithAllowedWorkspaces(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	queryAlertsHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.True(strings.Contains(res.Body.String(), `"alerts":[]`))
}

func TestCreateAlertDefaultsToCallersWorkspace(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		AddFunc: func(ctx context.Context, alert types.Alert) (types.Alert, error) {
			alert.ID = "a-1"
			return alert, nil
		},
	}

	body := bytes.NewBufferString(`{"type":"pipeline_failure","severity":"high","title":"Pipeline daily_revenue failed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/alerts", body)
	req = req.WithContext(auth.WithAllowedWorkspaces(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	createAlertHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(svc.AddCalls()))
	is.Equal("default", svc.AddCalls()[0].Alert.Workspace)
}

func TestCreateAlertRejectsForeignWorkspace(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{}

	body := bytes.NewBufferString(`{"type":"custom","severity":"low","title":"t","workspace":"other"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/alerts", body)
	req = req.WithContext(auth.WithAllowedWorkspaces(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	createAlertHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusForbidden, res.Code)
	is.Equal(0, len(svc.AddCalls()))
}

func TestCreateAlertRejectsInvalidInput(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		AddFunc: func(ctx context.Context, alert types.Alert) (types.Alert, error) {
			return types.Alert{}, fmt.Errorf("unknown severity %q: %w", alert.Severity, alerts.ErrInvalidInput)
		},
	}

	body := bytes.NewBufferString(`{"type":"custom","severity":"urgent","title":"t"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/alerts", body)
	req = req.WithContext(auth.WithAllowedWorkspaces(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	createAlertHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)

	var response errorResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.True(strings.Contains(response.Error, "urgent"))
}

func TestGetAlertRespondsWithNotFound(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		GetByIDFunc: func(ctx context.Context, alertID string, workspaces []string) (types.Alert, error) {
			return types.Alert{}, alerts.ErrAlertNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/alerts/nosuch", nil)
	req = req.WithContext(auth.WithAllowedWorkspaces(req.Context(), []string{"default"}))
	req = withURLParam(req, "alertID", "nosuch")
	res := httptest.NewRecorder()

	getAlertHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestTransitionAlertPassesSnoozeDuration(t *testing.T) {
	is := is.New(t)

	var snoozedFor time.Duration

	svc := &alerts.AlertServiceMock{
		TransitionFunc: func(ctx context.Context, alertID, action string, snoozeFor time.Duration, workspaces []string) (types.Alert, error) {
			snoozedFor = snoozeFor
			return types.Alert{ID: alertID, Status: types.AlertStatusSnoozed}, nil
		},
	}

	body := bytes.NewBufferString(`{"action":"snooze","snoozeDuration":4}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/alerts/alert-1", body)
	req = req.WithContext(auth.WithAllowedWorkspaces(req.Context(), []string{"default"}))
	req = withURLParam(req, "alertID", "alert-1")
	res := httptest.NewRecorder()

	transitionAlertHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(4*time.Hour, snoozedFor)
}

func TestTransitionAlertRejectsInvalidAction(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		TransitionFunc: func(ctx context.Context, alertID, action string, snoozeFor time.Duration, workspaces []string) (types.Alert, error) {
			return types.Alert{}, fmt.Errorf("%q: %w", action, alerts.ErrInvalidAction)
		},
	}

	body := bytes.NewBufferString(`{"action":"escalate"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/alerts/alert-1", body)
	req = req.WithContext(auth.WithAllowedWorkspaces(req.Context(), []string{"default"}))
	req = withURLParam(req, "alertID", "alert-1")
	res := httptest.NewRecorder()

	transitionAlertHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)

	var response errorResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.True(strings.Contains(response.Error, "escalate"))
}

func TestDeleteAlertRespondsWithSuccess(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		DeleteFunc: func(ctx context.Context, alertID string, workspaces []string) error {
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/alerts/alert-1", nil)
	req = req.WithContext(auth.WithAllowedWorkspaces(req.Context(), []string{"default"}))
	req = withURLParam(req, "alertID", "alert-1")
	res := httptest.NewRecorder()

	deleteAlertHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var response deleteAlertResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.True(response.Success)
	is.Equal("alert-1", response.ID)
}

func TestCacheStatsReportsKeyCount(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	c := cache.NewInMemory()
	c.Set(ctx, "assets:v1", "cached", time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/api/cache/stats", nil)
	res := httptest.NewRecorder()

	cacheStatsHandler(testLogger(), c).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var stats cache.Stats
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &stats))
	is.True(stats.Connected)
	is.Equal(int64(1), stats.TotalKeys)
}

func TestClearCacheFlushesEverything(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	c := cache.NewInMemory()
	c.Set(ctx, "assets:v1", "cached", time.Minute)

	req := httptest.NewRequest(http.MethodDelete, "/api/cache/clear", nil)
	res := httptest.NewRecorder()

	clearCacheHandler(testLogger(), c).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.True(strings.Contains(res.Body.String(), "cache cleared"))

	var v string
	is.Equal(false, c.Get(ctx, "assets:v1", &v))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	rctx.URLParams.Add(key, value)

	return r
}

const policies string = `
package dataplatform.authz

default allow := false

allow := {"access": {"default": ["read", "write"]}, "sub": "user-1"} if {
	input.token == "user-token"
}
`
