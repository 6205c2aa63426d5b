package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/analysis"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/catalog"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/lineage"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/cache"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestGetAssetsRespondsWithCatalog(t *testing.T) {
	is := is.New(t)

	svc := &catalog.CatalogServiceMock{
		AssetsFunc: func(ctx context.Context) (types.AssetCatalog, error) {
			return types.AssetCatalog{DatasetCount: 2, AssetCount: 17}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bigquery/assets", nil)
	res := httptest.NewRecorder()

	getAssetsHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var response types.AssetCatalog
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(17, response.AssetCount)
}

func TestGetSchemaRespondsWithTree(t *testing.T) {
	is := is.New(t)

	svc := &catalog.CatalogServiceMock{
		SchemaFunc: func(ctx context.Context) (types.SchemaTree, error) {
			return types.SchemaTree{Datasets: []types.DatasetSchema{{DatasetID: "analytics"}}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bigquery/schema", nil)
	res := httptest.NewRecorder()

	getSchemaHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var response types.SchemaTree
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(1, len(response.Datasets))
}

func TestExecuteQueryCachesSelectResults(t *testing.T) {
	is := is.New(t)

	client := &warehouse.ClientMock{
		QueryFunc: func(ctx context.Context, query string, maxRows int) (types.QueryResult, error) {
			return types.QueryResult{
				Rows:      []map[string]any{{"n": float64(1)}},
				TotalRows: 1,
			}, nil
		},
	}

	handler := executeQueryHandler(testLogger(), client, cache.NewInMemory())

	post := func() *httptest.ResponseRecorder {
		body := bytes.NewBufferString(`{"query":"SELECT n FROM analytics.numbers"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/bigquery/execute", body)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		return res
	}

	first := post()
	is.Equal(http.StatusOK, first.Code)

	second := post()
	is.Equal(http.StatusOK, second.Code)

	// the second request is served from cache
	is.Equal(1, len(client.QueryCalls()))

	var response types.QueryResult
	is.NoErr(json.Unmarshal(second.Body.Bytes(), &response))
	is.True(response.Cached)
	is.Equal(int64(1), response.TotalRows)
}

func TestExecuteQueryNeverCachesStatements(t *testing.T) {
	is := is.New(t)

	client := &warehouse.ClientMock{
		QueryFunc: func(ctx context.Context, query string, maxRows int) (types.QueryResult, error) {
			return types.QueryResult{}, nil
		},
	}

	handler := executeQueryHandler(testLogger(), client, cache.NewInMemory())

	for range 2 {
		body := bytes.NewBufferString(`{"query":"UPDATE analytics.numbers SET n = 0 WHERE true"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/bigquery/execute", body)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		is.Equal(http.StatusOK, res.Code)
	}

	is.Equal(2, len(client.QueryCalls()))
}

func TestExecuteQueryRejectsEmptyQuery(t *testing.T) {
	is := is.New(t)

	client := &warehouse.ClientMock{}
	handler := executeQueryHandler(testLogger(), client, cache.NewInMemory())

	body := bytes.NewBufferString(`{"query":"   "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/bigquery/execute", body)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
	is.Equal(0, len(client.QueryCalls()))
}

func TestExecuteQueryMapsWarehouseErrors(t *testing.T) {
	is := is.New(t)

	client := &warehouse.ClientMock{
		QueryFunc: func(ctx context.Context, query string, maxRows int) (types.QueryResult, error) {
			return types.QueryResult{}, errors.New("syntax error at [1:8]")
		},
	}

	handler := executeQueryHandler(testLogger(), client, cache.NewInMemory())

	body := bytes.NewBufferString(`{"query":"SELECT FROM"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/bigquery/execute", body)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)

	var response errorResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.True(strings.Contains(response.Error, "syntax error"))
}

func TestGetLineageForwardsDirectionAndDepth(t *testing.T) {
	is := is.New(t)

	svc := &lineage.LineageServiceMock{
		GetLineageFunc: func(ctx context.Context, projectID, datasetID, tableID, direction string, depth int) (types.LineageGraph, error) {
			is.Equal("proj", projectID)
			is.Equal("analytics", datasetID)
			is.Equal("daily_revenue", tableID)
			is.Equal(lineage.DirectionUpstream, direction)
			is.Equal(2, depth)

			return types.LineageGraph{Nodes: []types.LineageNode{{ID: "proj.analytics.daily_revenue"}}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bigquery/lineage/proj/analytics/daily_revenue?direction=upstream&depth=2", nil)
	req = withURLParam(req, "projectID", "proj")
	req = withURLParam(req, "datasetID", "analytics")
	req = withURLParam(req, "assetName", "daily_revenue")
	res := httptest.NewRecorder()

	getLineageHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(svc.GetLineageCalls()))
}

func TestGetLineageRejectsUnknownDirection(t *testing.T) {
	is := is.New(t)

	svc := &lineage.LineageServiceMock{
		GetLineageFunc: func(ctx context.Context, projectID, datasetID, tableID, direction string, depth int) (types.LineageGraph, error) {
			return types.LineageGraph{}, lineage.ErrInvalidDirection
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bigquery/lineage/proj/analytics/daily_revenue?direction=sideways", nil)
	req = withURLParam(req, "projectID", "proj")
	req = withURLParam(req, "datasetID", "analytics")
	req = withURLParam(req, "assetName", "daily_revenue")
	res := httptest.NewRecorder()

	getLineageHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestSummarizeLineageCountsNeighbours(t *testing.T) {
	is := is.New(t)

	body := bytes.NewBufferString(`{
		"nodes": [
			{"id": "proj.analytics.daily_revenue", "level": 0},
			{"id": "proj.raw.orders", "level": -2}
		],
		"edges": [
			{"source": "proj.raw.orders", "target": "proj.analytics.daily_revenue"}
		],
		"rootNodeId": "proj.analytics.daily_revenue"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/api/bigquery/lineage/summary", body)
	res := httptest.NewRecorder()

	summarizeLineageHandler(testLogger()).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var summary types.LineageSummary
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &summary))
	is.Equal(1, summary.UpstreamCount)
	is.Equal(0, summary.DownstreamCount)
	is.Equal(2, summary.MaxDepth)
	is.Equal(types.RiskLevelLow, summary.RiskLevel)
}

func TestGetEdgeDetailRespondsWithQueries(t *testing.T) {
	is := is.New(t)

	svc := &lineage.LineageServiceMock{
		EdgeDetailFunc: func(ctx context.Context, sourceTable, targetTable string) (types.EdgeDetail, error) {
			is.Equal("proj.raw.orders", sourceTable)
			is.Equal("proj.analytics.daily_revenue", targetTable)

			return types.EdgeDetail{SourceTable: sourceTable, TargetTable: targetTable}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bigquery/edge-query/proj.raw.orders/proj.analytics.daily_revenue", nil)
	req = withURLParam(req, "sourceTable", "proj.raw.orders")
	req = withURLParam(req, "targetTable", "proj.analytics.daily_revenue")
	res := httptest.NewRecorder()

	getEdgeDetailHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var detail types.EdgeDetail
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &detail))
	is.Equal("proj.raw.orders", detail.SourceTable)
}

func TestRootCauseRespondsWithReport(t *testing.T) {
	is := is.New(t)

	svc := &analysis.AnalysisServiceMock{
		RootCauseFunc: func(ctx context.Context, projectID, datasetID, tableID string) (types.RootCauseReport, error) {
			return types.RootCauseReport{Table: "proj.analytics.daily_revenue"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bigquery/root-cause/proj/analytics/daily_revenue", nil)
	req = withURLParam(req, "projectID", "proj")
	req = withURLParam(req, "datasetID", "analytics")
	req = withURLParam(req, "tableID", "daily_revenue")
	res := httptest.NewRecorder()

	rootCauseHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var report types.RootCauseReport
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &report))
	is.Equal("proj.analytics.daily_revenue", report.Table)
}
