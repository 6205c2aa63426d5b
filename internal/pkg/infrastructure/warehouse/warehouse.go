package warehouse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("data-platform-mgmt/warehouse")

//go:generate moq -rm -out warehouse_mock.go . Client

// Client is the gateway to the data warehouse. It serves table metadata,
// job history and query execution. Callers that need caching wrap it, the
// gateway itself never retries and never caches.
type Client interface {
	Datasets(ctx context.Context) ([]types.Dataset, error)
	Tables(ctx context.Context, datasetID string) ([]types.AssetMetadata, error)
	TableMetadata(ctx context.Context, projectID, datasetID, tableID string) (types.AssetMetadata, error)
	TableDependencies(ctx context.Context, tableRef string) (Dependencies, error)
	JobsBetween(ctx context.Context, sourceTable, targetTable string) ([]types.JobRecord, error)
	RecentFailures(ctx context.Context, tableRef string, since time.Time) ([]types.JobFailure, error)
	Query(ctx context.Context, query string, maxRows int) (types.QueryResult, error)
}

// TableRef identifies a table by its fully qualified project.dataset.table
// name.
type TableRef struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

type Dependencies struct {
	Upstream   []TableRef `json:"upstream"`
	Downstream []TableRef `json:"downstream"`
}

type warehouseClient struct {
	baseURL    string
	token      string
	httpClient http.Client
}

func New(baseURL, token string) Client {
	return &warehouseClient{
		baseURL: baseURL,
		token:   token,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *warehouseClient) Datasets(ctx context.Context) ([]types.Dataset, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-datasets")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	datasets := []types.Dataset{}
	err = c.get(ctx, "/v1/datasets", &datasets)

	return datasets, err
}

func (c *warehouseClient) Tables(ctx context.Context, datasetID string) ([]types.AssetMetadata, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-tables")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	tables := []types.AssetMetadata{}
	err = c.get(ctx, "/v1/datasets/"+url.PathEscape(datasetID)+"/tables", &tables)

	return tables, err
}

func (c *warehouseClient) TableMetadata(ctx context.Context, projectID, datasetID, tableID string) (types.AssetMetadata, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-table-metadata")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	metadata := types.AssetMetadata{}
	path := fmt.Sprintf("/v1/tables/%s/%s/%s",
		url.PathEscape(projectID), url.PathEscape(datasetID), url.PathEscape(tableID))
	err = c.get(ctx, path, &metadata)

	return metadata, err
}

func (c *warehouseClient) TableDependencies(ctx context.Context, tableRef string) (Dependencies, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-table-dependencies")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	deps := Dependencies{}
	err = c.get(ctx, "/v1/tables/"+url.PathEscape(tableRef)+"/dependencies", &deps)

	return deps, err
}

func (c *warehouseClient) JobsBetween(ctx context.Context, sourceTable, targetTable string) ([]types.JobRecord, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-jobs-between")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	jobs := []types.JobRecord{}
	query := url.Values{}
	query.Set("sourceTable", sourceTable)
	query.Set("targetTable", targetTable)
	err = c.get(ctx, "/v1/jobs?"+query.Encode(), &jobs)

	return jobs, err
}

func (c *warehouseClient) RecentFailures(ctx context.Context, tableRef string, since time.Time) ([]types.JobFailure, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-recent-failures")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	failures := []types.JobFailure{}
	query := url.Values{}
	query.Set("table", tableRef)
	query.Set("since", since.UTC().Format(time.RFC3339))
	err = c.get(ctx, "/v1/jobs/failures?"+query.Encode(), &failures)

	return failures, err
}

func (c *warehouseClient) Query(ctx context.Context, query string, maxRows int) (types.QueryResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "run-query")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(map[string]any{
		"query":   query,
		"maxRows": maxRows,
	})
	if err != nil {
		return types.QueryResult{}, err
	}

	result := types.QueryResult{}
	err = c.post(ctx, "/v1/query", body, &result)

	return result, err
}

func (c *warehouseClient) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	return c.do(req, dest)
}

func (c *warehouseClient) post(ctx context.Context, path string, body []byte, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dest)
}

func (c *warehouseClient) do(req *http.Request, dest any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("warehouse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("warehouse request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(respBody, dest)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
