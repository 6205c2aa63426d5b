package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var tracer = otel.Tracer("data-platform-mgmt-client")

// Client talks to the data platform management service on behalf of
// sibling services. Access tokens are fetched with the client credentials
// flow and refreshed as needed.
type Client interface {
	QueryAlerts(ctx context.Context, params url.Values) (AlertList, error)
	CreateAlert(ctx context.Context, alert types.Alert) (types.Alert, error)
	GetLineage(ctx context.Context, projectID, datasetID, assetName, direction string, depth int) (types.LineageGraph, error)
	Close(ctx context.Context)
}

// AlertList mirrors the alert listing envelope returned by the service.
type AlertList struct {
	Alerts     []types.Alert    `json:"alerts"`
	Total      uint64           `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
	Stats      types.AlertStats `json:"stats"`
}

type mgmtClient struct {
	url         string
	httpClient  http.Client
	tokenSource oauth2.TokenSource
}

func New(ctx context.Context, serviceURL, oauthTokenURL, oauthClientID, oauthClientSecret string) (Client, error) {
	oauthConfig := &clientcredentials.Config{
		ClientID:     oauthClientID,
		ClientSecret: oauthClientSecret,
		TokenURL:     oauthTokenURL,
	}

	tokenSource := oauthConfig.TokenSource(ctx)

	token, err := tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get client credentials from %s: %w", oauthTokenURL, err)
	}

	if !token.Valid() {
		return nil, fmt.Errorf("an invalid token was returned from %s", oauthTokenURL)
	}

	c := &mgmtClient{
		url: strings.TrimSuffix(serviceURL, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokenSource: tokenSource,
	}

	return c, nil
}

func (c *mgmtClient) QueryAlerts(ctx context.Context, params url.Values) (AlertList, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	requestURL := c.url + "/api/alerts"
	if len(params) > 0 {
		requestURL = requestURL + "?" + params.Encode()
	}

	list := AlertList{}
	err = c.get(ctx, requestURL, &list)

	return list, err
}

func (c *mgmtClient) CreateAlert(ctx context.Context, alert types.Alert) (types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-alert")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug("creating alert", "type", alert.Type, "severity", alert.Severity)

	body, err := json.Marshal(alert)
	if err != nil {
		err = fmt.Errorf("failed to marshal alert: %w", err)
		return types.Alert{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/alerts", bytes.NewReader(body))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return types.Alert{}, err
	}

	req.Header.Set("Content-Type", "application/json")

	if err = c.authorize(req); err != nil {
		return types.Alert{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to post alert: %w", err)
		return types.Alert{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("alert creation failed with status code %d", resp.StatusCode)
		return types.Alert{}, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return types.Alert{}, err
	}

	created := types.Alert{}
	if err = json.Unmarshal(respBody, &created); err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.Alert{}, err
	}

	return created, nil
}

func (c *mgmtClient) GetLineage(ctx context.Context, projectID, datasetID, assetName, direction string, depth int) (types.LineageGraph, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-lineage")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug("fetching lineage", "table_id", fmt.Sprintf("%s.%s.%s", projectID, datasetID, assetName))

	requestURL := fmt.Sprintf("%s/api/bigquery/lineage/%s/%s/%s", c.url, projectID, datasetID, assetName)

	query := url.Values{}
	if direction != "" {
		query.Set("direction", direction)
	}
	if depth > 0 {
		query.Set("depth", strconv.Itoa(depth))
	}
	if len(query) > 0 {
		requestURL = requestURL + "?" + query.Encode()
	}

	graph := types.LineageGraph{}
	err = c.get(ctx, requestURL, &graph)

	return graph, err
}

func (c *mgmtClient) Close(ctx context.Context) {
	c.httpClient.CloseIdleConnections()
}

func (c *mgmtClient) get(ctx context.Context, requestURL string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	if err := c.authorize(req); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}

func (c *mgmtClient) authorize(req *http.Request) error {
	token, err := c.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("failed to refresh access token: %w", err)
	}

	token.SetAuthHeader(req)

	return nil
}
