package types

import "time"

const (
	FreshnessFresh  = "fresh"
	FreshnessRecent = "recent"
	FreshnessStale  = "stale"
)

// ComputeFreshness buckets a table by the age of its last modification.
// Under 24 hours is fresh, under 72 hours recent, anything older stale.
func ComputeFreshness(modifiedAt, now time.Time) string {
	age := now.Sub(modifiedAt)

	switch {
	case age < 24*time.Hour:
		return FreshnessFresh
	case age < 72*time.Hour:
		return FreshnessRecent
	default:
		return FreshnessStale
	}
}

type Dataset struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Location  string `json:"location,omitempty"`
}

type ColumnSchema struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Mode string `json:"mode,omitempty"`
}

type AssetMetadata struct {
	ProjectID string `json:"projectId"`
	DatasetID string `json:"datasetId"`
	TableID   string `json:"tableId"`
	Type      string `json:"type"`

	NumRows  int64 `json:"numRows"`
	NumBytes int64 `json:"numBytes"`

	Columns []ColumnSchema `json:"columns,omitempty"`

	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Freshness  string    `json:"freshness,omitempty"`
}

type DatasetAssets struct {
	Dataset Dataset         `json:"dataset"`
	Assets  []AssetMetadata `json:"assets"`
}

type AssetCatalog struct {
	Datasets     []DatasetAssets `json:"datasets"`
	DatasetCount int             `json:"datasetCount"`
	AssetCount   int             `json:"assetCount"`
	FetchedAt    time.Time       `json:"fetchedAt"`
}

type TableSchema struct {
	TableID    string         `json:"tableId"`
	Type       string         `json:"type"`
	Columns    []ColumnSchema `json:"columns"`
	PrimaryKey string         `json:"primaryKey,omitempty"`
}

type DatasetSchema struct {
	DatasetID string        `json:"datasetId"`
	ProjectID string        `json:"projectId"`
	Tables    []TableSchema `json:"tables"`
}

type SchemaTree struct {
	Datasets  []DatasetSchema `json:"datasets"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

type JobFailure struct {
	JobID        string    `json:"jobId"`
	CreationTime time.Time `json:"creationTime"`
	ErrorReason  string    `json:"errorReason,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

type QueryResult struct {
	Schema          []ColumnSchema   `json:"schema"`
	Rows            []map[string]any `json:"rows"`
	TotalRows       int64            `json:"totalRows"`
	ExecutionTimeMs int64            `json:"executionTimeMs"`
	Cached          bool             `json:"cached"`
}
