package types

import "time"

const (
	NodeTypeTable            = "table"
	NodeTypeView             = "view"
	NodeTypeMaterializedView = "materialized_view"
	NodeTypeExternal         = "external"
)

const (
	RiskLevelLow      = "low"
	RiskLevelMedium   = "medium"
	RiskLevelHigh     = "high"
	RiskLevelCritical = "critical"
)

// LineageNode is a table level node in a lineage graph. Level is the signed
// distance from the root node, negative for upstream and positive for
// downstream.
type LineageNode struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	ProjectID string `json:"projectId"`
	DatasetID string `json:"datasetId"`
	TableName string `json:"tableName"`
	Level     int    `json:"level"`
}

type LineageEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

type LineageGraph struct {
	Nodes    []LineageNode   `json:"nodes"`
	Edges    []LineageEdge   `json:"edges"`
	RootNode string          `json:"rootNode"`
	Summary  *LineageSummary `json:"summary,omitempty"`
}

type LineageSummary struct {
	UpstreamCount   int            `json:"upstreamCount"`
	DownstreamCount int            `json:"downstreamCount"`
	TotalTables     int            `json:"totalTables"`
	MaxDepth        int            `json:"maxDepth"`
	NodesByType     map[string]int `json:"nodesByType"`
	RiskLevel       string         `json:"riskLevel"`
}

// EdgeDetail describes the jobs that connect a source table to a target
// table in the lineage graph.
type EdgeDetail struct {
	SourceTable string      `json:"sourceTable"`
	TargetTable string      `json:"targetTable"`
	Jobs        []JobRecord `json:"jobs"`
	JobCount    int         `json:"jobCount"`
}

type JobRecord struct {
	JobID          string    `json:"jobId"`
	User           string    `json:"user,omitempty"`
	Query          string    `json:"query,omitempty"`
	CreationTime   time.Time `json:"creationTime"`
	TotalBytes     int64     `json:"totalBytesProcessed,omitempty"`
	DurationMillis int64     `json:"durationMs,omitempty"`
}

type RootCauseReport struct {
	Table            string           `json:"table"`
	AnalyzedAt       time.Time        `json:"analyzedAt"`
	AnalyzedUpstream int              `json:"analyzedUpstream"`
	Causes           []SuspectedCause `json:"causes"`
	Recommendation   string           `json:"recommendation"`
}

type SuspectedCause struct {
	Table        string       `json:"table"`
	Severity     string       `json:"severity"`
	Issues       []string     `json:"issues"`
	LastModified time.Time    `json:"lastModified"`
	Freshness    string       `json:"freshness"`
	NumRows      int64        `json:"numRows"`
	JobFailures  []JobFailure `json:"jobFailures,omitempty"`
}
