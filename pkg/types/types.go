package types

import (
	"time"
)

const (
	AlertTypePipelineFailure = "pipeline_failure"
	AlertTypeCostAnomaly     = "cost_anomaly"
	AlertTypeDataFreshness   = "data_freshness"
	AlertTypeSchemaChange    = "schema_change"
	AlertTypeQueryTimeout    = "query_timeout"
	AlertTypeSlotUtilization = "slot_utilization"
	AlertTypeCustom          = "custom"
)

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
	SeverityInfo     = "info"
)

const (
	AlertStatusActive       = "active"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
	AlertStatusSnoozed      = "snoozed"
)

func IsValidAlertType(t string) bool {
	switch t {
	case AlertTypePipelineFailure, AlertTypeCostAnomaly, AlertTypeDataFreshness,
		AlertTypeSchemaChange, AlertTypeQueryTimeout, AlertTypeSlotUtilization, AlertTypeCustom:
		return true
	}
	return false
}

func IsValidSeverity(s string) bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo:
		return true
	}
	return false
}

type AlertSource struct {
	ProjectID string `json:"projectId,omitempty"`
	DatasetID string `json:"datasetId,omitempty"`
	TableID   string `json:"tableId,omitempty"`
	JobID     string `json:"jobId,omitempty"`
	QueryID   string `json:"queryId,omitempty"`
}

type Alert struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Title    string `json:"title"`
	Message  string `json:"message,omitempty"`

	Source           AlertSource    `json:"source"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	SuggestedActions []string       `json:"suggestedActions,omitempty"`

	Workspace string `json:"workspace"`

	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	SnoozedUntil   *time.Time `json:"snoozedUntil,omitempty"`
}

type AlertStats struct {
	Total      uint64            `json:"total"`
	BySeverity map[string]uint64 `json:"bySeverity"`
	ByStatus   map[string]uint64 `json:"byStatus"`
	ByType     map[string]uint64 `json:"byType"`
	Last24h    uint64            `json:"last24h"`
	Last7d     uint64            `json:"last7d"`
	MTTRHours  float64           `json:"mttrHours"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
