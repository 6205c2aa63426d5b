package types

import (
	"encoding/json"
	"time"
)

const (
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// PipelineRunMessage is published by ingestion pipelines when a run
// finishes, successfully or not.
type PipelineRunMessage struct {
	PipelineID string `json:"pipelineId"`
	JobID      string `json:"jobId,omitempty"`
	ProjectID  string `json:"projectId,omitempty"`
	DatasetID  string `json:"datasetId,omitempty"`
	TableID    string `json:"tableId,omitempty"`

	Status string `json:"status"`
	Error  string `json:"error,omitempty"`

	Workspace string    `json:"workspace"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *PipelineRunMessage) ContentType() string {
	return "application/json"
}
func (m *PipelineRunMessage) TopicName() string {
	return "pipeline.runStatus"
}
func (m *PipelineRunMessage) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

// TableChangedMessage is published by the metadata scanner when the schema
// of a table changes.
type TableChangedMessage struct {
	ProjectID string `json:"projectId"`
	DatasetID string `json:"datasetId"`
	TableID   string `json:"tableId"`

	Change string `json:"change"`
	Detail string `json:"detail,omitempty"`

	Workspace string    `json:"workspace"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *TableChangedMessage) ContentType() string {
	return "application/json"
}
func (m *TableChangedMessage) TopicName() string {
	return "metadata.tableChanged"
}
func (m *TableChangedMessage) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

// TableNotFreshMessage is published by the watchdog when a table has not
// been updated within its freshness window.
type TableNotFreshMessage struct {
	ProjectID string `json:"projectId"`
	DatasetID string `json:"datasetId"`
	TableID   string `json:"tableId"`

	LastModified time.Time `json:"lastModified"`
	StaleFor     string    `json:"staleFor"`

	Workspace string    `json:"workspace"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *TableNotFreshMessage) ContentType() string {
	return "application/json"
}
func (m *TableNotFreshMessage) TopicName() string {
	return "watchdog.tableNotFresh"
}
func (m *TableNotFreshMessage) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}
