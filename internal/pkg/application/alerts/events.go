package alerts

import (
	"encoding/json"
	"time"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
)

type AlertCreated struct {
	Alert     types.Alert `json:"alert"`
	Workspace string      `json:"workspace"`
	Timestamp time.Time   `json:"timestamp"`
}

func (l *AlertCreated) ContentType() string {
	return "application/json"
}
func (l *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (l *AlertCreated) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

type AlertStatusChanged struct {
	ID        string      `json:"id"`
	Action    string      `json:"action"`
	Alert     types.Alert `json:"alert"`
	Workspace string      `json:"workspace"`
	Timestamp time.Time   `json:"timestamp"`
}

func (l *AlertStatusChanged) ContentType() string {
	return "application/json"
}
func (l *AlertStatusChanged) TopicName() string {
	return "alerts.alertStatusChanged"
}
func (l *AlertStatusChanged) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

type AlertDeleted struct {
	ID        string    `json:"id"`
	Workspace string    `json:"workspace"`
	Timestamp time.Time `json:"timestamp"`
}

func (l *AlertDeleted) ContentType() string {
	return "application/json"
}
func (l *AlertDeleted) TopicName() string {
	return "alerts.alertDeleted"
}
func (l *AlertDeleted) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}
