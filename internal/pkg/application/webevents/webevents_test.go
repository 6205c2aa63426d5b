package webevents

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"log/slog"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestNewRegistersAlertTopics(t *testing.T) {
	is := is.New(t)

	registered := []string{}

	m := &messaging.MsgContextMock{
		RegisterTopicMessageHandlerFunc: func(routingKey string, handler messaging.TopicMessageHandler) error {
			registered = append(registered, routingKey)
			return nil
		},
	}

	we := New(m)
	defer we.Shutdown()

	is.Equal([]string{"alerts.alertCreated", "alerts.alertStatusChanged", "alerts.alertDeleted"}, registered)
}

func TestForwardHandlerPublishesToStream(t *testing.T) {
	is := is.New(t)
	log := slog.Default()
	ctx := context.Background()

	published := []string{}

	we := &publisherStub{
		publish: func(event string, data any) error {
			published = append(published, event)
			return nil
		},
	}

	body, _ := json.Marshal(struct {
		Alert     types.Alert `json:"alert"`
		Workspace string      `json:"workspace"`
		Timestamp time.Time   `json:"timestamp"`
	}{
		Alert:     types.Alert{ID: "alert-1", Title: "Pipeline orders_daily failed"},
		Workspace: "default",
		Timestamp: time.Now().UTC(),
	})

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return body
		},
	}

	handler := NewForwardHandler(we, "alert.created")
	handler(ctx, msg, log)

	is.Equal([]string{"alert.created"}, published)
}

func TestForwardHandlerDropsMalformedMessages(t *testing.T) {
	is := is.New(t)
	log := slog.Default()
	ctx := context.Background()

	published := 0

	we := &publisherStub{
		publish: func(event string, data any) error {
			published++
			return nil
		},
	}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return []byte("not json")
		},
	}

	handler := NewForwardHandler(we, "alert.created")
	handler(ctx, msg, log)

	is.Equal(0, published)
}

type publisherStub struct {
	WebEvents
	publish func(event string, data any) error
}

func (p *publisherStub) Publish(event string, data any) error {
	return p.publish(event, data)
}
