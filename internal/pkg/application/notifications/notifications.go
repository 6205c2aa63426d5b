package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"log/slog"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

const EventTypeAlertCreated = "com.dataspect.alert.created"

var tracer = otel.Tracer("data-platform-mgmt/notifications")

// Sender pushes alert notifications to the webhook endpoints configured
// for the event type. Delivery is best effort, a failing subscriber never
// blocks the alert write path.
type Sender interface {
	Send(ctx context.Context, alert types.Alert) error
}

type sender struct {
	subscriptions []Subscription
}

func New(cfg *Config, messenger messaging.MsgContext) Sender {
	s := &sender{}

	if cfg != nil {
		s.subscriptions = cfg.Notifications
	}

	messenger.RegisterTopicMessageHandler("alerts.alertCreated", NewAlertCreatedHandler(s))

	return s
}

func (s *sender) Send(ctx context.Context, alert types.Alert) error {
	targets := s.matching(alert)
	if len(targets) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", alert.ID, alert.CreatedAt.Unix()))
	event.SetTime(alert.CreatedAt)
	event.SetSource("github.com/dataspect/data-platform-mgmt")
	event.SetType(EventTypeAlertCreated)

	eventData := struct {
		ID        string `json:"id"`
		Type      string `json:"type"`
		Severity  string `json:"severity"`
		Status    string `json:"status"`
		Title     string `json:"title"`
		Message   string `json:"message,omitempty"`
		Workspace string `json:"workspace"`
		Timestamp string `json:"timestamp"`
	}{
		ID:        alert.ID,
		Type:      alert.Type,
		Severity:  alert.Severity,
		Status:    alert.Status,
		Title:     alert.Title,
		Message:   alert.Message,
		Workspace: alert.Workspace,
		Timestamp: alert.CreatedAt.Format(time.RFC3339),
	}

	err = event.SetData(cloudevents.ApplicationJSON, eventData)
	if err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)

	for _, endpoint := range targets {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			log.Error("failed to send notification", "endpoint", endpoint, "err", result.Error())
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

// matching returns the endpoints subscribed to alert created events whose
// severity filter admits the alert. An empty filter admits everything.
func (s *sender) matching(alert types.Alert) []string {
	endpoints := make([]string, 0)

	for _, sub := range s.subscriptions {
		if sub.Type != EventTypeAlertCreated {
			continue
		}
		if len(sub.Severities) > 0 && !lo.Contains(sub.Severities, alert.Severity) {
			continue
		}
		for _, target := range sub.Subscribers {
			endpoints = append(endpoints, target.Endpoint)
		}
	}

	return endpoints
}

// NewAlertCreatedHandler forwards alert created events from the message
// bus to the configured webhook subscribers.
func NewAlertCreatedHandler(s Sender) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "send-alert-notification")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := struct {
			Alert types.Alert `json:"alert"`
		}{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		err = s.Send(ctx, msg.Alert)
		if err != nil {
			log.Error("notification delivery failed", "alert_id", msg.Alert.ID, "err", err.Error())
			return
		}
	}
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Subscription struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Severities  []string           `yaml:"severities"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Subscription `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
