package webevents

import (
	"context"
	"encoding/json"

	"log/slog"

	gosse "github.com/alexandrevicenzi/go-sse"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("data-platform-mgmt/webevents")

// WebEvents pushes alert lifecycle events to connected dashboards over
// server sent events. The bus is the only producer, handlers registered in
// New forward alert topics onto the stream.
type WebEvents interface {
	Server() *gosse.Server
	Shutdown()
	Publish(event string, data any) error
}

type webEvents struct {
	s *gosse.Server
}

func New(messenger messaging.MsgContext) WebEvents {
	we := &webEvents{
		s: gosse.NewServer(&gosse.Options{}),
	}

	messenger.RegisterTopicMessageHandler("alerts.alertCreated", NewForwardHandler(we, "alert.created"))
	messenger.RegisterTopicMessageHandler("alerts.alertStatusChanged", NewForwardHandler(we, "alert.updated"))
	messenger.RegisterTopicMessageHandler("alerts.alertDeleted", NewForwardHandler(we, "alert.deleted"))

	return we
}

func (we *webEvents) Server() *gosse.Server {
	return we.s
}

func (we *webEvents) Shutdown() {
	we.s.Shutdown()
}

func (we *webEvents) Publish(event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	message := gosse.NewMessage("", string(b), event)
	we.s.SendMessage("", message)

	return nil
}

// NewForwardHandler republishes bus messages on the SSE stream without
// reshaping the payload.
func NewForwardHandler(we WebEvents, event string) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "forward-web-event")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		payload := map[string]any{}

		err = json.Unmarshal(itm.Body(), &payload)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		err = we.Publish(event, payload)
		if err != nil {
			log.Error("could not publish web event", "event", event, "err", err.Error())
			return
		}
	}
}
