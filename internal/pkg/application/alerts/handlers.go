package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("data-platform-mgmt/alerts")

func isOpen(a types.Alert) bool {
	return a.Status != types.AlertStatusResolved
}

// NewPipelineRunHandler reacts to pipeline run status messages. A failed run
// raises a pipeline_failure alert, deduplicated per pipeline, and a
// successful run resolves any open ones.
func NewPipelineRunHandler(messenger messaging.MsgContext, svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "pipeline-run-status")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := types.PipelineRunMessage{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		alerts, err := svc.GetByPipelineID(ctx, msg.PipelineID, []string{msg.Workspace})
		if err != nil {
			log.Error("could not fetch alerts", "pipeline_id", msg.PipelineID, "err", err.Error())
			return
		}

		if msg.Status == types.RunStatusSucceeded {
			for _, a := range alerts.Data {
				if !isOpen(a) {
					continue
				}
				_, err := svc.Transition(ctx, a.ID, ActionResolve, 0, []string{a.Workspace})
				if err != nil {
					log.Error("could not resolve alert", "alert_id", a.ID, "err", err.Error())
					continue
				}
			}
			return
		}

		if msg.Status != types.RunStatusFailed {
			return
		}

		for _, a := range alerts.Data {
			if isOpen(a) {
				if msg.Timestamp.After(a.UpdatedAt) {
					a.Message = msg.Error
					_, err := svc.Add(ctx, a)
					if err != nil {
						log.Error("could not update alert", "alert_id", a.ID, "err", err.Error())
						return
					}
				}
				return
			}
		}

		_, err = svc.Add(ctx, types.Alert{
			Type:     types.AlertTypePipelineFailure,
			Severity: types.SeverityHigh,
			Title:    fmt.Sprintf("Pipeline %s failed", msg.PipelineID),
			Message:  msg.Error,
			Source: types.AlertSource{
				ProjectID: msg.ProjectID,
				DatasetID: msg.DatasetID,
				TableID:   msg.TableID,
				JobID:     msg.JobID,
			},
			Metadata: map[string]any{
				"pipelineId": msg.PipelineID,
			},
			SuggestedActions: []string{
				"Inspect the run logs for the failing step",
				"Re-run the pipeline once the cause is fixed",
			},
			Workspace: msg.Workspace,
			CreatedAt: msg.Timestamp,
		})
		if err != nil {
			log.Error("could not create alert", "pipeline_id", msg.PipelineID, "err", err.Error())
			return
		}
	}
}

// NewTableChangedHandler raises schema_change alerts for tables whose schema
// was altered, deduplicated per table.
func NewTableChangedHandler(messenger messaging.MsgContext, svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "table-changed")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := types.TableChangedMessage{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		params := map[string][]string{
			"table": {msg.TableID},
			"type":  {types.AlertTypeSchemaChange},
		}

		alerts, err := svc.Query(ctx, params, []string{msg.Workspace})
		if err != nil {
			log.Error("could not fetch alerts", "table_id", msg.TableID, "err", err.Error())
			return
		}

		for _, a := range alerts.Data {
			if isOpen(a) {
				if msg.Timestamp.After(a.UpdatedAt) {
					a.Message = msg.Detail
					_, err := svc.Add(ctx, a)
					if err != nil {
						log.Error("could not update alert", "alert_id", a.ID, "err", err.Error())
						return
					}
				}
				return
			}
		}

		_, err = svc.Add(ctx, types.Alert{
			Type:     types.AlertTypeSchemaChange,
			Severity: types.SeverityMedium,
			Title:    fmt.Sprintf("Schema change detected in %s.%s", msg.DatasetID, msg.TableID),
			Message:  msg.Detail,
			Source: types.AlertSource{
				ProjectID: msg.ProjectID,
				DatasetID: msg.DatasetID,
				TableID:   msg.TableID,
			},
			Metadata: map[string]any{
				"change": msg.Change,
			},
			SuggestedActions: []string{
				"Review downstream consumers of the table",
				"Update dependent queries and views",
			},
			Workspace: msg.Workspace,
			CreatedAt: msg.Timestamp,
		})
		if err != nil {
			log.Error("could not create alert", "table_id", msg.TableID, "err", err.Error())
			return
		}
	}
}

// NewTableNotFreshHandler raises data_freshness alerts for tables the
// watchdog found stale. An open freshness alert per table suppresses new
// ones until it is resolved.
func NewTableNotFreshHandler(messenger messaging.MsgContext, svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "table-not-fresh")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := types.TableNotFreshMessage{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		params := map[string][]string{
			"table": {msg.TableID},
			"type":  {types.AlertTypeDataFreshness},
		}

		alerts, err := svc.Query(ctx, params, []string{msg.Workspace})
		if err != nil {
			log.Error("could not fetch alerts", "table_id", msg.TableID, "err", err.Error())
			return
		}

		for _, a := range alerts.Data {
			if isOpen(a) {
				return
			}
		}

		_, err = svc.Add(ctx, types.Alert{
			Type:     types.AlertTypeDataFreshness,
			Severity: types.SeverityMedium,
			Title:    fmt.Sprintf("Table %s.%s has not been updated", msg.DatasetID, msg.TableID),
			Message:  fmt.Sprintf("Last modified %s, stale for %s", msg.LastModified.Format(time.RFC3339), msg.StaleFor),
			Source: types.AlertSource{
				ProjectID: msg.ProjectID,
				DatasetID: msg.DatasetID,
				TableID:   msg.TableID,
			},
			Metadata: map[string]any{
				"lastModified": msg.LastModified.Format(time.RFC3339),
				"staleFor":     msg.StaleFor,
			},
			SuggestedActions: []string{
				"Check that the upstream pipeline is running",
				"Verify the freshness window matches the expected cadence",
			},
			Workspace: msg.Workspace,
			CreatedAt: msg.Timestamp,
		})
		if err != nil {
			log.Error("could not create alert", "table_id", msg.TableID, "err", err.Error())
			return
		}
	}
}
