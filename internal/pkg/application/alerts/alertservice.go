package alerts

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dataspect/data-platform-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

const (
	ActionAcknowledge = "acknowledge"
	ActionResolve     = "resolve"
	ActionSnooze      = "snooze"
	ActionReopen      = "reopen"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var (
	ErrAlertNotFound = fmt.Errorf("alert not found")
	ErrInvalidAction = fmt.Errorf("invalid action")
	ErrInvalidInput  = fmt.Errorf("invalid input")
)

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Query(ctx context.Context, params map[string][]string, workspaces []string) (types.Collection[types.Alert], error)
	Stats(ctx context.Context, workspaces []string) (types.AlertStats, error)
	GetByID(ctx context.Context, alertID string, workspaces []string) (types.Alert, error)
	GetByPipelineID(ctx context.Context, pipelineID string, workspaces []string) (types.Collection[types.Alert], error)
	Add(ctx context.Context, alert types.Alert) (types.Alert, error)
	Transition(ctx context.Context, alertID, action string, snoozeFor time.Duration, workspaces []string) (types.Alert, error)
	Delete(ctx context.Context, alertID string, workspaces []string) error
	ReopenExpiredSnoozes(ctx context.Context) (int, error)
}

//go:generate moq -rm -out alertrepository_mock.go . AlertRepository
type AlertRepository interface {
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	AddAlert(ctx context.Context, alert types.Alert) error
	UpdateAlertStatus(ctx context.Context, alert types.Alert) error
	DeleteAlert(ctx context.Context, alertID, workspace string) error
	AlertStats(ctx context.Context, conditions ...storage.ConditionFunc) (types.AlertStats, error)
}

type alertSvc struct {
	storage   AlertRepository
	messenger messaging.MsgContext
}

func New(s AlertRepository, m messaging.MsgContext) AlertService {
	svc := &alertSvc{
		storage:   s,
		messenger: m,
	}

	svc.messenger.RegisterTopicMessageHandler("pipeline.runStatus", NewPipelineRunHandler(m, svc))
	svc.messenger.RegisterTopicMessageHandler("metadata.tableChanged", NewTableChangedHandler(m, svc))
	svc.messenger.RegisterTopicMessageHandler("watchdog.tableNotFresh", NewTableNotFreshHandler(m, svc))

	return svc
}

func (svc alertSvc) Query(ctx context.Context, params map[string][]string, workspaces []string) (types.Collection[types.Alert], error) {
	conditions := make([]storage.ConditionFunc, 0)

	conditions = append(conditions, storage.WithWorkspaces(workspaces))

	page := 1
	limit := DefaultPageSize

	for k, v := range params {
		switch strings.ToLower(k) {
		case "severity":
			conditions = append(conditions, storage.WithSeverities(splitAll(v)))
		case "status":
			conditions = append(conditions, storage.WithStatuses(splitAll(v)))
		case "type":
			conditions = append(conditions, storage.WithAlertTypes(splitAll(v)))
		case "search":
			conditions = append(conditions, storage.WithSearch(v[0]))
		case "pipeline":
			conditions = append(conditions, storage.WithPipelineID(v[0]))
		case "table":
			conditions = append(conditions, storage.WithSourceTable(v[0]))
		case "workspace":
			conditions = append(conditions, storage.WithWorkspace(v[0]))
		case "page":
			if n, err := strconv.Atoi(v[0]); err == nil && n > 0 {
				page = n
			}
		case "limit":
			if n, err := strconv.Atoi(v[0]); err == nil && n > 0 {
				limit = min(n, MaxPageSize)
			}
		case "sortby":
			conditions = append(conditions, storage.WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, storage.WithSortDesc(strings.EqualFold(v[0], "desc")))
		}
	}

	conditions = append(conditions, storage.WithOffset((page-1)*limit), storage.WithLimit(limit))

	return svc.storage.QueryAlerts(ctx, conditions...)
}

// Stats aggregates over every alert visible in the given workspaces,
// regardless of any filters applied to the listing it accompanies.
func (svc alertSvc) Stats(ctx context.Context, workspaces []string) (types.AlertStats, error) {
	stats, err := svc.storage.AlertStats(ctx, storage.WithWorkspaces(workspaces))
	if err != nil {
		return types.AlertStats{}, err
	}

	// MTTR is a fixed placeholder until resolution history is tracked.
	stats.MTTRHours = 4.2

	return stats, nil
}

func (svc alertSvc) GetByID(ctx context.Context, alertID string, workspaces []string) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithWorkspaces(workspaces))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc alertSvc) GetByPipelineID(ctx context.Context, pipelineID string, workspaces []string) (types.Collection[types.Alert], error) {
	alerts, err := svc.storage.QueryAlerts(ctx,
		storage.WithPipelineID(pipelineID),
		storage.WithAlertTypes([]string{types.AlertTypePipelineFailure}),
		storage.WithWorkspaces(workspaces))
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (svc alertSvc) Add(ctx context.Context, alert types.Alert) (types.Alert, error) {
	if alert.Workspace == "" {
		return types.Alert{}, fmt.Errorf("no workspace is set on alert: %w", ErrInvalidInput)
	}
	if !types.IsValidAlertType(alert.Type) {
		return types.Alert{}, fmt.Errorf("unknown alert type %q: %w", alert.Type, ErrInvalidInput)
	}
	if !types.IsValidSeverity(alert.Severity) {
		return types.Alert{}, fmt.Errorf("unknown severity %q: %w", alert.Severity, ErrInvalidInput)
	}
	if alert.Title == "" {
		return types.Alert{}, fmt.Errorf("no title is set on alert: %w", ErrInvalidInput)
	}

	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.Status == "" {
		alert.Status = types.AlertStatusActive
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	alert.UpdatedAt = alert.CreatedAt

	err := svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return types.Alert{}, err
	}

	err = svc.messenger.PublishOnTopic(ctx, &AlertCreated{
		Alert:     alert,
		Workspace: alert.Workspace,
		Timestamp: alert.CreatedAt,
	})
	if err != nil {
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc alertSvc) Transition(ctx context.Context, alertID, action string, snoozeFor time.Duration, workspaces []string) (types.Alert, error) {
	alert, err := svc.GetByID(ctx, alertID, workspaces)
	if err != nil {
		return types.Alert{}, err
	}

	now := time.Now().UTC()

	switch action {
	case ActionAcknowledge:
		alert.Status = types.AlertStatusAcknowledged
		alert.AcknowledgedAt = &now
	case ActionResolve:
		alert.Status = types.AlertStatusResolved
		alert.ResolvedAt = &now
	case ActionSnooze:
		if snoozeFor <= 0 {
			snoozeFor = time.Hour
		}
		until := now.Add(snoozeFor)
		alert.Status = types.AlertStatusSnoozed
		alert.SnoozedUntil = &until
	case ActionReopen:
		alert.Status = types.AlertStatusActive
		alert.AcknowledgedAt = nil
		alert.ResolvedAt = nil
		alert.SnoozedUntil = nil
	default:
		return types.Alert{}, fmt.Errorf("%q: %w", action, ErrInvalidAction)
	}

	err = svc.storage.UpdateAlertStatus(ctx, alert)
	if err != nil {
		return types.Alert{}, err
	}

	alert.UpdatedAt = now

	err = svc.messenger.PublishOnTopic(ctx, &AlertStatusChanged{
		ID:        alert.ID,
		Action:    action,
		Alert:     alert,
		Workspace: alert.Workspace,
		Timestamp: now,
	})
	if err != nil {
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc alertSvc) Delete(ctx context.Context, alertID string, workspaces []string) error {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithWorkspaces(workspaces), storage.WithDeleted())
	if err != nil {
		if errors.Is(err, storage.ErrDeleted) {
			return nil
		}
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlertNotFound
		}
		return err
	}

	err = svc.storage.DeleteAlert(ctx, alertID, alert.Workspace)
	if err != nil {
		return err
	}

	err = svc.messenger.PublishOnTopic(ctx, &AlertDeleted{
		ID:        alert.ID,
		Workspace: alert.Workspace,
		Timestamp: time.Now().UTC(),
	})

	return err
}

// ReopenExpiredSnoozes moves alerts whose snooze window has passed back to
// active. The watchdog calls this on every sweep.
func (svc alertSvc) ReopenExpiredSnoozes(ctx context.Context) (int, error) {
	snoozed, err := svc.storage.QueryAlerts(ctx,
		storage.WithStatuses([]string{types.AlertStatusSnoozed}),
		storage.WithSnoozeExpiredAt(time.Now().UTC()))
	if err != nil {
		return 0, err
	}

	log := logging.GetFromContext(ctx)

	reopened := 0
	for _, a := range snoozed.Data {
		_, err := svc.Transition(ctx, a.ID, ActionReopen, 0, []string{a.Workspace})
		if err != nil {
			log.Error("could not reopen alert", "alert_id", a.ID, "err", err.Error())
			continue
		}
		reopened++
	}

	return reopened, nil
}

func splitAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
