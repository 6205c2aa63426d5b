package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "created_on"
		condition.sortOrder = "DESC"
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var alert_id, alert_type, severity, status, title, message, workspace string
	var source, metadata, suggested []byte
	var created_on, modified_on time.Time
	var acknowledged_on, resolved_on, snoozed_until *time.Time
	var count int64

	query := fmt.Sprintf(`
		SELECT alert_id, alert_type, severity, status, title, COALESCE(message, ''), source, metadata, suggested_actions, workspace,
		       created_on, modified_on, acknowledged_on, resolved_on, snoozed_until, count(*) OVER () AS count
		FROM alerts
		%s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&alert_id, &alert_type, &severity, &status, &title, &message, &source, &metadata, &suggested, &workspace,
		&created_on, &modified_on, &acknowledged_on, &resolved_on, &snoozed_until, &count,
	}, func() error {
		alert, err := scanAlert(alert_id, alert_type, severity, status, title, message, workspace,
			source, metadata, suggested, created_on, modified_on, acknowledged_on, resolved_on, snoozed_until)
		if err != nil {
			return err
		}

		alerts = append(alerts, alert)

		return nil
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var alert_id, alert_type, severity, status, title, message, workspace string
	var source, metadata, suggested []byte
	var created_on, modified_on time.Time
	var acknowledged_on, resolved_on, snoozed_until *time.Time
	var deleted bool

	query := fmt.Sprintf(`
		SELECT alert_id, alert_type, severity, status, title, COALESCE(message, ''), source, metadata, suggested_actions, workspace,
		       created_on, modified_on, acknowledged_on, resolved_on, snoozed_until, deleted
		FROM alerts
		%s
		ORDER BY alert_id ASC, deleted ASC
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(
		&alert_id, &alert_type, &severity, &status, &title, &message, &source, &metadata, &suggested, &workspace,
		&created_on, &modified_on, &acknowledged_on, &resolved_on, &snoozed_until, &deleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	if deleted {
		return types.Alert{}, ErrDeleted
	}

	return scanAlert(alert_id, alert_type, severity, status, title, message, workspace,
		source, metadata, suggested, created_on, modified_on, acknowledged_on, resolved_on, snoozed_until)
}

func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" {
		return ErrNoID
	}

	if alert.Workspace == "" {
		return ErrMissingWorkspace
	}

	source, _ := json.Marshal(alert.Source)
	metadata, _ := json.Marshal(alert.Metadata)
	suggested, _ := json.Marshal(alert.SuggestedActions)

	args := pgx.NamedArgs{
		"alert_id":          alert.ID,
		"alert_type":        alert.Type,
		"severity":          alert.Severity,
		"status":            alert.Status,
		"title":             alert.Title,
		"message":           alert.Message,
		"source":            string(source),
		"metadata":          string(metadata),
		"suggested_actions": string(suggested),
		"workspace":         alert.Workspace,
		"created_on":        alert.CreatedAt,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, alert_type, severity, status, title, message, source, metadata, suggested_actions, workspace, created_on)
		VALUES (@alert_id, @alert_type, @severity, @status, @title, @message, @source, @metadata, @suggested_actions, @workspace, @created_on)
		ON CONFLICT (alert_id, deleted) DO UPDATE
		SET severity = EXCLUDED.severity, message = EXCLUDED.message, metadata = EXCLUDED.metadata, modified_on = CURRENT_TIMESTAMP
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) UpdateAlertStatus(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"alert_id":        alert.ID,
		"status":          alert.Status,
		"acknowledged_on": alert.AcknowledgedAt,
		"resolved_on":     alert.ResolvedAt,
		"snoozed_until":   alert.SnoozedUntil,
		"workspace":       alert.Workspace,
	}

	_, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET status = @status, acknowledged_on = @acknowledged_on, resolved_on = @resolved_on, snoozed_until = @snoozed_until, modified_on = CURRENT_TIMESTAMP
		WHERE alert_id = @alert_id AND workspace = @workspace AND deleted = FALSE
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) DeleteAlert(ctx context.Context, alertID, workspace string) error {
	args := pgx.NamedArgs{
		"alert_id":  alertID,
		"workspace": workspace,
	}

	_, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE alert_id = @alert_id AND workspace = @workspace AND deleted = FALSE
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) AlertStats(ctx context.Context, conditions ...ConditionFunc) (types.AlertStats, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	now := time.Now().UTC()
	args["h24"] = now.Add(-24 * time.Hour)
	args["d7"] = now.Add(-7 * 24 * time.Hour)

	query := fmt.Sprintf(`
		SELECT severity, status, alert_type, count(*) AS total,
		       count(*) FILTER (WHERE created_on >= @h24) AS last24h,
		       count(*) FILTER (WHERE created_on >= @d7) AS last7d
		FROM alerts
		%s
		GROUP BY severity, status, alert_type
	`, where)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.AlertStats{}, err
	}

	stats := types.AlertStats{
		BySeverity: map[string]uint64{
			types.SeverityCritical: 0, types.SeverityHigh: 0, types.SeverityMedium: 0,
			types.SeverityLow: 0, types.SeverityInfo: 0,
		},
		ByStatus: map[string]uint64{
			types.AlertStatusActive: 0, types.AlertStatusAcknowledged: 0,
			types.AlertStatusResolved: 0, types.AlertStatusSnoozed: 0,
		},
		ByType: map[string]uint64{
			types.AlertTypePipelineFailure: 0, types.AlertTypeCostAnomaly: 0,
			types.AlertTypeDataFreshness: 0, types.AlertTypeSchemaChange: 0,
			types.AlertTypeQueryTimeout: 0, types.AlertTypeSlotUtilization: 0,
			types.AlertTypeCustom: 0,
		},
	}

	var severity, status, alert_type string
	var total, last24h, last7d int64

	_, err = pgx.ForEachRow(rows, []any{&severity, &status, &alert_type, &total, &last24h, &last7d}, func() error {
		stats.Total += uint64(total)
		stats.BySeverity[severity] += uint64(total)
		stats.ByStatus[status] += uint64(total)
		stats.ByType[alert_type] += uint64(total)
		stats.Last24h += uint64(last24h)
		stats.Last7d += uint64(last7d)

		return nil
	})
	if err != nil {
		return types.AlertStats{}, err
	}

	return stats, nil
}

func scanAlert(alertID, alertType, severity, status, title, message, workspace string,
	source, metadata, suggested []byte,
	createdOn, modifiedOn time.Time, acknowledgedOn, resolvedOn, snoozedUntil *time.Time,
) (types.Alert, error) {
	alert := types.Alert{
		ID:        alertID,
		Type:      alertType,
		Severity:  severity,
		Status:    status,
		Title:     title,
		Message:   message,
		Workspace: workspace,
		CreatedAt: createdOn,
		UpdatedAt: modifiedOn,
	}

	if err := json.Unmarshal(source, &alert.Source); err != nil {
		return types.Alert{}, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &alert.Metadata); err != nil {
			return types.Alert{}, err
		}
	}

	if len(suggested) > 0 {
		if err := json.Unmarshal(suggested, &alert.SuggestedActions); err != nil {
			return types.Alert{}, err
		}
	}

	if acknowledgedOn != nil {
		t := *acknowledgedOn
		alert.AcknowledgedAt = &t
	}
	if resolvedOn != nil {
		t := *resolvedOn
		alert.ResolvedAt = &t
	}
	if snoozedUntil != nil {
		t := *snoozedUntil
		alert.SnoozedUntil = &t
	}

	return alert, nil
}
