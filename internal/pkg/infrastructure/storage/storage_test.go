package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func seedAlert(t *testing.T, ctx context.Context, s *Storage, workspace string, fn ...func(*types.Alert)) types.Alert {
	is := is.New(t)

	alert := types.Alert{
		ID:       uuid.NewString(),
		Type:     types.AlertTypePipelineFailure,
		Severity: types.SeverityHigh,
		Status:   types.AlertStatusActive,
		Title:    "pipeline orders_daily failed",
		Message:  "exit code 1",
		Source: types.AlertSource{
			ProjectID: "demo",
			DatasetID: "analytics",
			TableID:   "orders",
		},
		Metadata:  map[string]any{"pipelineId": "orders_daily"},
		Workspace: workspace,
		CreatedAt: time.Now().UTC(),
	}

	for _, f := range fn {
		f(&alert)
	}

	err := s.AddAlert(ctx, alert)
	is.NoErr(err)

	return alert
}

func seedExploration(t *testing.T, ctx context.Context, s *Storage, userID string) types.Exploration {
	is := is.New(t)

	e := types.Exploration{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   "revenue deep dive",
		Tags:   []string{"revenue", "q3"},
	}

	err := s.AddExploration(ctx, e)
	is.NoErr(err)

	return e
}

func seedCell(t *testing.T, ctx context.Context, s *Storage, explorationID string, orderIndex int) types.Cell {
	is := is.New(t)

	cell := types.Cell{
		ID:            uuid.NewString(),
		ExplorationID: explorationID,
		CellType:      types.CellTypeSQL,
		OrderIndex:    orderIndex,
		Content:       map[string]any{"query": "SELECT 1"},
	}

	err := s.AddCell(ctx, cell)
	is.NoErr(err)

	return cell
}

func TestQueryAlerts(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	ws := uuid.NewString()
	seedAlert(t, ctx, s, ws)
	seedAlert(t, ctx, s, ws)

	c, err := s.QueryAlerts(ctx, WithWorkspaces([]string{ws}))
	is.NoErr(err)
	is.Equal(2, len(c.Data))
	is.Equal(uint64(2), c.TotalCount)
}

func TestQueryAlertsWithSeverity(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	ws := uuid.NewString()
	seedAlert(t, ctx, s, ws)
	seedAlert(t, ctx, s, ws, func(a *types.Alert) {
		a.Severity = types.SeverityLow
	})

	c, err := s.QueryAlerts(ctx, WithWorkspaces([]string{ws}), WithSeverities([]string{types.SeverityHigh}))
	is.NoErr(err)
	is.Equal(1, len(c.Data))
	is.Equal(types.SeverityHigh, c.Data[0].Severity)
}

func TestQueryAlertsPagination(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	ws := uuid.NewString()
	seedAlert(t, ctx, s, ws)
	seedAlert(t, ctx, s, ws)
	seedAlert(t, ctx, s, ws)

	c, err := s.QueryAlerts(ctx, WithWorkspaces([]string{ws}), WithOffset(0), WithLimit(2))
	is.NoErr(err)
	is.Equal(2, len(c.Data))
	is.Equal(uint64(3), c.TotalCount)

	c, err = s.QueryAlerts(ctx, WithWorkspaces([]string{ws}), WithOffset(2), WithLimit(2))
	is.NoErr(err)
	is.Equal(1, len(c.Data))
}

func TestQueryAlertsWithSearch(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	ws := uuid.NewString()
	seedAlert(t, ctx, s, ws, func(a *types.Alert) {
		a.Title = "unexpected schema drift in clickstream"
	})
	seedAlert(t, ctx, s, ws)

	c, err := s.QueryAlerts(ctx, WithWorkspaces([]string{ws}), WithSearch("clickstream"))
	is.NoErr(err)
	is.Equal(1, len(c.Data))
}

func TestGetAlertNotFound(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, err := s.GetAlert(ctx, WithAlertID(uuid.NewString()))
	is.True(errors.Is(err, ErrNoRows))
}

func TestAddAlertUpdatesOnConflict(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	ws := uuid.NewString()
	alert := seedAlert(t, ctx, s, ws)

	alert.Severity = types.SeverityCritical
	err := s.AddAlert(ctx, alert)
	is.NoErr(err)

	fetched, err := s.GetAlert(ctx, WithAlertID(alert.ID))
	is.NoErr(err)
	is.Equal(types.SeverityCritical, fetched.Severity)
}

func TestUpdateAlertStatus(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	ws := uuid.NewString()
	alert := seedAlert(t, ctx, s, ws)

	now := time.Now().UTC()
	alert.Status = types.AlertStatusAcknowledged
	alert.AcknowledgedAt = &now

	err := s.UpdateAlertStatus(ctx, alert)
	is.NoErr(err)

	fetched, err := s.GetAlert(ctx, WithAlertID(alert.ID))
	is.NoErr(err)
	is.Equal(types.AlertStatusAcknowledged, fetched.Status)
	is.True(fetched.AcknowledgedAt != nil)
	is.True(fetched.ResolvedAt == nil)
}

func TestDeleteAlert(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	ws := uuid.NewString()
	alert := seedAlert(t, ctx, s, ws)

	err := s.DeleteAlert(ctx, alert.ID, ws)
	is.NoErr(err)

	_, err = s.GetAlert(ctx, WithAlertID(alert.ID))
	is.True(errors.Is(err, ErrNoRows))

	_, err = s.GetAlert(ctx, WithAlertID(alert.ID), WithDeleted())
	is.True(errors.Is(err, ErrDeleted))
}

func TestAlertStats(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	ws := uuid.NewString()
	seedAlert(t, ctx, s, ws)
	seedAlert(t, ctx, s, ws, func(a *types.Alert) {
		a.Severity = types.SeverityLow
		a.Status = types.AlertStatusResolved
	})

	stats, err := s.AlertStats(ctx, WithWorkspaces([]string{ws}))
	is.NoErr(err)
	is.Equal(uint64(2), stats.Total)
	is.Equal(uint64(1), stats.BySeverity[types.SeverityHigh])
	is.Equal(uint64(1), stats.BySeverity[types.SeverityLow])
	is.Equal(uint64(0), stats.BySeverity[types.SeverityCritical])
	is.Equal(uint64(1), stats.ByStatus[types.AlertStatusActive])
	is.Equal(uint64(2), stats.Last24h)
}

func TestQueryExplorations(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	userID := uuid.NewString()
	seedExploration(t, ctx, s, userID)
	seedExploration(t, ctx, s, userID)

	c, err := s.QueryExplorations(ctx, WithUserID(userID))
	is.NoErr(err)
	is.Equal(2, len(c.Data))
}

func TestQueryExplorationsIncludesShared(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	owner := uuid.NewString()
	viewer := uuid.NewString()
	e := seedExploration(t, ctx, s, owner)

	err := s.AddShare(ctx, types.Share{
		ID:               uuid.NewString(),
		ExplorationID:    e.ID,
		SharedByUserID:   owner,
		SharedWithUserID: viewer,
		PermissionLevel:  types.PermissionView,
	})
	is.NoErr(err)

	c, err := s.QueryExplorations(ctx, WithUserID(viewer))
	is.NoErr(err)
	is.Equal(0, len(c.Data))

	c, err = s.QueryExplorations(ctx, WithUserID(viewer), WithIncludeShared())
	is.NoErr(err)
	is.Equal(1, len(c.Data))
	is.Equal(e.ID, c.Data[0].ID)
}

func TestQueryExplorationsWithTags(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	userID := uuid.NewString()
	seedExploration(t, ctx, s, userID)

	c, err := s.QueryExplorations(ctx, WithUserID(userID), WithTags([]string{"revenue"}))
	is.NoErr(err)
	is.Equal(1, len(c.Data))

	c, err = s.QueryExplorations(ctx, WithUserID(userID), WithTags([]string{"marketing"}))
	is.NoErr(err)
	is.Equal(0, len(c.Data))
}

func TestDeleteExploration(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	userID := uuid.NewString()
	e := seedExploration(t, ctx, s, userID)

	err := s.DeleteExploration(ctx, e.ID)
	is.NoErr(err)

	_, err = s.GetExploration(ctx, WithExplorationID(e.ID))
	is.True(errors.Is(err, ErrNoRows))

	_, err = s.GetExploration(ctx, WithExplorationID(e.ID), WithDeleted())
	is.True(errors.Is(err, ErrDeleted))
}

func TestAddCellShiftsLaterCells(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	e := seedExploration(t, ctx, s, uuid.NewString())
	first := seedCell(t, ctx, s, e.ID, 0)
	second := seedCell(t, ctx, s, e.ID, 1)

	inserted := seedCell(t, ctx, s, e.ID, 1)

	cells, err := s.GetCells(ctx, e.ID)
	is.NoErr(err)
	is.Equal(3, len(cells))
	is.Equal(first.ID, cells[0].ID)
	is.Equal(inserted.ID, cells[1].ID)
	is.Equal(second.ID, cells[2].ID)
	is.Equal(2, cells[2].OrderIndex)
}

func TestDeleteCellClosesGap(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	e := seedExploration(t, ctx, s, uuid.NewString())
	seedCell(t, ctx, s, e.ID, 0)
	middle := seedCell(t, ctx, s, e.ID, 1)
	last := seedCell(t, ctx, s, e.ID, 2)

	err := s.DeleteCell(ctx, e.ID, middle.ID)
	is.NoErr(err)

	cells, err := s.GetCells(ctx, e.ID)
	is.NoErr(err)
	is.Equal(2, len(cells))
	is.Equal(last.ID, cells[1].ID)
	is.Equal(1, cells[1].OrderIndex)
}

func TestReorderCells(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	e := seedExploration(t, ctx, s, uuid.NewString())
	a := seedCell(t, ctx, s, e.ID, 0)
	b := seedCell(t, ctx, s, e.ID, 1)
	c := seedCell(t, ctx, s, e.ID, 2)

	err := s.ReorderCells(ctx, e.ID, []string{c.ID, a.ID, b.ID})
	is.NoErr(err)

	cells, err := s.GetCells(ctx, e.ID)
	is.NoErr(err)
	is.Equal(c.ID, cells[0].ID)
	is.Equal(a.ID, cells[1].ID)
	is.Equal(b.ID, cells[2].ID)
}

func TestSetCellOutput(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	e := seedExploration(t, ctx, s, uuid.NewString())
	cell := seedCell(t, ctx, s, e.ID, 0)

	err := s.SetCellOutput(ctx, e.ID, cell.ID, map[string]any{"rows": []any{}}, time.Now().UTC(), 128)
	is.NoErr(err)

	fetched, err := s.GetCell(ctx, e.ID, cell.ID)
	is.NoErr(err)
	is.True(fetched.ExecutedAt != nil)
	is.True(fetched.ExecutionTimeMs != nil)
	is.Equal(int64(128), *fetched.ExecutionTimeMs)
}

func TestShareByToken(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	e := seedExploration(t, ctx, s, uuid.NewString())
	token := uuid.NewString()

	err := s.AddShare(ctx, types.Share{
		ID:              uuid.NewString(),
		ExplorationID:   e.ID,
		SharedByUserID:  e.UserID,
		PermissionLevel: types.PermissionView,
		ShareToken:      token,
	})
	is.NoErr(err)

	share, err := s.GetShareByToken(ctx, token)
	is.NoErr(err)
	is.Equal(e.ID, share.ExplorationID)

	_, err = s.GetShareByToken(ctx, uuid.NewString())
	is.True(errors.Is(err, ErrNoRows))
}

func TestDeleteShare(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	e := seedExploration(t, ctx, s, uuid.NewString())
	share := types.Share{
		ID:               uuid.NewString(),
		ExplorationID:    e.ID,
		SharedByUserID:   e.UserID,
		SharedWithUserID: uuid.NewString(),
		PermissionLevel:  types.PermissionEdit,
	}

	err := s.AddShare(ctx, share)
	is.NoErr(err)

	err = s.DeleteShare(ctx, e.ID, share.ID)
	is.NoErr(err)

	err = s.DeleteShare(ctx, e.ID, share.ID)
	is.True(errors.Is(err, ErrNoRows))
}

func TestConditionWhere(t *testing.T) {
	is := is.New(t)

	condition := &Condition{}
	for _, f := range []ConditionFunc{
		WithWorkspaces([]string{"default"}),
		WithSeverities([]string{types.SeverityHigh}),
		WithStatuses([]string{types.AlertStatusActive}),
	} {
		f(condition)
	}

	where := condition.Where()
	is.True(strings.Contains(where, "workspace = ANY(@workspaces)"))
	is.True(strings.Contains(where, "severity = ANY(@severities)"))
	is.True(strings.Contains(where, "status = ANY(@statuses)"))
	is.True(strings.Contains(where, "deleted = FALSE"))
}

func TestConditionWhereNarrowsToAllowedWorkspace(t *testing.T) {
	is := is.New(t)

	condition := &Condition{}
	for _, f := range []ConditionFunc{
		WithWorkspace("default"),
		WithWorkspaces([]string{"default", "staging"}),
	} {
		f(condition)
	}

	is.True(strings.Contains(condition.Where(), "workspace = @workspace"))

	condition = &Condition{}
	for _, f := range []ConditionFunc{
		WithWorkspace("secret"),
		WithWorkspaces([]string{"default"}),
	} {
		f(condition)
	}

	is.True(strings.Contains(condition.Where(), "workspace = ANY(@workspaces)"))
}

func TestConditionSearchIsSanitized(t *testing.T) {
	is := is.New(t)

	condition := &Condition{}
	WithSearch("orders'; DROP TABLE alerts; --%")(condition)

	is.Equal("orders; DROP TABLE alerts; --", condition.Search)
	is.Equal("%orders; DROP TABLE alerts; --%", condition.NamedArgs()["search"])
}

func TestConditionSortWhitelist(t *testing.T) {
	is := is.New(t)

	condition := &Condition{}
	WithSortBy("createdAt")(condition)
	is.Equal("created_on", condition.SortBy())

	condition = &Condition{}
	WithSortBy("robert'); DROP TABLE alerts")(condition)
	is.Equal("", condition.SortBy())

	condition = &Condition{}
	WithSortBy("severity")(condition)
	WithSortDesc(true)(condition)
	is.Equal("severity", condition.SortBy())
	is.Equal("DESC", condition.SortOrder())
}

func TestConditionOffsetLimit(t *testing.T) {
	is := is.New(t)

	condition := &Condition{}
	is.Equal("", condition.OffsetLimit())
	is.Equal("ASC", condition.SortOrder())

	WithOffset(20)(condition)
	WithLimit(10)(condition)
	is.Equal("OFFSET 20 LIMIT 10 ", condition.OffsetLimit())
	is.Equal(20, condition.Offset())
	is.Equal(10, condition.Limit())
}
