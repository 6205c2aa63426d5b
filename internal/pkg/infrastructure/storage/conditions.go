package storage

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	AlertID       string
	ExplorationID string
	CellID        string
	ShareToken    string

	Workspace  string
	Workspaces []string

	Severities []string
	Statuses   []string
	AlertTypes []string

	PipelineID  string
	SourceTable string

	UserID        string
	IncludeShared bool
	Tags          []string

	Search string

	SnoozeExpiredAt time.Time

	IncludeDeleted bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}

	return offsetLimit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.ExplorationID != "" {
		args["exploration_id"] = c.ExplorationID
	}
	if c.CellID != "" {
		args["cell_id"] = c.CellID
	}
	if c.ShareToken != "" {
		args["share_token"] = c.ShareToken
	}
	if c.Workspace != "" {
		args["workspace"] = c.Workspace
	}
	if c.Workspaces != nil {
		args["workspaces"] = c.Workspaces
	}
	if len(c.Severities) > 0 {
		args["severities"] = c.Severities
	}
	if len(c.Statuses) > 0 {
		args["statuses"] = c.Statuses
	}
	if len(c.AlertTypes) > 0 {
		args["alert_types"] = c.AlertTypes
	}
	if c.PipelineID != "" {
		args["pipeline_id"] = c.PipelineID
	}
	if c.SourceTable != "" {
		args["source_table"] = c.SourceTable
	}
	if c.UserID != "" {
		args["user_id"] = c.UserID
	}
	if len(c.Tags) > 0 {
		args["tags"] = c.Tags
	}
	if c.Search != "" {
		args["search"] = "%" + c.Search + "%"
	}
	if !c.SnoozeExpiredAt.IsZero() {
		args["snooze_expired_at"] = c.SnoozeExpiredAt.UTC()
	}

	return args
}

// Where assembles the filter clauses for queries against the alerts table.
// Queries against the exploration tables build their own clauses from the
// condition fields.
func (c Condition) Where() string {
	where := []string{}

	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}

	if len(c.Workspace) > 0 && len(c.Workspaces) > 0 && slices.Contains(c.Workspaces, c.Workspace) {
		where = append(where, "workspace = @workspace")
	} else if len(c.Workspaces) > 0 {
		where = append(where, "workspace = ANY(@workspaces)")
	}

	if len(c.Severities) > 0 {
		where = append(where, "severity = ANY(@severities)")
	}

	if len(c.Statuses) > 0 {
		where = append(where, "status = ANY(@statuses)")
	}

	if len(c.AlertTypes) > 0 {
		where = append(where, "alert_type = ANY(@alert_types)")
	}

	if c.PipelineID != "" {
		where = append(where, "metadata ->> 'pipelineId' = @pipeline_id")
	}

	if c.SourceTable != "" {
		where = append(where, "source ->> 'tableId' = @source_table")
	}

	if c.Search != "" {
		where = append(where, "(title ILIKE @search OR message ILIKE @search OR source ->> 'tableId' ILIKE @search OR source ->> 'datasetId' ILIKE @search)")
	}

	if !c.SnoozeExpiredAt.IsZero() {
		where = append(where, "snoozed_until IS NOT NULL AND snoozed_until <= @snooze_expired_at")
	}

	if !c.IncludeDeleted {
		where = append(where, "deleted = FALSE")
	}

	if len(where) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(where, " AND ")
}

var re = regexp.MustCompile(`[^a-zA-ZåäöÅÄÖ0-9 _\-.,;():]+|[%]`)

func WithSearch(s string) ConditionFunc {
	return func(c *Condition) *Condition {
		s = re.ReplaceAllString(s, "")
		c.Search = strings.TrimSpace(s)
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithExplorationID(explorationID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ExplorationID = explorationID
		return c
	}
}

func WithCellID(cellID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.CellID = cellID
		return c
	}
}

func WithShareToken(token string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ShareToken = token
		return c
	}
}

func WithWorkspace(workspace string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Workspaces = append(c.Workspaces, workspace)
		c.Workspaces = unique(c.Workspaces)
		c.Workspace = workspace
		return c
	}
}

func WithWorkspaces(workspaces []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Workspaces = unique(workspaces)
		return c
	}
}

func WithSeverities(severities []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severities = severities
		return c
	}
}

func WithStatuses(statuses []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Statuses = statuses
		return c
	}
}

func WithAlertTypes(alertTypes []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertTypes = alertTypes
		return c
	}
}

func WithPipelineID(pipelineID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.PipelineID = pipelineID
		return c
	}
}

func WithSourceTable(tableID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SourceTable = tableID
		return c
	}
}

func WithUserID(userID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.UserID = userID
		return c
	}
}

func WithIncludeShared() ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncludeShared = true
		return c
	}
}

func WithTags(tags []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tags = tags
		return c
	}
}

func WithSnoozeExpiredAt(ts time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SnoozeExpiredAt = ts
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {

		switch strings.ToLower(sortBy) {
		case "createdat":
			fallthrough
		case "created_at":
			c.sortBy = "created_on"
		case "updatedat":
			fallthrough
		case "updated_at":
			c.sortBy = "modified_on"
		case "lastaccessedat":
			fallthrough
		case "last_accessed_at":
			c.sortBy = "accessed_on"
		case "severity":
			c.sortBy = "severity"
		case "status":
			c.sortBy = "status"
		case "type":
			c.sortBy = "alert_type"
		case "title":
			c.sortBy = "title"
		case "name":
			c.sortBy = "name"
		}

		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithDeleted() ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncludeDeleted = true
		return c
	}
}

func unique(s []string) []string {
	keys := make(map[string]bool)
	list := []string{}
	for _, entry := range s {
		if _, value := keys[entry]; !value {
			keys[entry] = true
			list = append(list, entry)
		}
	}
	return list
}
