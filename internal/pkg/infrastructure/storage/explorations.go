package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func explorationWhere(c *Condition) (string, pgx.NamedArgs) {
	args := c.NamedArgs()
	where := []string{}

	if c.ExplorationID != "" {
		where = append(where, "e.exploration_id = @exploration_id")
	}

	if c.UserID != "" {
		if c.IncludeShared {
			where = append(where, `(e.user_id = @user_id OR e.is_public = TRUE OR e.exploration_id IN (
				SELECT exploration_id FROM exploration_shares WHERE shared_with = @user_id))`)
		} else {
			where = append(where, "e.user_id = @user_id")
		}
	}

	if len(c.Tags) > 0 {
		tags, _ := json.Marshal(c.Tags)
		args["tags_json"] = string(tags)
		where = append(where, "e.tags @> @tags_json::jsonb")
	}

	if c.Search != "" {
		where = append(where, "(e.name ILIKE @search OR e.description ILIKE @search)")
	}

	if !c.IncludeDeleted {
		where = append(where, "e.deleted = FALSE")
	}

	if len(where) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(where, " AND "), args
}

func (s *Storage) QueryExplorations(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Exploration], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "modified_on"
		condition.sortOrder = "DESC"
	}

	where, args := explorationWhere(condition)

	var exploration_id, user_id, project_id, name, description string
	var tags []byte
	var is_public bool
	var created_on, modified_on, accessed_on time.Time
	var cell_count, count int64

	query := fmt.Sprintf(`
		SELECT e.exploration_id, e.user_id, COALESCE(e.project_id, ''), e.name, COALESCE(e.description, ''), e.tags, e.is_public,
		       e.created_on, e.modified_on, e.accessed_on,
		       (SELECT count(*) FROM exploration_cells c WHERE c.exploration_id = e.exploration_id) AS cell_count,
		       count(*) OVER () AS count
		FROM explorations e
		%s
		ORDER BY e.%s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Exploration]{}, err
	}

	explorations := make([]types.Exploration, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&exploration_id, &user_id, &project_id, &name, &description, &tags, &is_public,
		&created_on, &modified_on, &accessed_on, &cell_count, &count,
	}, func() error {
		e, err := scanExploration(exploration_id, user_id, project_id, name, description, tags, is_public,
			created_on, modified_on, accessed_on, int(cell_count))
		if err != nil {
			return err
		}

		explorations = append(explorations, e)

		return nil
	})
	if err != nil {
		return types.Collection[types.Exploration]{}, err
	}

	return types.Collection[types.Exploration]{
		Data:       explorations,
		Count:      uint64(len(explorations)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) GetExploration(ctx context.Context, conditions ...ConditionFunc) (types.Exploration, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	where, args := explorationWhere(condition)

	var exploration_id, user_id, project_id, name, description string
	var tags []byte
	var is_public, deleted bool
	var created_on, modified_on, accessed_on time.Time
	var cell_count int64

	query := fmt.Sprintf(`
		SELECT e.exploration_id, e.user_id, COALESCE(e.project_id, ''), e.name, COALESCE(e.description, ''), e.tags, e.is_public,
		       e.created_on, e.modified_on, e.accessed_on,
		       (SELECT count(*) FROM exploration_cells c WHERE c.exploration_id = e.exploration_id) AS cell_count,
		       e.deleted
		FROM explorations e
		%s
		ORDER BY e.exploration_id ASC, e.deleted ASC
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(
		&exploration_id, &user_id, &project_id, &name, &description, &tags, &is_public,
		&created_on, &modified_on, &accessed_on, &cell_count, &deleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Exploration{}, ErrNoRows
		}
		return types.Exploration{}, err
	}

	if deleted {
		return types.Exploration{}, ErrDeleted
	}

	return scanExploration(exploration_id, user_id, project_id, name, description, tags, is_public,
		created_on, modified_on, accessed_on, int(cell_count))
}

func (s *Storage) AddExploration(ctx context.Context, e types.Exploration) error {
	if e.ID == "" {
		return ErrNoID
	}

	tags, _ := json.Marshal(e.Tags)

	args := pgx.NamedArgs{
		"exploration_id": e.ID,
		"user_id":        e.UserID,
		"project_id":     e.ProjectID,
		"name":           e.Name,
		"description":    e.Description,
		"tags":           string(tags),
		"is_public":      e.IsPublic,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO explorations (exploration_id, user_id, project_id, name, description, tags, is_public)
		VALUES (@exploration_id, @user_id, @project_id, @name, @description, @tags, @is_public)
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) UpdateExploration(ctx context.Context, e types.Exploration) error {
	if e.ID == "" {
		return ErrNoID
	}

	tags, _ := json.Marshal(e.Tags)

	args := pgx.NamedArgs{
		"exploration_id": e.ID,
		"project_id":     e.ProjectID,
		"name":           e.Name,
		"description":    e.Description,
		"tags":           string(tags),
		"is_public":      e.IsPublic,
	}

	_, err := s.pool.Exec(ctx, `
		UPDATE explorations
		SET name = @name, description = @description, tags = @tags, is_public = @is_public, project_id = @project_id, modified_on = CURRENT_TIMESTAMP
		WHERE exploration_id = @exploration_id AND deleted = FALSE
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) TouchExploration(ctx context.Context, explorationID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE explorations
		SET accessed_on = CURRENT_TIMESTAMP
		WHERE exploration_id = @exploration_id AND deleted = FALSE
	`, pgx.NamedArgs{"exploration_id": explorationID})

	return err
}

func (s *Storage) DeleteExploration(ctx context.Context, explorationID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE explorations
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE exploration_id = @exploration_id AND deleted = FALSE
	`, pgx.NamedArgs{"exploration_id": explorationID})

	return err
}

func (s *Storage) GetCells(ctx context.Context, explorationID string) ([]types.Cell, error) {
	var cell_id, cell_type string
	var order_index int
	var content, output []byte
	var is_collapsed bool
	var executed_on *time.Time
	var execution_time_ms *int64
	var created_on, modified_on time.Time

	rows, err := s.pool.Query(ctx, `
		SELECT cell_id, cell_type, order_index, content, output, is_collapsed, executed_on, execution_time_ms, created_on, modified_on
		FROM exploration_cells
		WHERE exploration_id = @exploration_id
		ORDER BY order_index ASC
	`, pgx.NamedArgs{"exploration_id": explorationID})
	if err != nil {
		return nil, err
	}

	cells := make([]types.Cell, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&cell_id, &cell_type, &order_index, &content, &output, &is_collapsed,
		&executed_on, &execution_time_ms, &created_on, &modified_on,
	}, func() error {
		c, err := scanCell(cell_id, explorationID, cell_type, order_index, content, output, is_collapsed,
			executed_on, execution_time_ms, created_on, modified_on)
		if err != nil {
			return err
		}

		cells = append(cells, c)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cells, nil
}

func (s *Storage) GetCell(ctx context.Context, explorationID, cellID string) (types.Cell, error) {
	var cell_type string
	var order_index int
	var content, output []byte
	var is_collapsed bool
	var executed_on *time.Time
	var execution_time_ms *int64
	var created_on, modified_on time.Time

	err := s.pool.QueryRow(ctx, `
		SELECT cell_type, order_index, content, output, is_collapsed, executed_on, execution_time_ms, created_on, modified_on
		FROM exploration_cells
		WHERE cell_id = @cell_id AND exploration_id = @exploration_id
	`, pgx.NamedArgs{"cell_id": cellID, "exploration_id": explorationID}).Scan(
		&cell_type, &order_index, &content, &output, &is_collapsed,
		&executed_on, &execution_time_ms, &created_on, &modified_on,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Cell{}, ErrNoRows
		}
		return types.Cell{}, err
	}

	return scanCell(cellID, explorationID, cell_type, order_index, content, output, is_collapsed,
		executed_on, execution_time_ms, created_on, modified_on)
}

// AddCell inserts a cell at its order index and shifts every cell at or
// after that index one step up.
func (s *Storage) AddCell(ctx context.Context, cell types.Cell) error {
	if cell.ID == "" || cell.ExplorationID == "" {
		return ErrNoID
	}

	content, _ := json.Marshal(cell.Content)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE exploration_cells
		SET order_index = order_index + 1, modified_on = CURRENT_TIMESTAMP
		WHERE exploration_id = @exploration_id AND order_index >= @order_index
	`, pgx.NamedArgs{"exploration_id": cell.ExplorationID, "order_index": cell.OrderIndex})
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO exploration_cells (cell_id, exploration_id, cell_type, order_index, content, is_collapsed)
		VALUES (@cell_id, @exploration_id, @cell_type, @order_index, @content, @is_collapsed)
	`, pgx.NamedArgs{
		"cell_id":        cell.ID,
		"exploration_id": cell.ExplorationID,
		"cell_type":      cell.CellType,
		"order_index":    cell.OrderIndex,
		"content":        string(content),
		"is_collapsed":   cell.IsCollapsed,
	})
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE explorations SET modified_on = CURRENT_TIMESTAMP WHERE exploration_id = @exploration_id
	`, pgx.NamedArgs{"exploration_id": cell.ExplorationID})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Storage) UpdateCell(ctx context.Context, cell types.Cell) error {
	if cell.ID == "" {
		return ErrNoID
	}

	content, _ := json.Marshal(cell.Content)

	_, err := s.pool.Exec(ctx, `
		UPDATE exploration_cells
		SET cell_type = @cell_type, content = @content, is_collapsed = @is_collapsed, modified_on = CURRENT_TIMESTAMP
		WHERE cell_id = @cell_id AND exploration_id = @exploration_id
	`, pgx.NamedArgs{
		"cell_id":        cell.ID,
		"exploration_id": cell.ExplorationID,
		"cell_type":      cell.CellType,
		"content":        string(content),
		"is_collapsed":   cell.IsCollapsed,
	})

	return err
}

func (s *Storage) SetCellOutput(ctx context.Context, explorationID, cellID string, output map[string]any, executedAt time.Time, executionTimeMs int64) error {
	b, _ := json.Marshal(output)

	_, err := s.pool.Exec(ctx, `
		UPDATE exploration_cells
		SET output = @output, executed_on = @executed_on, execution_time_ms = @execution_time_ms, modified_on = CURRENT_TIMESTAMP
		WHERE cell_id = @cell_id AND exploration_id = @exploration_id
	`, pgx.NamedArgs{
		"cell_id":           cellID,
		"exploration_id":    explorationID,
		"output":            string(b),
		"executed_on":       executedAt,
		"execution_time_ms": executionTimeMs,
	})

	return err
}

// DeleteCell removes a cell and closes the gap in the order index sequence.
func (s *Storage) DeleteCell(ctx context.Context, explorationID, cellID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var orderIndex int

	err = tx.QueryRow(ctx, `
		DELETE FROM exploration_cells
		WHERE cell_id = @cell_id AND exploration_id = @exploration_id
		RETURNING order_index
	`, pgx.NamedArgs{"cell_id": cellID, "exploration_id": explorationID}).Scan(&orderIndex)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoRows
		}
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE exploration_cells
		SET order_index = order_index - 1, modified_on = CURRENT_TIMESTAMP
		WHERE exploration_id = @exploration_id AND order_index > @order_index
	`, pgx.NamedArgs{"exploration_id": explorationID, "order_index": orderIndex})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Storage) ReorderCells(ctx context.Context, explorationID string, cellIDs []string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i, cellID := range cellIDs {
		_, err = tx.Exec(ctx, `
			UPDATE exploration_cells
			SET order_index = @order_index, modified_on = CURRENT_TIMESTAMP
			WHERE cell_id = @cell_id AND exploration_id = @exploration_id
		`, pgx.NamedArgs{"cell_id": cellID, "exploration_id": explorationID, "order_index": i})
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Storage) AddShare(ctx context.Context, share types.Share) error {
	if share.ID == "" || share.ExplorationID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"share_id":       share.ID,
		"exploration_id": share.ExplorationID,
		"shared_by":      share.SharedByUserID,
		"shared_with":    share.SharedWithUserID,
		"shared_email":   share.SharedWithEmail,
		"permission":     share.PermissionLevel,
		"share_token":    share.ShareToken,
		"expires_on":     share.ExpiresAt,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO exploration_shares (share_id, exploration_id, shared_by, shared_with, shared_email, permission, share_token, expires_on)
		VALUES (@share_id, @exploration_id, @shared_by, @shared_with, @shared_email, @permission, @share_token, @expires_on)
	`, args)

	return err
}

func (s *Storage) GetShares(ctx context.Context, explorationID string) ([]types.Share, error) {
	var share_id, shared_by, shared_with, shared_email, permission, share_token string
	var expires_on *time.Time
	var created_on time.Time

	rows, err := s.pool.Query(ctx, `
		SELECT share_id, shared_by, COALESCE(shared_with, ''), COALESCE(shared_email, ''), permission, COALESCE(share_token, ''), expires_on, created_on
		FROM exploration_shares
		WHERE exploration_id = @exploration_id
		ORDER BY created_on ASC
	`, pgx.NamedArgs{"exploration_id": explorationID})
	if err != nil {
		return nil, err
	}

	shares := make([]types.Share, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&share_id, &shared_by, &shared_with, &shared_email, &permission, &share_token, &expires_on, &created_on,
	}, func() error {
		shares = append(shares, scanShare(share_id, explorationID, shared_by, shared_with, shared_email, permission, share_token, expires_on, created_on))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return shares, nil
}

func (s *Storage) GetShareByToken(ctx context.Context, token string) (types.Share, error) {
	var share_id, exploration_id, shared_by, shared_with, shared_email, permission string
	var expires_on *time.Time
	var created_on time.Time

	err := s.pool.QueryRow(ctx, `
		SELECT share_id, exploration_id, shared_by, COALESCE(shared_with, ''), COALESCE(shared_email, ''), permission, expires_on, created_on
		FROM exploration_shares
		WHERE share_token = @share_token
	`, pgx.NamedArgs{"share_token": token}).Scan(
		&share_id, &exploration_id, &shared_by, &shared_with, &shared_email, &permission, &expires_on, &created_on,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Share{}, ErrNoRows
		}
		return types.Share{}, err
	}

	return scanShare(share_id, exploration_id, shared_by, shared_with, shared_email, permission, token, expires_on, created_on), nil
}

func (s *Storage) GetShareFor(ctx context.Context, explorationID, userID string) (types.Share, error) {
	var share_id, shared_by, shared_email, permission, share_token string
	var expires_on *time.Time
	var created_on time.Time

	err := s.pool.QueryRow(ctx, `
		SELECT share_id, shared_by, COALESCE(shared_email, ''), permission, COALESCE(share_token, ''), expires_on, created_on
		FROM exploration_shares
		WHERE exploration_id = @exploration_id AND shared_with = @user_id
	`, pgx.NamedArgs{"exploration_id": explorationID, "user_id": userID}).Scan(
		&share_id, &shared_by, &shared_email, &permission, &share_token, &expires_on, &created_on,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Share{}, ErrNoRows
		}
		return types.Share{}, err
	}

	return scanShare(share_id, explorationID, shared_by, userID, shared_email, permission, share_token, expires_on, created_on), nil
}

func (s *Storage) DeleteShare(ctx context.Context, explorationID, shareID string) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM exploration_shares
		WHERE share_id = @share_id AND exploration_id = @exploration_id
	`, pgx.NamedArgs{"share_id": shareID, "exploration_id": explorationID})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func scanExploration(explorationID, userID, projectID, name, description string, tags []byte, isPublic bool,
	createdOn, modifiedOn, accessedOn time.Time, cellCount int,
) (types.Exploration, error) {
	e := types.Exploration{
		ID:             explorationID,
		UserID:         userID,
		ProjectID:      projectID,
		Name:           name,
		Description:    description,
		IsPublic:       isPublic,
		CreatedAt:      createdOn,
		UpdatedAt:      modifiedOn,
		LastAccessedAt: accessedOn,
		CellCount:      cellCount,
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &e.Tags); err != nil {
			return types.Exploration{}, err
		}
	}

	return e, nil
}

func scanCell(cellID, explorationID, cellType string, orderIndex int, content, output []byte, isCollapsed bool,
	executedOn *time.Time, executionTimeMs *int64, createdOn, modifiedOn time.Time,
) (types.Cell, error) {
	c := types.Cell{
		ID:            cellID,
		ExplorationID: explorationID,
		CellType:      cellType,
		OrderIndex:    orderIndex,
		IsCollapsed:   isCollapsed,
		CreatedAt:     createdOn,
		UpdatedAt:     modifiedOn,
	}

	if err := json.Unmarshal(content, &c.Content); err != nil {
		return types.Cell{}, err
	}

	if len(output) > 0 {
		if err := json.Unmarshal(output, &c.Output); err != nil {
			return types.Cell{}, err
		}
	}

	if executedOn != nil {
		t := *executedOn
		c.ExecutedAt = &t
	}
	if executionTimeMs != nil {
		ms := *executionTimeMs
		c.ExecutionTimeMs = &ms
	}

	return c, nil
}

func scanShare(shareID, explorationID, sharedBy, sharedWith, sharedEmail, permission, shareToken string,
	expiresOn *time.Time, createdOn time.Time,
) types.Share {
	share := types.Share{
		ID:               shareID,
		ExplorationID:    explorationID,
		SharedByUserID:   sharedBy,
		SharedWithUserID: sharedWith,
		SharedWithEmail:  sharedEmail,
		PermissionLevel:  permission,
		ShareToken:       shareToken,
		CreatedAt:        createdOn,
	}

	if expiresOn != nil {
		t := *expiresOn
		share.ExpiresAt = &t
	}

	return share
}
