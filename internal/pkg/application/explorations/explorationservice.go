package explorations

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/cache"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxQueryRows caps how many rows a single cell execution may pull
	// from the warehouse.
	MaxQueryRows = 10000

	// results larger than this stay out of the cache
	cacheRowLimit = 5000
)

var (
	ErrExplorationNotFound = fmt.Errorf("exploration not found")
	ErrCellNotFound        = fmt.Errorf("cell not found")
	ErrShareNotFound       = fmt.Errorf("share not found")
	ErrAccessDenied        = fmt.Errorf("access denied")
	ErrShareExpired        = fmt.Errorf("share link has expired")
	ErrExecutionFailed     = fmt.Errorf("query execution failed")
	ErrInvalidInput        = fmt.Errorf("invalid input")
)

//go:generate moq -rm -out explorationservice_mock.go . ExplorationService
type ExplorationService interface {
	Query(ctx context.Context, params map[string][]string, userID string) (types.Collection[types.Exploration], error)
	Create(ctx context.Context, exploration types.Exploration) (types.Exploration, error)
	Get(ctx context.Context, explorationID, userID string) (types.Exploration, error)
	Update(ctx context.Context, explorationID string, fields map[string]any, userID string) (types.Exploration, error)
	Delete(ctx context.Context, explorationID, userID string) error
	Duplicate(ctx context.Context, explorationID, userID string) (types.Exploration, error)

	AddCell(ctx context.Context, explorationID string, cell types.Cell, userID string) (types.Cell, error)
	UpdateCell(ctx context.Context, explorationID, cellID string, fields map[string]any, userID string) (types.Cell, error)
	DeleteCell(ctx context.Context, explorationID, cellID, userID string) error
	ReorderCells(ctx context.Context, explorationID string, cellIDs []string, userID string) error
	ExecuteCell(ctx context.Context, explorationID, cellID, userID string) (types.Cell, error)

	Shares(ctx context.Context, explorationID, userID string) ([]types.Share, error)
	AddShare(ctx context.Context, explorationID string, share types.Share, createLink bool, userID string) (types.Share, error)
	RevokeShare(ctx context.Context, explorationID, shareID, userID string) error
	GetShared(ctx context.Context, token string) (types.Exploration, types.Share, error)

	Export(ctx context.Context, explorationID, format, userID string) (Export, error)
}

//go:generate moq -rm -out explorationrepository_mock.go . ExplorationRepository
type ExplorationRepository interface {
	QueryExplorations(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Exploration], error)
	GetExploration(ctx context.Context, conditions ...storage.ConditionFunc) (types.Exploration, error)
	AddExploration(ctx context.Context, exploration types.Exploration) error
	UpdateExploration(ctx context.Context, exploration types.Exploration) error
	TouchExploration(ctx context.Context, explorationID string) error
	DeleteExploration(ctx context.Context, explorationID string) error

	GetCells(ctx context.Context, explorationID string) ([]types.Cell, error)
	GetCell(ctx context.Context, explorationID, cellID string) (types.Cell, error)
	AddCell(ctx context.Context, cell types.Cell) error
	UpdateCell(ctx context.Context, cell types.Cell) error
	SetCellOutput(ctx context.Context, explorationID, cellID string, output map[string]any, executedAt time.Time, executionTimeMs int64) error
	DeleteCell(ctx context.Context, explorationID, cellID string) error
	ReorderCells(ctx context.Context, explorationID string, cellIDs []string) error

	AddShare(ctx context.Context, share types.Share) error
	GetShares(ctx context.Context, explorationID string) ([]types.Share, error)
	GetShareByToken(ctx context.Context, token string) (types.Share, error)
	GetShareFor(ctx context.Context, explorationID, userID string) (types.Share, error)
	DeleteShare(ctx context.Context, explorationID, shareID string) error
}

type explorationSvc struct {
	storage   ExplorationRepository
	warehouse warehouse.Client
	cache     cache.Cache
}

func New(s ExplorationRepository, w warehouse.Client, c cache.Cache) ExplorationService {
	return &explorationSvc{
		storage:   s,
		warehouse: w,
		cache:     c,
	}
}

func (svc explorationSvc) Query(ctx context.Context, params map[string][]string, userID string) (types.Collection[types.Exploration], error) {
	conditions := make([]storage.ConditionFunc, 0)

	conditions = append(conditions, storage.WithUserID(userID))

	includeShared := true
	page := 1
	limit := DefaultPageSize

	for k, v := range params {
		switch strings.ToLower(k) {
		case "search":
			conditions = append(conditions, storage.WithSearch(v[0]))
		case "tags":
			conditions = append(conditions, storage.WithTags(splitAll(v)))
		case "page":
			if n, err := strconv.Atoi(v[0]); err == nil && n > 0 {
				page = n
			}
		case "pagesize", "page_size", "limit":
			if n, err := strconv.Atoi(v[0]); err == nil && n > 0 {
				limit = min(n, MaxPageSize)
			}
		case "sortby", "sort_by":
			conditions = append(conditions, storage.WithSortBy(v[0]))
		case "sortorder", "sort_order":
			conditions = append(conditions, storage.WithSortDesc(strings.EqualFold(v[0], "desc")))
		case "includeshared", "include_shared":
			if b, err := strconv.ParseBool(v[0]); err == nil {
				includeShared = b
			}
		}
	}

	if includeShared {
		conditions = append(conditions, storage.WithIncludeShared())
	}

	conditions = append(conditions, storage.WithOffset((page-1)*limit), storage.WithLimit(limit))

	return svc.storage.QueryExplorations(ctx, conditions...)
}

func (svc explorationSvc) Create(ctx context.Context, exploration types.Exploration) (types.Exploration, error) {
	if exploration.UserID == "" {
		return types.Exploration{}, fmt.Errorf("no user is set on exploration: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(exploration.Name) == "" {
		return types.Exploration{}, fmt.Errorf("no name is set on exploration: %w", ErrInvalidInput)
	}

	if exploration.ID == "" {
		exploration.ID = uuid.NewString()
	}

	err := svc.storage.AddExploration(ctx, exploration)
	if err != nil {
		return types.Exploration{}, err
	}

	return svc.storage.GetExploration(ctx, storage.WithExplorationID(exploration.ID))
}

func (svc explorationSvc) Get(ctx context.Context, explorationID, userID string) (types.Exploration, error) {
	exploration, err := svc.access(ctx, explorationID, userID, false)
	if err != nil {
		return types.Exploration{}, err
	}

	cells, err := svc.storage.GetCells(ctx, explorationID)
	if err != nil {
		return types.Exploration{}, err
	}

	exploration.Cells = cells
	exploration.CellCount = len(cells)

	// the returned lastAccessedAt reflects the previous visit
	err = svc.storage.TouchExploration(ctx, explorationID)
	if err != nil {
		logging.GetFromContext(ctx).Warn("could not update access time", "exploration_id", explorationID, "err", err.Error())
	}

	return exploration, nil
}

func (svc explorationSvc) Update(ctx context.Context, explorationID string, fields map[string]any, userID string) (types.Exploration, error) {
	log := logging.GetFromContext(ctx)

	exploration, err := svc.access(ctx, explorationID, userID, true)
	if err != nil {
		return types.Exploration{}, err
	}

	for k, v := range fields {
		switch k {
		case "name":
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				exploration.Name = s
			}
		case "description":
			if s, ok := v.(string); ok {
				exploration.Description = s
			}
		case "projectId":
			if s, ok := v.(string); ok {
				exploration.ProjectID = s
			}
		case "tags":
			exploration.Tags = asStringSlice(v)
		case "isPublic":
			if b, ok := v.(bool); ok {
				exploration.IsPublic = b
			}
		default:
			log.Debug("field not mapped for update", "exploration_id", explorationID, "name", k)
		}
	}

	err = svc.storage.UpdateExploration(ctx, exploration)
	if err != nil {
		return types.Exploration{}, err
	}

	return svc.storage.GetExploration(ctx, storage.WithExplorationID(explorationID))
}

func (svc explorationSvc) Delete(ctx context.Context, explorationID, userID string) error {
	exploration, err := svc.storage.GetExploration(ctx, storage.WithExplorationID(explorationID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) || errors.Is(err, storage.ErrDeleted) {
			return ErrExplorationNotFound
		}
		return err
	}

	if exploration.UserID != userID {
		return fmt.Errorf("only the owner can delete: %w", ErrAccessDenied)
	}

	return svc.storage.DeleteExploration(ctx, explorationID)
}

func (svc explorationSvc) Duplicate(ctx context.Context, explorationID, userID string) (types.Exploration, error) {
	original, err := svc.access(ctx, explorationID, userID, false)
	if err != nil {
		return types.Exploration{}, err
	}

	cells, err := svc.storage.GetCells(ctx, explorationID)
	if err != nil {
		return types.Exploration{}, err
	}

	duplicate := types.Exploration{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProjectID:   original.ProjectID,
		Name:        original.Name + " (Copy)",
		Description: original.Description,
		Tags:        original.Tags,
	}

	err = svc.storage.AddExploration(ctx, duplicate)
	if err != nil {
		return types.Exploration{}, err
	}

	// outputs are not copied, the new owner re-executes
	for _, cell := range cells {
		err = svc.storage.AddCell(ctx, types.Cell{
			ID:            uuid.NewString(),
			ExplorationID: duplicate.ID,
			CellType:      cell.CellType,
			OrderIndex:    cell.OrderIndex,
			Content:       cell.Content,
			IsCollapsed:   cell.IsCollapsed,
		})
		if err != nil {
			return types.Exploration{}, err
		}
	}

	return svc.storage.GetExploration(ctx, storage.WithExplorationID(duplicate.ID))
}

func (svc explorationSvc) AddCell(ctx context.Context, explorationID string, cell types.Cell, userID string) (types.Cell, error) {
	_, err := svc.access(ctx, explorationID, userID, true)
	if err != nil {
		return types.Cell{}, err
	}

	if !types.IsValidCellType(cell.CellType) {
		return types.Cell{}, fmt.Errorf("unknown cell type %q: %w", cell.CellType, ErrInvalidInput)
	}

	if cell.ID == "" {
		cell.ID = uuid.NewString()
	}
	cell.ExplorationID = explorationID
	if cell.Content == nil {
		cell.Content = map[string]any{}
	}

	if cell.OrderIndex < 0 {
		cells, err := svc.storage.GetCells(ctx, explorationID)
		if err != nil {
			return types.Cell{}, err
		}

		next := 0
		for _, c := range cells {
			if c.OrderIndex >= next {
				next = c.OrderIndex + 1
			}
		}
		cell.OrderIndex = next
	}

	err = svc.storage.AddCell(ctx, cell)
	if err != nil {
		return types.Cell{}, err
	}

	return svc.storage.GetCell(ctx, explorationID, cell.ID)
}

func (svc explorationSvc) UpdateCell(ctx context.Context, explorationID, cellID string, fields map[string]any, userID string) (types.Cell, error) {
	log := logging.GetFromContext(ctx)

	_, err := svc.access(ctx, explorationID, userID, true)
	if err != nil {
		return types.Cell{}, err
	}

	cell, err := svc.storage.GetCell(ctx, explorationID, cellID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Cell{}, ErrCellNotFound
		}
		return types.Cell{}, err
	}

	for k, v := range fields {
		switch k {
		case "content":
			if m, ok := v.(map[string]any); ok {
				cell.Content = m
			}
		case "isCollapsed":
			if b, ok := v.(bool); ok {
				cell.IsCollapsed = b
			}
		default:
			log.Debug("field not mapped for update", "cell_id", cellID, "name", k)
		}
	}

	err = svc.storage.UpdateCell(ctx, cell)
	if err != nil {
		return types.Cell{}, err
	}

	return svc.storage.GetCell(ctx, explorationID, cellID)
}

func (svc explorationSvc) DeleteCell(ctx context.Context, explorationID, cellID, userID string) error {
	_, err := svc.access(ctx, explorationID, userID, true)
	if err != nil {
		return err
	}

	err = svc.storage.DeleteCell(ctx, explorationID, cellID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrCellNotFound
		}
		return err
	}

	return nil
}

func (svc explorationSvc) ReorderCells(ctx context.Context, explorationID string, cellIDs []string, userID string) error {
	_, err := svc.access(ctx, explorationID, userID, true)
	if err != nil {
		return err
	}

	if len(cellIDs) == 0 {
		return fmt.Errorf("no cells to reorder: %w", ErrInvalidInput)
	}

	return svc.storage.ReorderCells(ctx, explorationID, cellIDs)
}

func (svc explorationSvc) ExecuteCell(ctx context.Context, explorationID, cellID, userID string) (types.Cell, error) {
	log := logging.GetFromContext(ctx)

	_, err := svc.access(ctx, explorationID, userID, true)
	if err != nil {
		return types.Cell{}, err
	}

	cell, err := svc.storage.GetCell(ctx, explorationID, cellID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Cell{}, ErrCellNotFound
		}
		return types.Cell{}, err
	}

	if cell.CellType != types.CellTypeSQL {
		return types.Cell{}, fmt.Errorf("only sql cells can be executed: %w", ErrInvalidInput)
	}

	query, _ := cell.Content["query"].(string)
	query = strings.TrimSpace(query)
	if query == "" {
		return types.Cell{}, fmt.Errorf("cell has no query: %w", ErrInvalidInput)
	}

	key := cache.CellKey(explorationID, cellID, query)
	executedAt := time.Now().UTC()

	output := map[string]any{}
	if svc.cache.Get(ctx, key, &output) {
		output["cached"] = true

		ms := asInt64(output["executionTimeMs"])
		err = svc.storage.SetCellOutput(ctx, explorationID, cellID, output, executedAt, ms)
		if err != nil {
			return types.Cell{}, err
		}

		cell.Output = output
		cell.ExecutedAt = &executedAt
		cell.ExecutionTimeMs = &ms

		return cell, nil
	}

	result, err := svc.warehouse.Query(ctx, query, MaxQueryRows)
	if err != nil {
		log.Error("cell execution failed", "exploration_id", explorationID, "cell_id", cellID, "err", err.Error())

		failure := map[string]any{
			"error":      err.Error(),
			"executedAt": executedAt.Format(time.RFC3339),
		}
		if serr := svc.storage.SetCellOutput(ctx, explorationID, cellID, failure, executedAt, 0); serr != nil {
			log.Error("could not store failed cell output", "cell_id", cellID, "err", serr.Error())
		}

		return types.Cell{}, fmt.Errorf("%w: %w", ErrExecutionFailed, err)
	}

	elapsed := time.Since(executedAt).Milliseconds()

	output = map[string]any{
		"schema":          result.Schema,
		"rows":            result.Rows,
		"totalRows":       len(result.Rows),
		"executionTimeMs": elapsed,
		"executedAt":      executedAt.Format(time.RFC3339),
		"cached":          false,
	}

	err = svc.storage.SetCellOutput(ctx, explorationID, cellID, output, executedAt, elapsed)
	if err != nil {
		return types.Cell{}, err
	}

	if len(result.Rows) < cacheRowLimit {
		svc.cache.Set(ctx, key, output, cache.QueryTTL)
	}

	cell.Output = output
	cell.ExecutedAt = &executedAt
	cell.ExecutionTimeMs = &elapsed

	return cell, nil
}

func (svc explorationSvc) Shares(ctx context.Context, explorationID, userID string) ([]types.Share, error) {
	err := svc.requireOwner(ctx, explorationID, userID)
	if err != nil {
		return nil, err
	}

	return svc.storage.GetShares(ctx, explorationID)
}

func (svc explorationSvc) AddShare(ctx context.Context, explorationID string, share types.Share, createLink bool, userID string) (types.Share, error) {
	err := svc.requireOwner(ctx, explorationID, userID)
	if err != nil {
		return types.Share{}, err
	}

	if share.PermissionLevel == "" {
		share.PermissionLevel = types.PermissionView
	}
	if !types.IsValidPermission(share.PermissionLevel) {
		return types.Share{}, fmt.Errorf("unknown permission level %q: %w", share.PermissionLevel, ErrInvalidInput)
	}
	if !createLink && share.SharedWithUserID == "" && share.SharedWithEmail == "" {
		return types.Share{}, fmt.Errorf("share needs a recipient or a link: %w", ErrInvalidInput)
	}

	share.ID = uuid.NewString()
	share.ExplorationID = explorationID
	share.SharedByUserID = userID

	if createLink {
		share.ShareToken, err = newShareToken()
		if err != nil {
			return types.Share{}, err
		}
	}

	err = svc.storage.AddShare(ctx, share)
	if err != nil {
		return types.Share{}, err
	}

	return share, nil
}

func (svc explorationSvc) RevokeShare(ctx context.Context, explorationID, shareID, userID string) error {
	err := svc.requireOwner(ctx, explorationID, userID)
	if err != nil {
		return err
	}

	err = svc.storage.DeleteShare(ctx, explorationID, shareID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrShareNotFound
		}
		return err
	}

	return nil
}

func (svc explorationSvc) GetShared(ctx context.Context, token string) (types.Exploration, types.Share, error) {
	share, err := svc.storage.GetShareByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Exploration{}, types.Share{}, ErrShareNotFound
		}
		return types.Exploration{}, types.Share{}, err
	}

	if share.ExpiresAt != nil && share.ExpiresAt.Before(time.Now().UTC()) {
		return types.Exploration{}, types.Share{}, ErrShareExpired
	}

	exploration, err := svc.storage.GetExploration(ctx, storage.WithExplorationID(share.ExplorationID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) || errors.Is(err, storage.ErrDeleted) {
			return types.Exploration{}, types.Share{}, ErrExplorationNotFound
		}
		return types.Exploration{}, types.Share{}, err
	}

	cells, err := svc.storage.GetCells(ctx, share.ExplorationID)
	if err != nil {
		return types.Exploration{}, types.Share{}, err
	}

	exploration.Cells = cells
	exploration.CellCount = len(cells)

	return exploration, share, nil
}

// access loads the exploration and verifies that the user may see it, or
// change it when requireEdit is set. Owners always pass, public
// explorations are readable by anyone and shares grant their permission
// level.
func (svc explorationSvc) access(ctx context.Context, explorationID, userID string, requireEdit bool) (types.Exploration, error) {
	exploration, err := svc.storage.GetExploration(ctx, storage.WithExplorationID(explorationID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) || errors.Is(err, storage.ErrDeleted) {
			return types.Exploration{}, ErrExplorationNotFound
		}
		return types.Exploration{}, err
	}

	if exploration.UserID == userID {
		return exploration, nil
	}

	if exploration.IsPublic && !requireEdit {
		return exploration, nil
	}

	share, err := svc.storage.GetShareFor(ctx, explorationID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Exploration{}, ErrAccessDenied
		}
		return types.Exploration{}, err
	}

	if requireEdit && share.PermissionLevel == types.PermissionView {
		return types.Exploration{}, fmt.Errorf("edit permission required: %w", ErrAccessDenied)
	}

	return exploration, nil
}

func (svc explorationSvc) requireOwner(ctx context.Context, explorationID, userID string) error {
	exploration, err := svc.storage.GetExploration(ctx, storage.WithExplorationID(explorationID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) || errors.Is(err, storage.ErrDeleted) {
			return ErrExplorationNotFound
		}
		return err
	}

	if exploration.UserID != userID {
		return fmt.Errorf("only the owner can manage shares: %w", ErrAccessDenied)
	}

	return nil
}

func newShareToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func asStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		return lo.FilterMap(vals, func(item any, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		})
	}
	return nil
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
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
