package types

import "time"

const (
	CellTypeSQL           = "sql"
	CellTypeMarkdown      = "markdown"
	CellTypeVisualization = "visualization"
)

const (
	PermissionView  = "view"
	PermissionEdit  = "edit"
	PermissionAdmin = "admin"
)

func IsValidCellType(t string) bool {
	switch t {
	case CellTypeSQL, CellTypeMarkdown, CellTypeVisualization:
		return true
	}
	return false
}

func IsValidPermission(p string) bool {
	switch p {
	case PermissionView, PermissionEdit, PermissionAdmin:
		return true
	}
	return false
}

// Exploration is a notebook style analysis owned by a user. Cells is only
// populated when a single exploration is fetched, never in listings.
type Exploration struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	ProjectID   string   `json:"projectId,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublic    bool     `json:"isPublic"`

	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`

	CellCount int    `json:"cellCount"`
	Cells     []Cell `json:"cells,omitempty"`
}

type Cell struct {
	ID            string         `json:"id"`
	ExplorationID string         `json:"explorationId"`
	CellType      string         `json:"cellType"`
	OrderIndex    int            `json:"orderIndex"`
	Content       map[string]any `json:"content"`
	Output        map[string]any `json:"output,omitempty"`
	IsCollapsed   bool           `json:"isCollapsed"`

	ExecutedAt      *time.Time `json:"executedAt,omitempty"`
	ExecutionTimeMs *int64     `json:"executionTimeMs,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Share struct {
	ID               string     `json:"id"`
	ExplorationID    string     `json:"explorationId"`
	SharedByUserID   string     `json:"sharedByUserId"`
	SharedWithUserID string     `json:"sharedWithUserId,omitempty"`
	SharedWithEmail  string     `json:"sharedWithEmail,omitempty"`
	PermissionLevel  string     `json:"permissionLevel"`
	ShareToken       string     `json:"shareToken,omitempty"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}
