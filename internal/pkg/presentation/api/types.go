package api

import (
	"encoding/json"
	"net/http"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type alertListResponse struct {
	Alerts     []types.Alert    `json:"alerts"`
	Total      uint64           `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
	Stats      types.AlertStats `json:"stats"`
}

func newAlertListResponse(collection types.Collection[types.Alert], stats types.AlertStats) alertListResponse {
	data := collection.Data
	if data == nil {
		data = []types.Alert{}
	}

	limit, page, totalPages := pagination(collection.Offset, collection.Limit, collection.TotalCount)

	return alertListResponse{
		Alerts:     data,
		Total:      collection.TotalCount,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Stats:      stats,
	}
}

type deleteAlertResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type transitionRequest struct {
	Action string `json:"action"`

	// SnoozeDuration is in hours and only honoured for the snooze action.
	SnoozeDuration int `json:"snoozeDuration,omitempty"`
}

type summarizeRequest struct {
	Nodes      []types.LineageNode `json:"nodes"`
	Edges      []types.LineageEdge `json:"edges"`
	RootNodeID string              `json:"rootNodeId"`
}

type executeRequest struct {
	Query string `json:"query"`
}

type explorationListResponse struct {
	Items      []types.Exploration `json:"items"`
	Total      uint64              `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
}

func newExplorationListResponse(collection types.Collection[types.Exploration]) explorationListResponse {
	items := collection.Data
	if items == nil {
		items = []types.Exploration{}
	}

	pageSize, page, totalPages := pagination(collection.Offset, collection.Limit, collection.TotalCount)

	return explorationListResponse{
		Items:      items,
		Total:      collection.TotalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

type reorderRequest struct {
	CellIDs []string `json:"cellIds"`
}

type shareRequest struct {
	SharedWithUserID string `json:"sharedWithUserId,omitempty"`
	SharedWithEmail  string `json:"sharedWithEmail,omitempty"`
	PermissionLevel  string `json:"permissionLevel,omitempty"`
	CreateLink       bool   `json:"createLink,omitempty"`
	ExpiresInHours   int    `json:"expiresInHours,omitempty"`
}

type sharedExplorationResponse struct {
	types.Exploration
	PermissionLevel string `json:"permissionLevel"`
	Shared          bool   `json:"shared"`
}

func pagination(offset, limit, totalCount uint64) (int, int, int) {
	if limit == 0 {
		limit = 1
	}

	page := int(offset/limit) + 1
	totalPages := int((totalCount + limit - 1) / limit)

	return int(limit), page, totalPages
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, errorResponse{Error: msg})
}
