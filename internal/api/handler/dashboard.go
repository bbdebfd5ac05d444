package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bounty-bunny/DataSage/internal/api/middleware"
	"github.com/bounty-bunny/DataSage/internal/api/response"
	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/bounty-bunny/DataSage/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DashboardHandler handles dashboard, share and revision endpoints
type DashboardHandler struct {
	dashboardService *service.DashboardService
	accessService    *service.AccessService
	revisionService  *service.RevisionService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	dashboardService *service.DashboardService,
	accessService *service.AccessService,
	revisionService *service.RevisionService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		accessService:    accessService,
		revisionService:  revisionService,
	}
}

func dashboardID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "dashboardID"))
}

// Create handles dashboard creation
func (h *DashboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.DashboardCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	dashboard, err := h.dashboardService.Save(r.Context(), userID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, dashboard)
}

// List handles listing the caller's dashboards, optionally filtered by the
// workspace_id query parameter
func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var workspaceID *uuid.UUID
	if raw := r.URL.Query().Get("workspace_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "invalid workspace_id")
			return
		}
		workspaceID = &id
	}

	dashboards, err := h.dashboardService.ListForUser(r.Context(), userID, workspaceID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, dashboards)
}

// Get handles fetching one dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := dashboardID(r)
	if err != nil {
		response.BadRequest(w, "invalid dashboard ID")
		return
	}

	dashboard, err := h.dashboardService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, dashboard)
}

// Update handles the edit path: new columns and chart type, new revision
func (h *DashboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := dashboardID(r)
	if err != nil {
		response.BadRequest(w, "invalid dashboard ID")
		return
	}

	var input domain.DashboardUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	version, err := h.dashboardService.Update(r.Context(), userID, id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, map[string]int64{"version": version})
}

// Delete handles dashboard deletion
func (h *DashboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := dashboardID(r)
	if err != nil {
		response.BadRequest(w, "invalid dashboard ID")
		return
	}

	if err := h.dashboardService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}

// Grant handles granting or updating a share
func (h *DashboardHandler) Grant(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := dashboardID(r)
	if err != nil {
		response.BadRequest(w, "invalid dashboard ID")
		return
	}

	granteeID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		response.BadRequest(w, "invalid user ID")
		return
	}

	var input domain.ShareGrant
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.accessService.Grant(r.Context(), userID, id, granteeID, input.Permission); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}

// Shares handles listing a dashboard's grants
func (h *DashboardHandler) Shares(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := dashboardID(r)
	if err != nil {
		response.BadRequest(w, "invalid dashboard ID")
		return
	}

	shares, err := h.accessService.ListShares(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, shares)
}

// Revoke handles removing a share
func (h *DashboardHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := dashboardID(r)
	if err != nil {
		response.BadRequest(w, "invalid dashboard ID")
		return
	}

	granteeID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		response.BadRequest(w, "invalid user ID")
		return
	}

	if err := h.accessService.Revoke(r.Context(), userID, id, granteeID); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}

// History handles listing a dashboard's revisions, oldest first
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := dashboardID(r)
	if err != nil {
		response.BadRequest(w, "invalid dashboard ID")
		return
	}

	revisions, err := h.revisionService.History(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, revisions)
}

// Restore handles reinstating a prior revision as the live configuration
func (h *DashboardHandler) Restore(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := dashboardID(r)
	if err != nil {
		response.BadRequest(w, "invalid dashboard ID")
		return
	}

	version, err := strconv.ParseInt(chi.URLParam(r, "version"), 10, 64)
	if err != nil || version < 1 {
		response.BadRequest(w, "invalid version number")
		return
	}

	dashboard, err := h.revisionService.Restore(r.Context(), userID, id, version)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, dashboard)
}
