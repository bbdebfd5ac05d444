package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bounty-bunny/DataSage/internal/api/middleware"
	"github.com/bounty-bunny/DataSage/internal/api/response"
	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/bounty-bunny/DataSage/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// WorkspaceHandler handles workspace endpoints
type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceService *service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// Create handles workspace creation. Workspace creation does not imply
// membership; the creator is joined as admin with a separate AddMember
// call so the store contract stays explicit.
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.WorkspaceCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	workspace, err := h.workspaceService.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.workspaceService.AddMember(r.Context(), userID, workspace.ID, domain.RoleAdmin); err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, workspace)
}

// List handles listing the caller's workspaces
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	workspaces, err := h.workspaceService.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, workspaces)
}

// AddMember handles joining a user to a workspace
func (h *WorkspaceHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := uuid.Parse(chi.URLParam(r, "workspaceID"))
	if err != nil {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	var input struct {
		UserID uuid.UUID   `json:"user_id" validate:"required"`
		Role   domain.Role `json:"role" validate:"omitempty,oneof=viewer editor admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.workspaceService.AddMember(r.Context(), input.UserID, workspaceID, input.Role); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}
