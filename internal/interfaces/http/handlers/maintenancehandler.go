package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	maintenanceApp "hostelhub/internal/application/maintenance"
	"hostelhub/internal/domain/maintenance"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/utils"
)

type MaintenanceHandler struct {
	service *maintenanceApp.Service
	logger  logger.Interface
}

func NewMaintenanceHandler(service *maintenanceApp.Service, logger logger.Interface) *MaintenanceHandler {
	return &MaintenanceHandler{service: service, logger: logger}
}

type MaintenanceRequestResponse struct {
	ID                uint       `json:"id"`
	RoomID            uint       `json:"room_id"`
	ResidentProfileID uint       `json:"resident_profile_id"`
	Category          string     `json:"category"`
	Description       string     `json:"description"`
	Status            string     `json:"status"`
	ResolutionNote    *string    `json:"resolution_note,omitempty"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func toMaintenanceResponse(r *maintenance.Request) MaintenanceRequestResponse {
	return MaintenanceRequestResponse{
		ID:                r.ID(),
		RoomID:            r.RoomID(),
		ResidentProfileID: r.ResidentProfileID(),
		Category:          string(r.Category()),
		Description:       r.Description(),
		Status:            string(r.Status()),
		ResolutionNote:    r.ResolutionNote(),
		ResolvedAt:        r.ResolvedAt(),
		CreatedAt:         r.CreatedAt(),
	}
}

type CreateMaintenanceRequest struct {
	Category    string `json:"category" binding:"required,oneof=electrical plumbing furniture other"`
	Description string `json:"description" binding:"required"`
}

// @Summary		Report room issue
// @Description	File a maintenance request for the caller's assigned room
// @Tags			maintenance
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			request	body		CreateMaintenanceRequest	true	"Request data"
// @Success		201		{object}	utils.APIResponse			"Request created"
// @Failure		409		{object}	utils.APIResponse			"No room assignment"
// @Router			/maintenance-requests [post]
func (h *MaintenanceHandler) Create(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), maintenanceApp.CreateRequestCommand{
		UserID:      userID,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Warnw("failed to create maintenance request", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toMaintenanceResponse(created))
}

// @Summary		Start work on request
// @Tags			maintenance
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Request ID"
// @Success		200	{object}	utils.APIResponse	"Request in progress"
// @Router			/maintenance-requests/{id}/start [post]
func (h *MaintenanceHandler) Start(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request id")
		return
	}

	updated, err := h.service.Start(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request in progress", toMaintenanceResponse(updated))
}

type ResolveMaintenanceRequest struct {
	Note string `json:"note" binding:"required"`
}

// @Summary		Resolve request
// @Tags			maintenance
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id			path		int							true	"Request ID"
// @Param			resolution	body		ResolveMaintenanceRequest	true	"Resolution note"
// @Success		200			{object}	utils.APIResponse			"Request resolved"
// @Router			/maintenance-requests/{id}/resolve [post]
func (h *MaintenanceHandler) Resolve(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request id")
		return
	}

	var req ResolveMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	updated, err := h.service.Resolve(c.Request.Context(), id, req.Note)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request resolved", toMaintenanceResponse(updated))
}

// @Summary		Reject request
// @Tags			maintenance
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int							true	"Request ID"
// @Param			reason	body		ResolveMaintenanceRequest	true	"Rejection note"
// @Success		200		{object}	utils.APIResponse			"Request rejected"
// @Router			/maintenance-requests/{id}/reject [post]
func (h *MaintenanceHandler) Reject(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request id")
		return
	}

	var req ResolveMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	updated, err := h.service.Reject(c.Request.Context(), id, req.Note)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request rejected", toMaintenanceResponse(updated))
}

// @Summary		My maintenance requests
// @Tags			maintenance
// @Produce		json
// @Security		Bearer
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Requests"
// @Router			/maintenance-requests [get]
func (h *MaintenanceHandler) ListMine(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	requests, total, err := h.service.ListMine(c.Request.Context(), userID, p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]MaintenanceRequestResponse, 0, len(requests))
	for _, r := range requests {
		items = append(items, toMaintenanceResponse(r))
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}

// @Summary		List requests by status
// @Tags			maintenance
// @Produce		json
// @Security		Bearer
// @Param			status		query		string				true	"Status"	Enums(open, in_progress, resolved, rejected)
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Requests"
// @Router			/admin/maintenance-requests [get]
func (h *MaintenanceHandler) ListByStatus(c *gin.Context) {
	status := maintenance.Status(c.DefaultQuery("status", string(maintenance.StatusOpen)))
	if !status.IsValid() {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid status")
		return
	}

	p := utils.ParsePagination(c)
	requests, total, err := h.service.ListByStatus(c.Request.Context(), status, p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]MaintenanceRequestResponse, 0, len(requests))
	for _, r := range requests {
		items = append(items, toMaintenanceResponse(r))
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
