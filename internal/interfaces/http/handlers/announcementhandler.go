package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	announcementApp "hostelhub/internal/application/announcement"
	"hostelhub/internal/domain/announcement"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/utils"
)

type AnnouncementHandler struct {
	service *announcementApp.Service
	logger  logger.Interface
}

func NewAnnouncementHandler(service *announcementApp.Service, logger logger.Interface) *AnnouncementHandler {
	return &AnnouncementHandler{service: service, logger: logger}
}

type AnnouncementResponse struct {
	ID           uint       `json:"id"`
	HostelID     *uint      `json:"hostel_id,omitempty"`
	AuthorID     uint       `json:"author_id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	RenderedBody string     `json:"rendered_body"`
	Audience     string     `json:"audience"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toAnnouncementResponse(a *announcement.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:           a.ID(),
		HostelID:     a.HostelID(),
		AuthorID:     a.AuthorID(),
		Title:        a.Title(),
		Body:         a.Body(),
		RenderedBody: a.RenderedBody(),
		Audience:     string(a.Audience()),
		PublishedAt:  a.PublishedAt(),
		CreatedAt:    a.CreatedAt(),
	}
}

type CreateAnnouncementRequest struct {
	HostelID *uint  `json:"hostel_id"`
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Audience string `json:"audience" binding:"omitempty,oneof=all residents admins"`
	Publish  bool   `json:"publish"`
}

// @Summary		Create announcement
// @Description	Create an announcement; the markdown body is rendered and sanitized
// @Tags			announcements
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			announcement	body		CreateAnnouncementRequest	true	"Announcement data"
// @Success		201				{object}	utils.APIResponse			"Announcement created"
// @Router			/announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), announcementApp.CreateAnnouncementCommand{
		AuthorID: userID,
		HostelID: req.HostelID,
		Title:    req.Title,
		Body:     req.Body,
		Audience: req.Audience,
		Publish:  req.Publish,
	})
	if err != nil {
		h.logger.Warnw("failed to create announcement", "error", err, "author_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAnnouncementResponse(created))
}

type UpdateAnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// @Summary		Update announcement
// @Tags			announcements
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id				path		int							true	"Announcement ID"
// @Param			announcement	body		UpdateAnnouncementRequest	true	"Announcement data"
// @Success		200				{object}	utils.APIResponse			"Announcement updated"
// @Router			/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid announcement id")
		return
	}

	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), announcementApp.UpdateAnnouncementCommand{
		AnnouncementID: id,
		Title:          req.Title,
		Body:           req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "announcement updated", toAnnouncementResponse(updated))
}

// @Summary		Publish announcement
// @Tags			announcements
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Announcement ID"
// @Success		200	{object}	utils.APIResponse	"Announcement published"
// @Router			/announcements/{id}/publish [post]
func (h *AnnouncementHandler) Publish(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid announcement id")
		return
	}

	published, err := h.service.Publish(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "announcement published", toAnnouncementResponse(published))
}

// @Summary		Unpublish announcement
// @Tags			announcements
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Announcement ID"
// @Success		200	{object}	utils.APIResponse	"Announcement unpublished"
// @Router			/announcements/{id}/publish [delete]
func (h *AnnouncementHandler) Unpublish(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid announcement id")
		return
	}

	unpublished, err := h.service.Unpublish(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "announcement unpublished", toAnnouncementResponse(unpublished))
}

// @Summary		Delete announcement
// @Tags			announcements
// @Produce		json
// @Security		Bearer
// @Param			id	path	int	true	"Announcement ID"
// @Success		204
// @Router			/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid announcement id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// @Summary		List published announcements
// @Description	Published announcements, optionally scoped to a hostel
// @Tags			announcements
// @Produce		json
// @Security		Bearer
// @Param			hostel_id	query		int					false	"Hostel ID"
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Announcements"
// @Router			/announcements [get]
func (h *AnnouncementHandler) ListPublished(c *gin.Context) {
	var hostelID *uint
	if raw := c.Query("hostel_id"); raw != "" {
		id, ok := utils.ParseUintQuery(c, "hostel_id")
		if !ok {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid hostel_id")
			return
		}
		hostelID = &id
	}

	p := utils.ParsePagination(c)
	announcements, total, err := h.service.ListPublished(c.Request.Context(), hostelID, p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		items = append(items, toAnnouncementResponse(a))
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}

// @Summary		List all announcements
// @Description	All announcements including drafts (admin)
// @Tags			announcements
// @Produce		json
// @Security		Bearer
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Announcements"
// @Router			/admin/announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	announcements, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		items = append(items, toAnnouncementResponse(a))
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
