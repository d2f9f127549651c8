package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	roomApp "hostelhub/internal/application/room"
	"hostelhub/internal/domain/room"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/utils"
)

type RoomHandler struct {
	service *roomApp.Service
	logger  logger.Interface
}

func NewRoomHandler(service *roomApp.Service, logger logger.Interface) *RoomHandler {
	return &RoomHandler{service: service, logger: logger}
}

type RoomResponse struct {
	ID            uint   `json:"id"`
	HostelID      uint   `json:"hostel_id"`
	Label         string `json:"label"`
	Price         string `json:"price"`
	MaxCapacity   int    `json:"max_capacity"`
	ResidentCount int    `json:"resident_count"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

func toRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID(),
		HostelID:      r.HostelID(),
		Label:         r.Label(),
		Price:         r.Price().StringFixed(2),
		MaxCapacity:   r.MaxCapacity(),
		ResidentCount: r.ResidentCount(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt().Format(time.RFC3339),
	}
}

type CreateRoomRequest struct {
	Label       string `json:"label" binding:"required"`
	Price       string `json:"price" binding:"required"`
	MaxCapacity int    `json:"max_capacity" binding:"required,min=1"`
}

// @Summary		Create room
// @Tags			rooms
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int					true	"Hostel ID"
// @Param			room	body		CreateRoomRequest	true	"Room data"
// @Success		201		{object}	utils.APIResponse	"Room created"
// @Failure		409		{object}	utils.APIResponse	"Label already used in hostel"
// @Router			/hostels/{id}/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	hostelID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid hostel id")
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid price")
		return
	}

	created, err := h.service.Create(c.Request.Context(), roomApp.CreateRoomCommand{
		HostelID:    hostelID,
		Label:       req.Label,
		Price:       price,
		MaxCapacity: req.MaxCapacity,
	})
	if err != nil {
		h.logger.Warnw("failed to create room", "error", err, "hostel_id", hostelID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toRoomResponse(created))
}

type UpdateRoomPriceRequest struct {
	Price string `json:"price" binding:"required"`
}

// @Summary		Update room price
// @Tags			rooms
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int						true	"Room ID"
// @Param			price	body		UpdateRoomPriceRequest	true	"New price"
// @Success		200		{object}	utils.APIResponse		"Room updated"
// @Router			/rooms/{id}/price [put]
func (h *RoomHandler) UpdatePrice(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var req UpdateRoomPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid price")
		return
	}

	updated, err := h.service.UpdatePrice(c.Request.Context(), id, price)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "room price updated", toRoomResponse(updated))
}

// @Summary		Start room maintenance
// @Tags			rooms
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Room ID"
// @Success		200	{object}	utils.APIResponse	"Room under maintenance"
// @Failure		409	{object}	utils.APIResponse	"Room is occupied"
// @Router			/rooms/{id}/maintenance [post]
func (h *RoomHandler) StartMaintenance(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid room id")
		return
	}

	updated, err := h.service.StartMaintenance(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "room placed under maintenance", toRoomResponse(updated))
}

// @Summary		End room maintenance
// @Tags			rooms
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Room ID"
// @Success		200	{object}	utils.APIResponse	"Room available"
// @Router			/rooms/{id}/maintenance [delete]
func (h *RoomHandler) EndMaintenance(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid room id")
		return
	}

	updated, err := h.service.EndMaintenance(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "room maintenance ended", toRoomResponse(updated))
}

// @Summary		Delete room
// @Tags			rooms
// @Produce		json
// @Security		Bearer
// @Param			id	path	int	true	"Room ID"
// @Success		204
// @Failure		409	{object}	utils.APIResponse	"Room has residents"
// @Router			/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// @Summary		Get room
// @Tags			rooms
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Room ID"
// @Success		200	{object}	utils.APIResponse	"Room"
// @Router			/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid room id")
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRoomResponse(found))
}

// @Summary		List hostel rooms
// @Tags			rooms
// @Produce		json
// @Security		Bearer
// @Param			id			path		int					true	"Hostel ID"
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Rooms"
// @Router			/hostels/{id}/rooms [get]
func (h *RoomHandler) ListByHostel(c *gin.Context) {
	hostelID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid hostel id")
		return
	}

	p := utils.ParsePagination(c)
	rooms, total, err := h.service.ListByHostel(c.Request.Context(), hostelID, p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, toRoomResponse(r))
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
