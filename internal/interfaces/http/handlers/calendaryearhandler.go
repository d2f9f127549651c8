package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	calendaryearApp "hostelhub/internal/application/calendaryear"
	"hostelhub/internal/domain/calendaryear"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/utils"
)

type CalendarYearHandler struct {
	service *calendaryearApp.Service
	logger  logger.Interface
}

func NewCalendarYearHandler(service *calendaryearApp.Service, logger logger.Interface) *CalendarYearHandler {
	return &CalendarYearHandler{service: service, logger: logger}
}

type CalendarYearResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Active    bool   `json:"active"`
}

func toCalendarYearResponse(y *calendaryear.CalendarYear) CalendarYearResponse {
	return CalendarYearResponse{
		ID:        y.ID(),
		Name:      y.Name(),
		StartDate: y.StartDate().Format(time.RFC3339),
		EndDate:   y.EndDate().Format(time.RFC3339),
		Active:    y.IsActive(),
	}
}

type CreateCalendarYearRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// @Summary		Create calendar year
// @Tags			calendar-years
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			year	body		CreateCalendarYearRequest	true	"Calendar year data"
// @Success		201		{object}	utils.APIResponse			"Calendar year created"
// @Router			/calendar-years [post]
func (h *CalendarYearHandler) Create(c *gin.Context) {
	var req CreateCalendarYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid start_date, expected RFC3339")
		return
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid end_date, expected RFC3339")
		return
	}

	created, err := h.service.Create(c.Request.Context(), calendaryearApp.CreateYearCommand{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		h.logger.Warnw("failed to create calendar year", "error", err, "name", req.Name)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCalendarYearResponse(created))
}

// @Summary		Activate calendar year
// @Description	Make this the single active booking period
// @Tags			calendar-years
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Calendar year ID"
// @Success		200	{object}	utils.APIResponse	"Calendar year activated"
// @Router			/calendar-years/{id}/activate [post]
func (h *CalendarYearHandler) Activate(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid calendar year id")
		return
	}

	activated, err := h.service.Activate(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "calendar year activated", toCalendarYearResponse(activated))
}

// @Summary		Active calendar year
// @Tags			calendar-years
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse	"Active calendar year"
// @Failure		404	{object}	utils.APIResponse	"No active year"
// @Router			/calendar-years/active [get]
func (h *CalendarYearHandler) GetActive(c *gin.Context) {
	year, err := h.service.GetActive(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toCalendarYearResponse(year))
}

// @Summary		List calendar years
// @Tags			calendar-years
// @Produce		json
// @Security		Bearer
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Calendar years"
// @Router			/calendar-years [get]
func (h *CalendarYearHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	years, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]CalendarYearResponse, 0, len(years))
	for _, y := range years {
		items = append(items, toCalendarYearResponse(y))
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
