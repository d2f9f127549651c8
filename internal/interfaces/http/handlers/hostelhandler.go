package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	hostelApp "hostelhub/internal/application/hostel"
	"hostelhub/internal/domain/hostel"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/utils"
)

type HostelHandler struct {
	service *hostelApp.Service
	logger  logger.Interface
}

func NewHostelHandler(service *hostelApp.Service, logger logger.Interface) *HostelHandler {
	return &HostelHandler{service: service, logger: logger}
}

type HostelResponse struct {
	ID                       uint    `json:"id"`
	Name                     string  `json:"name"`
	Address                  string  `json:"address"`
	Gender                   string  `json:"gender"`
	AllowPartialPayment      bool    `json:"allow_partial_payment"`
	PartialPaymentPercentage *string `json:"partial_payment_percentage,omitempty"`
	CreatedAt                string  `json:"created_at"`
}

func toHostelResponse(h *hostel.Hostel) HostelResponse {
	resp := HostelResponse{
		ID:                  h.ID(),
		Name:                h.Name(),
		Address:             h.Address(),
		Gender:              string(h.Gender()),
		AllowPartialPayment: h.AllowPartialPayment(),
		CreatedAt:           h.CreatedAt().Format(time.RFC3339),
	}
	if pct := h.PartialPaymentPercentage(); pct != nil {
		s := pct.StringFixed(2)
		resp.PartialPaymentPercentage = &s
	}
	return resp
}

type CreateHostelRequest struct {
	Name                     string  `json:"name" binding:"required"`
	Address                  string  `json:"address" binding:"required"`
	Gender                   string  `json:"gender" binding:"required,oneof=male female mixed"`
	AllowPartialPayment      bool    `json:"allow_partial_payment"`
	PartialPaymentPercentage *string `json:"partial_payment_percentage"`
}

// @Summary		Create hostel
// @Tags			hostels
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			hostel	body		CreateHostelRequest	true	"Hostel data"
// @Success		201		{object}	utils.APIResponse	"Hostel created"
// @Failure		409		{object}	utils.APIResponse	"Name already taken"
// @Router			/hostels [post]
func (h *HostelHandler) Create(c *gin.Context) {
	var req CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	pct, ok := parseOptionalDecimal(c, req.PartialPaymentPercentage)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), hostelApp.CreateHostelCommand{
		Name:                     req.Name,
		Address:                  req.Address,
		Gender:                   req.Gender,
		AllowPartialPayment:      req.AllowPartialPayment,
		PartialPaymentPercentage: pct,
	})
	if err != nil {
		h.logger.Warnw("failed to create hostel", "error", err, "name", req.Name)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toHostelResponse(created))
}

type UpdateHostelRequest struct {
	Name                     string  `json:"name" binding:"required"`
	Address                  string  `json:"address" binding:"required"`
	AllowPartialPayment      *bool   `json:"allow_partial_payment"`
	PartialPaymentPercentage *string `json:"partial_payment_percentage"`
}

// @Summary		Update hostel
// @Tags			hostels
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int					true	"Hostel ID"
// @Param			hostel	body		UpdateHostelRequest	true	"Hostel data"
// @Success		200		{object}	utils.APIResponse	"Hostel updated"
// @Router			/hostels/{id} [put]
func (h *HostelHandler) Update(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid hostel id")
		return
	}

	var req UpdateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	pct, ok := parseOptionalDecimal(c, req.PartialPaymentPercentage)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), hostelApp.UpdateHostelCommand{
		HostelID:                 id,
		Name:                     req.Name,
		Address:                  req.Address,
		AllowPartialPayment:      req.AllowPartialPayment,
		PartialPaymentPercentage: pct,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "hostel updated", toHostelResponse(updated))
}

// @Summary		Delete hostel
// @Tags			hostels
// @Produce		json
// @Security		Bearer
// @Param			id	path	int	true	"Hostel ID"
// @Success		204
// @Router			/hostels/{id} [delete]
func (h *HostelHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid hostel id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// @Summary		Get hostel
// @Tags			hostels
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Hostel ID"
// @Success		200	{object}	utils.APIResponse	"Hostel"
// @Failure		404	{object}	utils.APIResponse	"Not found"
// @Router			/hostels/{id} [get]
func (h *HostelHandler) Get(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid hostel id")
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toHostelResponse(found))
}

// @Summary		List hostels
// @Tags			hostels
// @Produce		json
// @Security		Bearer
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Hostels"
// @Router			/hostels [get]
func (h *HostelHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	hostels, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]HostelResponse, 0, len(hostels))
	for _, hs := range hostels {
		items = append(items, toHostelResponse(hs))
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}

// parseOptionalDecimal parses a decimal string, writing a 400 on bad input.
func parseOptionalDecimal(c *gin.Context, raw *string) (*decimal.Decimal, bool) {
	if raw == nil {
		return nil, true
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid decimal value: "+*raw)
		return nil, false
	}
	return &d, true
}
