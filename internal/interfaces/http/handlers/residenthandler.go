package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	residentUsecases "hostelhub/internal/application/resident/usecases"
	"hostelhub/internal/domain/resident"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/utils"
)

type ResidentHandler struct {
	checkInUC  *residentUsecases.CheckInUseCase
	checkOutUC *residentUsecases.CheckOutUseCase
	queries    *residentUsecases.ResidentQueries
	logger     logger.Interface
}

func NewResidentHandler(
	checkInUC *residentUsecases.CheckInUseCase,
	checkOutUC *residentUsecases.CheckOutUseCase,
	queries *residentUsecases.ResidentQueries,
	logger logger.Interface,
) *ResidentHandler {
	return &ResidentHandler{
		checkInUC:  checkInUC,
		checkOutUC: checkOutUC,
		queries:    queries,
		logger:     logger,
	}
}

// @Summary		My profile
// @Tags			residents
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse	"Profile"
// @Failure		404	{object}	utils.APIResponse	"No profile"
// @Router			/residents/me [get]
func (h *ResidentHandler) Me(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	profile, err := h.queries.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profile)
}

type CheckInRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}

// @Summary		Check in
// @Description	Check into the assigned room with the emailed access code
// @Tags			residents
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			checkin	body		CheckInRequest		true	"Access code"
// @Success		200		{object}	utils.APIResponse	"Checked in"
// @Failure		401		{object}	utils.APIResponse	"Wrong or expired code"
// @Router			/residents/check-in [post]
func (h *ResidentHandler) CheckIn(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.checkInUC.Execute(c.Request.Context(), residentUsecases.CheckInCommand{
		UserID:     userID,
		AccessCode: req.AccessCode,
	})
	if err != nil {
		h.logger.Warnw("check-in failed", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "checked in", result)
}

// @Summary		Check out resident
// @Description	Archive the profile and free the bed space (admin)
// @Tags			residents
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Resident profile ID"
// @Success		200	{object}	utils.APIResponse	"Checked out"
// @Router			/admin/residents/{id}/check-out [post]
func (h *ResidentHandler) CheckOut(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid resident profile id")
		return
	}

	result, err := h.checkOutUC.Execute(c.Request.Context(), residentUsecases.CheckOutCommand{
		ResidentProfileID: id,
	})
	if err != nil {
		h.logger.Warnw("check-out failed", "error", err, "resident_profile_id", id)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "checked out", result)
}

// @Summary		Get resident
// @Tags			residents
// @Produce		json
// @Security		Bearer
// @Param			id	path		int					true	"Resident profile ID"
// @Success		200	{object}	utils.APIResponse	"Profile"
// @Router			/admin/residents/{id} [get]
func (h *ResidentHandler) Get(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid resident profile id")
		return
	}

	profile, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// @Summary		List hostel residents
// @Tags			residents
// @Produce		json
// @Security		Bearer
// @Param			id			path		int					true	"Hostel ID"
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Residents"
// @Router			/hostels/{id}/residents [get]
func (h *ResidentHandler) ListByHostel(c *gin.Context) {
	hostelID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid hostel id")
		return
	}

	p := utils.ParsePagination(c)
	items, total, err := h.queries.ListByHostel(c.Request.Context(), hostelID, p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}

type HistoricalResidentResponse struct {
	ID             uint       `json:"id"`
	ProfileID      uint       `json:"profile_id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	RoomID         uint       `json:"room_id"`
	HostelID       uint       `json:"hostel_id"`
	CalendarYearID uint       `json:"calendar_year_id"`
	CheckedInAt    *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt   time.Time  `json:"checked_out_at"`
	ArchivedAt     time.Time  `json:"archived_at"`
}

func toHistoricalResponse(r *resident.HistoricalResident) HistoricalResidentResponse {
	return HistoricalResidentResponse{
		ID:             r.ID,
		ProfileID:      r.ProfileID,
		FullName:       r.FullName,
		Email:          r.Email,
		RoomID:         r.RoomID,
		HostelID:       r.HostelID,
		CalendarYearID: r.CalendarYearID,
		CheckedInAt:    r.CheckedInAt,
		CheckedOutAt:   r.CheckedOutAt,
		ArchivedAt:     r.ArchivedAt,
	}
}

// @Summary		List historical residents
// @Tags			residents
// @Produce		json
// @Security		Bearer
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Historical residents"
// @Router			/admin/residents/historical [get]
func (h *ResidentHandler) ListHistorical(c *gin.Context) {
	p := utils.ParsePagination(c)
	records, total, err := h.queries.ListHistorical(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]HistoricalResidentResponse, 0, len(records))
	for _, r := range records {
		items = append(items, toHistoricalResponse(r))
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
