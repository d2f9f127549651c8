package mappers

import (
	"fmt"

	"hostelhub/internal/domain/resident"
	vo "hostelhub/internal/domain/resident/valueobjects"
	"hostelhub/internal/infrastructure/persistence/models"
)

func ResidentProfileToModel(p *resident.ResidentProfile) *models.ResidentProfileModel {
	return &models.ResidentProfileModel{
		ID:                  p.ID(),
		UserID:              p.UserID(),
		FullName:            p.FullName(),
		Email:               p.Email(),
		Phone:               p.Phone(),
		Gender:              p.Gender(),
		RoomID:              p.RoomID(),
		HostelID:            p.HostelID(),
		CalendarYearID:      p.CalendarYearID(),
		AccessCode:          p.AccessCode(),
		AccessCodeExpiresAt: p.AccessCodeExpiresAt(),
		Status:              p.Status().String(),
		CheckedInAt:         p.CheckedInAt(),
		CheckedOutAt:        p.CheckedOutAt(),
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
}

func ResidentProfileToDomain(model *models.ResidentProfileModel) (*resident.ResidentProfile, error) {
	status := vo.ResidentStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid resident status: %s", model.Status)
	}

	return resident.ReconstructResidentProfile(
		model.ID, model.UserID,
		model.FullName, model.Email, model.Phone, model.Gender,
		model.RoomID, model.HostelID, model.CalendarYearID,
		model.AccessCode,
		model.AccessCodeExpiresAt,
		status,
		model.CheckedInAt, model.CheckedOutAt,
		model.CreatedAt, model.UpdatedAt,
	), nil
}

func HistoricalResidentToModel(h *resident.HistoricalResident) *models.HistoricalResidentModel {
	return &models.HistoricalResidentModel{
		ID:             h.ID,
		ProfileID:      h.ProfileID,
		UserID:         h.UserID,
		FullName:       h.FullName,
		Email:          h.Email,
		Phone:          h.Phone,
		RoomID:         h.RoomID,
		HostelID:       h.HostelID,
		CalendarYearID: h.CalendarYearID,
		CheckedInAt:    h.CheckedInAt,
		CheckedOutAt:   h.CheckedOutAt,
		ArchivedAt:     h.ArchivedAt,
	}
}

func HistoricalResidentToDomain(model *models.HistoricalResidentModel) *resident.HistoricalResident {
	return &resident.HistoricalResident{
		ID:             model.ID,
		ProfileID:      model.ProfileID,
		UserID:         model.UserID,
		FullName:       model.FullName,
		Email:          model.Email,
		Phone:          model.Phone,
		RoomID:         model.RoomID,
		HostelID:       model.HostelID,
		CalendarYearID: model.CalendarYearID,
		CheckedInAt:    model.CheckedInAt,
		CheckedOutAt:   model.CheckedOutAt,
		ArchivedAt:     model.ArchivedAt,
	}
}
