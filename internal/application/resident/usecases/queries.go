package usecases

import (
	"context"
	"time"

	"hostelhub/internal/domain/resident"
	apperrors "hostelhub/internal/shared/errors"
)

// ResidentDTO is the read model for resident profiles. Access codes are
// delivered by email only and never appear here.
type ResidentDTO struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Gender         string     `json:"gender,omitempty"`
	Status         string     `json:"status"`
	RoomID         *uint      `json:"room_id,omitempty"`
	HostelID       *uint      `json:"hostel_id,omitempty"`
	CalendarYearID *uint      `json:"calendar_year_id,omitempty"`
	HasAccessCode  bool       `json:"has_access_code"`
	CheckedInAt    *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt   *time.Time `json:"checked_out_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toResidentDTO(p *resident.ResidentProfile) ResidentDTO {
	return ResidentDTO{
		ID:             p.ID(),
		UserID:         p.UserID(),
		FullName:       p.FullName(),
		Email:          p.Email(),
		Phone:          p.Phone(),
		Gender:         p.Gender(),
		Status:         p.Status().String(),
		RoomID:         p.RoomID(),
		HostelID:       p.HostelID(),
		CalendarYearID: p.CalendarYearID(),
		HasAccessCode:  p.HasAccessCode(),
		CheckedInAt:    p.CheckedInAt(),
		CheckedOutAt:   p.CheckedOutAt(),
		CreatedAt:      p.CreatedAt(),
	}
}

// ResidentQueries serves profile reads for residents and admins.
type ResidentQueries struct {
	residentRepo   resident.ResidentProfileRepository
	historicalRepo resident.HistoricalResidentRepository
}

func NewResidentQueries(
	residentRepo resident.ResidentProfileRepository,
	historicalRepo resident.HistoricalResidentRepository,
) *ResidentQueries {
	return &ResidentQueries{
		residentRepo:   residentRepo,
		historicalRepo: historicalRepo,
	}
}

func (q *ResidentQueries) GetMyProfile(ctx context.Context, userID uint) (*ResidentDTO, error) {
	profile, err := q.residentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("resident profile not found")
	}
	dto := toResidentDTO(profile)
	return &dto, nil
}

func (q *ResidentQueries) GetByID(ctx context.Context, id uint) (*ResidentDTO, error) {
	profile, err := q.residentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("resident profile not found")
	}
	dto := toResidentDTO(profile)
	return &dto, nil
}

func (q *ResidentQueries) ListByHostel(ctx context.Context, hostelID uint, offset, limit int) ([]ResidentDTO, int64, error) {
	profiles, total, err := q.residentRepo.ListByHostel(ctx, hostelID, offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list residents", err.Error())
	}

	dtos := make([]ResidentDTO, 0, len(profiles))
	for _, p := range profiles {
		dtos = append(dtos, toResidentDTO(p))
	}
	return dtos, total, nil
}

func (q *ResidentQueries) ListHistorical(ctx context.Context, offset, limit int) ([]*resident.HistoricalResident, int64, error) {
	records, total, err := q.historicalRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list historical residents", err.Error())
	}
	return records, total, nil
}
