package usecases

import (
	"context"
	"time"

	"hostelhub/internal/domain/resident"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
)

type CheckInUseCase struct {
	residentRepo resident.ResidentProfileRepository
	logger       logger.Interface
}

func NewCheckInUseCase(residentRepo resident.ResidentProfileRepository, logger logger.Interface) *CheckInUseCase {
	return &CheckInUseCase{
		residentRepo: residentRepo,
		logger:       logger,
	}
}

type CheckInCommand struct {
	UserID     uint
	AccessCode string
}

type CheckInResult struct {
	ResidentProfileID uint      `json:"resident_profile_id"`
	RoomID            uint      `json:"room_id"`
	CheckedInAt       time.Time `json:"checked_in_at"`
}

func (uc *CheckInUseCase) Execute(ctx context.Context, cmd CheckInCommand) (*CheckInResult, error) {
	if cmd.AccessCode == "" {
		return nil, apperrors.NewValidationError("access code is required")
	}

	profile, err := uc.residentRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("resident profile not found")
	}

	now := time.Now().UTC()
	if err := profile.CheckIn(cmd.AccessCode, now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.residentRepo.Update(ctx, profile); err != nil {
		return nil, apperrors.NewInternalError("failed to update resident profile", err.Error())
	}

	uc.logger.Infow("resident checked in", "resident_profile_id", profile.ID())

	return &CheckInResult{
		ResidentProfileID: profile.ID(),
		RoomID:            *profile.RoomID(),
		CheckedInAt:       now,
	}, nil
}
