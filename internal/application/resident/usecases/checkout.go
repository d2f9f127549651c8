package usecases

import (
	"context"
	"time"

	"hostelhub/internal/domain/resident"
	"hostelhub/internal/domain/room"
	"hostelhub/internal/shared/db"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
)

// CheckOutUseCase closes a resident's stay: the profile is archived into
// the historical residents table and the room slot is released, all in one
// transaction.
type CheckOutUseCase struct {
	txManager      *db.TransactionManager
	residentRepo   resident.ResidentProfileRepository
	historicalRepo resident.HistoricalResidentRepository
	roomRepo       room.RoomRepository
	logger         logger.Interface
}

func NewCheckOutUseCase(
	txManager *db.TransactionManager,
	residentRepo resident.ResidentProfileRepository,
	historicalRepo resident.HistoricalResidentRepository,
	roomRepo room.RoomRepository,
	logger logger.Interface,
) *CheckOutUseCase {
	return &CheckOutUseCase{
		txManager:      txManager,
		residentRepo:   residentRepo,
		historicalRepo: historicalRepo,
		roomRepo:       roomRepo,
		logger:         logger,
	}
}

type CheckOutCommand struct {
	ResidentProfileID uint
}

type CheckOutResult struct {
	HistoricalResidentID uint      `json:"historical_resident_id"`
	CheckedOutAt         time.Time `json:"checked_out_at"`
}

func (uc *CheckOutUseCase) Execute(ctx context.Context, cmd CheckOutCommand) (*CheckOutResult, error) {
	profile, err := uc.residentRepo.GetByID(ctx, cmd.ResidentProfileID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("resident profile not found")
	}

	roomID := profile.RoomID()
	now := time.Now().UTC()

	if err := profile.CheckOut(now); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	archived := resident.ArchiveResident(profile, now)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.residentRepo.Update(txCtx, profile); err != nil {
			return apperrors.NewInternalError("failed to update resident profile", err.Error())
		}
		if err := uc.historicalRepo.Create(txCtx, archived); err != nil {
			return apperrors.NewInternalError("failed to archive resident", err.Error())
		}

		if roomID != nil {
			rm, err := uc.roomRepo.GetByID(txCtx, *roomID)
			if err != nil {
				return apperrors.NewInternalError("failed to load room", err.Error())
			}
			if err := rm.RemoveResident(); err != nil {
				uc.logger.Warnw("room occupancy already zero at check-out", "room_id", rm.ID())
			} else if err := uc.roomRepo.Update(txCtx, rm); err != nil {
				return apperrors.NewInternalError("failed to release room slot", err.Error())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("resident checked out",
		"resident_profile_id", profile.ID(),
		"historical_resident_id", archived.ID,
	)

	return &CheckOutResult{
		HistoricalResidentID: archived.ID,
		CheckedOutAt:         now,
	}, nil
}
