package usecases

import (
	"context"

	appPayment "hostelhub/internal/application/payment"
	"hostelhub/internal/domain/calendaryear"
	"hostelhub/internal/domain/resident"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/goroutine"
	"hostelhub/internal/shared/id"
	"hostelhub/internal/shared/logger"
)

// BackfillAccessCodesUseCase issues access codes to residents assigned
// before codes were introduced. Each resident gets an email with the new
// code; failures on one resident do not stop the rest.
type BackfillAccessCodesUseCase struct {
	residentRepo resident.ResidentProfileRepository
	yearRepo     calendaryear.CalendarYearRepository
	notifier     appPayment.Notifier
	logger       logger.Interface
}

func NewBackfillAccessCodesUseCase(
	residentRepo resident.ResidentProfileRepository,
	yearRepo calendaryear.CalendarYearRepository,
	notifier appPayment.Notifier,
	logger logger.Interface,
) *BackfillAccessCodesUseCase {
	return &BackfillAccessCodesUseCase{
		residentRepo: residentRepo,
		yearRepo:     yearRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

type BackfillAccessCodesResult struct {
	Scanned int `json:"scanned"`
	Issued  int `json:"issued"`
	Failed  int `json:"failed"`
}

func (uc *BackfillAccessCodesUseCase) Execute(ctx context.Context) (*BackfillAccessCodesResult, error) {
	profiles, err := uc.residentRepo.ListWithoutAccessCode(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load residents without access codes", err.Error())
	}

	year, err := uc.yearRepo.GetActive(ctx)
	if err != nil {
		return nil, apperrors.NewConflictError("no active calendar year")
	}

	result := &BackfillAccessCodesResult{Scanned: len(profiles)}

	for _, profile := range profiles {
		code, err := id.NewAccessCode()
		if err != nil {
			result.Failed++
			uc.logger.Errorw("failed to generate access code", "resident_profile_id", profile.ID(), "error", err)
			continue
		}
		if err := profile.SetAccessCode(code, year.EndDate()); err != nil {
			result.Failed++
			continue
		}
		if err := uc.residentRepo.Update(ctx, profile); err != nil {
			result.Failed++
			uc.logger.Errorw("failed to save access code", "resident_profile_id", profile.ID(), "error", err)
			continue
		}

		result.Issued++

		email := profile.Email()
		name := profile.FullName()
		goroutine.SafeGo(uc.logger, "access-code-email", func() {
			if err := uc.notifier.SendAccessCode(context.Background(), email, name, code); err != nil {
				uc.logger.Warnw("failed to send access code email", "email", email, "error", err)
			}
		})
	}

	uc.logger.Infow("access code backfill finished",
		"scanned", result.Scanned,
		"issued", result.Issued,
		"failed", result.Failed,
	)

	return result, nil
}
