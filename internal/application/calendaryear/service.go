// Package calendaryear manages booking periods. Activation is exclusive:
// turning one year on turns every other year off in the same transaction.
package calendaryear

import (
	"context"
	"time"

	"hostelhub/internal/domain/calendaryear"
	"hostelhub/internal/shared/db"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
)

type Service struct {
	txManager *db.TransactionManager
	yearRepo  calendaryear.CalendarYearRepository
	logger    logger.Interface
}

func NewService(txManager *db.TransactionManager, yearRepo calendaryear.CalendarYearRepository, logger logger.Interface) *Service {
	return &Service{
		txManager: txManager,
		yearRepo:  yearRepo,
		logger:    logger,
	}
}

type CreateYearCommand struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

func (s *Service) Create(ctx context.Context, cmd CreateYearCommand) (*calendaryear.CalendarYear, error) {
	year, err := calendaryear.NewCalendarYear(cmd.Name, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.yearRepo.Create(ctx, year); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("calendar year name already exists")
		}
		return nil, apperrors.NewInternalError("failed to create calendar year", err.Error())
	}
	s.logger.Infow("calendar year created", "calendar_year_id", year.ID(), "name", year.Name())
	return year, nil
}

func (s *Service) Activate(ctx context.Context, id uint) (*calendaryear.CalendarYear, error) {
	year, err := s.yearRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("calendar year not found")
	}

	err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.yearRepo.DeactivateAll(txCtx); err != nil {
			return apperrors.NewInternalError("failed to deactivate calendar years", err.Error())
		}
		year.Activate()
		if err := s.yearRepo.Update(txCtx, year); err != nil {
			return apperrors.NewInternalError("failed to activate calendar year", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("calendar year activated", "calendar_year_id", id, "name", year.Name())
	return year, nil
}

func (s *Service) GetActive(ctx context.Context) (*calendaryear.CalendarYear, error) {
	year, err := s.yearRepo.GetActive(ctx)
	if err != nil {
		return nil, apperrors.NewNotFoundError("no active calendar year")
	}
	return year, nil
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*calendaryear.CalendarYear, int64, error) {
	years, total, err := s.yearRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list calendar years", err.Error())
	}
	return years, total, nil
}
