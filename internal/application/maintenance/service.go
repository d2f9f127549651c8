// Package maintenance implements room issue reporting by residents and
// resolution tracking by admins.
package maintenance

import (
	"context"

	"hostelhub/internal/domain/maintenance"
	"hostelhub/internal/domain/resident"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
)

type Service struct {
	requestRepo  maintenance.RequestRepository
	residentRepo resident.ResidentProfileRepository
	logger       logger.Interface
}

func NewService(requestRepo maintenance.RequestRepository, residentRepo resident.ResidentProfileRepository, logger logger.Interface) *Service {
	return &Service{
		requestRepo:  requestRepo,
		residentRepo: residentRepo,
		logger:       logger,
	}
}

type CreateRequestCommand struct {
	UserID      uint
	Category    string
	Description string
}

func (s *Service) Create(ctx context.Context, cmd CreateRequestCommand) (*maintenance.Request, error) {
	profile, err := s.residentRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("resident profile not found")
	}
	if profile.RoomID() == nil {
		return nil, apperrors.NewConflictError("resident has no room assignment")
	}

	req, err := maintenance.NewRequest(*profile.RoomID(), profile.ID(), maintenance.Category(cmd.Category), cmd.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, apperrors.NewInternalError("failed to create maintenance request", err.Error())
	}

	s.logger.Infow("maintenance request created", "request_id", req.ID(), "room_id", req.RoomID(), "category", cmd.Category)
	return req, nil
}

func (s *Service) Start(ctx context.Context, id uint) (*maintenance.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("maintenance request not found")
	}
	if err := req.Start(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, apperrors.NewInternalError("failed to update maintenance request", err.Error())
	}
	return req, nil
}

func (s *Service) Resolve(ctx context.Context, id uint, note string) (*maintenance.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("maintenance request not found")
	}
	if err := req.Resolve(note); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, apperrors.NewInternalError("failed to update maintenance request", err.Error())
	}
	s.logger.Infow("maintenance request resolved", "request_id", id)
	return req, nil
}

func (s *Service) Reject(ctx context.Context, id uint, note string) (*maintenance.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("maintenance request not found")
	}
	if err := req.Reject(note); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, apperrors.NewInternalError("failed to update maintenance request", err.Error())
	}
	return req, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*maintenance.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("maintenance request not found")
	}
	return req, nil
}

func (s *Service) ListMine(ctx context.Context, userID uint, offset, limit int) ([]*maintenance.Request, int64, error) {
	profile, err := s.residentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, apperrors.NewNotFoundError("resident profile not found")
	}
	requests, total, err := s.requestRepo.ListByResident(ctx, profile.ID(), offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list maintenance requests", err.Error())
	}
	return requests, total, nil
}

func (s *Service) ListByStatus(ctx context.Context, status maintenance.Status, offset, limit int) ([]*maintenance.Request, int64, error) {
	if !status.IsValid() {
		return nil, 0, apperrors.NewValidationError("invalid status")
	}
	requests, total, err := s.requestRepo.ListByStatus(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list maintenance requests", err.Error())
	}
	return requests, total, nil
}
