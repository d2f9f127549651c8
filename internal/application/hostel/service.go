// Package hostel implements admin management of hostels and their payment
// policies.
package hostel

import (
	"context"

	"github.com/shopspring/decimal"

	"hostelhub/internal/domain/hostel"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
)

type Service struct {
	hostelRepo hostel.HostelRepository
	logger     logger.Interface
}

func NewService(hostelRepo hostel.HostelRepository, logger logger.Interface) *Service {
	return &Service{
		hostelRepo: hostelRepo,
		logger:     logger,
	}
}

type CreateHostelCommand struct {
	Name                     string
	Address                  string
	Gender                   string
	AllowPartialPayment      bool
	PartialPaymentPercentage *decimal.Decimal
}

func (s *Service) Create(ctx context.Context, cmd CreateHostelCommand) (*hostel.Hostel, error) {
	h, err := hostel.NewHostel(cmd.Name, cmd.Address, hostel.Gender(cmd.Gender))
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.AllowPartialPayment {
		if err := h.EnablePartialPayment(cmd.PartialPaymentPercentage); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := s.hostelRepo.Create(ctx, h); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("hostel name is already taken")
		}
		return nil, apperrors.NewInternalError("failed to create hostel", err.Error())
	}

	s.logger.Infow("hostel created", "hostel_id", h.ID(), "name", h.Name())
	return h, nil
}

type UpdateHostelCommand struct {
	HostelID                 uint
	Name                     string
	Address                  string
	AllowPartialPayment      *bool
	PartialPaymentPercentage *decimal.Decimal
}

func (s *Service) Update(ctx context.Context, cmd UpdateHostelCommand) (*hostel.Hostel, error) {
	h, err := s.hostelRepo.GetByID(ctx, cmd.HostelID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("hostel not found")
	}

	if cmd.Name != "" || cmd.Address != "" {
		name, address := cmd.Name, cmd.Address
		if name == "" {
			name = h.Name()
		}
		if address == "" {
			address = h.Address()
		}
		if err := h.UpdateDetails(name, address); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.AllowPartialPayment != nil {
		if *cmd.AllowPartialPayment {
			if err := h.EnablePartialPayment(cmd.PartialPaymentPercentage); err != nil {
				return nil, apperrors.NewValidationError(err.Error())
			}
		} else {
			h.DisablePartialPayment()
		}
	}

	if err := s.hostelRepo.Update(ctx, h); err != nil {
		return nil, apperrors.NewInternalError("failed to update hostel", err.Error())
	}
	return h, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.hostelRepo.GetByID(ctx, id); err != nil {
		return apperrors.NewNotFoundError("hostel not found")
	}
	if err := s.hostelRepo.Delete(ctx, id); err != nil {
		return apperrors.NewInternalError("failed to delete hostel", err.Error())
	}
	s.logger.Infow("hostel deleted", "hostel_id", id)
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*hostel.Hostel, error) {
	h, err := s.hostelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("hostel not found")
	}
	return h, nil
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*hostel.Hostel, int64, error) {
	hostels, total, err := s.hostelRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list hostels", err.Error())
	}
	return hostels, total, nil
}
