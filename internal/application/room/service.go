// Package room implements admin management of rooms.
package room

import (
	"context"

	"github.com/shopspring/decimal"

	"hostelhub/internal/domain/hostel"
	"hostelhub/internal/domain/room"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
)

type Service struct {
	roomRepo   room.RoomRepository
	hostelRepo hostel.HostelRepository
	logger     logger.Interface
}

func NewService(roomRepo room.RoomRepository, hostelRepo hostel.HostelRepository, logger logger.Interface) *Service {
	return &Service{
		roomRepo:   roomRepo,
		hostelRepo: hostelRepo,
		logger:     logger,
	}
}

type CreateRoomCommand struct {
	HostelID    uint
	Label       string
	Price       decimal.Decimal
	MaxCapacity int
}

func (s *Service) Create(ctx context.Context, cmd CreateRoomCommand) (*room.Room, error) {
	if _, err := s.hostelRepo.GetByID(ctx, cmd.HostelID); err != nil {
		return nil, apperrors.NewNotFoundError("hostel not found")
	}

	if existing, err := s.roomRepo.GetByLabelAndHostel(ctx, cmd.Label, cmd.HostelID); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("room label already exists in this hostel")
	}

	rm, err := room.NewRoom(cmd.HostelID, cmd.Label, cmd.Price, cmd.MaxCapacity)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.roomRepo.Create(ctx, rm); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("room label already exists in this hostel")
		}
		return nil, apperrors.NewInternalError("failed to create room", err.Error())
	}

	s.logger.Infow("room created", "room_id", rm.ID(), "hostel_id", cmd.HostelID, "label", cmd.Label)
	return rm, nil
}

func (s *Service) UpdatePrice(ctx context.Context, roomID uint, price decimal.Decimal) (*room.Room, error) {
	rm, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("room not found")
	}
	if err := rm.UpdatePrice(price); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.roomRepo.Update(ctx, rm); err != nil {
		return nil, apperrors.NewInternalError("failed to update room", err.Error())
	}
	return rm, nil
}

func (s *Service) StartMaintenance(ctx context.Context, roomID uint) (*room.Room, error) {
	rm, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("room not found")
	}
	if err := rm.StartMaintenance(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err := s.roomRepo.Update(ctx, rm); err != nil {
		return nil, apperrors.NewInternalError("failed to update room", err.Error())
	}
	return rm, nil
}

func (s *Service) EndMaintenance(ctx context.Context, roomID uint) (*room.Room, error) {
	rm, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("room not found")
	}
	rm.EndMaintenance()
	if err := s.roomRepo.Update(ctx, rm); err != nil {
		return nil, apperrors.NewInternalError("failed to update room", err.Error())
	}
	return rm, nil
}

func (s *Service) Delete(ctx context.Context, roomID uint) error {
	rm, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return apperrors.NewNotFoundError("room not found")
	}
	if rm.ResidentCount() > 0 {
		return apperrors.NewConflictError("room still has residents")
	}
	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		return apperrors.NewInternalError("failed to delete room", err.Error())
	}
	s.logger.Infow("room deleted", "room_id", roomID)
	return nil
}

func (s *Service) Get(ctx context.Context, roomID uint) (*room.Room, error) {
	rm, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("room not found")
	}
	return rm, nil
}

func (s *Service) ListByHostel(ctx context.Context, hostelID uint, offset, limit int) ([]*room.Room, int64, error) {
	rooms, total, err := s.roomRepo.ListByHostel(ctx, hostelID, offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list rooms", err.Error())
	}
	return rooms, total, nil
}
