package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostelhub/internal/domain/room"
	"hostelhub/internal/infrastructure/persistence/mappers"
	"hostelhub/internal/infrastructure/persistence/models"
	"hostelhub/internal/shared/db"
)

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(database *gorm.DB) room.RoomRepository {
	return &roomRepository{db: database}
}

func (r *roomRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *roomRepository) Create(ctx context.Context, rm *room.Room) error {
	model := mappers.RoomToModel(rm)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	rm.SetID(model.ID)
	return nil
}

func (r *roomRepository) Update(ctx context.Context, rm *room.Room) error {
	model := mappers.RoomToModel(rm)
	if err := r.conn(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uint) error {
	if err := r.conn(ctx).Delete(&models.RoomModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id uint) (*room.Room, error) {
	var model models.RoomModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return mappers.RoomToDomain(&model)
}

func (r *roomRepository) GetByLabelAndHostel(ctx context.Context, label string, hostelID uint) (*room.Room, error) {
	var model models.RoomModel
	err := r.conn(ctx).Where("label = ? AND hostel_id = ?", label, hostelID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room not found: %s", label)
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return mappers.RoomToDomain(&model)
}

func (r *roomRepository) ListByHostel(ctx context.Context, hostelID uint, offset, limit int) ([]*room.Room, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.RoomModel{}).Where("hostel_id = ?", hostelID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	var modelList []models.RoomModel
	err := r.conn(ctx).
		Where("hostel_id = ?", hostelID).
		Order("label ASC").
		Offset(offset).Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rooms: %w", err)
	}

	rooms := make([]*room.Room, 0, len(modelList))
	for i := range modelList {
		rm, err := mappers.RoomToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, total, nil
}
