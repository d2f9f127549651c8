package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostelhub/internal/domain/hostel"
	"hostelhub/internal/infrastructure/persistence/mappers"
	"hostelhub/internal/infrastructure/persistence/models"
	"hostelhub/internal/shared/db"
)

type hostelRepository struct {
	db *gorm.DB
}

func NewHostelRepository(database *gorm.DB) hostel.HostelRepository {
	return &hostelRepository{db: database}
}

func (r *hostelRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *hostelRepository) Create(ctx context.Context, h *hostel.Hostel) error {
	model := mappers.HostelToModel(h)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create hostel: %w", err)
	}
	h.SetID(model.ID)
	return nil
}

func (r *hostelRepository) Update(ctx context.Context, h *hostel.Hostel) error {
	model := mappers.HostelToModel(h)
	if err := r.conn(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update hostel: %w", err)
	}
	return nil
}

func (r *hostelRepository) Delete(ctx context.Context, id uint) error {
	if err := r.conn(ctx).Delete(&models.HostelModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete hostel: %w", err)
	}
	return nil
}

func (r *hostelRepository) GetByID(ctx context.Context, id uint) (*hostel.Hostel, error) {
	var model models.HostelModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("hostel not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get hostel: %w", err)
	}
	return mappers.HostelToDomain(&model)
}

func (r *hostelRepository) List(ctx context.Context, offset, limit int) ([]*hostel.Hostel, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.HostelModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count hostels: %w", err)
	}

	var modelList []models.HostelModel
	err := r.conn(ctx).
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list hostels: %w", err)
	}

	hostels := make([]*hostel.Hostel, 0, len(modelList))
	for i := range modelList {
		h, err := mappers.HostelToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		hostels = append(hostels, h)
	}
	return hostels, total, nil
}
