package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostelhub/internal/domain/announcement"
	"hostelhub/internal/infrastructure/persistence/mappers"
	"hostelhub/internal/infrastructure/persistence/models"
	"hostelhub/internal/shared/db"
)

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(database *gorm.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: database}
}

func (r *announcementRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *announcementRepository) Create(ctx context.Context, a *announcement.Announcement) error {
	model := mappers.AnnouncementToModel(a)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *announcementRepository) Update(ctx context.Context, a *announcement.Announcement) error {
	model := mappers.AnnouncementToModel(a)
	if err := r.conn(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	return nil
}

func (r *announcementRepository) Delete(ctx context.Context, id uint) error {
	if err := r.conn(ctx).Delete(&models.AnnouncementModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id uint) (*announcement.Announcement, error) {
	var model models.AnnouncementModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("announcement not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return mappers.AnnouncementToDomain(&model)
}

func (r *announcementRepository) ListPublished(ctx context.Context, hostelID *uint, offset, limit int) ([]*announcement.Announcement, int64, error) {
	query := r.conn(ctx).Model(&models.AnnouncementModel{}).Where("published_at IS NOT NULL")
	if hostelID != nil {
		query = query.Where("hostel_id IS NULL OR hostel_id = ?", *hostelID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	var modelList []models.AnnouncementModel
	err := query.
		Order("published_at DESC").
		Offset(offset).Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}

	return r.toDomainList(modelList, total)
}

func (r *announcementRepository) List(ctx context.Context, offset, limit int) ([]*announcement.Announcement, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.AnnouncementModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	var modelList []models.AnnouncementModel
	err := r.conn(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}

	return r.toDomainList(modelList, total)
}

func (r *announcementRepository) toDomainList(modelList []models.AnnouncementModel, total int64) ([]*announcement.Announcement, int64, error) {
	items := make([]*announcement.Announcement, 0, len(modelList))
	for i := range modelList {
		a, err := mappers.AnnouncementToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}
