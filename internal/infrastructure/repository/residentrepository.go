package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hostelhub/internal/domain/resident"
	vo "hostelhub/internal/domain/resident/valueobjects"
	"hostelhub/internal/infrastructure/persistence/mappers"
	"hostelhub/internal/infrastructure/persistence/models"
	"hostelhub/internal/shared/db"
)

type residentProfileRepository struct {
	db *gorm.DB
}

func NewResidentProfileRepository(database *gorm.DB) resident.ResidentProfileRepository {
	return &residentProfileRepository{db: database}
}

func (r *residentProfileRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *residentProfileRepository) Create(ctx context.Context, profile *resident.ResidentProfile) error {
	model := mappers.ResidentProfileToModel(profile)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create resident profile: %w", err)
	}
	profile.SetID(model.ID)
	return nil
}

func (r *residentProfileRepository) Update(ctx context.Context, profile *resident.ResidentProfile) error {
	model := mappers.ResidentProfileToModel(profile)
	if err := r.conn(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update resident profile: %w", err)
	}
	return nil
}

func (r *residentProfileRepository) GetByID(ctx context.Context, id uint) (*resident.ResidentProfile, error) {
	var model models.ResidentProfileModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resident profile not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get resident profile: %w", err)
	}
	return mappers.ResidentProfileToDomain(&model)
}

func (r *residentProfileRepository) GetByUserID(ctx context.Context, userID uint) (*resident.ResidentProfile, error) {
	var model models.ResidentProfileModel
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resident profile not found for user: %d", userID)
		}
		return nil, fmt.Errorf("failed to get resident profile: %w", err)
	}
	return mappers.ResidentProfileToDomain(&model)
}

func (r *residentProfileRepository) GetByEmail(ctx context.Context, email string) (*resident.ResidentProfile, error) {
	var model models.ResidentProfileModel
	err := r.conn(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resident profile not found for email")
		}
		return nil, fmt.Errorf("failed to get resident profile: %w", err)
	}
	return mappers.ResidentProfileToDomain(&model)
}

func (r *residentProfileRepository) GetActiveByRoomAndYear(ctx context.Context, roomID, calendarYearID uint) ([]*resident.ResidentProfile, error) {
	var modelList []models.ResidentProfileModel
	err := r.conn(ctx).
		Where("room_id = ? AND calendar_year_id = ? AND status IN ?",
			roomID, calendarYearID,
			[]string{vo.ResidentStatusAssigned.String(), vo.ResidentStatusCheckedIn.String()}).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list room occupants: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *residentProfileRepository) ListWithoutAccessCode(ctx context.Context) ([]*resident.ResidentProfile, error) {
	var modelList []models.ResidentProfileModel
	err := r.conn(ctx).
		Where("(access_code IS NULL OR access_code = '') AND status IN ?",
			[]string{vo.ResidentStatusAssigned.String(), vo.ResidentStatusCheckedIn.String()}).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list residents without access codes: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *residentProfileRepository) ListByHostel(ctx context.Context, hostelID uint, offset, limit int) ([]*resident.ResidentProfile, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.ResidentProfileModel{}).Where("hostel_id = ?", hostelID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count residents: %w", err)
	}

	var modelList []models.ResidentProfileModel
	err := r.conn(ctx).
		Where("hostel_id = ?", hostelID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list residents: %w", err)
	}

	profiles, err := r.toDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *residentProfileRepository) toDomainList(modelList []models.ResidentProfileModel) ([]*resident.ResidentProfile, error) {
	profiles := make([]*resident.ResidentProfile, 0, len(modelList))
	for i := range modelList {
		p, err := mappers.ResidentProfileToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

type historicalResidentRepository struct {
	db *gorm.DB
}

func NewHistoricalResidentRepository(database *gorm.DB) resident.HistoricalResidentRepository {
	return &historicalResidentRepository{db: database}
}

func (r *historicalResidentRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *historicalResidentRepository) Create(ctx context.Context, record *resident.HistoricalResident) error {
	model := mappers.HistoricalResidentToModel(record)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create historical resident: %w", err)
	}
	record.ID = model.ID
	return nil
}

func (r *historicalResidentRepository) GetByID(ctx context.Context, id uint) (*resident.HistoricalResident, error) {
	var model models.HistoricalResidentModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("historical resident not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get historical resident: %w", err)
	}
	return mappers.HistoricalResidentToDomain(&model), nil
}

func (r *historicalResidentRepository) GetByEmail(ctx context.Context, email string) (*resident.HistoricalResident, error) {
	var model models.HistoricalResidentModel
	err := r.conn(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("checked_out_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("historical resident not found for email")
		}
		return nil, fmt.Errorf("failed to get historical resident: %w", err)
	}
	return mappers.HistoricalResidentToDomain(&model), nil
}

func (r *historicalResidentRepository) GetByRoomAndYear(ctx context.Context, roomID, calendarYearID uint) ([]*resident.HistoricalResident, error) {
	var modelList []models.HistoricalResidentModel
	err := r.conn(ctx).
		Where("room_id = ? AND calendar_year_id = ?", roomID, calendarYearID).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list historical residents: %w", err)
	}

	records := make([]*resident.HistoricalResident, 0, len(modelList))
	for i := range modelList {
		records = append(records, mappers.HistoricalResidentToDomain(&modelList[i]))
	}
	return records, nil
}

func (r *historicalResidentRepository) List(ctx context.Context, offset, limit int) ([]*resident.HistoricalResident, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.HistoricalResidentModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count historical residents: %w", err)
	}

	var modelList []models.HistoricalResidentModel
	err := r.conn(ctx).
		Order("archived_at DESC").
		Offset(offset).Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list historical residents: %w", err)
	}

	records := make([]*resident.HistoricalResident, 0, len(modelList))
	for i := range modelList {
		records = append(records, mappers.HistoricalResidentToDomain(&modelList[i]))
	}
	return records, total, nil
}
