package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostelhub/internal/domain/calendaryear"
	"hostelhub/internal/infrastructure/persistence/mappers"
	"hostelhub/internal/infrastructure/persistence/models"
	"hostelhub/internal/shared/db"
)

type calendarYearRepository struct {
	db *gorm.DB
}

func NewCalendarYearRepository(database *gorm.DB) calendaryear.CalendarYearRepository {
	return &calendarYearRepository{db: database}
}

func (r *calendarYearRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *calendarYearRepository) Create(ctx context.Context, year *calendaryear.CalendarYear) error {
	model := mappers.CalendarYearToModel(year)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create calendar year: %w", err)
	}
	year.SetID(model.ID)
	return nil
}

func (r *calendarYearRepository) Update(ctx context.Context, year *calendaryear.CalendarYear) error {
	model := mappers.CalendarYearToModel(year)
	if err := r.conn(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update calendar year: %w", err)
	}
	return nil
}

func (r *calendarYearRepository) GetByID(ctx context.Context, id uint) (*calendaryear.CalendarYear, error) {
	var model models.CalendarYearModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("calendar year not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get calendar year: %w", err)
	}
	return mappers.CalendarYearToDomain(&model), nil
}

func (r *calendarYearRepository) GetActive(ctx context.Context) (*calendaryear.CalendarYear, error) {
	var model models.CalendarYearModel
	if err := r.conn(ctx).Where("active = ?", true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no active calendar year")
		}
		return nil, fmt.Errorf("failed to get active calendar year: %w", err)
	}
	return mappers.CalendarYearToDomain(&model), nil
}

func (r *calendarYearRepository) DeactivateAll(ctx context.Context) error {
	err := r.conn(ctx).Model(&models.CalendarYearModel{}).
		Where("active = ?", true).
		Update("active", false).Error
	if err != nil {
		return fmt.Errorf("failed to deactivate calendar years: %w", err)
	}
	return nil
}

func (r *calendarYearRepository) List(ctx context.Context, offset, limit int) ([]*calendaryear.CalendarYear, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.CalendarYearModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count calendar years: %w", err)
	}

	var modelList []models.CalendarYearModel
	err := r.conn(ctx).
		Order("start_date DESC").
		Offset(offset).Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list calendar years: %w", err)
	}

	years := make([]*calendaryear.CalendarYear, 0, len(modelList))
	for i := range modelList {
		years = append(years, mappers.CalendarYearToDomain(&modelList[i]))
	}
	return years, total, nil
}
