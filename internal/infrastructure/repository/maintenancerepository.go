package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostelhub/internal/domain/maintenance"
	"hostelhub/internal/infrastructure/persistence/mappers"
	"hostelhub/internal/infrastructure/persistence/models"
	"hostelhub/internal/shared/db"
)

type maintenanceRequestRepository struct {
	db *gorm.DB
}

func NewMaintenanceRequestRepository(database *gorm.DB) maintenance.RequestRepository {
	return &maintenanceRequestRepository{db: database}
}

func (r *maintenanceRequestRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *maintenanceRequestRepository) Create(ctx context.Context, request *maintenance.Request) error {
	model := mappers.MaintenanceRequestToModel(request)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create maintenance request: %w", err)
	}
	request.SetID(model.ID)
	return nil
}

func (r *maintenanceRequestRepository) Update(ctx context.Context, request *maintenance.Request) error {
	model := mappers.MaintenanceRequestToModel(request)
	if err := r.conn(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update maintenance request: %w", err)
	}
	return nil
}

func (r *maintenanceRequestRepository) GetByID(ctx context.Context, id uint) (*maintenance.Request, error) {
	var model models.MaintenanceRequestModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("maintenance request not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}
	return mappers.MaintenanceRequestToDomain(&model)
}

func (r *maintenanceRequestRepository) ListByRoom(ctx context.Context, roomID uint, offset, limit int) ([]*maintenance.Request, int64, error) {
	return r.list(ctx, "room_id = ?", []interface{}{roomID}, offset, limit)
}

func (r *maintenanceRequestRepository) ListByStatus(ctx context.Context, status maintenance.Status, offset, limit int) ([]*maintenance.Request, int64, error) {
	return r.list(ctx, "status = ?", []interface{}{string(status)}, offset, limit)
}

func (r *maintenanceRequestRepository) ListByResident(ctx context.Context, residentProfileID uint, offset, limit int) ([]*maintenance.Request, int64, error) {
	return r.list(ctx, "resident_profile_id = ?", []interface{}{residentProfileID}, offset, limit)
}

func (r *maintenanceRequestRepository) list(ctx context.Context, where string, args []interface{}, offset, limit int) ([]*maintenance.Request, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.MaintenanceRequestModel{}).Where(where, args...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count maintenance requests: %w", err)
	}

	var modelList []models.MaintenanceRequestModel
	err := r.conn(ctx).
		Where(where, args...).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list maintenance requests: %w", err)
	}

	requests := make([]*maintenance.Request, 0, len(modelList))
	for i := range modelList {
		req, err := mappers.MaintenanceRequestToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, total, nil
}
