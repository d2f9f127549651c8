package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hostelhub/internal/domain/payment"
	vo "hostelhub/internal/domain/payment/valueobjects"
	"hostelhub/internal/infrastructure/persistence/mappers"
	"hostelhub/internal/infrastructure/persistence/models"
	"hostelhub/internal/shared/db"
)

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(database *gorm.DB) payment.PaymentRepository {
	return &paymentRepository{db: database}
}

func (r *paymentRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model, err := mappers.PaymentToModel(p)
	if err != nil {
		return err
	}
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	p.SetID(model.ID)
	return nil
}

func (r *paymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	model, err := mappers.PaymentToModel(p)
	if err != nil {
		return err
	}
	// Save writes every column so cleared pointer fields persist as NULL.
	if err := r.conn(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

func (r *paymentRepository) GetByReference(ctx context.Context, reference string) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.conn(ctx).Where("reference = ?", reference).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment not found: %s", reference)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

// ClaimForConfirmation performs the compare-and-set transition from pending
// to confirmed. Concurrent callers race on the WHERE clause; exactly one
// sees RowsAffected == 1.
func (r *paymentRepository) ClaimForConfirmation(ctx context.Context, reference string) (bool, error) {
	result := r.conn(ctx).Model(&models.PaymentModel{}).
		Where("reference = ? AND status = ?", reference, vo.PaymentStatusPending.String()).
		Updates(map[string]interface{}{
			"status":     vo.PaymentStatusConfirmed.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim payment: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *paymentRepository) GetOrphaned(ctx context.Context) ([]*payment.Payment, error) {
	var modelList []models.PaymentModel
	err := r.conn(ctx).
		Where("status = ? AND resident_profile_id IS NULL AND historical_resident_id IS NULL", vo.PaymentStatusConfirmed.String()).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orphaned payments: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *paymentRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	var modelList []models.PaymentModel
	err := r.conn(ctx).
		Where("status = ? AND created_at < ?", vo.PaymentStatusPending.String(), cutoff).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stale pending payments: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *paymentRepository) FindDuplicateConfirmed(ctx context.Context, candidate *payment.Payment, window time.Duration) (*payment.Payment, error) {
	var model models.PaymentModel
	err := r.conn(ctx).
		Where("id != ? AND status = ? AND amount = ? AND room_id = ? AND calendar_year_id = ?",
			candidate.ID(), vo.PaymentStatusConfirmed.String(), candidate.Amount(), candidate.RoomID(), candidate.CalendarYearID()).
		Where("created_at BETWEEN ? AND ?", candidate.CreatedAt().Add(-window), candidate.CreatedAt().Add(window)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to search for duplicate payment: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

func (r *paymentRepository) SumConfirmedByResidentAndYear(ctx context.Context, residentProfileID, calendarYearID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.conn(ctx).Model(&models.PaymentModel{}).
		Select("SUM(amount)").
		Where("resident_profile_id = ? AND calendar_year_id = ? AND status = ?",
			residentProfileID, calendarYearID, vo.PaymentStatusConfirmed.String()).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum confirmed payments: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *paymentRepository) ListByResidentProfile(ctx context.Context, residentProfileID uint, offset, limit int) ([]*payment.Payment, int64, error) {
	return r.list(ctx, "resident_profile_id = ?", []interface{}{residentProfileID}, offset, limit)
}

func (r *paymentRepository) ListByHostel(ctx context.Context, hostelID uint, offset, limit int) ([]*payment.Payment, int64, error) {
	return r.list(ctx, "hostel_id = ?", []interface{}{hostelID}, offset, limit)
}

func (r *paymentRepository) list(ctx context.Context, where string, args []interface{}, offset, limit int) ([]*payment.Payment, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.PaymentModel{}).Where(where, args...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	var modelList []models.PaymentModel
	err := r.conn(ctx).
		Where(where, args...).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	payments, err := r.toDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *paymentRepository) toDomainList(modelList []models.PaymentModel) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0, len(modelList))
	for i := range modelList {
		p, err := mappers.PaymentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

type webhookEventRepository struct {
	db *gorm.DB
}

func NewWebhookEventRepository(database *gorm.DB) payment.WebhookEventRepository {
	return &webhookEventRepository{db: database}
}

func (r *webhookEventRepository) Create(ctx context.Context, event *payment.WebhookEvent) error {
	model := mappers.WebhookEventToModel(event)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create webhook event: %w", err)
	}
	event.ID = model.ID
	return nil
}

func (r *webhookEventRepository) List(ctx context.Context, offset, limit int) ([]*payment.WebhookEvent, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := conn.Model(&models.WebhookEventModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count webhook events: %w", err)
	}

	var modelList []models.WebhookEventModel
	if err := conn.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list webhook events: %w", err)
	}

	events := make([]*payment.WebhookEvent, 0, len(modelList))
	for i := range modelList {
		events = append(events, mappers.WebhookEventToDomain(&modelList[i]))
	}
	return events, total, nil
}
