package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hostelhub/internal/domain/payment"
	"hostelhub/internal/domain/resident"
	apperrors "hostelhub/internal/shared/errors"
)

// PaymentDTO is the read model returned by payment queries.
type PaymentDTO struct {
	ID                  uint            `json:"id"`
	Reference           string          `json:"reference"`
	Amount              decimal.Decimal `json:"amount"`
	Purpose             string          `json:"purpose"`
	Method              string          `json:"method"`
	Status              string          `json:"status"`
	RoomID              uint            `json:"room_id"`
	HostelID            uint            `json:"hostel_id"`
	CalendarYearID      uint            `json:"calendar_year_id"`
	ResidentProfileID   *uint           `json:"resident_profile_id,omitempty"`
	ReconciliationLabel *string         `json:"reconciliation_label,omitempty"`
	PaidAt              *time.Time      `json:"paid_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

func toPaymentDTO(p *payment.Payment) PaymentDTO {
	dto := PaymentDTO{
		ID:                p.ID(),
		Reference:         p.Reference(),
		Amount:            p.Amount(),
		Purpose:           p.Purpose().String(),
		Method:            p.PaymentMethod().String(),
		Status:            p.Status().String(),
		RoomID:            p.RoomID(),
		HostelID:          p.HostelID(),
		CalendarYearID:    p.CalendarYearID(),
		ResidentProfileID: p.ResidentProfileID(),
		PaidAt:            p.PaidAt(),
		CreatedAt:         p.CreatedAt(),
	}
	if label := p.ReconciliationLabel(); label != nil {
		s := label.String()
		dto.ReconciliationLabel = &s
	}
	return dto
}

// ListPaymentsUseCase serves payment history queries for residents and
// hostel admins.
type ListPaymentsUseCase struct {
	paymentRepo  payment.PaymentRepository
	residentRepo resident.ResidentProfileRepository
}

func NewListPaymentsUseCase(
	paymentRepo payment.PaymentRepository,
	residentRepo resident.ResidentProfileRepository,
) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo:  paymentRepo,
		residentRepo: residentRepo,
	}
}

func (uc *ListPaymentsUseCase) ListForUser(ctx context.Context, userID uint, offset, limit int) ([]PaymentDTO, int64, error) {
	profile, err := uc.residentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, apperrors.NewNotFoundError("resident profile not found")
	}

	payments, total, err := uc.paymentRepo.ListByResidentProfile(ctx, profile.ID(), offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list payments", err.Error())
	}
	return toDTOs(payments), total, nil
}

func (uc *ListPaymentsUseCase) ListForHostel(ctx context.Context, hostelID uint, offset, limit int) ([]PaymentDTO, int64, error) {
	payments, total, err := uc.paymentRepo.ListByHostel(ctx, hostelID, offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list payments", err.Error())
	}
	return toDTOs(payments), total, nil
}

func (uc *ListPaymentsUseCase) GetByReference(ctx context.Context, reference string) (*PaymentDTO, error) {
	p, err := uc.paymentRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, apperrors.NewNotFoundError("payment not found")
	}
	dto := toPaymentDTO(p)
	return &dto, nil
}

func toDTOs(payments []*payment.Payment) []PaymentDTO {
	dtos := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, toPaymentDTO(p))
	}
	return dtos
}
