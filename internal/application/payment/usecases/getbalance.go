package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"hostelhub/internal/application/payment/balance"
	"hostelhub/internal/domain/hostel"
	"hostelhub/internal/domain/payment"
	"hostelhub/internal/domain/resident"
	"hostelhub/internal/domain/room"
	apperrors "hostelhub/internal/shared/errors"
)

// GetBalanceUseCase reports a resident's standing on their current booking.
type GetBalanceUseCase struct {
	paymentRepo  payment.PaymentRepository
	residentRepo resident.ResidentProfileRepository
	roomRepo     room.RoomRepository
	hostelRepo   hostel.HostelRepository
}

func NewGetBalanceUseCase(
	paymentRepo payment.PaymentRepository,
	residentRepo resident.ResidentProfileRepository,
	roomRepo room.RoomRepository,
	hostelRepo hostel.HostelRepository,
) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		paymentRepo:  paymentRepo,
		residentRepo: residentRepo,
		roomRepo:     roomRepo,
		hostelRepo:   hostelRepo,
	}
}

type GetBalanceCommand struct {
	UserID uint
}

type GetBalanceResult struct {
	RoomLabel         string          `json:"room_label"`
	RoomPrice         decimal.Decimal `json:"room_price"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	BalanceOwed       decimal.Decimal `json:"balance_owed"`
	PaymentPercentage decimal.Decimal `json:"payment_percentage"`
	RoomAssignable    bool            `json:"room_assignable"`
	Settled           bool            `json:"settled"`
}

func (uc *GetBalanceUseCase) Execute(ctx context.Context, cmd GetBalanceCommand) (*GetBalanceResult, error) {
	profile, err := uc.residentRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("resident profile not found")
	}
	if profile.RoomID() == nil || profile.CalendarYearID() == nil || profile.HostelID() == nil {
		return nil, apperrors.NewConflictError("resident has no room assignment")
	}

	rm, err := uc.roomRepo.GetByID(ctx, *profile.RoomID())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load room", err.Error())
	}
	hs, err := uc.hostelRepo.GetByID(ctx, *profile.HostelID())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load hostel", err.Error())
	}

	totalPaid, err := uc.paymentRepo.SumConfirmedByResidentAndYear(ctx, profile.ID(), *profile.CalendarYearID())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to total confirmed payments", err.Error())
	}

	standing := balance.Compute(rm.Price(), totalPaid, hs.EffectivePartialPaymentPercentage())

	return &GetBalanceResult{
		RoomLabel:         rm.Label(),
		RoomPrice:         standing.Price,
		TotalPaid:         standing.TotalPaid,
		BalanceOwed:       standing.BalanceOwed,
		PaymentPercentage: standing.PaymentPercentage,
		RoomAssignable:    standing.RoomAssignable,
		Settled:           standing.IsSettled(),
	}, nil
}
