package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	appPayment "hostelhub/internal/application/payment"
	"hostelhub/internal/application/payment/balance"
	"hostelhub/internal/application/payment/gateway"
	"hostelhub/internal/domain/calendaryear"
	"hostelhub/internal/domain/hostel"
	"hostelhub/internal/domain/payment"
	vo "hostelhub/internal/domain/payment/valueobjects"
	"hostelhub/internal/domain/resident"
	"hostelhub/internal/domain/room"
	"hostelhub/internal/shared/db"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/goroutine"
	"hostelhub/internal/shared/id"
	"hostelhub/internal/shared/logger"
)

// ConfirmPaymentUseCase settles a pending payment after gateway
// verification. The callback redirect and the webhook both land here; a
// conditional status update in the repository guarantees only one of them
// performs the side effects.
type ConfirmPaymentUseCase struct {
	txManager    *db.TransactionManager
	paymentRepo  payment.PaymentRepository
	residentRepo resident.ResidentProfileRepository
	roomRepo     room.RoomRepository
	hostelRepo   hostel.HostelRepository
	yearRepo     calendaryear.CalendarYearRepository
	gateway      gateway.Gateway
	notifier     appPayment.Notifier
	logger       logger.Interface
}

func NewConfirmPaymentUseCase(
	txManager *db.TransactionManager,
	paymentRepo payment.PaymentRepository,
	residentRepo resident.ResidentProfileRepository,
	roomRepo room.RoomRepository,
	hostelRepo hostel.HostelRepository,
	yearRepo calendaryear.CalendarYearRepository,
	gw gateway.Gateway,
	notifier appPayment.Notifier,
	logger logger.Interface,
) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		txManager:    txManager,
		paymentRepo:  paymentRepo,
		residentRepo: residentRepo,
		roomRepo:     roomRepo,
		hostelRepo:   hostelRepo,
		yearRepo:     yearRepo,
		gateway:      gw,
		notifier:     notifier,
		logger:       logger,
	}
}

type ConfirmPaymentCommand struct {
	Reference string
}

type ConfirmPaymentResult struct {
	Reference        string          `json:"reference"`
	Status           string          `json:"status"`
	AlreadyConfirmed bool            `json:"already_confirmed"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	BalanceOwed      decimal.Decimal `json:"balance_owed"`
	RoomAssigned     bool            `json:"room_assigned"`
	AccessCode       string          `json:"access_code,omitempty"`
}

func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, cmd ConfirmPaymentCommand) (*ConfirmPaymentResult, error) {
	if cmd.Reference == "" {
		return nil, apperrors.NewValidationError("reference is required")
	}

	verification, err := uc.gateway.VerifyTransaction(ctx, cmd.Reference)
	if err != nil {
		uc.logger.Errorw("gateway verification failed", "reference", cmd.Reference, "error", err)
		return nil, apperrors.NewGatewayError("failed to verify payment", err.Error())
	}
	if !verification.Succeeded() {
		return nil, apperrors.NewValidationError("payment was not successful", "gateway status is "+verification.Status)
	}

	p, err := uc.paymentRepo.GetByReference(ctx, cmd.Reference)
	if err != nil {
		return nil, apperrors.NewNotFoundError("payment not found")
	}

	if !verification.Amount.Equal(p.Amount()) {
		uc.logger.Warnw("verified amount does not match payment",
			"reference", cmd.Reference,
			"expected", p.Amount().String(),
			"got", verification.Amount.String(),
		)
		return nil, apperrors.NewValidationError("verified amount does not match payment")
	}

	if p.ResidentProfileID() == nil && p.HistoricalResidentID() == nil {
		return nil, apperrors.NewValidationError("payment has no resident link", "reconciliation must attach it first")
	}

	result := &ConfirmPaymentResult{
		Reference:  cmd.Reference,
		Status:     vo.PaymentStatusConfirmed.String(),
		AmountPaid: p.Amount(),
	}
	var notification *appPayment.BookingNotification
	var topUpNote *appPayment.TopUpNotification
	var alreadyConfirmed bool

	// The claim and every settlement side effect share one transaction. A
	// failure anywhere rolls the status back to pending so a later delivery
	// can confirm the payment cleanly.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		claimed, err := uc.paymentRepo.ClaimForConfirmation(txCtx, cmd.Reference)
		if err != nil {
			return apperrors.NewInternalError("failed to claim payment", err.Error())
		}
		if !claimed {
			alreadyConfirmed = true
			return nil
		}

		method := vo.NormalizePaymentMethod(verification.Channel)
		if err := p.MarkAsConfirmed(method, verification.TransactionID, verification.PaidAt); err != nil {
			return apperrors.NewConflictError(err.Error())
		}
		p.SetChannel(verification.Channel)

		if p.ResidentProfileID() == nil {
			// Historical residents have no booking to settle; the payment
			// only clears what they still owed.
			p.RecordSettlement(p.Amount(), decimal.Zero)
			if err := uc.paymentRepo.Update(txCtx, p); err != nil {
				return apperrors.NewInternalError("failed to update payment", err.Error())
			}
			return nil
		}

		profile, err := uc.residentRepo.GetByID(txCtx, *p.ResidentProfileID())
		if err != nil {
			return apperrors.NewInternalError("failed to load resident profile", err.Error())
		}

		standing, err := uc.settle(txCtx, p, profile, result)
		if err != nil {
			return err
		}
		p.RecordSettlement(standing.TotalPaid, standing.BalanceOwed)
		if err := uc.paymentRepo.Update(txCtx, p); err != nil {
			return apperrors.NewInternalError("failed to update payment", err.Error())
		}

		switch p.Purpose() {
		case vo.PaymentPurposeTopUp:
			topUpNote = &appPayment.TopUpNotification{
				Email:       profile.Email(),
				FullName:    profile.FullName(),
				AmountPaid:  p.Amount(),
				BalanceOwed: standing.BalanceOwed,
			}
		default:
			notification = &appPayment.BookingNotification{
				Email:          profile.Email(),
				FullName:       profile.FullName(),
				AccessCode:     result.AccessCode,
				AmountPaid:     p.Amount(),
				BalanceOwed:    standing.BalanceOwed,
				RoomAssignable: standing.RoomAssignable,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if alreadyConfirmed {
		uc.logger.Infow("payment already confirmed", "reference", cmd.Reference)
		return &ConfirmPaymentResult{
			Reference:        cmd.Reference,
			Status:           vo.PaymentStatusConfirmed.String(),
			AlreadyConfirmed: true,
			AmountPaid:       p.Amount(),
		}, nil
	}

	uc.logger.Infow("payment confirmed",
		"reference", cmd.Reference,
		"purpose", p.Purpose().String(),
		"room_assigned", result.RoomAssigned,
	)

	if notification != nil {
		n := *notification
		goroutine.SafeGo(uc.logger, "booking-confirmation-email", func() {
			if err := uc.notifier.SendBookingConfirmation(context.Background(), n); err != nil {
				uc.logger.Warnw("failed to send booking confirmation", "reference", cmd.Reference, "error", err)
			}
		})
	}
	if topUpNote != nil {
		n := *topUpNote
		goroutine.SafeGo(uc.logger, "topup-receipt-email", func() {
			if err := uc.notifier.SendTopUpReceipt(context.Background(), n); err != nil {
				uc.logger.Warnw("failed to send top-up receipt", "reference", cmd.Reference, "error", err)
			}
		})
	}

	return result, nil
}

// settle recomputes the resident's standing and assigns the room when the
// paid percentage crosses the hostel threshold.
func (uc *ConfirmPaymentUseCase) settle(ctx context.Context, p *payment.Payment, profile *resident.ResidentProfile, result *ConfirmPaymentResult) (balance.Result, error) {
	rm, err := uc.roomRepo.GetByID(ctx, p.RoomID())
	if err != nil {
		return balance.Result{}, apperrors.NewInternalError("failed to load room", err.Error())
	}
	hs, err := uc.hostelRepo.GetByID(ctx, p.HostelID())
	if err != nil {
		return balance.Result{}, apperrors.NewInternalError("failed to load hostel", err.Error())
	}

	totalPaid, err := uc.paymentRepo.SumConfirmedByResidentAndYear(ctx, profile.ID(), p.CalendarYearID())
	if err != nil {
		return balance.Result{}, apperrors.NewInternalError("failed to total confirmed payments", err.Error())
	}

	standing := balance.Compute(rm.Price(), totalPaid, hs.EffectivePartialPaymentPercentage())
	result.TotalPaid = standing.TotalPaid
	result.BalanceOwed = standing.BalanceOwed

	if !standing.RoomAssignable || profile.RoomID() != nil {
		if updateErr := uc.residentRepo.Update(ctx, profile); updateErr != nil {
			return standing, apperrors.NewInternalError("failed to update resident profile", updateErr.Error())
		}
		return standing, nil
	}

	year, err := uc.yearRepo.GetByID(ctx, p.CalendarYearID())
	if err != nil {
		return standing, apperrors.NewInternalError("failed to load calendar year", err.Error())
	}

	if err := rm.AddResident(); err != nil {
		return standing, apperrors.NewConflictError(err.Error())
	}
	if err := uc.roomRepo.Update(ctx, rm); err != nil {
		return standing, apperrors.NewInternalError("failed to update room occupancy", err.Error())
	}

	code, err := id.NewAccessCode()
	if err != nil {
		return standing, apperrors.NewInternalError("failed to generate access code", err.Error())
	}
	if err := profile.AssignRoom(rm.ID(), hs.ID(), year.ID(), code, year.EndDate()); err != nil {
		return standing, apperrors.NewConflictError(err.Error())
	}
	if err := uc.residentRepo.Update(ctx, profile); err != nil {
		return standing, apperrors.NewInternalError("failed to update resident profile", err.Error())
	}

	result.RoomAssigned = true
	result.AccessCode = code

	return standing, nil
}
