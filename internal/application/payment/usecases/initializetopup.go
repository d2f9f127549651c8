package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"hostelhub/internal/application/payment/balance"
	"hostelhub/internal/application/payment/gateway"
	"hostelhub/internal/domain/hostel"
	"hostelhub/internal/domain/payment"
	vo "hostelhub/internal/domain/payment/valueobjects"
	"hostelhub/internal/domain/resident"
	"hostelhub/internal/domain/room"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/id"
	"hostelhub/internal/shared/logger"
)

// InitializeTopUpUseCase starts a payment against an existing booking's
// outstanding balance. Top-ups can never exceed what is still owed.
type InitializeTopUpUseCase struct {
	paymentRepo  payment.PaymentRepository
	residentRepo resident.ResidentProfileRepository
	roomRepo     room.RoomRepository
	hostelRepo   hostel.HostelRepository
	gateway      gateway.Gateway
	callbackURL  string
	logger       logger.Interface
}

func NewInitializeTopUpUseCase(
	paymentRepo payment.PaymentRepository,
	residentRepo resident.ResidentProfileRepository,
	roomRepo room.RoomRepository,
	hostelRepo hostel.HostelRepository,
	gw gateway.Gateway,
	callbackURL string,
	logger logger.Interface,
) *InitializeTopUpUseCase {
	return &InitializeTopUpUseCase{
		paymentRepo:  paymentRepo,
		residentRepo: residentRepo,
		roomRepo:     roomRepo,
		hostelRepo:   hostelRepo,
		gateway:      gw,
		callbackURL:  callbackURL,
		logger:       logger,
	}
}

type InitializeTopUpCommand struct {
	UserID uint
	Amount decimal.Decimal
}

type InitializeTopUpResult struct {
	Reference        string          `json:"reference"`
	AuthorizationURL string          `json:"authorization_url"`
	Amount           decimal.Decimal `json:"amount"`
	OutstandingDebt  decimal.Decimal `json:"outstanding_debt"`
}

func (uc *InitializeTopUpUseCase) Execute(ctx context.Context, cmd InitializeTopUpCommand) (*InitializeTopUpResult, error) {
	if !cmd.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	profile, err := uc.residentRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("resident profile not found")
	}
	if profile.RoomID() == nil || profile.CalendarYearID() == nil || profile.HostelID() == nil {
		return nil, apperrors.NewConflictError("resident has no room assignment to top up")
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
	if standing.IsSettled() {
		return nil, apperrors.NewConflictError("nothing outstanding on this booking")
	}
	if cmd.Amount.GreaterThan(standing.Debt) {
		return nil, apperrors.NewValidationError("amount exceeds outstanding debt", "outstanding debt is "+standing.Debt.String())
	}

	reference, err := id.NewPaymentReference()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate payment reference", err.Error())
	}

	p, err := payment.NewPayment(reference, cmd.Amount, vo.PaymentPurposeTopUp, rm.ID(), hs.ID(), *profile.CalendarYearID())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := p.LinkResidentProfile(profile.ID()); err != nil {
		return nil, apperrors.NewInternalError("failed to link resident profile", err.Error())
	}
	p.SetMetadata("customer_email", profile.Email())
	p.SetMetadata("resident_profile_id", profile.ID())

	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create top-up payment", "reference", reference, "error", err)
		return nil, apperrors.NewInternalError("failed to create payment", err.Error())
	}

	initResult, err := uc.gateway.InitializeTransaction(ctx, gateway.InitializeRequest{
		Reference: reference,
		Email:     profile.Email(),
		// Charge the stored amount so confirmation's amount check holds.
		Amount:      p.Amount(),
		CallbackURL: uc.callbackURL,
		Metadata: map[string]interface{}{
			"resident_profile_id": profile.ID(),
			"purpose":             vo.PaymentPurposeTopUp.String(),
		},
	})
	if err != nil {
		uc.logger.Errorw("gateway initialization failed", "reference", reference, "error", err)
		if cancelErr := p.MarkAsCancelled("gateway initialization failed"); cancelErr == nil {
			if updateErr := uc.paymentRepo.Update(ctx, p); updateErr != nil {
				uc.logger.Warnw("failed to cancel payment after gateway error", "reference", reference, "error", updateErr)
			}
		}
		return nil, apperrors.NewGatewayError("failed to initialize top-up", err.Error())
	}

	uc.logger.Infow("top-up initialized",
		"reference", reference,
		"amount", cmd.Amount.String(),
		"outstanding", standing.Debt.String(),
	)

	return &InitializeTopUpResult{
		Reference:        reference,
		AuthorizationURL: initResult.AuthorizationURL,
		Amount:           p.Amount(),
		OutstandingDebt:  standing.Debt.Sub(p.Amount()),
	}, nil
}
