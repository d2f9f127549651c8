package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"hostelhub/internal/application/payment/gateway"
	"hostelhub/internal/domain/calendaryear"
	"hostelhub/internal/domain/hostel"
	"hostelhub/internal/domain/payment"
	vo "hostelhub/internal/domain/payment/valueobjects"
	"hostelhub/internal/domain/resident"
	"hostelhub/internal/domain/room"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/id"
	"hostelhub/internal/shared/logger"
)

type InitializePaymentUseCase struct {
	paymentRepo  payment.PaymentRepository
	roomRepo     room.RoomRepository
	hostelRepo   hostel.HostelRepository
	yearRepo     calendaryear.CalendarYearRepository
	residentRepo resident.ResidentProfileRepository
	gateway      gateway.Gateway
	callbackURL  string
	logger       logger.Interface
}

func NewInitializePaymentUseCase(
	paymentRepo payment.PaymentRepository,
	roomRepo room.RoomRepository,
	hostelRepo hostel.HostelRepository,
	yearRepo calendaryear.CalendarYearRepository,
	residentRepo resident.ResidentProfileRepository,
	gw gateway.Gateway,
	callbackURL string,
	logger logger.Interface,
) *InitializePaymentUseCase {
	return &InitializePaymentUseCase{
		paymentRepo:  paymentRepo,
		roomRepo:     roomRepo,
		hostelRepo:   hostelRepo,
		yearRepo:     yearRepo,
		residentRepo: residentRepo,
		gateway:      gw,
		callbackURL:  callbackURL,
		logger:       logger,
	}
}

type InitializePaymentCommand struct {
	UserID uint
	RoomID uint
	Amount decimal.Decimal
}

type InitializePaymentResult struct {
	Reference        string          `json:"reference"`
	AuthorizationURL string          `json:"authorization_url"`
	Amount           decimal.Decimal `json:"amount"`
	RoomLabel        string          `json:"room_label"`
	CalendarYear     string          `json:"calendar_year"`
}

func (uc *InitializePaymentUseCase) Execute(ctx context.Context, cmd InitializePaymentCommand) (*InitializePaymentResult, error) {
	if !cmd.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	profile, err := uc.residentRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("resident profile not found")
	}

	year, err := uc.yearRepo.GetActive(ctx)
	if err != nil {
		return nil, apperrors.NewConflictError("no active calendar year")
	}

	rm, err := uc.roomRepo.GetByID(ctx, cmd.RoomID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("room not found")
	}
	if !rm.IsBookable() {
		return nil, apperrors.NewConflictError("room is not available for booking")
	}

	hs, err := uc.hostelRepo.GetByID(ctx, rm.HostelID())
	if err != nil {
		return nil, apperrors.NewNotFoundError("hostel not found")
	}

	if err := uc.validateAmount(cmd.Amount, rm.Price(), hs); err != nil {
		return nil, err
	}

	reference, err := id.NewPaymentReference()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate payment reference", err.Error())
	}

	p, err := payment.NewPayment(reference, cmd.Amount, vo.PaymentPurposeBooking, rm.ID(), hs.ID(), year.ID())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := p.LinkResidentProfile(profile.ID()); err != nil {
		return nil, apperrors.NewInternalError("failed to link resident profile", err.Error())
	}
	p.SetMetadata("customer_email", profile.Email())
	p.SetMetadata("resident_profile_id", profile.ID())

	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create payment", "reference", reference, "error", err)
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
			"room_id":             rm.ID(),
			"calendar_year_id":    year.ID(),
		},
	})
	if err != nil {
		uc.logger.Errorw("gateway initialization failed", "reference", reference, "error", err)
		if cancelErr := p.MarkAsCancelled("gateway initialization failed"); cancelErr == nil {
			if updateErr := uc.paymentRepo.Update(ctx, p); updateErr != nil {
				uc.logger.Warnw("failed to cancel payment after gateway error", "reference", reference, "error", updateErr)
			}
		}
		return nil, apperrors.NewGatewayError("failed to initialize payment", err.Error())
	}

	uc.logger.Infow("payment initialized",
		"reference", reference,
		"room_id", rm.ID(),
		"amount", cmd.Amount.String(),
	)

	return &InitializePaymentResult{
		Reference:        reference,
		AuthorizationURL: initResult.AuthorizationURL,
		Amount:           p.Amount(),
		RoomLabel:        rm.Label(),
		CalendarYear:     year.Name(),
	}, nil
}

// validateAmount accepts any positive amount up to the room price. Amounts
// below the hostel's threshold still book; the room is simply withheld
// until later top-ups cross it.
func (uc *InitializePaymentUseCase) validateAmount(amount, price decimal.Decimal, hs *hostel.Hostel) error {
	if amount.GreaterThan(price) {
		return apperrors.NewValidationError("amount exceeds room price")
	}
	if amount.Equal(price) {
		return nil
	}
	if !hs.AllowPartialPayment() {
		return apperrors.NewValidationError("hostel requires full payment")
	}
	return nil
}
