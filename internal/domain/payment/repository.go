package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetByReference(ctx context.Context, reference string) (*Payment, error)

	// ClaimForConfirmation flips a pending payment to confirmed with a single
	// conditional update. It returns false when the payment was no longer
	// pending, meaning another caller already confirmed or cancelled it.
	ClaimForConfirmation(ctx context.Context, reference string) (bool, error)

	// GetOrphaned returns confirmed payments with no resident profile and no
	// historical resident link.
	GetOrphaned(ctx context.Context) ([]*Payment, error)

	// GetStalePending returns pending payments created before the cutoff.
	// These were abandoned at the gateway and never confirmed.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*Payment, error)

	// FindDuplicateConfirmed looks for another confirmed payment with the
	// same amount, room and calendar year created within the given window
	// around the candidate's creation time.
	FindDuplicateConfirmed(ctx context.Context, candidate *Payment, window time.Duration) (*Payment, error)

	// SumConfirmedByResidentAndYear totals confirmed payment amounts for a
	// resident profile in a calendar year.
	SumConfirmedByResidentAndYear(ctx context.Context, residentProfileID, calendarYearID uint) (decimal.Decimal, error)

	ListByResidentProfile(ctx context.Context, residentProfileID uint, offset, limit int) ([]*Payment, int64, error)
	ListByHostel(ctx context.Context, hostelID uint, offset, limit int) ([]*Payment, int64, error)
}

type WebhookEventRepository interface {
	Create(ctx context.Context, event *WebhookEvent) error
	List(ctx context.Context, offset, limit int) ([]*WebhookEvent, int64, error)
}
