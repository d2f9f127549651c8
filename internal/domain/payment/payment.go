package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "hostelhub/internal/domain/payment/valueobjects"
	"hostelhub/internal/shared/biztime"
)

// Payment is a single gateway transaction against a room for a calendar year.
// A payment starts out pending and is confirmed exactly once, either by the
// redirect callback or by the webhook, whichever lands first.
type Payment struct {
	id             uint
	reference      string
	amount         decimal.Decimal
	amountPaid     decimal.Decimal
	balanceOwed    decimal.Decimal
	purpose        vo.PaymentPurpose
	paymentMethod  vo.PaymentMethod
	status         vo.PaymentStatus
	roomID         uint
	hostelID       uint
	calendarYearID uint

	residentProfileID    *uint
	historicalResidentID *uint

	gatewayTransactionID *string
	channel              *string
	paidAt               *time.Time

	reconciliationLabel *vo.ReconciliationLabel
	cancelReason        *string

	metadata map[string]interface{}

	createdAt time.Time
	updatedAt time.Time
}

func NewPayment(reference string, amount decimal.Decimal, purpose vo.PaymentPurpose, roomID, hostelID, calendarYearID uint) (*Payment, error) {
	if reference == "" {
		return nil, fmt.Errorf("reference is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if !purpose.IsValid() {
		return nil, fmt.Errorf("invalid payment purpose: %s", purpose)
	}
	if roomID == 0 {
		return nil, fmt.Errorf("room ID is required")
	}
	if hostelID == 0 {
		return nil, fmt.Errorf("hostel ID is required")
	}
	if calendarYearID == 0 {
		return nil, fmt.Errorf("calendar year ID is required")
	}

	now := biztime.NowUTC()

	return &Payment{
		reference:      reference,
		amount:         amount.Round(2),
		purpose:        purpose,
		paymentMethod:  vo.PaymentMethodCard,
		status:         vo.PaymentStatusPending,
		roomID:         roomID,
		hostelID:       hostelID,
		calendarYearID: calendarYearID,
		metadata:       make(map[string]interface{}),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// MarkAsConfirmed records a successful gateway verification. Confirming an
// already confirmed payment is a no-op; the repository-level conditional
// update decides which caller actually won the transition.
func (p *Payment) MarkAsConfirmed(method vo.PaymentMethod, gatewayTransactionID string, paidAt time.Time) error {
	if p.status == vo.PaymentStatusConfirmed {
		return nil
	}

	if p.status != vo.PaymentStatusPending {
		return fmt.Errorf("cannot confirm payment with status %s", p.status)
	}

	p.status = vo.PaymentStatusConfirmed
	p.paymentMethod = method
	p.gatewayTransactionID = &gatewayTransactionID
	p.paidAt = &paidAt
	p.updatedAt = biztime.NowUTC()

	return nil
}

func (p *Payment) MarkAsCancelled(reason string) error {
	if p.status == vo.PaymentStatusCancelled {
		return nil
	}

	p.status = vo.PaymentStatusCancelled
	p.cancelReason = &reason
	p.updatedAt = biztime.NowUTC()

	return nil
}

// LinkResidentProfile attaches the payment to the resident profile it was
// made for. Clears any previous historical link.
func (p *Payment) LinkResidentProfile(residentProfileID uint) error {
	if residentProfileID == 0 {
		return fmt.Errorf("resident profile ID is required")
	}
	p.residentProfileID = &residentProfileID
	p.historicalResidentID = nil
	p.updatedAt = biztime.NowUTC()
	return nil
}

// LinkHistoricalResident attaches the payment to a checked-out resident
// record found during reconciliation.
func (p *Payment) LinkHistoricalResident(historicalResidentID uint) error {
	if historicalResidentID == 0 {
		return fmt.Errorf("historical resident ID is required")
	}
	p.historicalResidentID = &historicalResidentID
	p.residentProfileID = nil
	p.updatedAt = biztime.NowUTC()
	return nil
}

// RecordSettlement stores the cumulative amount paid and the disclosed
// balance computed at confirmation time. The latest confirmed payment row
// always carries the resident's running totals.
func (p *Payment) RecordSettlement(amountPaid, balanceOwed decimal.Decimal) {
	p.amountPaid = amountPaid.Round(2)
	p.balanceOwed = balanceOwed.Round(2)
	p.updatedAt = biztime.NowUTC()
}

func (p *Payment) SetReconciliationLabel(label vo.ReconciliationLabel) {
	p.reconciliationLabel = &label
	p.updatedAt = biztime.NowUTC()
}

func (p *Payment) SetChannel(channel string) {
	p.channel = &channel
	p.updatedAt = biztime.NowUTC()
}

// IsOrphaned reports whether a confirmed payment has no owner on record.
func (p *Payment) IsOrphaned() bool {
	return p.status == vo.PaymentStatusConfirmed &&
		p.residentProfileID == nil &&
		p.historicalResidentID == nil
}

func (p *Payment) SetMetadata(key string, value interface{}) {
	if p.metadata == nil {
		p.metadata = make(map[string]interface{})
	}
	p.metadata[key] = value
	p.updatedAt = biztime.NowUTC()
}

// SetID sets the payment ID after persistence (used by repository after Create)
func (p *Payment) SetID(id uint) {
	p.id = id
}

func (p *Payment) ID() uint {
	return p.id
}

func (p *Payment) Reference() string {
	return p.reference
}

func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p *Payment) AmountPaid() decimal.Decimal {
	return p.amountPaid
}

func (p *Payment) BalanceOwed() decimal.Decimal {
	return p.balanceOwed
}

func (p *Payment) Purpose() vo.PaymentPurpose {
	return p.purpose
}

func (p *Payment) PaymentMethod() vo.PaymentMethod {
	return p.paymentMethod
}

func (p *Payment) Status() vo.PaymentStatus {
	return p.status
}

func (p *Payment) RoomID() uint {
	return p.roomID
}

func (p *Payment) HostelID() uint {
	return p.hostelID
}

func (p *Payment) CalendarYearID() uint {
	return p.calendarYearID
}

func (p *Payment) ResidentProfileID() *uint {
	return p.residentProfileID
}

func (p *Payment) HistoricalResidentID() *uint {
	return p.historicalResidentID
}

func (p *Payment) GatewayTransactionID() *string {
	return p.gatewayTransactionID
}

func (p *Payment) Channel() *string {
	return p.channel
}

func (p *Payment) PaidAt() *time.Time {
	return p.paidAt
}

func (p *Payment) ReconciliationLabel() *vo.ReconciliationLabel {
	return p.reconciliationLabel
}

func (p *Payment) CancelReason() *string {
	return p.cancelReason
}

func (p *Payment) Metadata() map[string]interface{} {
	return p.metadata
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

func ReconstructPayment(
	id uint,
	reference string,
	amount, amountPaid, balanceOwed decimal.Decimal,
	purpose vo.PaymentPurpose,
	paymentMethod vo.PaymentMethod,
	status vo.PaymentStatus,
	roomID, hostelID, calendarYearID uint,
	residentProfileID, historicalResidentID *uint,
	gatewayTransactionID, channel *string,
	paidAt *time.Time,
	reconciliationLabel *vo.ReconciliationLabel,
	cancelReason *string,
	metadata map[string]interface{},
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:                   id,
		reference:            reference,
		amount:               amount,
		amountPaid:           amountPaid,
		balanceOwed:          balanceOwed,
		purpose:              purpose,
		paymentMethod:        paymentMethod,
		status:               status,
		roomID:               roomID,
		hostelID:             hostelID,
		calendarYearID:       calendarYearID,
		residentProfileID:    residentProfileID,
		historicalResidentID: historicalResidentID,
		gatewayTransactionID: gatewayTransactionID,
		channel:              channel,
		paidAt:               paidAt,
		reconciliationLabel:  reconciliationLabel,
		cancelReason:         cancelReason,
		metadata:             metadata,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}
