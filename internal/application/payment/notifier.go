// Package payment wires the payment use cases together with the gateway
// and notification contracts they depend on.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// BookingNotification carries everything the confirmation email needs.
type BookingNotification struct {
	Email          string
	FullName       string
	HostelName     string
	RoomLabel      string
	AccessCode     string
	AmountPaid     decimal.Decimal
	BalanceOwed    decimal.Decimal
	CalendarYear   string
	RoomAssignable bool
}

// TopUpNotification is sent after a top-up payment is confirmed.
type TopUpNotification struct {
	Email       string
	FullName    string
	AmountPaid  decimal.Decimal
	BalanceOwed decimal.Decimal
}

// Notifier sends payment-related emails. Implementations must be safe to
// call from fire-and-forget goroutines; delivery failures are logged, never
// propagated into the payment flow.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, n BookingNotification) error
	SendAccessCode(ctx context.Context, email, fullName, accessCode string) error
	SendTopUpReceipt(ctx context.Context, n TopUpNotification) error
}
