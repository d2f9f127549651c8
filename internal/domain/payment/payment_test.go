package payment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "hostelhub/internal/domain/payment/valueobjects"
)

func TestNewPayment(t *testing.T) {
	amount := decimal.NewFromInt(150000)

	t.Run("creates pending payment", func(t *testing.T) {
		p, err := NewPayment("hh_abc123", amount, vo.PaymentPurposeBooking, 1, 2, 3)
		require.NoError(t, err)

		assert.Equal(t, "hh_abc123", p.Reference())
		assert.Equal(t, vo.PaymentStatusPending, p.Status())
		assert.Equal(t, vo.PaymentPurposeBooking, p.Purpose())
		assert.Equal(t, uint(1), p.RoomID())
		assert.Equal(t, uint(2), p.HostelID())
		assert.Equal(t, uint(3), p.CalendarYearID())
		assert.Nil(t, p.ResidentProfileID())
		assert.Nil(t, p.PaidAt())
	})

	t.Run("rounds amount to two decimal places", func(t *testing.T) {
		p, err := NewPayment("hh_abc123", decimal.RequireFromString("100.005"), vo.PaymentPurposeBooking, 1, 2, 3)
		require.NoError(t, err)
		assert.True(t, p.Amount().Equal(decimal.RequireFromString("100.00")) || p.Amount().Equal(decimal.RequireFromString("100.01")))
	})

	t.Run("rejects empty reference", func(t *testing.T) {
		_, err := NewPayment("", amount, vo.PaymentPurposeBooking, 1, 2, 3)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPayment("hh_abc123", decimal.Zero, vo.PaymentPurposeBooking, 1, 2, 3)
		assert.Error(t, err)

		_, err = NewPayment("hh_abc123", decimal.NewFromInt(-10), vo.PaymentPurposeTopUp, 1, 2, 3)
		assert.Error(t, err)
	})

	t.Run("rejects invalid purpose", func(t *testing.T) {
		_, err := NewPayment("hh_abc123", amount, vo.PaymentPurpose("refund"), 1, 2, 3)
		assert.Error(t, err)
	})

	t.Run("rejects missing identifiers", func(t *testing.T) {
		_, err := NewPayment("hh_abc123", amount, vo.PaymentPurposeBooking, 0, 2, 3)
		assert.Error(t, err)

		_, err = NewPayment("hh_abc123", amount, vo.PaymentPurposeBooking, 1, 0, 3)
		assert.Error(t, err)

		_, err = NewPayment("hh_abc123", amount, vo.PaymentPurposeBooking, 1, 2, 0)
		assert.Error(t, err)
	})
}

func TestPaymentMarkAsConfirmed(t *testing.T) {
	newPending := func(t *testing.T) *Payment {
		p, err := NewPayment("hh_abc123", decimal.NewFromInt(1000), vo.PaymentPurposeBooking, 1, 2, 3)
		require.NoError(t, err)
		return p
	}

	t.Run("confirms pending payment", func(t *testing.T) {
		p := newPending(t)
		paidAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

		err := p.MarkAsConfirmed(vo.PaymentMethodBankTransfer, "txn_991", paidAt)
		require.NoError(t, err)

		assert.Equal(t, vo.PaymentStatusConfirmed, p.Status())
		assert.Equal(t, vo.PaymentMethodBankTransfer, p.PaymentMethod())
		require.NotNil(t, p.GatewayTransactionID())
		assert.Equal(t, "txn_991", *p.GatewayTransactionID())
		require.NotNil(t, p.PaidAt())
		assert.Equal(t, paidAt, *p.PaidAt())
	})

	t.Run("confirming twice is a no-op", func(t *testing.T) {
		p := newPending(t)
		paidAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

		require.NoError(t, p.MarkAsConfirmed(vo.PaymentMethodCard, "txn_1", paidAt))
		require.NoError(t, p.MarkAsConfirmed(vo.PaymentMethodCard, "txn_2", paidAt.Add(time.Hour)))

		assert.Equal(t, "txn_1", *p.GatewayTransactionID())
		assert.Equal(t, paidAt, *p.PaidAt())
	})

	t.Run("cannot confirm cancelled payment", func(t *testing.T) {
		p := newPending(t)
		require.NoError(t, p.MarkAsCancelled("abandoned"))

		err := p.MarkAsConfirmed(vo.PaymentMethodCard, "txn_1", time.Now())
		assert.Error(t, err)
	})
}

func TestPaymentLinks(t *testing.T) {
	newConfirmed := func(t *testing.T) *Payment {
		p, err := NewPayment("hh_abc123", decimal.NewFromInt(1000), vo.PaymentPurposeBooking, 1, 2, 3)
		require.NoError(t, err)
		require.NoError(t, p.MarkAsConfirmed(vo.PaymentMethodCard, "txn_1", time.Now()))
		return p
	}

	t.Run("confirmed payment without owner is orphaned", func(t *testing.T) {
		p := newConfirmed(t)
		assert.True(t, p.IsOrphaned())
	})

	t.Run("linking resident clears historical link", func(t *testing.T) {
		p := newConfirmed(t)
		require.NoError(t, p.LinkHistoricalResident(7))
		require.NoError(t, p.LinkResidentProfile(42))

		require.NotNil(t, p.ResidentProfileID())
		assert.Equal(t, uint(42), *p.ResidentProfileID())
		assert.Nil(t, p.HistoricalResidentID())
		assert.False(t, p.IsOrphaned())
	})

	t.Run("linking historical clears resident link", func(t *testing.T) {
		p := newConfirmed(t)
		require.NoError(t, p.LinkResidentProfile(42))
		require.NoError(t, p.LinkHistoricalResident(7))

		require.NotNil(t, p.HistoricalResidentID())
		assert.Equal(t, uint(7), *p.HistoricalResidentID())
		assert.Nil(t, p.ResidentProfileID())
		assert.False(t, p.IsOrphaned())
	})

	t.Run("rejects zero IDs", func(t *testing.T) {
		p := newConfirmed(t)
		assert.Error(t, p.LinkResidentProfile(0))
		assert.Error(t, p.LinkHistoricalResident(0))
	})

	t.Run("pending payment is never orphaned", func(t *testing.T) {
		p, err := NewPayment("hh_abc123", decimal.NewFromInt(1000), vo.PaymentPurposeBooking, 1, 2, 3)
		require.NoError(t, err)
		assert.False(t, p.IsOrphaned())
	})
}
