package balance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute(t *testing.T) {
	threshold := d("70")

	tests := []struct {
		name            string
		price           string
		totalPaid       string
		wantDebt        string
		wantBalanceOwed string
		wantPct         string
		wantAssignable  bool
	}{
		{
			name:  "full payment settles everything",
			price: "1000", totalPaid: "1000",
			wantDebt: "0", wantBalanceOwed: "0", wantPct: "100", wantAssignable: true,
		},
		{
			name:  "exactly at threshold discloses balance",
			price: "1000", totalPaid: "700",
			wantDebt: "300", wantBalanceOwed: "300", wantPct: "70", wantAssignable: true,
		},
		{
			name:  "below threshold hides balance",
			price: "1000", totalPaid: "600",
			wantDebt: "400", wantBalanceOwed: "0", wantPct: "60", wantAssignable: false,
		},
		{
			name:  "above threshold discloses remainder",
			price: "1000", totalPaid: "850",
			wantDebt: "150", wantBalanceOwed: "150", wantPct: "85", wantAssignable: true,
		},
		{
			name:  "overpayment floors debt at zero",
			price: "1000", totalPaid: "1200",
			wantDebt: "0", wantBalanceOwed: "0", wantPct: "120", wantAssignable: true,
		},
		{
			name:  "nothing paid",
			price: "1000", totalPaid: "0",
			wantDebt: "1000", wantBalanceOwed: "0", wantPct: "0", wantAssignable: false,
		},
		{
			name:  "fractional amounts round to two places",
			price: "149999.99", totalPaid: "105000",
			wantDebt: "44999.99", wantBalanceOwed: "44999.99", wantPct: "70", wantAssignable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(d(tt.price), d(tt.totalPaid), threshold)

			assert.True(t, got.Debt.Equal(d(tt.wantDebt)), "debt: got %s want %s", got.Debt, tt.wantDebt)
			assert.True(t, got.BalanceOwed.Equal(d(tt.wantBalanceOwed)), "balance owed: got %s want %s", got.BalanceOwed, tt.wantBalanceOwed)
			assert.True(t, got.PaymentPercentage.Equal(d(tt.wantPct)), "pct: got %s want %s", got.PaymentPercentage, tt.wantPct)
			assert.Equal(t, tt.wantAssignable, got.RoomAssignable)
		})
	}

	t.Run("zero price yields zero percentage", func(t *testing.T) {
		got := Compute(decimal.Zero, d("100"), threshold)
		assert.True(t, got.PaymentPercentage.IsZero())
		assert.True(t, got.Debt.IsZero())
	})

	t.Run("settled check", func(t *testing.T) {
		assert.True(t, Compute(d("1000"), d("1000"), threshold).IsSettled())
		assert.False(t, Compute(d("1000"), d("700"), threshold).IsSettled())
	})
}
