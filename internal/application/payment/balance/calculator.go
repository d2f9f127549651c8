// Package balance computes what a resident still owes on a room for a
// calendar year. The math is pure so it can be exercised without a database.
package balance

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Result describes a resident's standing against a room price.
type Result struct {
	Price             decimal.Decimal
	TotalPaid         decimal.Decimal
	Debt              decimal.Decimal
	BalanceOwed       decimal.Decimal
	PaymentPercentage decimal.Decimal
	RoomAssignable    bool
}

// Compute derives the outstanding balance from the room price, the sum of
// confirmed payments and the hostel's minimum partial payment percentage.
//
// Debt is always price minus totalPaid, floored at zero. A room becomes
// assignable once the paid percentage reaches the threshold; only then is
// the remaining debt disclosed as balance owed. Below the threshold the
// booking has not crossed the line yet, so balance owed stays zero.
func Compute(price, totalPaid, partialPercentage decimal.Decimal) Result {
	price = price.Round(2)
	totalPaid = totalPaid.Round(2)

	debt := price.Sub(totalPaid)
	if debt.IsNegative() {
		debt = decimal.Zero
	}
	debt = debt.Round(2)

	pct := decimal.Zero
	if price.IsPositive() {
		pct = totalPaid.Mul(hundred).Div(price).Round(2)
	}

	assignable := pct.GreaterThanOrEqual(partialPercentage)

	balanceOwed := decimal.Zero
	if assignable {
		balanceOwed = debt
	}

	return Result{
		Price:             price,
		TotalPaid:         totalPaid,
		Debt:              debt,
		BalanceOwed:       balanceOwed,
		PaymentPercentage: pct,
		RoomAssignable:    assignable,
	}
}

// IsSettled reports whether nothing is left to pay.
func (r Result) IsSettled() bool {
	return r.Debt.IsZero()
}
