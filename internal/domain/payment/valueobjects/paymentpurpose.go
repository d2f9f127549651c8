package valueobjects

// PaymentPurpose distinguishes an initial booking payment from a later
// top-up against an outstanding balance.
type PaymentPurpose string

const (
	PaymentPurposeBooking PaymentPurpose = "booking"
	PaymentPurposeTopUp   PaymentPurpose = "topup"
)

func (p PaymentPurpose) IsValid() bool {
	return p == PaymentPurposeBooking || p == PaymentPurposeTopUp
}

func (p PaymentPurpose) String() string {
	return string(p)
}
