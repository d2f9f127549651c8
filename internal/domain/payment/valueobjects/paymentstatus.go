package valueobjects

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusConfirmed, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsPending() bool {
	return s == PaymentStatusPending
}

func (s PaymentStatus) IsConfirmed() bool {
	return s == PaymentStatusConfirmed
}

func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusConfirmed || s == PaymentStatusCancelled
}

func (s PaymentStatus) String() string {
	return string(s)
}
