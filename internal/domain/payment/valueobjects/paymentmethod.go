package valueobjects

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUSSD         PaymentMethod = "ussd"
	PaymentMethodManual       PaymentMethod = "manual"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodUSSD, PaymentMethodManual:
		return true
	default:
		return false
	}
}

// NormalizePaymentMethod maps a gateway channel string to a PaymentMethod.
// Unknown channels fall back to card, which is what the gateway reports
// for the overwhelming majority of transactions.
func NormalizePaymentMethod(channel string) PaymentMethod {
	switch channel {
	case "bank", "bank_transfer":
		return PaymentMethodBankTransfer
	case "ussd":
		return PaymentMethodUSSD
	case "card", "":
		return PaymentMethodCard
	default:
		return PaymentMethodCard
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}
