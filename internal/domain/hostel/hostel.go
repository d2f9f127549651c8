package hostel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hostelhub/internal/shared/biztime"
	"hostelhub/internal/shared/constants"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderMixed  Gender = "mixed"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderMixed:
		return true
	default:
		return false
	}
}

// Hostel groups rooms under one property and carries the partial payment
// policy applied to every booking in it.
type Hostel struct {
	id      uint
	name    string
	address string
	gender  Gender

	allowPartialPayment      bool
	partialPaymentPercentage *decimal.Decimal

	createdAt time.Time
	updatedAt time.Time
}

func NewHostel(name, address string, gender Gender) (*Hostel, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender: %s", gender)
	}

	now := biztime.NowUTC()

	return &Hostel{
		name:      name,
		address:   address,
		gender:    gender,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// EnablePartialPayment turns on partial payment with the given minimum
// percentage. A nil percentage uses the platform default.
func (h *Hostel) EnablePartialPayment(percentage *decimal.Decimal) error {
	if percentage != nil {
		if percentage.LessThanOrEqual(decimal.Zero) || percentage.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("partial payment percentage must be between 0 and 100")
		}
	}
	h.allowPartialPayment = true
	h.partialPaymentPercentage = percentage
	h.updatedAt = biztime.NowUTC()
	return nil
}

func (h *Hostel) DisablePartialPayment() {
	h.allowPartialPayment = false
	h.partialPaymentPercentage = nil
	h.updatedAt = biztime.NowUTC()
}

// EffectivePartialPaymentPercentage returns the configured minimum partial
// payment percentage, falling back to the platform default when unset.
func (h *Hostel) EffectivePartialPaymentPercentage() decimal.Decimal {
	if h.partialPaymentPercentage != nil {
		return *h.partialPaymentPercentage
	}
	return decimal.NewFromInt(constants.DefaultPartialPaymentPercentage)
}

func (h *Hostel) UpdateDetails(name, address string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if address == "" {
		return fmt.Errorf("address is required")
	}
	h.name = name
	h.address = address
	h.updatedAt = biztime.NowUTC()
	return nil
}

func (h *Hostel) SetID(id uint) {
	h.id = id
}

func (h *Hostel) ID() uint {
	return h.id
}

func (h *Hostel) Name() string {
	return h.name
}

func (h *Hostel) Address() string {
	return h.address
}

func (h *Hostel) Gender() Gender {
	return h.gender
}

func (h *Hostel) AllowPartialPayment() bool {
	return h.allowPartialPayment
}

func (h *Hostel) PartialPaymentPercentage() *decimal.Decimal {
	return h.partialPaymentPercentage
}

func (h *Hostel) CreatedAt() time.Time {
	return h.createdAt
}

func (h *Hostel) UpdatedAt() time.Time {
	return h.updatedAt
}

func ReconstructHostel(
	id uint,
	name, address string,
	gender Gender,
	allowPartialPayment bool,
	partialPaymentPercentage *decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Hostel {
	return &Hostel{
		id:                       id,
		name:                     name,
		address:                  address,
		gender:                   gender,
		allowPartialPayment:      allowPartialPayment,
		partialPaymentPercentage: partialPaymentPercentage,
		createdAt:                createdAt,
		updatedAt:                updatedAt,
	}
}
