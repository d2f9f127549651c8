package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HostelModel is the GORM model for the hostels table.
type HostelModel struct {
	ID                       uint   `gorm:"primaryKey;autoIncrement"`
	Name                     string `gorm:"size:128;not null;uniqueIndex"`
	Address                  string `gorm:"size:255;not null"`
	Gender                   string `gorm:"size:16;not null"`
	AllowPartialPayment      bool   `gorm:"not null;default:false"`
	PartialPaymentPercentage *decimal.Decimal `gorm:"type:decimal(5,2)"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (HostelModel) TableName() string {
	return "hostels"
}
