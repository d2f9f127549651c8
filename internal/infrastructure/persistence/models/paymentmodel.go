package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PaymentModel is the GORM model for the payments table.
type PaymentModel struct {
	ID                   uint            `gorm:"primaryKey;autoIncrement"`
	Reference            string          `gorm:"uniqueIndex;size:64;not null"`
	Amount               decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AmountPaid           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	BalanceOwed          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Purpose              string          `gorm:"size:16;not null;default:'booking'"`
	Method               string          `gorm:"size:32;not null;default:'card'"`
	Status               string          `gorm:"size:16;not null;index;default:'pending'"`
	RoomID               uint            `gorm:"not null;index:idx_payments_room_year"`
	HostelID             uint            `gorm:"not null;index"`
	CalendarYearID       uint            `gorm:"not null;index:idx_payments_room_year"`
	ResidentProfileID    *uint           `gorm:"index"`
	HistoricalResidentID *uint           `gorm:"index"`
	GatewayTransactionID *string         `gorm:"size:64"`
	Channel              *string         `gorm:"size:32"`
	PaidAt               *time.Time
	ReconciliationLabel  *string `gorm:"size:32"`
	CancelReason         *string `gorm:"size:255"`
	Metadata             datatypes.JSON
	CreatedAt            time.Time `gorm:"index"`
	UpdatedAt            time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}

// WebhookEventModel is the audit table for verified gateway deliveries.
type WebhookEventModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	EventType string         `gorm:"size:64;not null;index"`
	Reference string         `gorm:"size:64;index"`
	Payload   datatypes.JSON `gorm:"not null"`
	Processed bool           `gorm:"not null;default:false"`
	CreatedAt time.Time      `gorm:"index"`
}

func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
