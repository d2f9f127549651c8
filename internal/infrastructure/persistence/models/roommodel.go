package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomModel is the GORM model for the rooms table.
type RoomModel struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	HostelID      uint            `gorm:"not null;uniqueIndex:idx_rooms_hostel_label"`
	Label         string          `gorm:"size:64;not null;uniqueIndex:idx_rooms_hostel_label"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MaxCapacity   int             `gorm:"not null"`
	ResidentCount int             `gorm:"not null;default:0"`
	Status        string          `gorm:"size:16;not null;index;default:'available'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (RoomModel) TableName() string {
	return "rooms"
}
