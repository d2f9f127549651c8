package models

import "time"

// MaintenanceRequestModel is the GORM model for room issue reports.
type MaintenanceRequestModel struct {
	ID                uint    `gorm:"primaryKey;autoIncrement"`
	RoomID            uint    `gorm:"not null;index"`
	ResidentProfileID uint    `gorm:"not null;index"`
	Category          string  `gorm:"size:32;not null"`
	Description       string  `gorm:"type:text;not null"`
	Status            string  `gorm:"size:16;not null;index;default:'open'"`
	ResolutionNote    *string `gorm:"size:512"`
	ResolvedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (MaintenanceRequestModel) TableName() string {
	return "maintenance_requests"
}
