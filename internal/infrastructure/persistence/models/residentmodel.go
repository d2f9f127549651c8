package models

import "time"

// ResidentProfileModel is the GORM model for resident profiles.
type ResidentProfileModel struct {
	ID                  uint   `gorm:"primaryKey;autoIncrement"`
	UserID              uint   `gorm:"not null;index"`
	FullName            string `gorm:"size:128;not null"`
	Email               string `gorm:"size:128;not null;index"`
	Phone               string `gorm:"size:32"`
	Gender              string `gorm:"size:16"`
	RoomID              *uint  `gorm:"index"`
	HostelID            *uint  `gorm:"index"`
	CalendarYearID      *uint  `gorm:"index"`
	AccessCode          *string `gorm:"size:16"`
	AccessCodeExpiresAt *time.Time
	Status              string `gorm:"size:16;not null;index;default:'registered'"`
	CheckedInAt         *time.Time
	CheckedOutAt        *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ResidentProfileModel) TableName() string {
	return "resident_profiles"
}

// HistoricalResidentModel is the archive table written at check-out.
type HistoricalResidentModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	ProfileID      uint   `gorm:"not null;index"`
	UserID         uint   `gorm:"not null;index"`
	FullName       string `gorm:"size:128;not null"`
	Email          string `gorm:"size:128;not null;index"`
	Phone          string `gorm:"size:32"`
	RoomID         uint   `gorm:"index:idx_historical_room_year"`
	HostelID       uint   `gorm:"index"`
	CalendarYearID uint   `gorm:"index:idx_historical_room_year"`
	CheckedInAt    *time.Time
	CheckedOutAt   time.Time `gorm:"not null"`
	ArchivedAt     time.Time `gorm:"not null"`
}

func (HistoricalResidentModel) TableName() string {
	return "historical_residents"
}
