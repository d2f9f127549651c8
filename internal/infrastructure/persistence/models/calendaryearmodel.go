package models

import "time"

// CalendarYearModel is the GORM model for booking periods.
type CalendarYearModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:32;not null;uniqueIndex"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Active    bool      `gorm:"not null;index;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CalendarYearModel) TableName() string {
	return "calendar_years"
}
