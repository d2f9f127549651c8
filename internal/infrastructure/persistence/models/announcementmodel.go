package models

import "time"

// AnnouncementModel is the GORM model for admin announcements.
type AnnouncementModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	HostelID     *uint   `gorm:"index"`
	AuthorID     uint    `gorm:"not null;index"`
	Title        string  `gorm:"size:255;not null"`
	Body         string  `gorm:"type:text;not null"`
	RenderedBody string  `gorm:"type:text;not null"`
	Audience     string  `gorm:"size:16;not null;default:'all'"`
	PublishedAt  *time.Time `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
