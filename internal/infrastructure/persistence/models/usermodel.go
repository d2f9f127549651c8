package models

import "time"

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"size:128;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:128;not null"`
	Name         string `gorm:"size:128;not null"`
	Phone        string `gorm:"size:32"`
	Role         string `gorm:"size:16;not null;index;default:'resident'"`
	Active       bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}
