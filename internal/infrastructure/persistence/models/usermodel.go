package models

import (
	"time"

	"gorm.io/gorm"

	"fanimal/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID               uint    `gorm:"primarykey"`
	Username         string  `gorm:"uniqueIndex;not null;size:30"`
	Email            string  `gorm:"uniqueIndex;not null;size:255"`
	Name             string  `gorm:"not null;size:100"`
	PasswordHash     string  `gorm:"not null;size:255"`
	Role             string  `gorm:"not null;default:user;size:20"`
	StripeCustomerID *string `gorm:"uniqueIndex;size:255"`
	Version          int     `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = "user"
	}
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}
