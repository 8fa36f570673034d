package models

import (
	"time"

	"gorm.io/gorm"

	"fanimal/internal/shared/constants"
)

// ShelterModel represents the database persistence model for shelters.
// Each tier's Stripe price ID is stored in its own column; the pairwise
// distinctness invariant is enforced by the aggregate before writes.
type ShelterModel struct {
	ID              uint   `gorm:"primarykey"`
	Name            string `gorm:"uniqueIndex;not null;size:255"`
	Description     string `gorm:"type:text"`
	Address         string `gorm:"size:500"`
	OwnerID         uint   `gorm:"not null;index"`
	StripeProductID string `gorm:"size:255"`
	PriceBasicID    string `gorm:"size:255"`
	PriceStandardID string `gorm:"size:255"`
	PricePremiumID  string `gorm:"size:255"`
	Version         int    `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ShelterModel) TableName() string {
	return constants.TableShelters
}

// BeforeCreate hook for GORM
func (s *ShelterModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
