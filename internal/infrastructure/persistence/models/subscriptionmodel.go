package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fanimal/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. Rows are never hard-deleted: a canceled subscription
// stays as billing history. The version column backs the repository's
// compare-and-swap update.
type SubscriptionModel struct {
	ID                   uint   `gorm:"primarykey"`
	UserID               uint   `gorm:"not null;index;index:idx_user_shelter"`
	ShelterID            uint   `gorm:"not null;index;index:idx_user_shelter"`
	StripeSubscriptionID string `gorm:"uniqueIndex;not null;size:255"`
	Tier                 string `gorm:"not null;size:20"`
	Status               string `gorm:"not null;size:30;index"`
	AmountCents          int64  `gorm:"not null"`
	PeriodStart          time.Time
	PeriodEnd            time.Time
	CanceledAt           *time.Time
	Metadata             datatypes.JSON
	Version              int `gorm:"not null;default:1"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
