package migration

import (
	"fanimal/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ShelterModel{},
		&models.SubscriptionModel{},
	}
}
