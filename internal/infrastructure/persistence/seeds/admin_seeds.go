package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"fanimal/internal/domain/user"
	"fanimal/internal/infrastructure/persistence/models"
	"fanimal/internal/shared/authorization"
	"fanimal/internal/shared/config"
	"fanimal/internal/shared/logger"
)

// SeedAdminUser creates the bootstrap administrator account when it does
// not exist yet. The seed is skipped when no admin password is configured.
func SeedAdminUser(db *gorm.DB, cfg config.SeedConfig, hasher user.PasswordHasher, log logger.Interface) (uint, error) {
	if cfg.AdminPassword == "" {
		log.Warnw("admin password not configured, skipping admin seed")
		return 0, nil
	}

	var existing models.UserModel
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		log.Infow("admin user already exists", "username", cfg.AdminUsername)
		return existing.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return 0, fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.UserModel{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		Name:         cfg.AdminName,
		PasswordHash: hash,
		Role:         string(authorization.RoleAdmin),
		Version:      1,
	}

	if err := db.Create(&admin).Error; err != nil {
		return 0, fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Infow("admin user created", "username", cfg.AdminUsername, "id", admin.ID)
	return admin.ID, nil
}
