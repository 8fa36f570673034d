package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fanimal/internal/domain/user"
	"fanimal/internal/infrastructure/persistence/mappers"
	"fanimal/internal/infrastructure/persistence/models"
	"fanimal/internal/shared/logger"
)

// UserRepository implements the user repository interface
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(gormDB *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     gormDB,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":               model.Name,
			"password_hash":      model.PasswordHash,
			"role":               model.Role,
			"stripe_customer_id": model.StripeCustomerID,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d not found", model.ID)
	}

	return nil
}
