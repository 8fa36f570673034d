package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fanimal/internal/domain/subscription"
	vo "fanimal/internal/domain/subscription/valueobjects"
	"fanimal/internal/infrastructure/persistence/mappers"
	"fanimal/internal/infrastructure/persistence/models"
	"fanimal/internal/shared/logger"
)

// SubscriptionRepository implements the subscription repository interface
type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(gormDB *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepository{
		db:     gormDB,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepository) GetByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription by stripe ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepository) ListByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions by user: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}

func (r *SubscriptionRepository) ListByShelterID(ctx context.Context, shelterID uint) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("shelter_id = ?", shelterID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions by shelter: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}

func (r *SubscriptionRepository) GetOpenByUserAndShelter(ctx context.Context, userID, shelterID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND shelter_id = ? AND status <> ?", userID, shelterID, string(vo.StatusCanceled)).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update writes the subscription guarded by its version. The entity's
// version is one ahead of the stored row when it has pending changes, so
// the predicate rejects writes based on a stale load.
func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"tier":         model.Tier,
			"status":       model.Status,
			"amount_cents": model.AmountCents,
			"period_start": model.PeriodStart,
			"period_end":   model.PeriodEnd,
			"canceled_at":  model.CanceledAt,
			"metadata":     model.Metadata,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrVersionConflict
	}

	return nil
}
