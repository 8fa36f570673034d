package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/infrastructure/persistence/mappers"
	"fanimal/internal/infrastructure/persistence/models"
	"fanimal/internal/shared/logger"
)

// ShelterRepository implements the shelter repository interface
type ShelterRepository struct {
	db     *gorm.DB
	mapper mappers.ShelterMapper
	logger logger.Interface
}

// NewShelterRepository creates a new shelter repository
func NewShelterRepository(gormDB *gorm.DB, logger logger.Interface) shelter.Repository {
	return &ShelterRepository{
		db:     gormDB,
		mapper: mappers.NewShelterMapper(),
		logger: logger,
	}
}

func (r *ShelterRepository) Create(ctx context.Context, shelterEntity *shelter.Shelter) error {
	model, err := r.mapper.ToModel(shelterEntity)
	if err != nil {
		r.logger.Errorw("failed to map shelter entity to model", "error", err)
		return fmt.Errorf("failed to map shelter entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create shelter: %w", err)
	}

	if err := shelterEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set shelter ID: %w", err)
	}

	return nil
}

func (r *ShelterRepository) GetByID(ctx context.Context, id uint) (*shelter.Shelter, error) {
	var model models.ShelterModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shelter: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ShelterRepository) GetByName(ctx context.Context, name string) (*shelter.Shelter, error) {
	var model models.ShelterModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shelter by name: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ShelterRepository) List(ctx context.Context) ([]*shelter.Shelter, error) {
	var shelterModels []*models.ShelterModel

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&shelterModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shelters: %w", err)
	}

	return r.mapper.ToEntities(shelterModels)
}

func (r *ShelterRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ShelterModel{}).
		Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check shelter name existence: %w", err)
	}
	return count > 0, nil
}

func (r *ShelterRepository) Update(ctx context.Context, shelterEntity *shelter.Shelter) error {
	model, err := r.mapper.ToModel(shelterEntity)
	if err != nil {
		r.logger.Errorw("failed to map shelter entity to model", "error", err)
		return fmt.Errorf("failed to map shelter entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ShelterModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":              model.Name,
			"description":       model.Description,
			"address":           model.Address,
			"stripe_product_id": model.StripeProductID,
			"price_basic_id":    model.PriceBasicID,
			"price_standard_id": model.PriceStandardID,
			"price_premium_id":  model.PricePremiumID,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update shelter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("shelter %d not found", model.ID)
	}

	return nil
}

func (r *ShelterRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ShelterModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete shelter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("shelter %d not found", id)
	}
	return nil
}
