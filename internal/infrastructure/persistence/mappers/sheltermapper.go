package mappers

import (
	"fmt"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/infrastructure/persistence/models"

	vo "fanimal/internal/domain/subscription/valueobjects"
)

// ShelterMapper handles the conversion between domain entities and persistence models
type ShelterMapper interface {
	ToEntity(model *models.ShelterModel) (*shelter.Shelter, error)
	ToModel(entity *shelter.Shelter) (*models.ShelterModel, error)
	ToEntities(models []*models.ShelterModel) ([]*shelter.Shelter, error)
}

type shelterMapperImpl struct{}

// NewShelterMapper creates a new shelter mapper
func NewShelterMapper() ShelterMapper {
	return &shelterMapperImpl{}
}

func (m *shelterMapperImpl) ToEntity(model *models.ShelterModel) (*shelter.Shelter, error) {
	if model == nil {
		return nil, nil
	}

	prices := make(map[vo.Tier]string)
	if model.PriceBasicID != "" {
		prices[vo.TierBasic] = model.PriceBasicID
	}
	if model.PriceStandardID != "" {
		prices[vo.TierStandard] = model.PriceStandardID
	}
	if model.PricePremiumID != "" {
		prices[vo.TierPremium] = model.PricePremiumID
	}

	entity, err := shelter.ReconstructShelter(shelter.ShelterReconstructParams{
		ID:              model.ID,
		Name:            model.Name,
		Description:     model.Description,
		Address:         model.Address,
		OwnerID:         model.OwnerID,
		StripeProductID: model.StripeProductID,
		TierPriceIDs:    prices,
		Version:         model.Version,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct shelter entity: %w", err)
	}
	return entity, nil
}

func (m *shelterMapperImpl) ToModel(entity *shelter.Shelter) (*models.ShelterModel, error) {
	if entity == nil {
		return nil, nil
	}

	prices := entity.TierPriceIDs()

	return &models.ShelterModel{
		ID:              entity.ID(),
		Name:            entity.Name(),
		Description:     entity.Description(),
		Address:         entity.Address(),
		OwnerID:         entity.OwnerID(),
		StripeProductID: entity.StripeProductID(),
		PriceBasicID:    prices[vo.TierBasic],
		PriceStandardID: prices[vo.TierStandard],
		PricePremiumID:  prices[vo.TierPremium],
		Version:         entity.Version(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *shelterMapperImpl) ToEntities(shelterModels []*models.ShelterModel) ([]*shelter.Shelter, error) {
	entities := make([]*shelter.Shelter, 0, len(shelterModels))
	for _, model := range shelterModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
