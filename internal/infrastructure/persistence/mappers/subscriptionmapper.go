package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"fanimal/internal/domain/subscription"
	"fanimal/internal/infrastructure/persistence/models"

	vo "fanimal/internal/domain/subscription/valueobjects"
)

// SubscriptionMapper handles the conversion between domain entities and persistence models
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type subscriptionMapperImpl struct{}

// NewSubscriptionMapper creates a new subscription mapper
func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapperImpl{}
}

func (m *subscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode subscription metadata: %w", err)
		}
	}

	entity, err := subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:                   model.ID,
		UserID:               model.UserID,
		ShelterID:            model.ShelterID,
		StripeSubscriptionID: model.StripeSubscriptionID,
		Tier:                 vo.Tier(model.Tier),
		Status:               vo.SubscriptionStatus(model.Status),
		AmountCents:          model.AmountCents,
		PeriodStart:          model.PeriodStart,
		PeriodEnd:            model.PeriodEnd,
		CanceledAt:           model.CanceledAt,
		Metadata:             metadata,
		Version:              model.Version,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}
	return entity, nil
}

func (m *subscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if len(entity.Metadata()) > 0 {
		raw, err := json.Marshal(entity.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to encode subscription metadata: %w", err)
		}
		metadata = datatypes.JSON(raw)
	}

	return &models.SubscriptionModel{
		ID:                   entity.ID(),
		UserID:               entity.UserID(),
		ShelterID:            entity.ShelterID(),
		StripeSubscriptionID: entity.StripeSubscriptionID(),
		Tier:                 entity.Tier().String(),
		Status:               entity.Status().String(),
		AmountCents:          entity.AmountCents(),
		PeriodStart:          entity.PeriodStart(),
		PeriodEnd:            entity.PeriodEnd(),
		CanceledAt:           entity.CanceledAt(),
		Metadata:             metadata,
		Version:              entity.Version(),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}, nil
}

func (m *subscriptionMapperImpl) ToEntities(subModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subModels))
	for _, model := range subModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
