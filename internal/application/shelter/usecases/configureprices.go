package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/shared/authorization"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"
)

type ConfigurePricesCommand struct {
	ShelterID     uint
	ActorID       uint
	ActorRole     authorization.UserRole
	ProductID     string
	PriceBasic    string
	PriceStandard string
	PricePremium  string
}

type ConfigurePricesResult struct {
	Shelter *shelter.Shelter
}

type ConfigurePricesUseCase struct {
	shelterRepo shelter.Repository
	logger      logger.Interface
}

func NewConfigurePricesUseCase(shelterRepo shelter.Repository, logger logger.Interface) *ConfigurePricesUseCase {
	return &ConfigurePricesUseCase{
		shelterRepo: shelterRepo,
		logger:      logger,
	}
}

func (uc *ConfigurePricesUseCase) Execute(ctx context.Context, cmd ConfigurePricesCommand) (*ConfigurePricesResult, error) {
	if cmd.ShelterID == 0 {
		return nil, errors.NewValidationError("shelter id is required")
	}

	existing, err := uc.shelterRepo.GetByID(ctx, cmd.ShelterID)
	if err != nil {
		uc.logger.Errorw("failed to get shelter", "error", err, "shelter_id", cmd.ShelterID)
		return nil, fmt.Errorf("failed to get shelter: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("shelter not found")
	}

	if !authorization.CanManageShelter(cmd.ActorRole, existing.IsOwnedBy(cmd.ActorID)) {
		return nil, errors.NewForbiddenError("only the shelter owner or an admin can configure prices")
	}

	if err := existing.ConfigurePrices(cmd.ProductID, cmd.PriceBasic, cmd.PriceStandard, cmd.PricePremium); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.shelterRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to save shelter prices", "error", err, "shelter_id", cmd.ShelterID)
		return nil, fmt.Errorf("failed to save shelter prices: %w", err)
	}

	uc.logger.Infow("shelter prices configured", "shelter_id", cmd.ShelterID, "actor_id", cmd.ActorID)

	return &ConfigurePricesResult{Shelter: existing}, nil
}
