package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/shared/authorization"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"
)

type DeleteShelterCommand struct {
	ShelterID uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type DeleteShelterUseCase struct {
	shelterRepo shelter.Repository
	logger      logger.Interface
}

func NewDeleteShelterUseCase(shelterRepo shelter.Repository, logger logger.Interface) *DeleteShelterUseCase {
	return &DeleteShelterUseCase{
		shelterRepo: shelterRepo,
		logger:      logger,
	}
}

func (uc *DeleteShelterUseCase) Execute(ctx context.Context, cmd DeleteShelterCommand) error {
	if cmd.ShelterID == 0 {
		return errors.NewValidationError("shelter id is required")
	}

	existing, err := uc.shelterRepo.GetByID(ctx, cmd.ShelterID)
	if err != nil {
		uc.logger.Errorw("failed to get shelter", "error", err, "shelter_id", cmd.ShelterID)
		return fmt.Errorf("failed to get shelter: %w", err)
	}
	if existing == nil {
		return errors.NewNotFoundError("shelter not found")
	}

	if !authorization.CanManageShelter(cmd.ActorRole, existing.IsOwnedBy(cmd.ActorID)) {
		return errors.NewForbiddenError("only the shelter owner or an admin can delete a shelter")
	}

	if err := uc.shelterRepo.Delete(ctx, cmd.ShelterID); err != nil {
		uc.logger.Errorw("failed to delete shelter", "error", err, "shelter_id", cmd.ShelterID)
		return fmt.Errorf("failed to delete shelter: %w", err)
	}

	uc.logger.Infow("shelter deleted", "shelter_id", cmd.ShelterID, "actor_id", cmd.ActorID)

	return nil
}
