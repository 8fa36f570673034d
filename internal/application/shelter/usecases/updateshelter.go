package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/shared/authorization"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"
)

type UpdateShelterCommand struct {
	ShelterID   uint
	ActorID     uint
	ActorRole   authorization.UserRole
	Name        string
	Description string
	Address     string
}

type UpdateShelterResult struct {
	Shelter *shelter.Shelter
}

type UpdateShelterUseCase struct {
	shelterRepo shelter.Repository
	logger      logger.Interface
}

func NewUpdateShelterUseCase(shelterRepo shelter.Repository, logger logger.Interface) *UpdateShelterUseCase {
	return &UpdateShelterUseCase{
		shelterRepo: shelterRepo,
		logger:      logger,
	}
}

func (uc *UpdateShelterUseCase) Execute(ctx context.Context, cmd UpdateShelterCommand) (*UpdateShelterResult, error) {
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
		return nil, errors.NewForbiddenError("only the shelter owner or an admin can update a shelter")
	}

	if err := existing.Update(cmd.Name, cmd.Description, cmd.Address); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.shelterRepo.Update(ctx, existing); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a shelter with this name already exists")
		}
		uc.logger.Errorw("failed to update shelter", "error", err, "shelter_id", cmd.ShelterID)
		return nil, fmt.Errorf("failed to update shelter: %w", err)
	}

	uc.logger.Infow("shelter updated", "shelter_id", cmd.ShelterID, "actor_id", cmd.ActorID)

	return &UpdateShelterResult{Shelter: existing}, nil
}
