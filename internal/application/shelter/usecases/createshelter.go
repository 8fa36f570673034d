package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"
)

type CreateShelterCommand struct {
	ActorID     uint
	Name        string
	Description string
	Address     string
}

type CreateShelterResult struct {
	Shelter *shelter.Shelter
}

type CreateShelterUseCase struct {
	shelterRepo shelter.Repository
	logger      logger.Interface
}

func NewCreateShelterUseCase(shelterRepo shelter.Repository, logger logger.Interface) *CreateShelterUseCase {
	return &CreateShelterUseCase{
		shelterRepo: shelterRepo,
		logger:      logger,
	}
}

func (uc *CreateShelterUseCase) Execute(ctx context.Context, cmd CreateShelterCommand) (*CreateShelterResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor id is required")
	}

	taken, err := uc.shelterRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check shelter name uniqueness", "error", err)
		return nil, fmt.Errorf("failed to check shelter name: %w", err)
	}
	if taken {
		return nil, errors.NewConflictError("a shelter with this name already exists")
	}

	newShelter, err := shelter.NewShelter(cmd.Name, cmd.Description, cmd.Address, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.shelterRepo.Create(ctx, newShelter); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a shelter with this name already exists")
		}
		uc.logger.Errorw("failed to create shelter", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create shelter: %w", err)
	}

	uc.logger.Infow("shelter created", "shelter_id", newShelter.ID(), "owner_id", cmd.ActorID)

	return &CreateShelterResult{Shelter: newShelter}, nil
}
