package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/shared/logger"
)

type ListSheltersResult struct {
	Shelters []*shelter.Shelter
}

type ListSheltersUseCase struct {
	shelterRepo shelter.Repository
	logger      logger.Interface
}

func NewListSheltersUseCase(shelterRepo shelter.Repository, logger logger.Interface) *ListSheltersUseCase {
	return &ListSheltersUseCase{
		shelterRepo: shelterRepo,
		logger:      logger,
	}
}

func (uc *ListSheltersUseCase) Execute(ctx context.Context) (*ListSheltersResult, error) {
	shelters, err := uc.shelterRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list shelters", "error", err)
		return nil, fmt.Errorf("failed to list shelters: %w", err)
	}

	return &ListSheltersResult{Shelters: shelters}, nil
}
