package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"
	"fanimal/internal/shared/services/markdown"
)

type GetShelterCommand struct {
	ShelterID uint
}

type GetShelterResult struct {
	Shelter         *shelter.Shelter
	DescriptionHTML string
}

type GetShelterUseCase struct {
	shelterRepo shelter.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewGetShelterUseCase(
	shelterRepo shelter.Repository,
	markdownService markdown.Service,
	logger logger.Interface,
) *GetShelterUseCase {
	return &GetShelterUseCase{
		shelterRepo: shelterRepo,
		markdown:    markdownService,
		logger:      logger,
	}
}

func (uc *GetShelterUseCase) Execute(ctx context.Context, cmd GetShelterCommand) (*GetShelterResult, error) {
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

	html, err := uc.markdown.ToHTMLSanitized(existing.Description())
	if err != nil {
		// A rendering problem must not hide the shelter itself.
		uc.logger.Warnw("failed to render shelter description", "error", err, "shelter_id", cmd.ShelterID)
		html = ""
	}

	return &GetShelterResult{
		Shelter:         existing,
		DescriptionHTML: html,
	}, nil
}
