package handlers

import (
	"context"

	"fanimal/internal/application/shelter/usecases"
)

// Use case interfaces for ShelterHandler - enables unit testing with mocks.

type createShelterUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateShelterCommand) (*usecases.CreateShelterResult, error)
}

type listSheltersUseCase interface {
	Execute(ctx context.Context) (*usecases.ListSheltersResult, error)
}

type getShelterUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetShelterCommand) (*usecases.GetShelterResult, error)
}

type updateShelterUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateShelterCommand) (*usecases.UpdateShelterResult, error)
}

type deleteShelterUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteShelterCommand) error
}

type configurePricesUseCase interface {
	Execute(ctx context.Context, cmd usecases.ConfigurePricesCommand) (*usecases.ConfigurePricesResult, error)
}
