package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/shared/authorization"
	"fanimal/internal/shared/errors"

	vo "fanimal/internal/domain/subscription/valueobjects"
)

func validPricesCommand() ConfigurePricesCommand {
	return ConfigurePricesCommand{
		ShelterID:     7,
		ActorID:       3,
		ActorRole:     authorization.RoleUser,
		ProductID:     "prod_1",
		PriceBasic:    "price_b",
		PriceStandard: "price_s",
		PricePremium:  "price_p",
	}
}

func TestConfigurePricesUseCase_Execute_Success(t *testing.T) {
	shelterRepo := new(mockShelterRepo)
	shelterRepo.On("GetByID", mock.Anything, uint(7)).Return(makeShelter(t, 7, 3), nil)
	shelterRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *shelter.Shelter) bool {
		price, err := s.PriceIDForTier(vo.TierStandard)
		return err == nil && price == "price_s" && s.StripeProductID() == "prod_1"
	})).Return(nil)

	uc := NewConfigurePricesUseCase(shelterRepo, stubLogger{})
	result, err := uc.Execute(context.Background(), validPricesCommand())

	require.NoError(t, err)
	assert.True(t, result.Shelter.HasConfiguredPrices())
	shelterRepo.AssertExpectations(t)
}

func TestConfigurePricesUseCase_Execute_NonOwnerRejected(t *testing.T) {
	shelterRepo := new(mockShelterRepo)
	shelterRepo.On("GetByID", mock.Anything, uint(7)).Return(makeShelter(t, 7, 3), nil)

	cmd := validPricesCommand()
	cmd.ActorID = 8

	uc := NewConfigurePricesUseCase(shelterRepo, stubLogger{})
	_, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	shelterRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfigurePricesUseCase_Execute_DuplicatePriceIDs(t *testing.T) {
	shelterRepo := new(mockShelterRepo)
	shelterRepo.On("GetByID", mock.Anything, uint(7)).Return(makeShelter(t, 7, 3), nil)

	cmd := validPricesCommand()
	cmd.PricePremium = cmd.PriceBasic

	uc := NewConfigurePricesUseCase(shelterRepo, stubLogger{})
	_, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	shelterRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfigurePricesUseCase_Execute_UnknownShelter(t *testing.T) {
	shelterRepo := new(mockShelterRepo)
	shelterRepo.On("GetByID", mock.Anything, uint(7)).Return(nil, nil)

	uc := NewConfigurePricesUseCase(shelterRepo, stubLogger{})
	_, err := uc.Execute(context.Background(), validPricesCommand())

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
