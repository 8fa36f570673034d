package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/shared/errors"
)

func makeShelter(t *testing.T, id, ownerID uint) *shelter.Shelter {
	t.Helper()
	s, err := shelter.ReconstructShelter(shelter.ShelterReconstructParams{
		ID:          id,
		Name:        "Happy Paws",
		Description: "A home for **strays**.",
		Address:     "12 Bark Lane",
		OwnerID:     ownerID,
		Version:     1,
	})
	require.NoError(t, err)
	return s
}

func TestCreateShelterUseCase_Execute_Success(t *testing.T) {
	shelterRepo := new(mockShelterRepo)
	shelterRepo.On("ExistsByName", mock.Anything, "Happy Paws").Return(false, nil)
	shelterRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *shelter.Shelter) bool {
		return s.Name() == "Happy Paws" && s.OwnerID() == uint(3)
	})).Return(nil)

	uc := NewCreateShelterUseCase(shelterRepo, stubLogger{})

	result, err := uc.Execute(context.Background(), CreateShelterCommand{
		ActorID:     3,
		Name:        "Happy Paws",
		Description: "A home for strays.",
		Address:     "12 Bark Lane",
	})

	require.NoError(t, err)
	assert.Equal(t, "Happy Paws", result.Shelter.Name())
	shelterRepo.AssertExpectations(t)
}

func TestCreateShelterUseCase_Execute_NameTaken(t *testing.T) {
	shelterRepo := new(mockShelterRepo)
	shelterRepo.On("ExistsByName", mock.Anything, "Happy Paws").Return(true, nil)

	uc := NewCreateShelterUseCase(shelterRepo, stubLogger{})

	_, err := uc.Execute(context.Background(), CreateShelterCommand{
		ActorID: 3,
		Name:    "Happy Paws",
		Address: "12 Bark Lane",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	shelterRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateShelterUseCase_Execute_InvalidInput(t *testing.T) {
	shelterRepo := new(mockShelterRepo)
	shelterRepo.On("ExistsByName", mock.Anything, mock.Anything).Return(false, nil)

	uc := NewCreateShelterUseCase(shelterRepo, stubLogger{})

	t.Run("missing actor", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateShelterCommand{
			Name:    "Happy Paws",
			Address: "12 Bark Lane",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateShelterCommand{
			ActorID: 3,
			Address: "12 Bark Lane",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
