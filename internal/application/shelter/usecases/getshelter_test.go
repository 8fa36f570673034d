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

func TestGetShelterUseCase_Execute(t *testing.T) {
	t.Run("renders the description", func(t *testing.T) {
		shelterRepo := new(mockShelterRepo)
		md := new(mockMarkdownService)

		target := makeShelter(t, 7, 3)
		shelterRepo.On("GetByID", mock.Anything, uint(7)).Return(target, nil)
		md.On("ToHTMLSanitized", target.Description()).
			Return("<p>A home for <strong>strays</strong>.</p>", nil)

		uc := NewGetShelterUseCase(shelterRepo, md, stubLogger{})
		result, err := uc.Execute(context.Background(), GetShelterCommand{ShelterID: 7})

		require.NoError(t, err)
		assert.Equal(t, uint(7), result.Shelter.ID())
		assert.Equal(t, "<p>A home for <strong>strays</strong>.</p>", result.DescriptionHTML)
	})

	t.Run("render failure still returns the shelter", func(t *testing.T) {
		shelterRepo := new(mockShelterRepo)
		md := new(mockMarkdownService)

		target := makeShelter(t, 7, 3)
		shelterRepo.On("GetByID", mock.Anything, uint(7)).Return(target, nil)
		md.On("ToHTMLSanitized", mock.Anything).Return("", assert.AnError)

		uc := NewGetShelterUseCase(shelterRepo, md, stubLogger{})
		result, err := uc.Execute(context.Background(), GetShelterCommand{ShelterID: 7})

		require.NoError(t, err)
		assert.Empty(t, result.DescriptionHTML)
		assert.Equal(t, uint(7), result.Shelter.ID())
	})

	t.Run("unknown shelter", func(t *testing.T) {
		shelterRepo := new(mockShelterRepo)
		shelterRepo.On("GetByID", mock.Anything, uint(7)).Return(nil, nil)

		uc := NewGetShelterUseCase(shelterRepo, new(mockMarkdownService), stubLogger{})
		_, err := uc.Execute(context.Background(), GetShelterCommand{ShelterID: 7})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("zero id", func(t *testing.T) {
		uc := NewGetShelterUseCase(new(mockShelterRepo), new(mockMarkdownService), stubLogger{})
		_, err := uc.Execute(context.Background(), GetShelterCommand{})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListSheltersUseCase_Execute(t *testing.T) {
	t.Run("returns shelters", func(t *testing.T) {
		shelterRepo := new(mockShelterRepo)
		shelterRepo.On("List", mock.Anything).
			Return([]*shelter.Shelter{makeShelter(t, 1, 3), makeShelter(t, 2, 4)}, nil)

		uc := NewListSheltersUseCase(shelterRepo, stubLogger{})
		result, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Len(t, result.Shelters, 2)
	})

	t.Run("repository failure", func(t *testing.T) {
		shelterRepo := new(mockShelterRepo)
		shelterRepo.On("List", mock.Anything).Return(nil, assert.AnError)

		uc := NewListSheltersUseCase(shelterRepo, stubLogger{})
		_, err := uc.Execute(context.Background())

		require.Error(t, err)
	})
}
