package dto

import (
	"time"

	"fanimal/internal/domain/shelter"
)

// ShelterDTO is the outward representation of a shelter list entry.
type ShelterDTO struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Address          string    `json:"address"`
	OwnerID          uint      `json:"owner_id"`
	PricesConfigured bool      `json:"prices_configured"`
	CreatedAt        time.Time `json:"created_at"`
}

// ShelterDetailDTO adds the rendered description for single-shelter views.
type ShelterDetailDTO struct {
	ShelterDTO
	DescriptionHTML string `json:"description_html"`
}

// FromShelter converts a shelter aggregate to its DTO.
func FromShelter(s *shelter.Shelter) *ShelterDTO {
	if s == nil {
		return nil
	}
	return &ShelterDTO{
		ID:               s.ID(),
		Name:             s.Name(),
		Description:      s.Description(),
		Address:          s.Address(),
		OwnerID:          s.OwnerID(),
		PricesConfigured: s.HasConfiguredPrices(),
		CreatedAt:        s.CreatedAt(),
	}
}

// FromShelterWithHTML converts a shelter aggregate to its detail DTO.
func FromShelterWithHTML(s *shelter.Shelter, descriptionHTML string) *ShelterDetailDTO {
	if s == nil {
		return nil
	}
	return &ShelterDetailDTO{
		ShelterDTO:      *FromShelter(s),
		DescriptionHTML: descriptionHTML,
	}
}

// FromShelters converts a slice of shelter aggregates.
func FromShelters(shelters []*shelter.Shelter) []*ShelterDTO {
	out := make([]*ShelterDTO, 0, len(shelters))
	for _, s := range shelters {
		out = append(out, FromShelter(s))
	}
	return out
}
