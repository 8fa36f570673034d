package dto

import (
	"time"

	"fanimal/internal/domain/user"
)

// UserDTO is the outward representation of a user. The password hash and
// billing identifiers never leave the service.
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// FromUser converts a user aggregate to its DTO.
func FromUser(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID(),
		Username:  u.Username().String(),
		Email:     u.Email().String(),
		Name:      u.Name().DisplayName(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}
