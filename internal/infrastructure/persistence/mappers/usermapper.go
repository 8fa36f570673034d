package mappers

import (
	"fmt"

	"fanimal/internal/domain/user"
	"fanimal/internal/infrastructure/persistence/models"
	"fanimal/internal/shared/authorization"

	vo "fanimal/internal/domain/user/valueobjects"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
}

type userMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapperImpl{}
}

func (m *userMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create username value object: %w", err)
	}
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}
	name, err := vo.NewName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create name value object: %w", err)
	}

	entity, err := user.ReconstructUser(user.UserReconstructParams{
		ID:               model.ID,
		Username:         username,
		Email:            email,
		Name:             name,
		PasswordHash:     model.PasswordHash,
		Role:             authorization.ParseUserRole(model.Role),
		StripeCustomerID: model.StripeCustomerID,
		Version:          model.Version,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *userMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:               entity.ID(),
		Username:         entity.Username().String(),
		Email:            entity.Email().String(),
		Name:             entity.Name().String(),
		PasswordHash:     entity.PasswordHash(),
		Role:             entity.Role().String(),
		StripeCustomerID: entity.StripeCustomerID(),
		Version:          entity.Version(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}
