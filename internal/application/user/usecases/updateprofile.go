package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/user"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"

	vo "fanimal/internal/domain/user/valueobjects"
)

type UpdateProfileCommand struct {
	UserID uint
	Name   string
}

type UpdateProfileResult struct {
	User *user.User
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}

	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := existingUser.UpdateName(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user profile updated", "user_id", cmd.UserID)

	return &UpdateProfileResult{User: existingUser}, nil
}
