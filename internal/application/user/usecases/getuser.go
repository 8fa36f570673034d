package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/user"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"
)

type GetUserCommand struct {
	UserID uint
}

type GetUserResult struct {
	User *user.User
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, cmd GetUserCommand) (*GetUserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}

	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return &GetUserResult{User: existingUser}, nil
}
