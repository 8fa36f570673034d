package usecases

import (
	"context"
	"fmt"
	"strings"

	"fanimal/internal/domain/user"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := uc.passwordHasher.Compare(existingUser.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", existingUser.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresIn, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &LoginResult{
		User:        existingUser,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
