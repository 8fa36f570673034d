package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/user"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"

	vo "fanimal/internal/domain/user/valueobjects"
)

type RegisterCommand struct {
	Name     string
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	User *user.User
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	welcomeMailer  WelcomeMailer
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	welcomeMailer WelcomeMailer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		welcomeMailer:  welcomeMailer,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if _, err := vo.NewPassword(cmd.Password); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	emailTaken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return nil, errors.NewConflictError("email is already registered")
	}

	usernameTaken, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username uniqueness", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameTaken {
		return nil, errors.NewConflictError("username is already taken")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(username, email, name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email or username is already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err, "email", email.String())
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Welcome email is best-effort: delivery problems never fail registration.
	if uc.welcomeMailer != nil {
		if err := uc.welcomeMailer.SendWelcomeEmail(email.String(), name.DisplayName()); err != nil {
			uc.logger.Warnw("failed to send welcome email", "error", err, "email", email.String())
		}
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", username.String())

	return &RegisterResult{User: newUser}, nil
}
