package handlers

import (
	"context"

	"fanimal/internal/application/auth/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}
