package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fanimal/internal/shared/errors"
)

func validRegisterCommand() RegisterCommand {
	return RegisterCommand{
		Name:     "Jane Doe",
		Username: "jane.doe",
		Email:    "jane@example.com",
		Password: "sup3rsecret",
	}
}

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	hasher := new(mockPasswordHasher)
	mailer := new(mockWelcomeMailer)

	userRepo.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "jane.doe").Return(false, nil)
	hasher.On("Hash", "sup3rsecret").Return("$2a$12$hash", nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendWelcomeEmail", "jane@example.com", "Jane Doe").Return(nil)

	uc := NewRegisterUseCase(userRepo, hasher, mailer, stubLogger{})

	result, err := uc.Execute(context.Background(), validRegisterCommand())

	require.NoError(t, err)
	assert.Equal(t, "jane.doe", result.User.Username().String())
	assert.Equal(t, "$2a$12$hash", result.User.PasswordHash())
	userRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestRegisterUseCase_Execute_EmailTaken(t *testing.T) {
	userRepo := new(mockUserRepo)
	hasher := new(mockPasswordHasher)

	userRepo.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(true, nil)

	uc := NewRegisterUseCase(userRepo, hasher, nil, stubLogger{})

	_, err := uc.Execute(context.Background(), validRegisterCommand())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUseCase_Execute_UsernameTaken(t *testing.T) {
	userRepo := new(mockUserRepo)
	hasher := new(mockPasswordHasher)

	userRepo.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "jane.doe").Return(true, nil)

	uc := NewRegisterUseCase(userRepo, hasher, nil, stubLogger{})

	_, err := uc.Execute(context.Background(), validRegisterCommand())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewRegisterUseCase(new(mockUserRepo), new(mockPasswordHasher), nil, stubLogger{})

	cases := []struct {
		name   string
		mutate func(*RegisterCommand)
	}{
		{"bad email", func(c *RegisterCommand) { c.Email = "not-an-email" }},
		{"short password", func(c *RegisterCommand) { c.Password = "short" }},
		{"empty username", func(c *RegisterCommand) { c.Username = "" }},
		{"empty name", func(c *RegisterCommand) { c.Name = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validRegisterCommand()
			tc.mutate(&cmd)
			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRegisterUseCase_Execute_MailerFailureDoesNotFailRegistration(t *testing.T) {
	userRepo := new(mockUserRepo)
	hasher := new(mockPasswordHasher)
	mailer := new(mockWelcomeMailer)

	userRepo.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "jane.doe").Return(false, nil)
	hasher.On("Hash", "sup3rsecret").Return("$2a$12$hash", nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendWelcomeEmail", "jane@example.com", "Jane Doe").Return(assert.AnError)

	uc := NewRegisterUseCase(userRepo, hasher, mailer, stubLogger{})

	result, err := uc.Execute(context.Background(), validRegisterCommand())

	require.NoError(t, err)
	require.NotNil(t, result.User)
	mailer.AssertExpectations(t)
}

func TestRegisterUseCase_Execute_DuplicateOnCreate(t *testing.T) {
	userRepo := new(mockUserRepo)
	hasher := new(mockPasswordHasher)

	userRepo.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "jane.doe").Return(false, nil)
	hasher.On("Hash", "sup3rsecret").Return("$2a$12$hash", nil)
	userRepo.On("Create", mock.Anything, mock.Anything).
		Return(stderrors.New("Error 1062 (23000): Duplicate entry 'jane@example.com' for key 'users.email'"))

	uc := NewRegisterUseCase(userRepo, hasher, nil, stubLogger{})

	_, err := uc.Execute(context.Background(), validRegisterCommand())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}
