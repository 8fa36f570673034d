package usecases

import (
	"fanimal/internal/shared/authorization"
)

// JWTService issues signed access tokens. Verification happens in the
// HTTP auth middleware, not in usecases.
type JWTService interface {
	Generate(userID uint, role authorization.UserRole) (string, int64, error)
}

// WelcomeMailer sends the post-registration welcome email. Implementations
// may be no-ops when email delivery is disabled.
type WelcomeMailer interface {
	SendWelcomeEmail(toEmail, displayName string) error
}
