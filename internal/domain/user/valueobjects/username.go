package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// usernameRegex restricts usernames to a URL-safe character set.
var usernameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Username represents a unique login handle value object
type Username struct {
	value string
}

// NewUsername creates a new Username value object with validation
func NewUsername(value string) (*Username, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))

	if normalized == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	if len(normalized) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters long")
	}

	if len(normalized) > 30 {
		return nil, fmt.Errorf("username cannot exceed 30 characters")
	}

	if !usernameRegex.MatchString(normalized) {
		return nil, fmt.Errorf("username contains invalid characters: %s", value)
	}

	return &Username{value: normalized}, nil
}

// String returns the string representation of the username
func (u *Username) String() string {
	return u.value
}

// Equals checks if two username objects are equal
func (u *Username) Equals(other *Username) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.value == other.value
}
