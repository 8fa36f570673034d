package valueobjects

import (
	"fmt"
	"unicode/utf8"
)

const (
	passwordMinChars = 8
	// bcrypt only reads the first 72 bytes of its input; anything longer
	// would silently collide with its truncation.
	passwordMaxBytes = 72
)

// Password holds a plaintext password that passed the registration
// policy. It lives only between request binding and hashing and is
// never persisted.
type Password struct {
	value string
}

func NewPassword(plain string) (*Password, error) {
	if utf8.RuneCountInString(plain) < passwordMinChars {
		return nil, fmt.Errorf("password must be at least %d characters", passwordMinChars)
	}
	if len(plain) > passwordMaxBytes {
		return nil, fmt.Errorf("password must not exceed %d bytes", passwordMaxBytes)
	}
	return &Password{value: plain}, nil
}

func (p *Password) String() string {
	return p.value
}
