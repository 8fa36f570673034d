package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	email, err := NewEmail("  Jane@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email.String())
	assert.Equal(t, "example.com", email.Domain())

	for _, invalid := range []string{"", "not-an-email", "a@b", "@example.com"} {
		_, err := NewEmail(invalid)
		assert.Error(t, err, "email %q should be rejected", invalid)
	}
}

func TestNewUsername(t *testing.T) {
	u, err := NewUsername("Jane.Doe")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", u.String())

	for _, invalid := range []string{"", "ab", "_leading", "has space", "way-too-long-username-over-thirty-chars"} {
		_, err := NewUsername(invalid)
		assert.Error(t, err, "username %q should be rejected", invalid)
	}
}

func TestNewName(t *testing.T) {
	name, err := NewName("jane doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", name.DisplayName())

	_, err = NewName("J")
	assert.Error(t, err)

	_, err = NewName("Jane  Doe")
	assert.Error(t, err)
}

func TestNewPassword(t *testing.T) {
	_, err := NewPassword("secret123")
	assert.NoError(t, err)

	_, err = NewPassword("short1")
	assert.Error(t, err)

	// bcrypt truncates beyond 72 bytes
	_, err = NewPassword(strings.Repeat("a", 73))
	assert.Error(t, err)

	_, err = NewPassword(strings.Repeat("a", 72))
	assert.NoError(t, err)
}
