package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanimal/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, expiresIn, err := svc.Generate(42, authorization.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(15*60), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 15)
	other := NewJWTService("other-secret", 15)

	token, _, err := svc.Generate(1, authorization.RoleUser)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Compare(hash, "secret123"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
	assert.Error(t, hasher.Compare("not-a-hash", "secret123"))
}
