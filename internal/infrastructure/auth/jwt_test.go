package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelhub/internal/shared/config"
	"hostelhub/internal/shared/constants"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:           "test-secret",
		AccessExpMinutes: 15,
		RefreshExpDays:   7,
	})
}

func TestJWTServiceGenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(42, constants.RoleResident)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	userID, role, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, constants.RoleResident, role)

	userID, role, err = svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, constants.RoleResident, role)
}

func TestJWTServiceRejectsWrongTokenType(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(7, constants.RoleAdmin)
	require.NoError(t, err)

	_, _, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)

	_, _, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTServiceRejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(&config.JWTConfig{
		Secret:           "different-secret",
		AccessExpMinutes: 15,
		RefreshExpDays:   7,
	})

	pair, err := other.GenerateTokenPair(7, constants.RoleAdmin)
	require.NoError(t, err)

	_, _, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, hasher.Verify(hash, "s3cret-pass"))
	assert.Error(t, hasher.Verify(hash, "wrong-pass"))
	assert.Error(t, hasher.Verify("not-a-hash", "s3cret-pass"))
}
