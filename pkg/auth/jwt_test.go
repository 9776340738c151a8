package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carvasys/carvasys-api/internal/domain/clientuser"
)

func newService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	service, err := NewJWTService()
	require.NoError(t, err)
	return service
}

func portalUser(t *testing.T) *clientuser.ClientUser {
	t.Helper()
	u, err := clientuser.NewClientUser(10, "maria@example.com", "senha-forte")
	require.NoError(t, err)
	u.ID = 1
	return u
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newService(t)
	u := portalUser(t)

	token, err := service.GenerateToken(u)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(1), claims.ClientUserID)
	assert.Equal(t, int64(10), claims.ClientID)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.Equal(t, u.UUID, claims.Subject)
}

func TestValidateTokenRejectsOtherKey(t *testing.T) {
	service := newService(t)
	token, err := service.GenerateToken(portalUser(t))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "outro-segredo")
	other, err := NewJWTService()
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := newService(t)

	_, err := service.ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpirationFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	service, err := NewJWTService()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, service.Expiration())
}
