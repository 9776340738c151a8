package clientuser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	u, err := NewClientUser(1, "joao@example.com", "segredo123")
	require.NoError(t, err)

	assert.NotEqual(t, "segredo123", u.Password)
	assert.True(t, u.CheckPassword("segredo123"))
	assert.False(t, u.CheckPassword("outra-senha"))
}

func TestLockoutAfterMaxAttempts(t *testing.T) {
	u, err := NewClientUser(1, "joao@example.com", "segredo123")
	require.NoError(t, err)

	for i := 0; i < MaxLoginAttempts-1; i++ {
		u.RegisterFailedLogin()
		assert.False(t, u.IsLocked(), "não deve bloquear antes da quinta tentativa")
	}
	assert.Equal(t, MaxLoginAttempts-1, u.LoginAttempts)

	// Quinta falha: bloqueia por 30 minutos e zera o contador
	u.RegisterFailedLogin()
	assert.True(t, u.IsLocked())
	assert.Equal(t, 0, u.LoginAttempts)
	require.NotNil(t, u.LockedUntil)
	assert.WithinDuration(t, time.Now().Add(LockoutDuration), *u.LockedUntil, 2*time.Second)
}

func TestSuccessfulLoginResetsState(t *testing.T) {
	u, err := NewClientUser(1, "joao@example.com", "segredo123")
	require.NoError(t, err)

	u.RegisterFailedLogin()
	u.RegisterFailedLogin()
	assert.Equal(t, 2, u.LoginAttempts)

	u.RegisterSuccessfulLogin()
	assert.Equal(t, 0, u.LoginAttempts)
	assert.Nil(t, u.LockedUntil)
	require.NotNil(t, u.LastLoginAt)
}

func TestExpiredLockIsNotLocked(t *testing.T) {
	u, err := NewClientUser(1, "joao@example.com", "segredo123")
	require.NoError(t, err)

	past := time.Now().Add(-time.Minute)
	u.LockedUntil = &past

	assert.False(t, u.IsLocked())
}

func TestNewClientUserValidation(t *testing.T) {
	_, err := NewClientUser(1, "", "segredo123")
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewClientUser(1, "joao@example.com", "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
