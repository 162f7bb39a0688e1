package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamline/TripBooker/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestManager_IssueParse_Roundtrip(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	user := &domain.User{
		ID:    "u1",
		Email: "alice@example.com",
		Role:  domain.RoleUser,
	}

	token, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager(testSecret, -time.Minute)

	token, err := m.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewManager(testSecret, time.Hour)
	verifier := NewManager("another-secret-that-is-long-enough!", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "u1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Parse(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "raw=%q", raw)
	}
}
