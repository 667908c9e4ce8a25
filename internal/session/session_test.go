package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/session"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestNew_EmptyToken(t *testing.T) {
	_, err := session.New("")
	assert.ErrorIs(t, err, session.ErrNoToken)
}

func TestNew_OpaqueTokenUsesDemoIdentity(t *testing.T) {
	s, err := session.New("demo-token")
	require.NoError(t, err)

	id := s.Identity()
	assert.Equal(t, "admin@pymerp.cl", id.Email)
	assert.Equal(t, session.RoleAdmin, id.Role)
	assert.False(t, s.Expired(time.Now()))
	assert.Equal(t, "demo-token", s.Token())
}

func TestNew_JWTClaimsFillIdentity(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	tok := signedToken(t, jwt.MapClaims{
		"user_id": float64(42),
		"email":   "contadora@pymerp.cl",
		"name":    "María Soto",
		"role":    "accountant",
		"exp":     exp.Unix(),
	})

	s, err := session.New(tok)
	require.NoError(t, err)

	id := s.Identity()
	assert.Equal(t, 42, id.ID)
	assert.Equal(t, "contadora@pymerp.cl", id.Email)
	assert.Equal(t, "María Soto", id.Name)
	assert.Equal(t, session.RoleAccountant, id.Role)
	assert.False(t, s.Expired(exp.Add(-time.Minute)))
	assert.True(t, s.Expired(exp.Add(time.Minute)))
}

func TestNew_UnknownRoleIsIgnored(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"role": "superuser"})

	s, err := session.New(tok)
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, s.Identity().Role)
}
