// Package session holds the identity of the signed-in user for the lifetime
// of one client run. It replaces nothing server-side: the backend remains the
// authority on the token, the session only carries it and whatever identity
// can be read from it.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the coarse permission level reported by the backend token.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleAccountant Role = "accountant"
)

// Identity describes the current user.
type Identity struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Session is created once at startup and passed explicitly to everything that
// talks to the backend. There is no package-level current user.
type Session struct {
	token     string
	identity  Identity
	expiresAt time.Time // zero when the token carries no exp claim
}

// ErrNoToken is returned by New when the token is empty; callers decide
// whether to run unauthenticated (no polling, no writes) or abort.
var ErrNoToken = errors.New("session: empty token")

// demoIdentity is used when the token is opaque (the backend issues plain
// placeholder tokens in development).
var demoIdentity = Identity{
	ID:    1,
	Email: "admin@pymerp.cl",
	Name:  "Administrador",
	Role:  RoleAdmin,
}

// New builds a session from a bearer token. If the token is a JWT its
// identity claims are read without signature verification — verification is
// the backend's job, the client only wants display data. Opaque tokens get
// the demo identity.
func New(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	s := &Session{token: token, identity: demoIdentity}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s, nil
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		s.identity.Email = email
	}
	if name, ok := claims["name"].(string); ok && name != "" {
		s.identity.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		switch Role(role) {
		case RoleAdmin, RoleUser, RoleAccountant:
			s.identity.Role = Role(role)
		}
	}
	if sub, ok := claims["user_id"].(float64); ok {
		s.identity.ID = int(sub)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.expiresAt = exp.Time
	}
	return s, nil
}

// Token returns the bearer token for the Authorization header.
func (s *Session) Token() string { return s.token }

// Identity returns the current user.
func (s *Session) Identity() Identity { return s.identity }

// Expired reports whether a JWT token has passed its exp claim. Opaque tokens
// never expire client-side.
func (s *Session) Expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && now.After(s.expiresAt)
}
