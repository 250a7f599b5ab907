package auth

import (
	"context"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/happyhours/backend/internal/model"
)

// UserSource looks up the subject named by a credential. Satisfied by
// repository.UserRepo.
type UserSource interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// Gate turns a raw bearer token into a Principal. Every failure mode
// (malformed token, wrong algorithm, expired signature, unknown or inactive
// subject) collapses to Anonymous; the gate never returns an error because
// a bad credential is an expected input, not a fault.
type Gate struct {
	secret string
	users  UserSource
}

// NewGate builds a Gate verifying tokens signed with the given HS256 secret.
func NewGate(secret string, users UserSource) *Gate {
	return &Gate{secret: secret, users: users}
}

// Resolve parses and verifies raw, then loads the subject from the user
// store. The "Bearer " prefix is accepted and stripped so callers can pass
// an Authorization header value directly.
func (g *Gate) Resolve(ctx context.Context, raw string) Principal {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	if raw == "" {
		return Anonymous
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(g.secret), nil
	})
	if err != nil || !tok.Valid {
		return Anonymous
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Anonymous
	}
	uid := subjectID(claims)
	if uid == 0 {
		return Anonymous
	}
	u, err := g.users.GetByID(ctx, uid)
	if err != nil || !u.IsActive {
		return Anonymous
	}
	return Principal{ID: u.ID, Role: u.Role}
}

// subjectID extracts the numeric sub claim. JWT numbers decode as float64;
// string subjects are parsed for compatibility with tokens issued by other
// libraries.
func subjectID(claims jwt.MapClaims) uint64 {
	switch v := claims["sub"].(type) {
	case float64:
		if v > 0 {
			return uint64(v)
		}
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
