package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyhours/backend/internal/model"
	"github.com/happyhours/backend/internal/utils"
)

const testSecret = "test-secret"

// stubUsers is an in-memory UserSource.
type stubUsers map[uint64]model.User

func (s stubUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := s[id]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func issueToken(t *testing.T, userID uint64, role string, ttlMin int) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, userID, role, ttlMin)
	require.NoError(t, err)
	return tok.Token
}

func TestGateResolvesValidToken(t *testing.T) {
	users := stubUsers{42: {ID: 42, Role: model.RolePartner, IsActive: true}}
	g := NewGate(testSecret, users)

	p := g.Resolve(context.Background(), issueToken(t, 42, model.RolePartner, 5))
	assert.Equal(t, Principal{ID: 42, Role: model.RolePartner}, p)
	assert.False(t, p.IsAnonymous())
}

func TestGateAcceptsBearerPrefix(t *testing.T) {
	users := stubUsers{42: {ID: 42, Role: model.RolePartner, IsActive: true}}
	g := NewGate(testSecret, users)

	p := g.Resolve(context.Background(), "Bearer "+issueToken(t, 42, model.RolePartner, 5))
	assert.Equal(t, uint64(42), p.ID)
}

func TestGateCollapsesFailuresToAnonymous(t *testing.T) {
	users := stubUsers{42: {ID: 42, Role: model.RolePartner, IsActive: true}}
	g := NewGate(testSecret, users)
	ctx := context.Background()

	assert.True(t, g.Resolve(ctx, "").IsAnonymous(), "empty credential")
	assert.True(t, g.Resolve(ctx, "not-even-a-jwt").IsAnonymous(), "malformed token")
	assert.True(t, g.Resolve(ctx, issueToken(t, 42, model.RolePartner, -5)).IsAnonymous(), "expired token")
	assert.True(t, g.Resolve(ctx, issueToken(t, 99, model.RolePartner, 5)).IsAnonymous(), "unknown subject")

	wrongSecret, err := utils.NewAccessToken("other-secret", 42, model.RolePartner, 5)
	assert.NoError(t, err)
	assert.True(t, g.Resolve(ctx, wrongSecret.Token).IsAnonymous(), "wrong signature")
}

func TestGateRejectsInactiveUser(t *testing.T) {
	users := stubUsers{42: {ID: 42, Role: model.RolePartner, IsActive: false}}
	g := NewGate(testSecret, users)

	assert.True(t, g.Resolve(context.Background(), issueToken(t, 42, model.RolePartner, 5)).IsAnonymous())
}
