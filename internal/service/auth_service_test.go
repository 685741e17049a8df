package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/pkg/apperr"
)

func TestLogin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	auth, err := env.auth.Login(ctx, "customer@example.com", "customer123")
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "u1", auth.User.ID)

	// session is snapshotted
	session, err := env.auth.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "u1", session.ID)

	// token round-trips
	userID, role, err := env.auth.ParseToken(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, domain.RoleCustomer, role)
}

func TestLogin_BadCredentials(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "customer@example.com", "nope"},
		{"unknown email", "stranger@example.com", "customer123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Login(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrAuth)
		})
	}

	session, err := env.auth.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestRegister(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	auth, err := env.auth.Register(ctx, "new@example.com", "secret123", "New User")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, auth.User.Role)

	// can log in with the new account
	_, err = env.auth.Login(ctx, "new@example.com", "secret123")
	require.NoError(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.auth.Register(ctx, "customer@example.com", "whatever", "Impostor")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrAuth)
}

func TestLogout_ClearsSessionAndCart(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.auth.Login(ctx, "customer@example.com", "customer123")
	require.NoError(t, err)
	require.NoError(t, env.cart.AddToCart(ctx, "u1", "p1", 1))

	require.NoError(t, env.auth.Logout(ctx, "u1"))

	session, err := env.auth.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	lines, err := env.cart.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParseToken_Invalid(t *testing.T) {
	env := newTestEnv()

	_, _, err := env.auth.ParseToken("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrAuth)
}
