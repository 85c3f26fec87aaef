package service

import (
	"context"
	"testing"
	"time"

	"github.com/ilyamazurenko/Dance-partner-app/internal/model"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	alice := e.user(t, "alice@example.com")

	u, err := e.auth.Authenticate(ctx, "alice@example.com", "pw-alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, u.ID)
}

func TestAuthenticateFailuresLookTheSame(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	e.user(t, "alice@example.com")

	_, wrongPassword := e.auth.Authenticate(ctx, "alice@example.com", "nope")
	_, unknownEmail := e.auth.Authenticate(ctx, "ghost@example.com", "nope")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticateInactiveUser(t *testing.T) {
	e := newTestEnv(t)

	carol := e.user(t, "carol@example.com")
	require.NoError(t, e.db.Model(&model.User{}).Where("id = ?", carol.ID).Update("is_active", false).Error)

	_, err := e.auth.Authenticate(context.Background(), carol.Email, "pw-carol@example.com")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveCurrentUser(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	alice := e.user(t, "alice@example.com")

	token, err := e.auth.IssueToken(alice.Email)
	require.NoError(t, err)

	u, err := e.auth.ResolveCurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, u.ID)
}

func TestResolveCurrentUserRejects(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	alice := e.user(t, "alice@example.com")
	carol := e.user(t, "carol@example.com")
	require.NoError(t, e.db.Model(&model.User{}).Where("id = ?", carol.ID).Update("is_active", false).Error)

	sign := func(email string) string {
		token, err := e.auth.IssueToken(email)
		require.NoError(t, err)
		return token
	}

	other, err := security.NewTokenService("another-secret-of-similar-length!!", "HS256", time.Minute)
	require.NoError(t, err)
	forged, err := other.Issue(alice.Email)
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":       "not.a.token",
		"empty":         "",
		"unknown user":  sign("ghost@example.com"),
		"inactive user": sign(carol.Email),
		"wrong secret":  forged,
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := e.auth.ResolveCurrentUser(ctx, token)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestResolveCurrentUserAfterExpiry(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	alice := e.user(t, "alice@example.com")

	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := issued

	tokens, err := security.NewTokenService(testSecret, "HS256", 30*time.Minute)
	require.NoError(t, err)
	tokens.WithClock(func() time.Time { return now })

	auth := NewAuthService(e.users, nil, tokens)

	token, err := auth.IssueToken(alice.Email)
	require.NoError(t, err)

	now = issued.Add(29 * time.Minute)
	_, err = auth.ResolveCurrentUser(ctx, token)
	require.NoError(t, err)

	now = issued.Add(30 * time.Minute)
	_, err = auth.ResolveCurrentUser(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
