package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", "test-issuer", 1, 24)
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	tm := newTestManager()

	token, err := tm.IssueAccessToken("user-1", "a@example.com", "mentor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "mentor", claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestIssueAndVerifyRefreshToken(t *testing.T) {
	tm := newTestManager()

	token, err := tm.IssueRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := tm.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, TypeRefresh, claims.Type)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	tm := newTestManager()

	access, err := tm.IssueAccessToken("user-1", "a@example.com", "mentee")
	require.NoError(t, err)
	refresh, err := tm.IssueRefreshToken("user-1")
	require.NoError(t, err)

	// A refresh token must not pass as an access token even though both are
	// valid JWTs
	_, err = tm.VerifyAccessToken(refresh)
	assert.Error(t, err)

	_, err = tm.VerifyRefreshToken(access)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tm := newTestManager()
	other := NewTokenManager("other-secret", "other-refresh", "test-issuer", 1, 24)

	token, err := tm.IssueAccessToken("user-1", "a@example.com", "admin")
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := NewTokenManager("access-secret", "refresh-secret", "test-issuer", -1, -1)

	token, err := expired.IssueAccessToken("user-1", "a@example.com", "user")
	require.NoError(t, err)

	_, err = expired.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm := newTestManager()

	_, err := tm.VerifyAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTimingSafeCompare(t *testing.T) {
	assert.True(t, TimingSafeCompare("abc123", "abc123"))
	assert.False(t, TimingSafeCompare("abc123", "abc124"))
	assert.False(t, TimingSafeCompare("abc123", "abc1234"))
	assert.True(t, TimingSafeCompare("", ""))
}
