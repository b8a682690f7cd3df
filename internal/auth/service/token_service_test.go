package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("access-secret-key", "refresh-secret-key", 15, 10080)

	assert.NotNil(t, ts)
	assert.Equal(t, "access-secret-key", ts.AccessTokenSecret)
	assert.Equal(t, "refresh-secret-key", ts.RefreshTokenSecret)
	assert.Equal(t, 15*time.Minute, ts.AccessTokenExpiry)
	assert.Equal(t, 7*24*time.Hour, ts.RefreshTokenExpiry)
}

func TestTokenService_SignAndVerify(t *testing.T) {
	ts := NewTokenService("test-access-secret", "test-refresh-secret", 15, 10080)

	t.Run("access token round-trip", func(t *testing.T) {
		token, err := ts.SignAccessToken("user-123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		result := ts.VerifyAccessToken(token)
		assert.True(t, result.Valid)
		assert.False(t, result.Expired)
		require.NotNil(t, result.Claims)
		assert.Equal(t, "user-123", result.Claims.UserID)
		assert.NotNil(t, result.Claims.IssuedAt)
		assert.NotNil(t, result.Claims.ExpiresAt)
	})

	t.Run("refresh token round-trip", func(t *testing.T) {
		token, err := ts.SignRefreshToken("user-123")
		require.NoError(t, err)

		result := ts.VerifyRefreshToken(token)
		assert.True(t, result.Valid)
		assert.False(t, result.Expired)
		require.NotNil(t, result.Claims)
		assert.Equal(t, "user-123", result.Claims.UserID)
	})

	t.Run("refresh token outlives access token", func(t *testing.T) {
		accessToken, err := ts.SignAccessToken("user-123")
		require.NoError(t, err)
		refreshToken, err := ts.SignRefreshToken("user-123")
		require.NoError(t, err)

		accessClaims := ts.VerifyAccessToken(accessToken).Claims
		refreshClaims := ts.VerifyRefreshToken(refreshToken).Claims
		require.NotNil(t, accessClaims)
		require.NotNil(t, refreshClaims)
		assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
	})
}

// The two token classes use independent secrets; a token of one class must
// not verify as the other.
func TestTokenService_SecretsAreIndependent(t *testing.T) {
	ts := NewTokenService("test-access-secret", "test-refresh-secret", 15, 10080)

	accessToken, err := ts.SignAccessToken("user-123")
	require.NoError(t, err)
	refreshToken, err := ts.SignRefreshToken("user-123")
	require.NoError(t, err)

	result := ts.VerifyRefreshToken(accessToken)
	assert.False(t, result.Valid)
	assert.False(t, result.Expired)
	assert.Nil(t, result.Claims)

	result = ts.VerifyAccessToken(refreshToken)
	assert.False(t, result.Valid)
	assert.False(t, result.Expired)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("test-access-secret", "test-refresh-secret", -1, -1)

	token, err := ts.SignAccessToken("user-123")
	require.NoError(t, err)

	result := ts.VerifyAccessToken(token)
	assert.False(t, result.Valid)
	assert.True(t, result.Expired, "TTL expiry must be distinguishable from tampering")
}

func TestTokenService_Verify_Tampered(t *testing.T) {
	ts := NewTokenService("test-access-secret", "test-refresh-secret", 15, 10080)

	token, err := ts.SignAccessToken("user-123")
	require.NoError(t, err)

	result := ts.VerifyAccessToken(token + "x")
	assert.False(t, result.Valid)
	assert.False(t, result.Expired)

	result = ts.VerifyAccessToken("not-a-token")
	assert.False(t, result.Valid)
	assert.False(t, result.Expired)
}

func TestTokenService_Verify_RejectsNonHMAC(t *testing.T) {
	ts := NewTokenService("test-access-secret", "test-refresh-secret", 15, 10080)

	// alg=none token with otherwise plausible claims.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	result := ts.VerifyAccessToken(unsigned)
	assert.False(t, result.Valid)
	assert.False(t, result.Expired)
}

func TestTokenService_Getters(t *testing.T) {
	ts := NewTokenService("a", "r", 15, 10080)

	assert.Equal(t, 15*time.Minute, ts.GetAccessTokenExpiry())
	assert.Equal(t, 7*24*time.Hour, ts.GetRefreshTokenExpiry())
}
