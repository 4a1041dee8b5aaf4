package token

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/models"
)

func testIssuer(t *testing.T, accessTTL, refreshTTL time.Duration) *Issuer {
	t.Helper()

	accessKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	refreshKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return NewIssuer(accessKey, refreshKey, accessTTL, refreshTTL)
}

func testUser() *models.User {
	return &models.User{
		UserID:   "user-123",
		Username: "alice",
		Role:     "admin",
	}
}

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := testIssuer(t, time.Hour, 12*time.Hour)
	user := testUser()

	t.Run("access token round-trips", func(t *testing.T) {
		tokenString, err := issuer.IssueAccess(user)
		require.NoError(t, err)

		claims, err := issuer.VerifyAccess(tokenString)
		require.NoError(t, err)

		assert.Equal(t, user.UserID, claims.UserID)
		assert.Equal(t, user.Username, claims.Username)
		assert.Equal(t, user.Role, claims.Role)
	})

	t.Run("refresh token round-trips", func(t *testing.T) {
		tokenString, err := issuer.IssueRefresh(user)
		require.NoError(t, err)

		claims, err := issuer.VerifyRefresh(tokenString)
		require.NoError(t, err)

		assert.Equal(t, user.UserID, claims.UserID)
		assert.Equal(t, user.Role, claims.Role)
	})
}

func TestIssuer_KeyIsolation(t *testing.T) {
	issuer := testIssuer(t, time.Hour, 12*time.Hour)
	user := testUser()

	accessToken, err := issuer.IssueAccess(user)
	require.NoError(t, err)

	refreshToken, err := issuer.IssueRefresh(user)
	require.NoError(t, err)

	// A token signed with one pair must never verify against the other.
	_, err = issuer.VerifyRefresh(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.VerifyAccess(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_ExpiredToken(t *testing.T) {
	issuer := testIssuer(t, -time.Minute, -time.Minute)
	user := testUser()

	tokenString, err := issuer.IssueAccess(user)
	require.NoError(t, err)

	_, err = issuer.VerifyAccess(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_TamperedToken(t *testing.T) {
	issuer := testIssuer(t, time.Hour, time.Hour)

	tokenString, err := issuer.IssueAccess(testUser())
	require.NoError(t, err)

	tampered := tokenString[:len(tokenString)-4] + "xxxx"

	_, err = issuer.VerifyAccess(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_MalformedToken(t *testing.T) {
	issuer := testIssuer(t, time.Hour, time.Hour)

	_, err := issuer.VerifyAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_OtherIssuerRejected(t *testing.T) {
	issuerA := testIssuer(t, time.Hour, time.Hour)
	issuerB := testIssuer(t, time.Hour, time.Hour)

	tokenString, err := issuerA.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = issuerB.VerifyAccess(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
