package auth

import (
	"testing"
	"time"

	"vesture/config"
	"vesture/middleware"
	"vesture/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupSecret(t *testing.T) []byte {
	t.Helper()
	secret := []byte("test-secret")
	Init(&config.Config{JWTSecret: secret})
	middleware.Init(secret)
	return secret
}

func TestIssueTokenRoundTrip(t *testing.T) {
	setupSecret(t)

	user := models.User{UserID: "u123", Username: "alice"}
	token, err := IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := middleware.ValidateJWT("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "u123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestIssueTokenExpiryIsOneHour(t *testing.T) {
	setupSecret(t)

	token, err := IssueToken(models.User{UserID: "u123"})
	require.NoError(t, err)

	claims, err := middleware.ValidateJWT("Bearer " + token)
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 55*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	secret := setupSecret(t)

	claims := &middleware.Claims{
		UserID: "u123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = middleware.ValidateJWT("Bearer " + token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	setupSecret(t)

	token, err := IssueToken(models.User{UserID: "u123"})
	require.NoError(t, err)

	middleware.Init([]byte("other-secret"))
	_, err = middleware.ValidateJWT("Bearer " + token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	setupSecret(t)

	_, err := middleware.ValidateJWT("")
	assert.Error(t, err)

	_, err = middleware.ValidateJWT("Bearer not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashVerification(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("secret1")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("wrong")))
}
