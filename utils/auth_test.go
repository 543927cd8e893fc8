package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodshare/apperrors"
	"foodshare/models"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateJWT("64b4a9f0f0f0f0f0f0f0f0f0", models.UserTypeRestaurant)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "64b4a9f0f0f0f0f0f0f0f0f0", claims.UserID)
	assert.Equal(t, models.UserTypeRestaurant, claims.UserType)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	token, err := GenerateJWT("64b4a9f0f0f0f0f0f0f0f0f0", models.UserTypeNGO)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")

	var authErr *apperrors.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	claims := &Claims{
		UserID:   "64b4a9f0f0f0f0f0f0f0f0f0",
		UserType: models.UserTypeNGO,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JwtKey)
	require.NoError(t, err)

	_, err = ParseToken(expired)

	var authErr *apperrors.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	claims := &Claims{
		UserID: "64b4a9f0f0f0f0f0f0f0f0f0",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other_key"))
	require.NoError(t, err)

	_, err = ParseToken(forged)

	var authErr *apperrors.AuthError
	assert.ErrorAs(t, err, &authErr)
}
