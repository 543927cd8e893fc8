package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"foodshare/apperrors"
	"foodshare/models"
)

// JWT secret key, loaded from the environment in main.
var JwtKey = []byte("your_secret_key")

// Claims represents the JWT claims. The subject is the user's hex ObjectID;
// the userType rides along so role gates need no store lookup.
type Claims struct {
	UserID   string          `json:"userId"`
	UserType models.UserType `json:"userType"`
	jwt.StandardClaims
}

// GenerateJWT issues a signed token for a user, valid for 24 hours.
func GenerateJWT(userID string, userType models.UserType) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID:   userID,
		UserType: userType,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}

// ParseToken validates a token string and returns its claims. Expired or
// tampered tokens yield an AuthError.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.NewAuth("Invalid or expired token")
	}
	return claims, nil
}
