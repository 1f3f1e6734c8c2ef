package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/sales-tracker/internal/models"
)

var jwtSecret = []byte("super-secret-key")

// SetSecret overrides the signing secret; called once at startup with the
// configured value.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(8 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// TokenClaims parses the Authorization header value and returns the token
// with its claims.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	tokenStr := strings.TrimPrefix(authorization, "Bearer ")
	token, err := ParseToken(tokenStr)
	if err != nil {
		return nil, nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, nil, errors.New("invalid token claims")
	}
	return token, claims, nil
}
