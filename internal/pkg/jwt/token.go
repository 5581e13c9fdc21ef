package jwt

import (
	"time"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateToken generates a session token for the given account. The claims
// identify the account only; current authorization state is always re-read
// from the identity store, never taken from the token.
func GenerateToken(user *models.User, rememberMe bool, cfg *models.Config) (string, time.Time, error) {
	hours := cfg.JWT.Expiration
	if rememberMe {
		hours = cfg.JWT.RememberExpiration
	}
	expiresAt := time.Now().Add(time.Duration(hours) * time.Hour)

	claims := jwt.MapClaims{
		"_id":   user.ID.Hex(),
		"email": user.Email,
		"role":  user.Role,
		"name":  user.Name,
		"exp":   expiresAt.Unix(),
		"iss":   cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, err
}
