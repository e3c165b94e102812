package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// GenerateJWT signs an HS256 token that AuthMiddleware accepts for the given actor and role.
func GenerateJWT(userID string, role domain.AuthorityLevel, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
