package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"open-hire/internal/hireerrors"
)

// TokenCookie is the cookie name carrying the signed identity token
const TokenCookie = "token"

// IdentityKey is the request context key holding the verified caller email
const IdentityKey = "identity"

// TokenManager issues and verifies the HS256 tokens that carry a caller's
// verified email identity
type TokenManager struct {
	secret        []byte
	tokenDuration time.Duration
}

// NewTokenManager creates a TokenManager with the given signing secret
func NewTokenManager(secret string, tokenDuration time.Duration) *TokenManager {
	return &TokenManager{
		secret:        []byte(secret),
		tokenDuration: tokenDuration,
	}
}

// Issue signs a token for the given email
func (m *TokenManager) Issue(email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("auth: %w - empty email", hireerrors.ErrInvalidInput)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(m.tokenDuration).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the embedded email identity
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("auth: %w", hireerrors.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("auth: %w", hireerrors.ErrUnauthenticated)
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("auth: %w - token carries no identity", hireerrors.ErrUnauthenticated)
	}

	return email, nil
}
