// Package auth issues and validates bearer tokens and gates requests on
// the authorities they carry.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret            string
	accessTokenExpiry time.Duration
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, accessExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:            secret,
		accessTokenExpiry: accessExpiry,
	}
}

// Generate creates an access token carrying the user ID and the granted
// authority strings of the user's roles
func (tg *TokenGenerator) Generate(userID int, authorities []string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     userID,
		"authorities": authorities,
		"exp":         time.Now().Add(tg.accessTokenExpiry).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Validate validates an access token and returns the userID and authorities
func (tg *TokenGenerator) Validate(tokenString string) (int, []string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		return 0, nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return 0, nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, nil, fmt.Errorf("invalid token claims")
	}

	// Extract userID (JWT claims decode numbers as float64)
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, nil, fmt.Errorf("user_id not found in token")
	}

	// Extract authorities (JWT claims decode string slices as []any)
	rawAuthorities, ok := claims["authorities"].([]any)
	if !ok {
		return 0, nil, fmt.Errorf("authorities not found in token")
	}
	authorities := make([]string, 0, len(rawAuthorities))
	for _, raw := range rawAuthorities {
		authority, ok := raw.(string)
		if !ok {
			return 0, nil, fmt.Errorf("invalid authority claim")
		}
		authorities = append(authorities, authority)
	}

	return int(userIDFloat), authorities, nil
}
