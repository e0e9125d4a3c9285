package auth

import (
	"fmt"
	"time"

	"chefbook/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the subset of the JWT we care about: who, which role, and a
// token id used as the session key.
type Claims struct {
	UserID  string
	Role    models.Role
	TokenID string
}

// NewAccessToken signs an HS256 JWT carrying the user id, role and a fresh
// token id. TTL is in minutes.
func NewAccessToken(secret, userID string, role models.Role, ttlMin int) (string, Claims, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:  userID,
		Role:    role,
		TokenID: uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"jti":  claims.TokenID,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Duration(ttlMin) * time.Minute).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", Claims{}, err
	}
	return signed, claims, nil
}

// ParseAccessToken verifies the signature and expiry and extracts claims.
// The role claim is parsed against the closed role set.
func ParseAccessToken(secret, raw string) (Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("invalid token claims")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return Claims{}, fmt.Errorf("missing subject claim")
	}

	rawRole, _ := mapClaims["role"].(string)
	role, err := models.ParseRole(rawRole)
	if err != nil {
		return Claims{}, err
	}

	jti, _ := mapClaims["jti"].(string)

	return Claims{UserID: sub, Role: role, TokenID: jti}, nil
}
