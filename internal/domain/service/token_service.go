package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID primitive.ObjectID `json:"uid"`
	Kind   string             `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session
// tokens. Sessions are a single short-lived access token; there is no
// refresh flow.
type TokenService interface {
	// GenerateToken creates a session token for a given user.
	GenerateToken(userID primitive.ObjectID, kind string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured session lifetime.
	TokenDuration() time.Duration
}
