package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"` // Parsed from the subject claim
	Roles  []string  `json:"roles"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the account service.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// IssueAccessToken signs an access token; used by operator tooling and tests.
	IssueAccessToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error)
}
