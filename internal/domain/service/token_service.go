package service

import (
	"github.com/google/uuid"
)

// Claims is the identity carried by a verified access token.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
}

// TokenService verifies access tokens issued by the identity service.
type TokenService interface {
	// ValidateToken checks the signature and expiry of an access token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
