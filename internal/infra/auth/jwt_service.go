// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"ecodeli/config"
	"ecodeli/internal/domain/service"
	"ecodeli/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid access token")

// accessTokenType is the "type" claim the identity service puts on access tokens.
const accessTokenType = "access"

// jwtService verifies HS256 access tokens issued by the identity service.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks the signature and expiry of an access token and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	if _, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}); err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if tokenType, ok := claims["type"].(string); ok && tokenType != accessTokenType {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", tokenType)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "missing subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a UUID")
	}

	return &service.Claims{
		UserID: userID,
		Roles:  stringSlice(claims["roles"]),
	}, nil
}

// stringSlice reads a JSON array claim. Non-string entries are dropped.
func stringSlice(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			roles = append(roles, s)
		}
	}

	return roles
}
