package auth

import (
	"testing"
	"time"

	"ecodeli/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":   userID.String(),
		"exp":   time.Now().Add(time.Minute).Unix(),
		"type":  "access",
		"roles": []string{"deliverer", "client"},
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"deliverer", "client"}, claims.Roles)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	valid := func() jwt.MapClaims {
		return jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(time.Minute).Unix()}
	}

	expired := valid()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()
	refresh := valid()
	refresh["type"] = "refresh"
	badSubject := valid()
	badSubject["sub"] = "not-a-uuid"
	noExpiry := valid()
	delete(noExpiry, "exp")

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: sign(t, jwt.SigningMethodHS256, []byte("other-secret"), valid())},
		{name: "wrong algorithm", token: sign(t, jwt.SigningMethodHS512, []byte(testSecret), valid())},
		{name: "expired", token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{name: "missing expiry", token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{name: "refresh token", token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), refresh)},
		{name: "subject not a uuid", token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), badSubject)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
