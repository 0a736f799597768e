package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID_RoundTrip(t *testing.T) {
	c := newEchoContext()
	generated := GetRequestID(c)
	assert.NoError(t, uuid.Validate(generated))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", RequestIDFrom(ctx))
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestLoggerFrom(t *testing.T) {
	fallback := slog.Default()
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Same(t, scoped, LoggerFrom(WithLogger(context.Background(), scoped), fallback))
}

func TestAuth(t *testing.T) {
	c := newEchoContext()

	_, ok := GetUserID(c)
	assert.False(t, ok)

	id := uuid.New()
	SetAuth(c, id, entity.Roles{entity.RoleDeliverer})

	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	roles, ok := GetRoles(c)
	assert.True(t, ok)
	assert.True(t, roles.Contains(entity.RoleDeliverer))
}
