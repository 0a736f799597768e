package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecodeli/config"
	"ecodeli/internal/delivery/worker/handler"
	mockUsecase "ecodeli/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestWorkerServer_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:  cfg,
			Logger:  logger,
			RouteUC: mockUsecase.NewMockRouteUsecase(t),
		}),
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/push", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
