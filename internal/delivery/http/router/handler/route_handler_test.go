package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/matching"
	"ecodeli/internal/errors"
	mockUsecase "ecodeli/internal/mocks/usecase"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouteHandler(t *testing.T, userID uuid.UUID) (*mockUsecase.MockRouteUsecase, func(method, target, body string) (int, envelope)) {
	t.Helper()

	uc := mockUsecase.NewMockRouteUsecase(t)
	h := NewRouteHandler(RouteHandlerParams{RouteUC: uc, Logger: discardLogger()})

	e := newTestEcho(userID)
	e.POST("/deliverer/routes/plan", h.PlanRoute)
	e.GET("/deliverer/routes", h.GetRoute)

	return uc, func(method, target, body string) (int, envelope) {
		rec := serve(e, method, target, body)

		return rec.Code, decodeEnvelope(t, rec)
	}
}

func TestRouteHandler_PlanRoute(t *testing.T) {
	delivererID := uuid.New()
	uc, call := setupRouteHandler(t, delivererID)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	route := &entity.Route{ID: uuid.New(), DelivererID: delivererID, PlanningDate: day, TotalDistanceKm: 12}
	uc.EXPECT().
		PlanRoute(mock.Anything, delivererID, mock.MatchedBy(func(in *usecase.PlanRouteInput) bool {
			return in.Date.Equal(day) &&
				in.Start != nil && in.Start.Longitude == 2.35 &&
				in.DepartAt.Equal(day.Add(8*time.Hour))
		})).
		Return(&usecase.PlannedRoute{Route: route}, nil)

	status, env := call(http.MethodPost, "/deliverer/routes/plan",
		`{"date": "2026-03-02", "start": {"latitude": 48.85, "longitude": 2.35}, "depart_at": "2026-03-02T08:00:00Z"}`)
	require.Equal(t, http.StatusOK, status)

	var got struct {
		ID              uuid.UUID                `json:"id"`
		TotalDistanceKm float64                  `json:"total_distance_km"`
		Violations      []matching.StopViolation `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, route.ID, got.ID)
	assert.InDelta(t, 12.0, got.TotalDistanceKm, 1e-9)
	assert.NotNil(t, got.Violations)
}

func TestRouteHandler_PlanRoute_DefaultsToToday(t *testing.T) {
	delivererID := uuid.New()
	uc, call := setupRouteHandler(t, delivererID)

	uc.EXPECT().
		PlanRoute(mock.Anything, delivererID, mock.MatchedBy(func(in *usecase.PlanRouteInput) bool {
			return in.Date.IsZero() && in.Start == nil && in.DepartAt.IsZero()
		})).
		Return(nil, domainerrors.ErrDelivererLocationUnknown)

	status, env := call(http.MethodPost, "/deliverer/routes/plan", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "DELIVERER_LOCATION_UNKNOWN", env.Error.Code)
}

func TestRouteHandler_PlanRoute_BadDate(t *testing.T) {
	_, call := setupRouteHandler(t, uuid.New())

	status, env := call(http.MethodPost, "/deliverer/routes/plan", `{"date": "02/03/2026"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRouteHandler_GetRoute(t *testing.T) {
	delivererID := uuid.New()
	uc, call := setupRouteHandler(t, delivererID)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	uc.EXPECT().GetRoute(mock.Anything, delivererID, day).
		Return(&entity.Route{ID: uuid.New(), DelivererID: delivererID, PlanningDate: day}, nil)

	status, env := call(http.MethodGet, "/deliverer/routes?date=2026-03-02", "")
	require.Equal(t, http.StatusOK, status)

	var got entity.Route
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, delivererID, got.DelivererID)
}

func TestRouteHandler_GetRoute_Errors(t *testing.T) {
	delivererID := uuid.New()
	uc, call := setupRouteHandler(t, delivererID)

	uc.EXPECT().GetRoute(mock.Anything, delivererID, time.Time{}).
		Return(nil, domainerrors.ErrRouteNotFound).Once()

	status, env := call(http.MethodGet, "/deliverer/routes", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)

	uc.EXPECT().GetRoute(mock.Anything, delivererID, time.Time{}).
		Return(nil, errors.New("connection reset")).Once()

	status, env = call(http.MethodGet, "/deliverer/routes", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}
