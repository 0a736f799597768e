package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	mockUsecase "ecodeli/internal/mocks/usecase"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupLocationHandler(t *testing.T, userID uuid.UUID) (*mockUsecase.MockLocationUsecase, func(method, target, body string) (int, envelope)) {
	t.Helper()

	uc := mockUsecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: uc, Logger: discardLogger()})

	e := newTestEcho(userID)
	e.PUT("/deliverer/location", h.UpdateLocation)
	e.PUT("/deliverer/availability", h.UpdateAvailability)

	return uc, func(method, target, body string) (int, envelope) {
		rec := serve(e, method, target, body)

		return rec.Code, decodeEnvelope(t, rec)
	}
}

func TestLocationHandler_UpdateLocation(t *testing.T) {
	delivererID := uuid.New()
	uc, call := setupLocationHandler(t, delivererID)

	loc := entity.NewLocation(48.8606, 2.3376)
	uc.EXPECT().
		UpdateLocation(mock.Anything, delivererID, &usecase.UpdateLocationInput{Latitude: 48.8606, Longitude: 2.3376}).
		Return(&entity.Deliverer{ID: delivererID, Location: &loc}, nil)

	status, env := call(http.MethodPut, "/deliverer/location", `{"latitude": 48.8606, "longitude": 2.3376}`)
	require.Equal(t, http.StatusOK, status)

	var got entity.Deliverer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, delivererID, got.ID)
	require.NotNil(t, got.Location)
	assert.Equal(t, loc, *got.Location)
}

func TestLocationHandler_UpdateLocation_AcceptsOrigin(t *testing.T) {
	delivererID := uuid.New()
	uc, call := setupLocationHandler(t, delivererID)

	uc.EXPECT().
		UpdateLocation(mock.Anything, delivererID, &usecase.UpdateLocationInput{}).
		Return(&entity.Deliverer{ID: delivererID}, nil)

	status, _ := call(http.MethodPut, "/deliverer/location", `{"latitude": 0, "longitude": 0}`)
	assert.Equal(t, http.StatusOK, status)
}

func TestLocationHandler_UpdateLocation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "latitude out of range", body: `{"latitude": 91, "longitude": 2}`},
		{name: "longitude out of range", body: `{"latitude": 48, "longitude": 181}`},
		{name: "missing longitude", body: `{"latitude": 48}`},
		{name: "malformed body", body: `{"latitude": "north"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, call := setupLocationHandler(t, uuid.New())

			status, env := call(http.MethodPut, "/deliverer/location", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}

func TestLocationHandler_UpdateLocation_UnknownDeliverer(t *testing.T) {
	delivererID := uuid.New()
	uc, call := setupLocationHandler(t, delivererID)

	uc.EXPECT().UpdateLocation(mock.Anything, delivererID, mock.Anything).Return(nil, domainerrors.ErrDelivererNotFound)

	status, env := call(http.MethodPut, "/deliverer/location", `{"latitude": 48.85, "longitude": 2.35}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "DELIVERER_NOT_FOUND", env.Error.Code)
}

func TestLocationHandler_UpdateAvailability(t *testing.T) {
	delivererID := uuid.New()
	uc, call := setupLocationHandler(t, delivererID)

	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	window := entity.TimeWindow{Start: start, End: start.Add(4 * time.Hour)}
	uc.EXPECT().
		UpdateAvailability(mock.Anything, delivererID, mock.MatchedBy(func(in *usecase.UpdateAvailabilityInput) bool {
			return len(in.Windows) == 1 && in.Windows[0].Start.Equal(window.Start) && in.Windows[0].End.Equal(window.End)
		})).
		Return(&entity.Deliverer{ID: delivererID, Availability: []entity.TimeWindow{window}}, nil)

	status, env := call(http.MethodPut, "/deliverer/availability",
		`{"windows": [{"start": "2026-03-02T08:00:00Z", "end": "2026-03-02T12:00:00Z"}]}`)
	require.Equal(t, http.StatusOK, status)

	var got entity.Deliverer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Availability, 1)
	assert.True(t, got.Availability[0].End.Equal(window.End))
}

func TestLocationHandler_UpdateAvailability_EndBeforeStart(t *testing.T) {
	_, call := setupLocationHandler(t, uuid.New())

	status, env := call(http.MethodPut, "/deliverer/availability",
		`{"windows": [{"start": "2026-03-02T12:00:00Z", "end": "2026-03-02T08:00:00Z"}]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
