package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ecodeli/internal/delivery/http/response"
	"ecodeli/internal/domain/entity"
	"ecodeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler lets deliverers report their position and availability.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// UpdateLocationRequest is the body of PUT /deliverer/location.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// AvailabilityWindowRequest is one declared availability range.
type AvailabilityWindowRequest struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtfield=Start"`
}

// UpdateAvailabilityRequest is the body of PUT /deliverer/availability.
type UpdateAvailabilityRequest struct {
	Windows []AvailabilityWindowRequest `json:"windows" validate:"max=50,dive"`
}

// UpdateLocation stores the calling deliverer's current position.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	delivererID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	deliverer, err := h.locationUC.UpdateLocation(c.Request().Context(), delivererID, &usecase.UpdateLocationInput{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, deliverer, "Location updated successfully")
}

// UpdateAvailability replaces the calling deliverer's availability windows.
func (h *LocationHandler) UpdateAvailability(c echo.Context) error {
	delivererID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UpdateAvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	windows := make([]entity.TimeWindow, 0, len(req.Windows))
	for _, w := range req.Windows {
		windows = append(windows, entity.TimeWindow{Start: w.Start, End: w.End})
	}

	deliverer, err := h.locationUC.UpdateAvailability(c.Request().Context(), delivererID, &usecase.UpdateAvailabilityInput{Windows: windows})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, deliverer, "Availability updated successfully")
}
