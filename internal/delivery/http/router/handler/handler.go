// Package handler contains the echo handlers of the matching API.
package handler

import (
	"time"

	deliverycontext "ecodeli/internal/delivery/context"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LocationRequest is a coordinate in request bodies.
type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

func (r *LocationRequest) toEntity() *entity.Location {
	if r == nil {
		return nil
	}
	loc := entity.NewLocation(r.Latitude, r.Longitude)

	return &loc
}

// callerID returns the authenticated user. The auth middleware guarantees it on protected routes.
func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// parseDate accepts an empty string or a YYYY-MM-DD day.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	day, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(field + " must be formatted as YYYY-MM-DD")
	}

	return day, nil
}
