package impl

import (
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/matching"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/errors"
)

// toAppError translates persistence and matching errors into the domain error
// taxonomy. Unknown errors are wrapped with msg and left for the error middleware.
func toAppError(err error, msg string) error {
	switch {
	case errors.Is(err, matching.ErrInvalidInput):
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	case errors.Is(err, repository.ErrDelivererNotFound):
		return domainerrors.ErrDelivererNotFound
	case errors.Is(err, repository.ErrAnnouncementNotFound):
		return domainerrors.ErrAnnouncementNotFound
	case errors.Is(err, repository.ErrApplicationNotFound):
		return domainerrors.ErrApplicationNotFound
	case errors.Is(err, repository.ErrRouteNotFound):
		return domainerrors.ErrRouteNotFound
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return errors.Wrap(err, msg)
}
