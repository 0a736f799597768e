package matching

import "github.com/pkg/errors"

// ErrInvalidInput marks malformed coordinates, negative distances or prices,
// inconsistent bounds and unusable weights. Operations fail fast with it.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}
