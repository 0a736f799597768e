// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"ecodeli/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a validator with the marketplace enum tags registered.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or a nil function.
	_ = v.RegisterValidation("stop_kind", func(fl validator.FieldLevel) bool {
		return entity.StopKind(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("delivery_type", func(fl validator.FieldLevel) bool {
		return entity.DeliveryType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		return entity.Urgency(fl.Field().String()).IsValid()
	})

	return &EchoValidator{validate: v}
}

// Validate runs the struct tags of i and flattens failures into one message.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			messages = append(messages, fe.Namespace()+" failed on "+fe.Tag()+"="+fe.Param())
		} else {
			messages = append(messages, fe.Namespace()+" failed on "+fe.Tag())
		}
	}

	return errors.New(strings.Join(messages, "; "))
}
