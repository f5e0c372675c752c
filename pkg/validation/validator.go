package validation

import (
	"errors"

	"github.com/freshmart/catalog-service/pkg/response"
	"github.com/go-playground/validator/v10"
)

type RequestValidator struct {
	validator *validator.Validate
}

func CreateRequestValidator() *RequestValidator {
	return &RequestValidator{validator: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// MapValidationErrors converts validator failures into the field/tag pairs
// carried by the error response envelope. Returns nil for non-validation
// errors.
func MapValidationErrors(err error) []response.ValidationError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]response.ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, response.ValidationError{
			Field: fieldErr.Field(),
			Tag:   fieldErr.Tag(),
		})
	}

	return fields
}
