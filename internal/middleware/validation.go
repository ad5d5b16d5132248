package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/student-api/internal/app/models/dto"
	"github.com/yigit/student-api/internal/pkg/apperrors"
	"github.com/yigit/student-api/internal/pkg/logger"
	"github.com/yigit/student-api/internal/pkg/validation"
)

var configureOnce sync.Once

// ConfigureValidator installs the custom rules on gin's validator and makes
// validation errors report JSON field names. Safe to call more than once.
func ConfigureValidator() {
	configureOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := validation.Register(v); err != nil {
			logger.Fatal().Err(err).Msg("Failed to register validation rules")
		}
	})
}

// BindJSON decodes and validates the request body into obj.
// A well-formed body with a wrongly typed field is returned as the *json.UnmarshalTypeError,
// validation failures as validator.ValidationErrors and any other decode failure as ErrInvalidPayload.
func BindJSON(c *gin.Context, obj interface{}) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr
	}
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidPayload, err)
}

// IsMissingField reports whether err is a validation failure caused only by absent or blank required fields
func IsMissingField(err error) bool {
	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return false
	}
	for _, fe := range validationErr {
		if fe.Tag() != "required" && fe.Tag() != validation.NotBlankTag {
			return false
		}
	}
	return true
}

// validationDetail builds the error detail for a failed struct validation.
// The first failure becomes the message; all of them are listed in details.
func validationDetail(errs validator.ValidationErrors) *dto.ErrorDetail {
	if len(errs) == 0 {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(errs[0])).
		WithField(errs[0].Field())
	if len(errs) > 1 {
		messages := make([]string, 0, len(errs))
		for _, fe := range errs {
			messages = append(messages, formatValidationError(fe))
		}
		detail = detail.WithDetails(messages)
	}
	return detail
}

// typeMismatchDetail reports a JSON value whose type does not fit the target field
func typeMismatchDetail(e *json.UnmarshalTypeError) *dto.ErrorDetail {
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, e.Field+" must be "+jsonTypeName(e.Type)).
		WithField(e.Field)
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case validation.NotBlankTag:
		return e.Field() + " must not be blank"
	case validation.DateTag:
		return e.Field() + " must be a date in YYYY-MM-DD format"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "latitude":
		return e.Field() + " must be a valid latitude"
	case "longitude":
		return e.Field() + " must be a valid longitude"
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
