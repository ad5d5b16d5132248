package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/student-api/internal/app/models/dto"
	"github.com/yigit/student-api/internal/pkg/apperrors"
	"github.com/yigit/student-api/internal/pkg/dberrors"
	"github.com/yigit/student-api/internal/pkg/logger"
)

// InternalServerErrorMessage is the only text a client sees for an unclassified failure
const InternalServerErrorMessage = "Internal server error"

// InvalidJSONMessage is returned when the request body cannot be decoded
const InvalidJSONMessage = "Invalid JSON payload"

// --- Central Error Handling Middleware/Function ---

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("code", string(detail.Code)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", GetRequestID(c)).
		Msg("Request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// classifyError maps an error to a status code and a client-safe error detail
func classifyError(err error) (int, *dto.ErrorDetail) {
	var (
		syntaxErr     *json.SyntaxError
		typeErr       *json.UnmarshalTypeError
		validationErr validator.ValidationErrors
	)

	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return http.StatusBadRequest, typeMismatchDetail(typeErr)

	case errors.Is(err, apperrors.ErrInvalidPayload),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidPayload, InvalidJSONMessage)

	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationDetail(validationErr)

	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, withCustomField(err,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.PublicMessage(err, "Validation failed")))

	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, withCustomField(err,
			dto.NewErrorDetail(dto.ErrorCodeInvalidID, apperrors.PublicMessage(err, "Invalid ID")))

	case errors.Is(err, apperrors.ErrInvalidReference):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidReference,
			apperrors.PublicMessage(err, "Referenced resource does not exist"))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound,
			apperrors.PublicMessage(err, "Resource not found"))

	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists,
			apperrors.PublicMessage(err, "Resource already exists"))

	// Constraint violations that no repository classified
	case dberrors.IsUniqueViolation(err):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case dberrors.IsForeignKeyViolation(err):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidReference, "Referenced resource does not exist")

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, InternalServerErrorMessage)
	}
}

// withCustomField copies the field recorded on a CustomError in err onto detail
func withCustomField(err error, detail *dto.ErrorDetail) *dto.ErrorDetail {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Field != "" {
		return detail.WithField(custom.Field)
	}
	return detail
}

// ErrorHandler recovers from panics and renders errors attached with c.Error
// when the handler did not write a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("path", c.Request.URL.Path).
					Str("request_id", GetRequestID(c)).
					Msg("Recovered from panic")
				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError,
						dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, InternalServerErrorMessage)))
				}
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			HandleAPIError(c, c.Errors.Last().Err)
		}
	}
}

// NoRoute answers unknown paths with a JSON 404
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRouteNotFound, "Route not found").WithDetails(c.Request.Method+" "+c.Request.URL.Path),
		))
	}
}
