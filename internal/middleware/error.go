package middleware

import (
	"errors"
	"net/http"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ErrorHandler is the single place that translates internal failures into
// HTTP statuses. Response bodies never carry stack traces or wrapped
// causes, only the error code and its message.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		// Handle validation errors
		if validationErrs, ok := err.(domain.ValidationErrors); ok {
			log.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			log.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Err),
			)

			return c.Status(statusCode).JSON(ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Status:  statusCode,
			})
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		// Handle unknown errors
		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes.
// Bad input (including pages with no usable text) is the caller's problem,
// upstream fetch/model trouble is a bad gateway, storage trouble is ours.
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound, domain.CodeQuizNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeExtractionFailed,
		domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat:
		return http.StatusBadRequest
	case domain.CodeFetchFailed, domain.CodeLLMInvocation, domain.CodeSchemaValidation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
