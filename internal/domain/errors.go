package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Pipeline specific errors
	CodeFetchFailed      ErrorCode = "FETCH_FAILED"
	CodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	CodeLLMInvocation    ErrorCode = "LLM_INVOCATION_FAILED"
	CodeSchemaValidation ErrorCode = "SCHEMA_VALIDATION_FAILED"
	CodeStorage          ErrorCode = "STORAGE_ERROR"
	CodeQuizNotFound     ErrorCode = "QUIZ_NOT_FOUND"

	// Request validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewFetchError(url string, err error) *DomainError {
	return NewError(CodeFetchFailed, fmt.Sprintf("Failed to fetch article from %s", url), err)
}

func NewExtractionError(message string) *DomainError {
	return NewError(CodeExtractionFailed, message, nil)
}

func NewLLMInvocationError(err error) *DomainError {
	return NewError(CodeLLMInvocation, "Failed to invoke LLM service", err)
}

func NewSchemaValidationError(message string) *DomainError {
	return NewError(CodeSchemaValidation, message, nil)
}

func NewStorageError(message string, err error) *DomainError {
	return NewError(CodeStorage, message, err)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

// ValidationError represents a single request validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates request validation failures
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %s", value)}
}
