// Package errors provides structured error handling for the application
// with error codes, metadata and cause chains.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	// Input errors
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resource errors
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeDatasetNotFound ErrorCode = "DATASET_NOT_FOUND"
	CodeRecipeNotFound  ErrorCode = "RECIPE_NOT_FOUND"

	// Infrastructure errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"
	CodeTrainingError ErrorCode = "TRAINING_ERROR"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ExitCode maps the error to a process exit code for the CLI surface.
func (e *AppError) ExitCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed:
		return 2
	default:
		return 1
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Predefined error constructors for common scenarios

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewStorageError creates a storage error
func NewStorageError(operation string, cause error) *AppError {
	return NewAppError(
		CodeStorageError,
		"Storage operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// NewDatasetNotFoundError indicates the recipe dataset file is missing
func NewDatasetNotFoundError(path string) *AppError {
	return NewAppError(
		CodeDatasetNotFound,
		"Recipe dataset not found",
		fmt.Sprintf("No dataset file at %s", path),
	).WithMetadata("path", path)
}

// NewRecipeNotFoundError creates a recipe not found error
func NewRecipeNotFoundError(recipeID string) *AppError {
	return NewAppError(
		CodeRecipeNotFound,
		"Recipe not found",
		fmt.Sprintf("Recipe with ID %s does not exist", recipeID),
	).WithMetadata("recipe_id", recipeID)
}

// NewTrainingError creates a model training error
func NewTrainingError(stage string, cause error) *AppError {
	return NewAppError(
		CodeTrainingError,
		"Model training failed",
		fmt.Sprintf("Failed during %s", stage),
	).WithCause(cause)
}

// Wrap wraps an error with a message, preserving an existing AppError code
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return NewAppError(appErr.Code, message, appErr.Details).WithCause(err)
	}
	return NewAppError(CodeInternal, message, err.Error()).WithCause(err)
}

// IsCode reports whether err carries the given error code
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
