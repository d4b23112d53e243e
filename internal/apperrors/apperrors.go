package apperrors

import (
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ErrorType classifies where in a reconciliation pass an error happened,
// which in turn decides how the controller reacts to it.
type ErrorType string

const (
	// ErrorTypeFetch indicates the desired state could not be retrieved
	// (clone, fetch or checkout failed). The previous status is kept and
	// the pass is retried.
	ErrorTypeFetch ErrorType = "fetch"
	// ErrorTypeValidation indicates the desired state is unusable
	// (malformed manifests). Nothing is applied for that revision.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeApply indicates a resource write failed during a sync pass.
	ErrorTypeApply ErrorType = "apply"
	// ErrorTypeDrift indicates live state diverged from the declared state
	// while self-heal is disabled.
	ErrorTypeDrift ErrorType = "drift"
)

// AppError is a reconciliation error tagged with its type.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of the same type
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Type == appErr.Type
	}
	return false
}

// NewFetchError creates a new fetch error
func NewFetchError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeFetch,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Cause:   cause,
	}
}

// NewApplyError creates a new apply error
func NewApplyError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeApply,
		Message: message,
		Cause:   cause,
	}
}

// NewDriftError creates a new drift error
func NewDriftError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeDrift,
		Message: message,
	}
}

// IsFetchError checks if the error is a fetch error
func IsFetchError(err error) bool {
	return isType(err, ErrorTypeFetch)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsApplyError checks if the error is an apply error
func IsApplyError(err error) bool {
	return isType(err, ErrorTypeApply)
}

// IsDriftError checks if the error is a drift error
func IsDriftError(err error) bool {
	return isType(err, ErrorTypeDrift)
}

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// TypeOf returns the error type, or "" for untyped errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsPermanent reports whether retrying the failed API call cannot help:
// the request itself is wrong, not the cluster's current condition.
// Validation errors are always permanent.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	if IsValidationError(err) {
		return true
	}

	return apierrors.IsInvalid(err) ||
		apierrors.IsBadRequest(err) ||
		apierrors.IsMethodNotSupported(err) ||
		apierrors.IsNotAcceptable(err) ||
		apierrors.IsRequestEntityTooLargeError(err) ||
		apierrors.IsUnsupportedMediaType(err)
}
