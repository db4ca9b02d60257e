package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration / home errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrHomeDir    ErrorCode = "HOME_DIR"
	ErrHomeNotDir ErrorCode = "HOME_NOT_DIR"
	ErrHomeCreate ErrorCode = "HOME_CREATE"

	// Lookup and conflict errors
	ErrLinkNotFound ErrorCode = "LINK_NOT_FOUND"
	ErrLinkExists   ErrorCode = "LINK_EXISTS"

	// Validation errors
	ErrInvalidLink   ErrorCode = "INVALID_LINK"
	ErrInvalidTarget ErrorCode = "INVALID_TARGET"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkRead   ErrorCode = "SYMLINK_READ"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
	ErrNotSymlink    ErrorCode = "NOT_SYMLINK"

	// Console errors
	ErrInput ErrorCode = "INPUT"
)

// HopError represents a structured error with code and details.
//
// Wrapped is the error that made this operation fail. Cause is an optional
// earlier error that explains why the operation was attempted at all, e.g.
// the stat failure that made hop try to create its home directory.
type HopError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
	Cause   error
}

// Error implements the error interface
func (e *HopError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes both the wrapped error and the cause to errors.Is/As
func (e *HopError) Unwrap() []error {
	var errs []error
	if e.Wrapped != nil {
		errs = append(errs, e.Wrapped)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Is implements errors.Is interface
func (e *HopError) Is(target error) bool {
	var targetErr *HopError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HopError with the given code and message
func New(code ErrorCode, message string) *HopError {
	return &HopError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HopError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HopError {
	return &HopError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HopError
func Wrap(err error, code ErrorCode, message string) *HopError {
	if err == nil {
		return nil
	}
	return &HopError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HopError {
	if err == nil {
		return nil
	}
	return &HopError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithCause records the original error that led to this one
func (e *HopError) WithCause(cause error) *HopError {
	e.Cause = cause
	return e
}

// WithDetail adds a detail to the error
func (e *HopError) WithDetail(key string, value interface{}) *HopError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hopErr *HopError
	if errors.As(err, &hopErr) {
		return hopErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HopError
func GetErrorCode(err error) ErrorCode {
	var hopErr *HopError
	if errors.As(err, &hopErr) {
		return hopErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HopError
func GetErrorDetails(err error) map[string]interface{} {
	var hopErr *HopError
	if errors.As(err, &hopErr) {
		return hopErr.Details
	}
	return nil
}

// GetCause returns the recorded cause of a HopError, or nil
func GetCause(err error) error {
	var hopErr *HopError
	if errors.As(err, &hopErr) {
		return hopErr.Cause
	}
	return nil
}
