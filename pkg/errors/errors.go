package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Pattern errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Rename errors
	ErrInvalidDirectory ErrorCode = "INVALID_DIRECTORY"
	ErrRenameFailure    ErrorCode = "RENAME_FAILURE"
	ErrInvalidName      ErrorCode = "INVALID_NAME"
	ErrWalkFailure      ErrorCode = "WALK_FAILURE"

	// Prompt errors
	ErrPromptFailed ErrorCode = "PROMPT_FAILED"
)

// RenamerError represents a structured error with code and details
type RenamerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenamerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenamerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RenamerError) Is(target error) bool {
	var targetErr *RenamerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RenamerError with the given code and message
func New(code ErrorCode, message string) *RenamerError {
	return &RenamerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenamerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenamerError {
	return &RenamerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenamerError
func Wrap(err error, code ErrorCode, message string) *RenamerError {
	if err == nil {
		return nil
	}
	return &RenamerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenamerError {
	if err == nil {
		return nil
	}
	return &RenamerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RenamerError) WithDetail(key string, value interface{}) *RenamerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RenamerError) WithDetails(details map[string]interface{}) *RenamerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var renamerErr *RenamerError
	if errors.As(err, &renamerErr) {
		return renamerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RenamerError
func GetErrorCode(err error) ErrorCode {
	var renamerErr *RenamerError
	if errors.As(err, &renamerErr) {
		return renamerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RenamerError
func GetErrorDetails(err error) map[string]interface{} {
	var renamerErr *RenamerError
	if errors.As(err, &renamerErr) {
		return renamerErr.Details
	}
	return nil
}

// UserMessage renders err for people: the messages of the chain joined by
// ": ", without error codes. Operation and path prefixes of wrapped os errors
// are dropped because the enclosing message already names the file.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var renamerErr *RenamerError
	if !errors.As(err, &renamerErr) {
		return err.Error()
	}
	if renamerErr.Wrapped == nil {
		return renamerErr.Message
	}
	return renamerErr.Message + ": " + causeMessage(renamerErr.Wrapped)
}

func causeMessage(err error) string {
	var (
		renamerErr *RenamerError
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
	)
	switch {
	case errors.As(err, &renamerErr):
		return UserMessage(err)
	case errors.As(err, &pathErr):
		return pathErr.Err.Error()
	case errors.As(err, &linkErr):
		return linkErr.Err.Error()
	case errors.As(err, &syscallErr):
		return syscallErr.Err.Error()
	default:
		return err.Error()
	}
}
