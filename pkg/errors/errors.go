package errors

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeInvalidArgument indicates malformed caller input, rejected before any network activity
	ErrorTypeInvalidArgument ErrorType = "INVALID_ARGUMENT"
	// ErrorTypeUpstreamResponse indicates an upstream answered with an error status or an unusable body
	ErrorTypeUpstreamResponse ErrorType = "UPSTREAM_RESPONSE"
	// ErrorTypeUpstreamConnection indicates an upstream could not be reached
	ErrorTypeUpstreamConnection ErrorType = "UPSTREAM_CONNECTION"
	// ErrorTypeSamplingFailure indicates the sampling capability failed for any reason
	ErrorTypeSamplingFailure ErrorType = "SAMPLING_FAILURE"
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// bodyExcerptLimit bounds how much of an upstream body is kept on an error.
const bodyExcerptLimit = 200

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error

	// StatusCode and Body are set for upstream HTTP status errors.
	StatusCode int
	Body       string
}

// Error returns the error message
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new application error
func New(errorType ErrorType, message string) error {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap wraps an error with an application error
func Wrap(errorType ErrorType, message string, err error) error {
	return &AppError{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) error {
	return New(ErrorTypeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with a formatted message
func InvalidArgumentf(format string, args ...interface{}) error {
	return New(ErrorTypeInvalidArgument, fmt.Sprintf(format, args...))
}

// UpstreamStatus creates an upstream response error for a non-2xx HTTP status.
// The body is truncated to a short excerpt of valid UTF-8.
func UpstreamStatus(service string, statusCode int, body string) error {
	excerpt := bodyExcerpt(body)
	return &AppError{
		Type:       ErrorTypeUpstreamResponse,
		Message:    fmt.Sprintf("%s API error: %d - %s", service, statusCode, excerpt),
		StatusCode: statusCode,
		Body:       excerpt,
	}
}

// bodyExcerpt cuts body on a rune boundary at or before bodyExcerptLimit bytes
// and replaces invalid sequences with U+FFFD.
func bodyExcerpt(body string) string {
	if len(body) > bodyExcerptLimit {
		n := bodyExcerptLimit
		for n > 0 && !utf8.RuneStart(body[n]) {
			n--
		}
		body = body[:n]
	}
	return strings.ToValidUTF8(body, "\uFFFD")
}

// UpstreamResponse creates an upstream response error
func UpstreamResponse(message string, err error) error {
	return Wrap(ErrorTypeUpstreamResponse, message, err)
}

// UpstreamConnection creates an upstream connection error
func UpstreamConnection(message string, err error) error {
	return Wrap(ErrorTypeUpstreamConnection, message, err)
}

// SamplingFailure creates a sampling failure error
func SamplingFailure(message string, err error) error {
	return Wrap(ErrorTypeSamplingFailure, message, err)
}

// NotFound creates a not found error
func NotFound(message string) error {
	return New(ErrorTypeNotFound, message)
}

// Internal creates an internal error
func Internal(message string) error {
	return New(ErrorTypeInternal, message)
}

// TypeOf returns the type of the outermost AppError in the chain, or
// ErrorTypeInternal when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return isType(err, ErrorTypeInvalidArgument)
}

// IsUpstreamResponse checks if an error is an upstream response error
func IsUpstreamResponse(err error) bool {
	return isType(err, ErrorTypeUpstreamResponse)
}

// IsUpstreamConnection checks if an error is an upstream connection error
func IsUpstreamConnection(err error) bool {
	return isType(err, ErrorTypeUpstreamConnection)
}

// IsSamplingFailure checks if an error is a sampling failure
func IsSamplingFailure(err error) bool {
	return isType(err, ErrorTypeSamplingFailure)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return isType(err, ErrorTypeNotFound)
}
