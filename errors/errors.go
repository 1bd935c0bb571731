package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the single error type returned by the request pipeline.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message is a human-readable description.
	Message string
	// StatusCode is the HTTP status for remote errors, 0 otherwise.
	StatusCode int
	// Data is the deserialized response body for remote errors.
	Data any
	// Body is the raw response body for remote errors.
	Body []byte
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// New creates an Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Configuration creates a configuration error.
func Configuration(format string, args ...any) *Error {
	return New(ErrCodeConfiguration, fmt.Sprintf(format, args...))
}

// InvalidRequestMethod creates an error for a verb with no registered handler.
func InvalidRequestMethod(method string) *Error {
	return New(ErrCodeInvalidRequestMethod, fmt.Sprintf("invalid request method '%s' or not implemented", method))
}

// InvalidRequest creates an error for a request that cannot be sent as given.
func InvalidRequest(format string, args ...any) *Error {
	return New(ErrCodeInvalidRequest, fmt.Sprintf(format, args...))
}

// Transport creates an error for a failure while configuring the transport.
func Transport(message string, cause error) *Error {
	return New(ErrCodeTransport, message).WithCause(cause)
}

// Connection creates an error for a low-level transport failure.
func Connection(cause error) *Error {
	msg := "connection error"
	if cause != nil {
		msg = "Connection Error: " + cause.Error()
	}
	return &Error{Code: ErrCodeConnection, Message: msg, Cause: cause}
}

// ClientError creates an error for a 4xx response.
func ClientError(statusCode int, data any, body []byte) *Error {
	return &Error{
		Code:       ErrCodeClient,
		Message:    fmt.Sprintf("%d Client Exception: %s", statusCode, body),
		StatusCode: statusCode,
		Data:       data,
		Body:       body,
	}
}

// ServerError creates an error for a 5xx response.
func ServerError(statusCode int, data any, body []byte) *Error {
	return &Error{
		Code:       ErrCodeServer,
		Message:    fmt.Sprintf("%d Server Exception: %s", statusCode, body),
		StatusCode: statusCode,
		Data:       data,
		Body:       body,
	}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.Code
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	if e, ok := As(err); ok {
		return e.StatusCode
	}
	return 0
}

// IsConfiguration checks if err is a configuration error.
func IsConfiguration(err error) bool { return CodeOf(err) == ErrCodeConfiguration }

// IsInvalidRequestMethod checks if err is an invalid request method error.
func IsInvalidRequestMethod(err error) bool { return CodeOf(err) == ErrCodeInvalidRequestMethod }

// IsInvalidRequest checks if err is an invalid request error.
func IsInvalidRequest(err error) bool { return CodeOf(err) == ErrCodeInvalidRequest }

// IsTransport checks if err is a transport configuration error.
func IsTransport(err error) bool { return CodeOf(err) == ErrCodeTransport }

// IsConnection checks if err is a connection error.
func IsConnection(err error) bool { return CodeOf(err) == ErrCodeConnection }

// IsClientError checks if err is a 4xx error.
func IsClientError(err error) bool { return CodeOf(err) == ErrCodeClient }

// IsServerError checks if err is a 5xx error.
func IsServerError(err error) bool { return CodeOf(err) == ErrCodeServer }
