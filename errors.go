// ABOUTME: Error types for the RSS Reader client library
// ABOUTME: Provides a small typed taxonomy distinguishable at the call site

package rssreader

import (
	"errors"
	"fmt"
)

// Error is the base error type for the client. It is never returned by a
// normal remote operation, only for misuse such as an unsupported HTTP
// method or invalid configuration.
type Error struct {
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// AuthenticationError is returned when the API rejects the request with
// HTTP 401.
type AuthenticationError struct {
	Message string
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return e.Message
}

// APIError is returned for any other non-2xx HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// ConnectionError is returned when no HTTP response was obtained at all
// (DNS failure, refused connection, timeout, TLS failure).
type ConnectionError struct {
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport error
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// DecodeError is returned when a successful (2xx) response body cannot be
// decoded into the expected shape.
type DecodeError struct {
	Message string
	Cause   error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return e.Message
}

// Unwrap returns the underlying decode error
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Default message for 401 responses without a usable error body.
const defaultAuthMessage = "Invalid API key or authentication required"

// apiErrorMessage is the fallback message for non-2xx responses without a
// usable error body.
func apiErrorMessage(statusCode int) string {
	return fmt.Sprintf("API Error (Status code: %d)", statusCode)
}

// IsAuthenticationError checks if an error is an AuthenticationError
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAPIError checks if an error is an APIError
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsConnectionError checks if an error is a ConnectionError
func IsConnectionError(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

// IsDecodeError checks if an error is a DecodeError
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}
