package rssreader

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsAuthenticationError(t *testing.T) {
	err := &AuthenticationError{Message: "bad key"}

	if !IsAuthenticationError(err) {
		t.Error("IsAuthenticationError = false, want true")
	}
	if IsAPIError(err) {
		t.Error("IsAPIError = true, want false")
	}
	if IsConnectionError(err) {
		t.Error("IsConnectionError = true, want false")
	}
	if err.Error() != "bad key" {
		t.Errorf("Error() = %s, want bad key", err.Error())
	}
}

func TestIsAPIError(t *testing.T) {
	err := &APIError{StatusCode: 500, Message: "API Error (Status code: 500)"}

	if !IsAPIError(err) {
		t.Error("IsAPIError = false, want true")
	}
	if IsAuthenticationError(err) {
		t.Error("IsAuthenticationError = true, want false")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As failed for APIError")
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
}

func TestIsConnectionError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &ConnectionError{Message: "connection error: dial tcp: connection refused", Cause: cause}

	if !IsConnectionError(err) {
		t.Error("IsConnectionError = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIsDecodeError_Unwrap(t *testing.T) {
	cause := errors.New("invalid character '<'")
	err := &DecodeError{Message: "malformed response body", Cause: cause}

	if !IsDecodeError(err) {
		t.Error("IsDecodeError = false, want true")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap = %v, want %v", errors.Unwrap(err), cause)
	}
}

func TestPredicates_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("listing entries: %w", &APIError{StatusCode: 404, Message: "not found"})

	if !IsAPIError(wrapped) {
		t.Error("IsAPIError on wrapped error = false, want true")
	}
	if IsAuthenticationError(wrapped) {
		t.Error("IsAuthenticationError on wrapped error = true, want false")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	got := apiErrorMessage(503)
	want := "API Error (Status code: 503)"
	if got != want {
		t.Errorf("apiErrorMessage(503) = %q, want %q", got, want)
	}
}
