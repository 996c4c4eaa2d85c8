package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for the HTTP transport used to reach
// the remote API. Implementations must not retry failed requests; a failed
// call reports once and immediately.
type HTTPClient interface {
	// Get performs an HTTP GET request with the given headers.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)

	// Post performs an HTTP POST request with the given headers and body.
	Post(ctx context.Context, url string, headers map[string]string, body io.Reader) (Response, error)

	// Put performs an HTTP PUT request with the given headers and body.
	Put(ctx context.Context, url string, headers map[string]string, body io.Reader) (Response, error)

	// Delete performs an HTTP DELETE request with the given headers.
	Delete(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// Response represents an HTTP response from the transport.
type Response interface {
	// StatusCode returns the HTTP status code.
	StatusCode() int

	// Body returns the response body. The caller is responsible for closing it.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	Header(key string) string
}
