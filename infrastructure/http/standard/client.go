// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Performs single-attempt requests against the remote API

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/burakozcn01/rssreader-client/core/interfaces"
)

// StandardHTTPClient implements the HTTPClient interface using the standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodGet, url, headers, nil)
}

// Post performs an HTTP POST request
func (c *StandardHTTPClient) Post(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
	return c.do(ctx, http.MethodPost, url, headers, body)
}

// Put performs an HTTP PUT request
func (c *StandardHTTPClient) Put(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
	return c.do(ctx, http.MethodPut, url, headers, body)
}

// Delete performs an HTTP DELETE request
func (c *StandardHTTPClient) Delete(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodDelete, url, headers, nil)
}

// do performs a single request attempt. Failed requests are never retried.
func (c *StandardHTTPClient) do(ctx context.Context, method, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
