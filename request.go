// ABOUTME: Request executor for the RSS Reader client
// ABOUTME: Builds the HTTP call, applies auth headers and translates failures

package rssreader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/burakozcn01/rssreader-client/core/interfaces"
)

// request performs one call against <base>/api/<endpoint> and returns the
// raw response body of a 2xx response. Non-2xx statuses and transport
// failures are translated into the error taxonomy; the executor itself is
// stateless and safe for concurrent use.
func (c *Client) request(ctx context.Context, method, endpoint string, query url.Values, body interface{}) (json.RawMessage, error) {
	target := c.apiURL + "/" + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	c.config.Logger.Debug("api request", map[string]interface{}{
		"method":   method,
		"endpoint": endpoint,
	})

	var resp interfaces.Response
	var err error
	switch method {
	case http.MethodGet:
		resp, err = c.config.HTTPClient.Get(ctx, target, c.headers)
	case http.MethodPost:
		var payload io.Reader
		if payload, err = encodeBody(body); err != nil {
			return nil, err
		}
		resp, err = c.config.HTTPClient.Post(ctx, target, c.headers, payload)
	case http.MethodPut:
		var payload io.Reader
		if payload, err = encodeBody(body); err != nil {
			return nil, err
		}
		resp, err = c.config.HTTPClient.Put(ctx, target, c.headers, payload)
	case http.MethodDelete:
		resp, err = c.config.HTTPClient.Delete(ctx, target, c.headers)
	default:
		return nil, &Error{Message: fmt.Sprintf("unsupported HTTP method: %s", method)}
	}
	if err != nil {
		return nil, &ConnectionError{
			Message: fmt.Sprintf("connection error: %v", err),
			Cause:   err,
		}
	}
	defer resp.Body().Close()

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &ConnectionError{
			Message: fmt.Sprintf("connection error: %v", err),
			Cause:   err,
		}
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		c.config.Logger.Debug("api request failed", map[string]interface{}{
			"endpoint": endpoint,
			"status":   status,
		})
		return nil, statusError(status, raw)
	}

	return json.RawMessage(raw), nil
}

// encodeBody marshals a request body to JSON. A marshal failure is caller
// misuse, not a remote-communication error.
func encodeBody(body interface{}) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("encode request body: %v", err)}
	}
	return bytes.NewReader(payload), nil
}

// statusError translates a non-2xx response into the taxonomy, extracting
// the message from the body's "error" field when present
func statusError(status int, body []byte) error {
	msg := errorMessage(body)

	if status == http.StatusUnauthorized {
		if msg == "" {
			msg = defaultAuthMessage
		}
		return &AuthenticationError{Message: msg}
	}

	if msg == "" {
		msg = apiErrorMessage(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

// errorMessage extracts the "error" field from a JSON error body,
// best-effort. Non-JSON bodies and bodies without the field yield "".
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}

// decode unmarshals a 2xx response body, wrapping failures as DecodeError
func decode(raw json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &DecodeError{
			Message: fmt.Sprintf("malformed response body: %v", err),
			Cause:   err,
		}
	}
	return nil
}
