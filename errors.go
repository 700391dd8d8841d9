package flatlayer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the SDK. These can be used with errors.Is()
// to check for specific error conditions.
//
// Example:
//
//	entry, err := client.GetEntry(ctx, "posts", "missing", nil)
//	if errors.Is(err, flatlayer.ErrNotFound) {
//	    // Handle missing entry
//	}
var (
	// ErrInvalidConfig is returned when the configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFound is returned when an entry does not exist
	ErrNotFound = errors.New("entry not found")

	// ErrTimeout is returned when a request times out
	ErrTimeout = errors.New("request timeout")

	// ErrServerError is returned for 5xx server errors
	ErrServerError = errors.New("server error")

	// ErrInvalidResponse is returned when the server response cannot be parsed
	ErrInvalidResponse = errors.New("invalid response from server")

	// ErrContextCanceled is returned when the context is canceled before completion
	ErrContextCanceled = errors.New("context canceled")

	// ErrClientClosed is returned when an operation is attempted on a closed client
	ErrClientClosed = errors.New("client is closed")
)

// APIError represents an error response from the Flatlayer API.
// It carries the HTTP status code along with the CMS error payload.
//
// APIError supports errors.Is() against the sentinel errors above, so callers
// can match on the condition without inspecting status codes:
//
//	var apiErr *flatlayer.APIError
//	if errors.As(err, &apiErr) {
//	    log.Printf("status=%d code=%s", apiErr.StatusCode, apiErr.Code)
//	}
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`
	// Message is the human-readable error message from the API
	Message string `json:"error"`
	// Code is the machine-readable error code, if the API provided one
	Code string `json:"code,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// Is maps status-code classes onto the package sentinels so that
// errors.Is(err, ErrNotFound) and errors.Is(err, ErrServerError) work.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrServerError:
		return e.StatusCode >= 500
	}
	return false
}

// IsNotFoundStatus reports whether the error is a 404.
func (e *APIError) IsNotFoundStatus() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError reports whether the error is a 5xx.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsClientError reports whether the error is a 4xx.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// NetworkError represents a transport-level failure: connection refused, DNS
// resolution, a canceled context, and so on. It wraps the underlying error.
type NetworkError struct {
	// Op describes the operation that failed, e.g. "GET /entries/posts"
	Op string
	// Err is the underlying error
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error { return e.Err }

// Is maps context and timeout failures onto the package sentinels.
func (e *NetworkError) Is(target error) bool {
	switch target {
	case ErrTimeout:
		return errors.Is(e.Err, context.DeadlineExceeded)
	case ErrContextCanceled:
		return errors.Is(e.Err, context.Canceled)
	}
	return false
}

// IsNotFound returns true if the error indicates the requested entry
// does not exist.
//
// Example:
//
//	entry, err := client.GetEntry(ctx, "posts", slug, nil)
//	if flatlayer.IsNotFound(err) {
//	    return render404()
//	}
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsServerError returns true if the error was caused by a 5xx response.
func IsServerError(err error) bool {
	return errors.Is(err, ErrServerError)
}

// parseAPIError builds an *APIError from a non-2xx response body. Bodies that
// are not the expected JSON error shape still produce a usable error.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if len(body) > 0 {
		// Best effort: fall back to the status text on a garbled body.
		_ = json.Unmarshal(body, apiErr)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}
	return apiErr
}
