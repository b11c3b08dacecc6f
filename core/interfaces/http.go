package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for outbound HTTP requests.
// The abstraction allows mocking in tests and swapping client implementations.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller must close it.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or "" if absent.
	Header(key string) string
}
