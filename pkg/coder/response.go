package coder

import "net/http"

// Headers holds the response headers.
type Headers http.Header

// Get returns the first value for key.
func (h Headers) Get(key string) string {
	return http.Header(h).Get(key)
}

// Values returns all values for key.
func (h Headers) Values(key string) []string {
	return http.Header(h).Values(key)
}

// Response is the result of one executed query. Exactly one of Value and
// APIError is meaningful: APIError is non-nil when the manager answered with a
// non-2xx status.
type Response[T any] struct {
	Headers    Headers
	StatusCode int
	Value      T
	APIError   *APIError
}

// OK reports whether the response carries a decoded value.
func (r *Response[T]) OK() bool {
	return r.APIError == nil
}

// Result returns the decoded value, or the API error as an error.
func (r *Response[T]) Result() (T, error) {
	if r.APIError != nil {
		var zero T

		return zero, r.APIError
	}

	return r.Value, nil
}
