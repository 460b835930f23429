package coder

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/coder-go/internal/constants"
)

// Execution failures. Application level errors are not among them: a non-2xx
// response with a JSON body is returned as Response.APIError.
var (
	// ErrInvalidURL is returned by New when the base URL cannot be used.
	ErrInvalidURL = constants.ErrInvalidURL
	// ErrURLComposition is carried by a query whose path could not be composed.
	// Execute returns it without making a network call.
	ErrURLComposition = constants.ErrURLComposition
	// ErrTransport wraps connection, protocol and context failures.
	ErrTransport = constants.ErrTransport
	// ErrDecode matches every *DecodeError.
	ErrDecode = constants.ErrDecode
)

// ErrUninitializedQuery poisons a query that was not created from a Client.
var ErrUninitializedQuery = fmt.Errorf("%w: query was not created from a client", ErrURLComposition)

var errInvalidJSON = errors.New("body is not valid JSON")

// APIError is the error document returned by the manager with a non-2xx status.
//
// The manager answers with {"error": {"msg": ..., "code": ..., "details": ...}}.
// Older versions and proxies may send other shapes, so Raw always holds the
// complete document and Message is filled from whatever field is present.
type APIError struct {
	StatusCode int             `json:"-"                 yaml:"status_code"`
	Message    string          `json:"msg"               yaml:"msg"`
	Code       string          `json:"code,omitempty"    yaml:"code,omitempty"`
	Details    json.RawMessage `json:"details,omitempty" yaml:"-"`
	Raw        json.RawMessage `json:"-"                 yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = strings.TrimSpace(string(e.Raw))
	}

	if e.Code != "" {
		return fmt.Sprintf("coder api error (status %d, code %s): %s", e.StatusCode, e.Code, message)
	}

	return fmt.Sprintf("coder api error (status %d): %s", e.StatusCode, message)
}

// DecodeError reports a response body that is not valid JSON or does not match
// the expected shape.
type DecodeError struct {
	StatusCode int
	Target     string
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response body (status %d) into %s: %v", e.StatusCode, e.Target, e.Err)
}

// Unwrap returns the underlying JSON error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// IsNotFound checks if the error is an API error with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an API error with status 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an API error with status 403.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr.StatusCode == status
	}

	return false
}

// ParseAPIError decodes an error document. It fails only when body is not JSON.
func ParseAPIError(statusCode int, body []byte) (*APIError, error) {
	if !json.Valid(body) {
		return nil, &DecodeError{
			StatusCode: statusCode,
			Target:     "coder.APIError",
			Body:       body,
			Err:        errInvalidJSON,
		}
	}

	apiErr := &APIError{
		StatusCode: statusCode,
		Raw:        json.RawMessage(body),
	}

	var document map[string]json.RawMessage

	err := json.Unmarshal(body, &document)
	if err != nil {
		// Not an object: keep the raw value and use a bare string as message.
		var message string
		if json.Unmarshal(body, &message) == nil {
			apiErr.Message = message
		}

		return apiErr, nil
	}

	if inner, ok := document["error"]; ok {
		var nested map[string]json.RawMessage
		if json.Unmarshal(inner, &nested) == nil {
			fillAPIError(apiErr, nested)

			return apiErr, nil
		}

		var message string
		if json.Unmarshal(inner, &message) == nil {
			apiErr.Message = message
		}

		return apiErr, nil
	}

	fillAPIError(apiErr, document)

	return apiErr, nil
}

func fillAPIError(apiErr *APIError, fields map[string]json.RawMessage) {
	for _, key := range []string{"msg", "message", "detail"} {
		if raw, ok := fields[key]; ok {
			var message string
			if json.Unmarshal(raw, &message) == nil && message != "" {
				apiErr.Message = message

				break
			}
		}
	}

	if raw, ok := fields["code"]; ok {
		var code string
		if json.Unmarshal(raw, &code) == nil {
			apiErr.Code = code
		} else {
			apiErr.Code = strings.TrimSpace(string(raw))
		}
	}

	if raw, ok := fields["details"]; ok && string(raw) != "null" {
		apiErr.Details = raw
	}
}
