package constants

import "errors"

// Request errors shared by the transport, the request state and the public package.
var (
	ErrInvalidURL     = errors.New("invalid base url")
	ErrURLComposition = errors.New("url composition failed")
	ErrTransport      = errors.New("transport failure")
	ErrDecode         = errors.New("decoding response body failed")
)

// Path segment validation errors.
var (
	ErrEmptySegment     = errors.New("empty path segment")
	ErrSegmentSeparator = errors.New("path segment contains a separator")
	ErrDotSegment       = errors.New("path segment is a dot segment")
	ErrInvalidUTF8      = errors.New("path segment is not valid UTF-8")
	ErrControlCharacter = errors.New("path segment contains a control character")
)

// Configuration errors.
var (
	ErrManagerURLRequired = errors.New("manager URL is required, set url in config or MANAGER_URL")
	ErrTokenRequired      = errors.New("session token is required, set token in config or API_KEY")
	ErrInvalidLogLevel    = errors.New("invalid logging level")
	ErrInvalidLogFormat   = errors.New("invalid logging format")
	ErrInvalidOutput      = errors.New("invalid output format")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
)
