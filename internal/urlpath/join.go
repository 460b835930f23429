// Package urlpath composes request URLs from a base URL, path segments and
// ordered query pairs.
package urlpath

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fivetwenty-io/coder-go/internal/constants"
)

// Pair is a single query parameter. Order of pairs is preserved when encoding.
type Pair struct {
	Key   string
	Value string
}

// Join returns a copy of base whose path has each segment appended with exactly
// one "/" between segments. base is never modified.
func Join(base *url.URL, segments ...string) (*url.URL, error) {
	joined := *base

	if len(segments) == 0 {
		return &joined, nil
	}

	for _, segment := range segments {
		err := ValidateSegment(segment)
		if err != nil {
			return nil, err
		}
	}

	joined.Path = JoinPath(base.Path, segments...)
	joined.RawPath = ""

	// Round-trip through the parser so anything the url package cannot
	// re-read surfaces here rather than at request time.
	parsed, err := url.Parse(joined.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrURLComposition, err)
	}

	return parsed, nil
}

// JoinPath appends segments to path with exactly one separator between each.
func JoinPath(path string, segments ...string) string {
	var builder strings.Builder

	size := len(path) + len(segments)
	for _, segment := range segments {
		size += len(segment)
	}

	builder.Grow(size)
	builder.WriteString(path)

	current := path
	for _, segment := range segments {
		if !strings.HasSuffix(current, "/") {
			builder.WriteByte('/')
		}

		builder.WriteString(segment)
		current = segment
	}

	return builder.String()
}

// ValidateSegment reports whether segment can be placed in a request path as
// exactly one segment. Separators and dot segments are rejected so that an ID
// can never move the request to a different route.
func ValidateSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("%w: %w", constants.ErrURLComposition, constants.ErrEmptySegment)
	}

	if strings.Contains(segment, "/") {
		return fmt.Errorf("%w: %w: %q", constants.ErrURLComposition, constants.ErrSegmentSeparator, segment)
	}

	if segment == "." || segment == ".." {
		return fmt.Errorf("%w: %w: %q", constants.ErrURLComposition, constants.ErrDotSegment, segment)
	}

	if !utf8.ValidString(segment) {
		return fmt.Errorf("%w: %w: %q", constants.ErrURLComposition, constants.ErrInvalidUTF8, segment)
	}

	for _, r := range segment {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: %w: %q", constants.ErrURLComposition, constants.ErrControlCharacter, segment)
		}
	}

	return nil
}

// Encode returns a copy of base with pairs appended to its query string in order.
// Query parameters already present on base are kept and come first.
func Encode(base *url.URL, pairs []Pair) *url.URL {
	encoded := *base

	if len(pairs) == 0 {
		return &encoded
	}

	var builder strings.Builder

	builder.WriteString(base.RawQuery)

	for _, pair := range pairs {
		if builder.Len() > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value))
	}

	encoded.RawQuery = builder.String()

	return &encoded
}
