// Package request holds the state of a request under construction.
//
// A State is threaded through one builder chain. Navigation appends path
// segments and sets query parameters; the final URL is composed once, when the
// request is executed. The first failure poisons the state: every later call
// is a no-op and the failure is reported by URL and Err.
package request

import (
	"net/url"
	"slices"

	"github.com/fivetwenty-io/coder-go/internal/urlpath"
)

// State is a request under construction. It is not safe for concurrent use.
type State struct {
	base     *url.URL
	segments []string
	query    []urlpath.Pair
	err      error
}

// New creates a state rooted at base with the given initial segments.
func New(base *url.URL, segments ...string) *State {
	copied := *base

	state := &State{base: &copied}

	return state.Append(segments...)
}

// Fail creates a state that is already poisoned with err.
func Fail(err error) *State {
	return &State{err: err}
}

// Append adds path segments. Segments are validated immediately so that the
// state fails at the navigation step that introduced the bad segment.
func (s *State) Append(segments ...string) *State {
	if s.err != nil {
		return s
	}

	for _, segment := range segments {
		err := urlpath.ValidateSegment(segment)
		if err != nil {
			s.err = err

			return s
		}
	}

	s.segments = append(s.segments, segments...)

	return s
}

// Set sets a query parameter. A repeated key keeps its original position and
// takes the new value.
func (s *State) Set(key, value string) *State {
	if s.err != nil {
		return s
	}

	for i := range s.query {
		if s.query[i].Key == key {
			s.query[i].Value = value

			return s
		}
	}

	s.query = append(s.query, urlpath.Pair{Key: key, Value: value})

	return s
}

// Err returns the failure carried by the state, if any.
func (s *State) Err() error {
	return s.err
}

// Path returns the base path joined with every appended segment.
func (s *State) Path() string {
	if s.base == nil {
		return ""
	}

	return urlpath.JoinPath(s.base.Path, s.segments...)
}

// Segments returns a copy of the appended segments.
func (s *State) Segments() []string {
	return slices.Clone(s.segments)
}

// Query returns a copy of the query pairs in insertion order.
func (s *State) Query() []urlpath.Pair {
	return slices.Clone(s.query)
}

// URL composes the final request URL.
func (s *State) URL() (*url.URL, error) {
	if s.err != nil {
		return nil, s.err
	}

	joined, err := urlpath.Join(s.base, s.segments...)
	if err != nil {
		s.err = err

		return nil, err
	}

	return urlpath.Encode(joined, s.query), nil
}

// Clone returns an independent copy of the state, used to fork a chain.
func (s *State) Clone() *State {
	clone := &State{
		segments: slices.Clone(s.segments),
		query:    slices.Clone(s.query),
		err:      s.err,
	}

	if s.base != nil {
		base := *s.base
		clone.base = &base
	}

	return clone
}
