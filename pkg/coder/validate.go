package coder

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	errNullBody   = errors.New("body is null")
	errMissingKey = errors.New("missing identifying field")
)

// identified is implemented by every model returned at the top level of a
// response. A decoded document without its key is not the requested resource.
type identified interface {
	validate() error
}

func (u User) validate() error         { return requireKey("id", u.ID) }
func (o Organization) validate() error { return requireKey("id", o.ID) }
func (e Environment) validate() error  { return requireKey("id", e.ID) }
func (i Image) validate() error        { return requireKey("id", i.ID) }
func (r Registry) validate() error     { return requireKey("id", r.ID) }
func (t ImageTag) validate() error     { return requireKey("tag", t.Tag) }
func (s Service) validate() error      { return requireKey("id", s.ID) }

func requireKey(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w %q", errMissingKey, name)
	}

	return nil
}

// validateBody rejects a top-level null, which encoding/json would otherwise
// accept for any struct or slice.
func validateBody(body []byte) error {
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return errNullBody
	}

	return nil
}

// validateValue checks the identifying field of a decoded model or of every
// element of a decoded list.
func validateValue(value any) error {
	switch v := value.(type) {
	case identified:
		return v.validate()
	case []User:
		return validateAll(v)
	case []OrgMember:
		return validateAll(v)
	case []Organization:
		return validateAll(v)
	case []Environment:
		return validateAll(v)
	case []Image:
		return validateAll(v)
	case []Registry:
		return validateAll(v)
	case []ImageTag:
		return validateAll(v)
	case []Service:
		return validateAll(v)
	}

	return nil
}

func validateAll[T identified](items []T) error {
	for i, item := range items {
		err := item.validate()
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}
