package coder

import (
	"net/url"
	"strconv"

	coderhttp "github.com/fivetwenty-io/coder-go/internal/http"
	"github.com/fivetwenty-io/coder-go/internal/request"
)

// query is the state shared by every node of the builder graph. Each
// navigation step copies the state before changing it, so a node stays valid
// after it has been navigated from and two chains never share a request.
type query struct {
	state     *request.State
	transport *coderhttp.Client
}

func (q query) current() *request.State {
	if q.state == nil {
		return request.Fail(ErrUninitializedQuery)
	}

	return q.state
}

// step appends segments and returns the next node's query.
func (q query) step(segments ...string) query {
	return query{
		state:     q.current().Clone().Append(segments...),
		transport: q.transport,
	}
}

// with sets a query parameter and returns the same node's query.
func (q query) with(key, value string) query {
	return query{
		state:     q.current().Clone().Set(key, value),
		transport: q.transport,
	}
}

func (q query) withBool(key string, value bool) query {
	return q.with(key, strconv.FormatBool(value))
}

// Path returns the request path composed so far.
func (q query) Path() string {
	return q.current().Path()
}

// URL returns the URL the query would request, or the composition failure
// the query carries.
func (q query) URL() (*url.URL, error) {
	return q.current().Clone().URL()
}

// Err returns the composition failure carried by the query, if any.
func (q query) Err() error {
	return q.current().Err()
}
