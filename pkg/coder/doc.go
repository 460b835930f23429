// Package coder provides a typed, read-only client for the Coder management
// API.
//
// # Overview
//
// Requests are described by navigating a fixed graph of query types. Each
// query type corresponds to one route family of the API, and only the
// navigation steps that produce a valid route exist as methods, so an invalid
// route does not compile. Query types that name a fetchable resource implement
// Executor and decode the response into the matching model type.
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/coder-go/pkg/coder"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := coder.New("https://coder.example.com", token)
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Orgs().Get("default").Member(userID).Execute(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  member, err := resp.Result()
//	  if err != nil { log.Fatal(err) }
//	  _ = member.Username
//	}
//
// # Responses and errors
//
// Execute returns a Go error only when no usable response exists: the route
// could not be composed (ErrURLComposition), the request did not complete
// (ErrTransport), or the body could not be decoded (ErrDecode, as a
// *DecodeError). A non-2xx status with a well-formed body is returned as a
// Response whose APIError is set; Result converts it into an error.
//
// # Value semantics
//
// Every navigation step returns a new query and leaves its receiver
// untouched. A query can therefore be kept and branched from:
//
//	org := cli.Orgs().Get("default")
//	members := org.Members()
//	envs := org.Envs()
//
// A Client is safe for concurrent use. Individual queries are values and
// may be executed from any goroutine.
package coder
