package coder

import (
	"context"
	"encoding/json"
	"fmt"

	coderhttp "github.com/fivetwenty-io/coder-go/internal/http"
)

// Executor is implemented by every query that points at a fetchable resource.
type Executor[T any] interface {
	Execute(ctx context.Context) (*Response[T], error)
}

// execute runs the one HTTP exchange shared by every query type.
func execute[T any](ctx context.Context, q query) (*Response[T], error) {
	target, err := q.URL()
	if err != nil {
		return nil, err
	}

	resp, err := q.transport.Get(ctx, target)
	if err != nil {
		return nil, err
	}

	return decodeResponse[T](resp)
}

func decodeResponse[T any](resp *coderhttp.Response) (*Response[T], error) {
	result := &Response[T]{
		Headers:    Headers(resp.Headers),
		StatusCode: resp.StatusCode,
	}

	if !resp.IsSuccess() {
		apiErr, err := ParseAPIError(resp.StatusCode, resp.Body)
		if err != nil {
			return nil, err
		}

		result.APIError = apiErr

		return result, nil
	}

	err := validateBody(resp.Body)
	if err == nil {
		err = json.Unmarshal(resp.Body, &result.Value)
	}

	if err == nil {
		err = validateValue(result.Value)
	}

	if err != nil {
		return nil, &DecodeError{
			StatusCode: resp.StatusCode,
			Target:     fmt.Sprintf("%T", result.Value),
			Body:       resp.Body,
			Err:        err,
		}
	}

	return result, nil
}
