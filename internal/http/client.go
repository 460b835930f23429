// Package http is the transport shared by every query built from one client.
//
// It wraps a go-retryablehttp client pinned to a single attempt: the management
// API is read-only and callers own any retry policy. Non-2xx responses are not
// errors at this layer; the caller decides how to decode them.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/coder-go/internal/constants"
)

// Logger is the structured logger used for debug output.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client issues GET requests with the headers every API call carries.
type Client struct {
	httpClient *retryablehttp.Client
	headers    http.Header
	logger     Logger
	debug      bool
	timeout    time.Duration
}

// Request is a single GET request.
type Request struct {
	URL     *url.URL
	Headers map[string]string
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used when debug output is enabled.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.headers.Set(constants.HeaderUserAgent, userAgent)
	}
}

// WithSessionToken sets the Session-Token header sent on every request.
func WithSessionToken(token string) Option {
	return func(c *Client) {
		c.headers.Set(constants.HeaderSessionToken, token)
	}
}

// WithHeader sets an additional header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithHTTPClient replaces the pooled http.Client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithTimeout bounds each request, including reading the body.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient creates a transport client. The underlying connection pool is
// shared by every request made through it.
func NewClient(opts ...Option) *Client {
	pooled := cleanhttp.DefaultPooledClient()
	if transport, ok := pooled.Transport.(*http.Transport); ok {
		transport.MaxIdleConnsPerHost = constants.MaxIdleConnsPerHost
	}

	// retryablehttp calls CloseIdleConnections after every failed attempt.
	// Hiding it keeps one failing request from emptying the pool that every
	// concurrent query shares.
	pooled.Transport = sharedPool{pooled.Transport}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = pooled
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		httpClient: retryClient,
		headers:    make(http.Header),
	}

	client.headers.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	client.headers.Set(constants.HeaderUserAgent, DefaultUserAgent())

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient.RequestLogHook = client.logRequest
	client.httpClient.ResponseLogHook = client.logResponse

	return client
}

// sharedPool exposes only RoundTrip, so http.Client.CloseIdleConnections is a
// no-op for the pooled transport.
type sharedPool struct {
	http.RoundTripper
}

// DefaultUserAgent returns "coder-go <version>".
func DefaultUserAgent() string {
	return constants.ClientName + " " + constants.Version
}

// Headers returns a copy of the headers sent on every request.
func (c *Client) Headers() http.Header {
	return c.headers.Clone()
}

// Get issues a GET request for u.
func (c *Client) Get(ctx context.Context, u *url.URL) (*Response, error) {
	return c.Do(ctx, &Request{URL: u})
}

// Do issues exactly one GET request and reads the whole response body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, req.URL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", constants.ErrTransport, err)
	}

	for key, values := range c.headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}

		return nil, fmt.Errorf("%w: GET %s: %w", constants.ErrTransport, redact(req.URL), err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", constants.ErrTransport, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
		Duration:   time.Since(start),
	}, nil
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     redact(req.URL),
		"attempt": attempt + 1,
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status":         resp.StatusCode,
		"content_type":   resp.Header.Get("Content-Type"),
		"content_length": resp.ContentLength,
	})
}

// neverRetry stops after the first attempt. Context errors take precedence so
// callers see cancellation rather than a generic transport failure.
func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

func redact(u *url.URL) string {
	if u == nil {
		return ""
	}

	return u.Redacted()
}
