package coder

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fivetwenty-io/coder-go/internal/constants"
	coderhttp "github.com/fivetwenty-io/coder-go/internal/http"
	"github.com/fivetwenty-io/coder-go/internal/request"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the entry point into the query builders. It is immutable after New
// and safe for concurrent use; every entry point starts an independent query.
type Client struct {
	baseURL   *url.URL
	transport *coderhttp.Client
}

type options struct {
	httpClient *http.Client
	userAgent  string
	logger     Logger
	debug      bool
	timeout    time.Duration
	headers    map[string]string
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient sets the http.Client requests are sent with. By default a
// pooled client is created for each Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithUserAgent overrides the default "coder-go <version>" User-Agent.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDebug enables HTTP request/response logging through the Logger.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithTimeout bounds every request. No timeout is applied by default; callers
// usually control deadlines through the context passed to Execute.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(o *options) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}

		o.headers[key] = value
	}
}

// New creates a client for the manager at baseURL, authenticating with the
// session token.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	parsed, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	config := &options{}
	for _, opt := range opts {
		opt(config)
	}

	client := &Client{
		baseURL:   parsed,
		transport: coderhttp.NewClient(createHTTPClientOptions(token, config)...),
	}

	return client, nil
}

// createHTTPClientOptions builds transport options from the client options.
func createHTTPClientOptions(token string, config *options) []coderhttp.Option {
	httpOpts := []coderhttp.Option{coderhttp.WithSessionToken(token)}

	if config.httpClient != nil {
		httpOpts = append(httpOpts, coderhttp.WithHTTPClient(config.httpClient))
	}

	if config.userAgent != "" {
		httpOpts = append(httpOpts, coderhttp.WithUserAgent(config.userAgent))
	}

	if config.logger != nil {
		httpOpts = append(httpOpts, coderhttp.WithLogger(&loggerAdapter{logger: config.logger}))
	}

	if config.debug {
		httpOpts = append(httpOpts, coderhttp.WithDebug(true))
	}

	if config.timeout > 0 {
		httpOpts = append(httpOpts, coderhttp.WithTimeout(config.timeout))
	}

	for key, value := range config.headers {
		httpOpts = append(httpOpts, coderhttp.WithHeader(key, value))
	}

	return httpOpts
}

func parseBaseURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q in %q", ErrInvalidURL, parsed.Scheme, raw)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: no host in %q", ErrInvalidURL, raw)
	}

	parsed.Fragment = ""
	parsed.RawFragment = ""

	return parsed, nil
}

// BaseURL returns the manager URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// newQuery starts a query at /api followed by segments.
func (c *Client) newQuery(segments ...string) query {
	return query{
		state:     request.New(c.baseURL, constants.APIPrefix).Append(segments...),
		transport: c.transport,
	}
}

// Get starts a query from the API root.
func (c *Client) Get() GetQuery {
	return GetQuery{c.newQuery()}
}

// Users begins a user query.
func (c *Client) Users() UsersQuery {
	return UsersQuery{c.newQuery(constants.SegmentUsers)}
}

// Orgs begins an organization query.
func (c *Client) Orgs() OrgsQuery {
	return OrgsQuery{c.newQuery(constants.SegmentOrgs)}
}

// Environments begins an environment query.
func (c *Client) Environments() GlobalEnvsQuery {
	return GlobalEnvsQuery{c.newQuery(constants.SegmentEnvironments)}
}

// Images begins a global image query.
func (c *Client) Images() ImagesQuery {
	return ImagesQuery{c.newQuery(constants.SegmentImages)}
}

// Registries begins a global registry query.
func (c *Client) Registries() RegistriesQuery {
	return RegistriesQuery{c.newQuery(constants.SegmentRegistries)}
}

// loggerAdapter adapts Logger to the transport logger.
type loggerAdapter struct {
	logger Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
