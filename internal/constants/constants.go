package constants

import "time"

// Client identity.
const (
	// ClientName is the product token sent in the User-Agent header.
	ClientName = "coder-go"

	// Version is the SDK version reported in the User-Agent header.
	Version = "0.4.0"
)

// API path and header constants.
const (
	// APIPrefix is the path prefix every API route lives under.
	APIPrefix = "api"

	// HeaderSessionToken carries the API key on every request.
	HeaderSessionToken = "Session-Token"

	// HeaderUserAgent is the standard User-Agent header.
	HeaderUserAgent = "User-Agent"

	// HeaderAccept is the standard Accept header.
	HeaderAccept = "Accept"

	// ContentTypeJSON is the media type requested from the API.
	ContentTypeJSON = "application/json"
)

// Route segments of the management API.
const (
	SegmentUsers        = "users"
	SegmentMe           = "me"
	SegmentOrgs         = "orgs"
	SegmentMembers      = "members"
	SegmentNamespaces   = "namespaces"
	SegmentEnvironments = "environments"
	SegmentImages       = "images"
	SegmentTags         = "tags"
	SegmentRegistries   = "registries"
	SegmentServices     = "services"
)

// Query parameter names.
const (
	// QueryEnvs asks image endpoints to embed the environments using the image.
	QueryEnvs = "envs"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the timeout the CLI applies to each command.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout bounds the credential check made by login.
	ShortHTTPTimeout = 10 * time.Second
)

// Transport limits.
const (
	// MaxIdleConnsPerHost bounds idle keep-alive connections per manager host.
	MaxIdleConnsPerHost = 16
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Format constants.
const (
	// FormatTable renders results with tablewriter.
	FormatTable = "table"

	// FormatJSON represents JSON output format.
	FormatJSON = "json"

	// FormatYAML represents YAML output format.
	FormatYAML = "yaml"

	// FormatConsole is the human readable log format.
	FormatConsole = "console"
)

// UI and display constants.
const (
	// NotAvailable is displayed for missing values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in displayed configuration.
	MaskedSecret = "***"

	// DateFormat is the layout used for dates in tables.
	DateFormat = "2006-01-02"
)
