package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the root of the public SpaceTraders v2 API.
	DefaultBaseURL = "https://api.spacetraders.io/v2"

	// DefaultUserAgent identifies this client.
	DefaultUserAgent = "spacetraders-go/" + Version

	// Version of the client library and CLI.
	Version = "0.4.0"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as the status check.
	ShortHTTPTimeout = 10 * time.Second
)

// Pagination limits accepted by the server.
const (
	// MaxPageLimit is the largest page the server returns.
	MaxPageLimit = 20
)

// Format constants.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Command argument counts.
const (
	ExactlyOneArg   = 1
	ExactlyTwoArgs  = 2
	ExactlyFourArgs = 4
)

// Display limits.
const (
	// TruncateDescription caps long descriptions in tables.
	TruncateDescription = 60
)
