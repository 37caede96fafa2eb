// Package constants centralizes values shared across the client and CLI.
package constants

import "time"

// API endpoints and paths.
const (
	// APIOrigin is the production SmugMug API origin.
	APIOrigin = "https://api.smugmug.com"

	// APIBasePath is the versioned API prefix.
	APIBasePath = "/api/v2"

	// AuthUserPath returns the user owning the access token.
	AuthUserPath = "/api/v2!authuser"
)

// Query parameters applied to every JSON request.
const (
	// VerbosityParam selects the response detail level.
	VerbosityParam = "_verbosity"

	// VerbosityCompact keeps payloads small while retaining Uris.
	VerbosityCompact = "1"

	// APIKeyParam carries the consumer key on unsigned requests.
	APIKeyParam = "APIKey"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// DownloadFilePerm is the permission for downloaded archives.
	DownloadFilePerm = 0644
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// BinaryHTTPTimeout is used for archive downloads.
	BinaryHTTPTimeout = 5 * time.Minute
)

// Retry limits applied when a caller opts in to retries.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// DefaultUserAgent identifies the client on the wire.
const DefaultUserAgent = "smugmug-go/1.0"
