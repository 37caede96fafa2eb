package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'smug config set api_key <key>' to set one")
	ErrPartialTokenPair   = errors.New("access token and token secret must be configured together")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrSecretFromTerminal = errors.New("secret values must be entered interactively, use 'smug config set-secret'")
)

// File system errors.
var (
	ErrOutputPathRequired         = errors.New("output path is required")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
)
