// Package smugclient provides the main entry point for creating SmugMug API clients
package smugclient

import (
	"fmt"
	"strings"

	"github.com/photoflow-io/smugmug/internal/client"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

// New creates a new SmugMug API client from the given configuration.
func New(config *smugmug.Config) (smugmug.Client, error) {
	if config == nil {
		return nil, smugmug.ErrConfigRequired
	}

	if config.APIEndpoint != "" {
		// Normalize the API endpoint
		endpoint := strings.TrimSuffix(config.APIEndpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.APIEndpoint = endpoint
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates an unsigned client from a consumer key alone.
// It can only reach endpoints that accept key-only access.
func NewWithAPIKey(apiKey string) (smugmug.Client, error) {
	return New(&smugmug.Config{
		APIKey: apiKey,
	})
}

// NewWithTokens creates a fully signed client from a complete OAuth
// credential tuple.
func NewWithTokens(apiKey, apiSecret, accessToken, tokenSecret string) (smugmug.Client, error) {
	return New(&smugmug.Config{
		APIKey:      apiKey,
		APISecret:   apiSecret,
		AccessToken: accessToken,
		TokenSecret: tokenSecret,
	})
}
