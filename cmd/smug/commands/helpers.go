package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/photoflow-io/smugmug/internal/constants"
	"github.com/photoflow-io/smugmug/pkg/smugclient"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	timeFormat = "2006-01-02 15:04:05"
)

// CreateClient builds an API client from the effective configuration.
func CreateClient() (smugmug.Client, error) {
	stored := loadConfig()

	config := &smugmug.Config{
		APIEndpoint: stored.Endpoint,
		APIKey:      stored.APIKey,
		APISecret:   stored.APISecret,
		AccessToken: stored.AccessToken,
		TokenSecret: stored.TokenSecret,
		Debug:       viper.GetBool("debug"),
	}

	if config.APIKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	if (config.AccessToken == "") != (config.TokenSecret == "") {
		return nil, constants.ErrPartialTokenPair
	}

	if config.Debug {
		config.Logger = NewZerologAdapter()
	}

	client, err := smugclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderStructured writes data as JSON or YAML to stdout. It reports
// whether the configured output format was structured.
func renderStructured(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("failed to encode as JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("failed to encode as YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

// orNotAvailable substitutes a placeholder for empty table cells.
func orNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
