package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/photoflow-io/smugmug/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// CLIConfig is the on-disk shape of ~/.smugmug/config.yml.
type CLIConfig struct {
	Endpoint    string `yaml:"endpoint,omitempty"`
	APIKey      string `yaml:"api_key,omitempty"`
	APISecret   string `yaml:"api_secret,omitempty"`
	AccessToken string `yaml:"access_token,omitempty"`
	TokenSecret string `yaml:"token_secret,omitempty"`
}

// secretKeys are config keys whose values are masked on display and
// should be entered without echo.
var secretKeys = map[string]bool{
	"api_secret":   true,
	"token_secret": true,
}

var settableKeys = []string{"endpoint", "api_key", "api_secret", "access_token", "token_secret"}

// configMutex serializes read-modify-write cycles on the config file.
var configMutex sync.Mutex

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and update the stored SmugMug credentials and endpoint",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetSecretCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the effective configuration",
		Long:  "Show the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			display := *config
			if display.APISecret != "" {
				display.APISecret = "***"
			}

			if display.TokenSecret != "" {
				display.TokenSecret = "***"
			}

			structured, err := renderStructured(display)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value")
			_ = table.Append("endpoint", orNotAvailable(display.Endpoint))
			_ = table.Append("api_key", orNotAvailable(display.APIKey))
			_ = table.Append("api_secret", orNotAvailable(display.APISecret))
			_ = table.Append("access_token", orNotAvailable(display.AccessToken))
			_ = table.Append("token_secret", orNotAvailable(display.TokenSecret))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  fmt.Sprintf("Set one of: %v", settableKeys),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			err := setConfigValue(key, value)
			if err != nil {
				return err
			}

			if secretKeys[key] {
				fmt.Fprintf(os.Stdout, "Set %s (consider 'config set-secret %s' to avoid shell history)\n", key, key)
			} else {
				fmt.Fprintf(os.Stdout, "Set %s to %s\n", key, value)
			}

			return nil
		},
	}
}

func newConfigSetSecretCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-secret KEY",
		Short: "Set a configuration value without echoing it",
		Long:  "Prompt for a value with terminal echo disabled and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if !term.IsTerminal(int(syscall.Stdin)) {
				return constants.ErrSecretFromTerminal
			}

			fmt.Fprintf(os.Stderr, "Value for %s: ", key)

			value, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Fprintln(os.Stderr)

			if err != nil {
				return fmt.Errorf("reading secret: %w", err)
			}

			err = setConfigValue(key, string(value))
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Set %s\n", key)

			return nil
		},
	}
}

func setConfigValue(key, value string) error {
	configMutex.Lock()
	defer configMutex.Unlock()

	config := loadConfig()

	switch key {
	case "endpoint":
		config.Endpoint = value
	case "api_key":
		config.APIKey = value
	case "api_secret":
		config.APISecret = value
	case "access_token":
		config.AccessToken = value
	case "token_secret":
		config.TokenSecret = value
	default:
		return fmt.Errorf("%q: %w", key, constants.ErrUnknownConfigKey)
	}

	return saveConfigStruct(config)
}

// loadConfig reads the persisted config, falling back to whatever viper
// already resolved from flags and environment.
func loadConfig() *CLIConfig {
	config := &CLIConfig{
		Endpoint:    viper.GetString("endpoint"),
		APIKey:      viper.GetString("api_key"),
		APISecret:   viper.GetString("api_secret"),
		AccessToken: viper.GetString("access_token"),
		TokenSecret: viper.GetString("token_secret"),
	}

	data, err := os.ReadFile(configFilePath())
	if err != nil {
		return config
	}

	var stored CLIConfig
	if yaml.Unmarshal(data, &stored) != nil {
		return config
	}

	if stored.Endpoint != "" {
		config.Endpoint = stored.Endpoint
	}

	if stored.APIKey != "" {
		config.APIKey = stored.APIKey
	}

	if stored.APISecret != "" {
		config.APISecret = stored.APISecret
	}

	if stored.AccessToken != "" {
		config.AccessToken = stored.AccessToken
	}

	if stored.TokenSecret != "" {
		config.TokenSecret = stored.TokenSecret
	}

	return config
}

func saveConfigStruct(config *CLIConfig) error {
	path := configFilePath()

	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func configFilePath() string {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yml"
	}

	return filepath.Join(home, ".smugmug", "config.yml")
}
