package commands

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fivetwenty-io/spacetraders/internal/constants"
	"github.com/fivetwenty-io/spacetraders/pkg/stclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	API    string `json:"api,omitempty"    yaml:"api,omitempty"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Agents holds the agent token of each API, keyed by API domain.
	Agents map[string]*AgentConfig `json:"agents,omitempty" yaml:"agents,omitempty"`
}

// AgentConfig is the agent registered against one API.
type AgentConfig struct {
	Symbol    string     `json:"symbol"               yaml:"symbol"`
	Token     string     `json:"token,omitempty"      yaml:"token,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the stcli configuration stored in $HOME/.stcli/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with tokens masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			return renderOutput(cmd.OutOrStdout(), maskedConfig(config), displayConfigTable)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: api, output",
		Args:  cobra.ExactArgs(constants.ExactlyTwoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], args[1])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value. Keys: api, output",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "output":
		switch value {
		case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, value)
		}
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func displayConfigTable(w io.Writer, config *Config) error {
	rows := []property{
		{"Config File", configFilePath()},
		{"API", valueOr(config.API, constants.DefaultBaseURL+" (default)")},
		{"Output", valueOr(config.Output, constants.FormatTable)},
	}

	err := renderProperties(w, rows)
	if err != nil {
		return err
	}

	if len(config.Agents) == 0 {
		return nil
	}

	_, _ = fmt.Fprintln(w, "\nAgents:")

	table := tablewriter.NewWriter(w)
	table.Header("API Domain", "Agent", "Token", "Updated")

	for _, domain := range sortedKeys(config.Agents) {
		agent := config.Agents[domain]
		_ = table.Append(domain, agent.Symbol, agent.Token, formatTime(agent.UpdatedAt))
	}

	return table.Render() //nolint:wrapcheck // rendering to the command output
}

// configFilePath returns the config file in use, falling back to
// $HOME/.stcli/config.yml.
func configFilePath() string {
	if file := viper.ConfigFileUsed(); file != "" {
		return file
	}

	if file := viper.GetString("config"); file != "" {
		return file
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".stcli", "config.yml")
	}

	return filepath.Join(home, ".stcli", "config.yml")
}

// loadConfig returns the effective configuration: the config file with the
// --api flag or STCLI_API applied.
func loadConfig() (*Config, error) {
	config, err := readConfigFile()
	if err != nil {
		return nil, err
	}

	if api := viper.GetString("api"); api != "" {
		config.API = api
	}

	return config, nil
}

// readConfigFile reads the config file alone. A missing file yields an empty
// configuration; a file that cannot be read or parsed is an error, so it is
// never overwritten.
func readConfigFile() (*Config, error) {
	config := &Config{}
	configFile := configFilePath()

	// configFile is derived from the --config flag or the user's home directory
	// #nosec G304
	data, err := os.ReadFile(configFile)

	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	default:
		err = yaml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	if config.Agents == nil {
		config.Agents = make(map[string]*AgentConfig)
	}

	return config, nil
}

func saveConfigStruct(config *Config) error {
	configFile := configFilePath()

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// resolveBaseURL returns the normalized API base URL.
func resolveBaseURL(config *Config) string {
	return stclient.NormalizeBaseURL(config.API)
}

// apiDomain returns the host of baseURL, the key agent tokens are stored under.
func apiDomain(baseURL string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return strings.TrimSuffix(baseURL, "/")
	}

	return parsed.Host
}

// resolveToken returns the --token flag or STCLI_TOKEN, falling back to the
// token stored for the current API.
func resolveToken(config *Config) string {
	if token := viper.GetString("token"); token != "" {
		return token
	}

	agent, ok := config.Agents[apiDomain(resolveBaseURL(config))]
	if !ok {
		return ""
	}

	return agent.Token
}

func maskedConfig(config *Config) *Config {
	masked := &Config{
		API:    config.API,
		Output: config.Output,
		Agents: make(map[string]*AgentConfig, len(config.Agents)),
	}

	for domain, agent := range config.Agents {
		copied := *agent
		copied.Token = maskToken(agent.Token)
		masked.Agents[domain] = &copied
	}

	return masked
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
