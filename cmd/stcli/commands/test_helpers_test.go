package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const (
	agentFixture = `{"symbol":"BADGER","headquarters":"X1-DF55-A1","credits":175000,` +
		`"startingFaction":"COSMIC","shipCount":2}`
	shipFixture = `{"symbol":"BADGER-1","registration":{"name":"BADGER-1","factionSymbol":"COSMIC","role":"COMMAND"},` +
		`"nav":{"systemSymbol":"X1-DF55","waypointSymbol":"X1-DF55-A1","status":"DOCKED","flightMode":"CRUISE"},` +
		`"cooldown":{"shipSymbol":"BADGER-1","totalSeconds":0,"remainingSeconds":0},` +
		`"fuel":{"current":400,"capacity":400},"cargo":{"capacity":40,"units":0,"inventory":[]}}`
	registrationFixture = `{"data":{"token":"fresh-token","agent":` + agentFixture + `,` +
		`"contract":{"id":"contract-1","factionSymbol":"COSMIC","type":"PROCUREMENT"},` +
		`"faction":{"symbol":"COSMIC","name":"Cosmic Engineers"},"ship":` + shipFixture + `}}`
	unauthorizedFixture = `{"error":{"message":"Invalid token","code":4104}}`
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupCLI points the CLI at a test server and a temporary config file.
func setupCLI(t *testing.T, handler http.Handler) string {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.Set("config", configFile)
	viper.Set("api", server.URL)

	return server.URL
}

// storedConfig reads the config file written by the command under test.
func storedConfig(t *testing.T) *Config {
	t.Helper()

	config, err := readConfigFile()
	require.NoError(t, err)

	return config
}

// runCommand executes cmd with args and returns what it printed.
func runCommand(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer

	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

// jsonHandler answers every request with status and body.
func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
