package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/spacetraders/internal/auth"
	"github.com/fivetwenty-io/spacetraders/internal/client"
	"github.com/fivetwenty-io/spacetraders/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [TOKEN]",
		Short: "Store an agent token",
		Long: `Verify an agent token against the API and store it in the config file.

The token is taken from the argument, the --token flag or STCLI_TOKEN, and
prompted for when none is given.`,
		Args: cobra.MaximumNArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := viper.GetString("token")
			if len(args) == 1 {
				token = args[0]
			}

			if token == "" {
				var err error

				token, err = promptToken(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			if token == "" {
				return constants.ErrEmptyToken
			}

			return runLogin(cmd, token)
		},
	}
}

func runLogin(cmd *cobra.Command, token string) error {
	cliConfig, err := loadConfig()
	if err != nil {
		return err
	}

	config := clientConfig(cmd, cliConfig, "")
	domain := apiDomain(config.BaseURL)
	tokenManager := auth.NewConfigTokenManager(NewConfigPersister(), domain, token)

	stClient, err := client.NewWithTokenManager(config, tokenManager)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	agent, err := stClient.Agents().GetMyAgent(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}

	err = tokenManager.StoreAgentToken(agent.Symbol, token)
	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s on %s\n", tokenManager.AgentSymbol(), domain)

	return nil
}

// promptToken reads a token, hiding the input when stdin is a terminal.
func promptToken(in io.Reader, prompt io.Writer) (string, error) {
	_, _ = fmt.Fprint(prompt, "Agent token: ")

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		tokenBytes, err := term.ReadPassword(int(file.Fd()))
		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return strings.TrimSpace(string(tokenBytes)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored agent token",
		Long:  "Remove the agent token stored for the current API from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			domain := apiDomain(resolveBaseURL(config))

			agent, err := NewConfigPersister().RemoveAgent(domain)
			if err != nil {
				return fmt.Errorf("logging out of %s: %w", domain, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged out %s from %s\n", agent.Symbol, domain)

			return nil
		},
	}
}
