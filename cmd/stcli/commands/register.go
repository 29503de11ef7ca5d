package commands

import (
	"fmt"
	"io"

	"github.com/fivetwenty-io/spacetraders/internal/auth"
	"github.com/fivetwenty-io/spacetraders/internal/client"
	"github.com/fivetwenty-io/spacetraders/internal/constants"
	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/spf13/cobra"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "register SYMBOL FACTION",
		Short: "Register a new agent",
		Long: `Register a new agent with a starting faction and store its token.

SYMBOL must be 3 to 14 characters. The token is saved for the current API,
so later commands act as the new agent.`,
		Args: cobra.ExactArgs(constants.ExactlyTwoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &spacetraders.RegisterRequest{
				Symbol:  args[0],
				Faction: args[1],
				Email:   email,
			}

			return runRegister(cmd, request)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email address")

	return cmd
}

func runRegister(cmd *cobra.Command, request *spacetraders.RegisterRequest) error {
	cliConfig, err := loadConfig()
	if err != nil {
		return err
	}

	config := clientConfig(cmd, cliConfig, "")
	domain := apiDomain(config.BaseURL)
	tokenManager := auth.NewConfigTokenManager(NewConfigPersister(), domain, "")

	stClient, err := client.NewWithTokenManager(config, tokenManager)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	registration, err := stClient.Register(commandContext(cmd), request)
	if err != nil {
		return fmt.Errorf("failed to register agent: %w", err)
	}

	err = tokenManager.StoreAgentToken(registration.Agent.Symbol, registration.Token)
	if err != nil {
		return fmt.Errorf("agent registered but its token could not be stored, save it now: %s: %w",
			registration.Token, err)
	}

	return renderOutput(cmd.OutOrStdout(), registration, func(w io.Writer, reg *spacetraders.Registration) error {
		err := renderAgent(w, &reg.Agent)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(w, "\nStarting ship %s at %s. Token saved for %s.\n",
			reg.Ship.Symbol, reg.Ship.Nav.WaypointSymbol, domain)

		return nil
	})
}
