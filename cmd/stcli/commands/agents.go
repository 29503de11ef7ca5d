package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/spacetraders/internal/constants"
	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAgentCommand creates the agent command.
func NewAgentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "agent [SYMBOL]",
		Short: "Show an agent",
		Long:  "Display your own agent, or the public details of another agent",
		Args:  cobra.MaximumNArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				client spacetraders.Client
				agent  *spacetraders.Agent
				err    error
			)

			if len(args) == 1 {
				client, err = createClient(cmd)
				if err != nil {
					return err
				}

				agent, err = client.Agents().Get(commandContext(cmd), args[0])
			} else {
				client, err = createAgentClient(cmd)
				if err != nil {
					return err
				}

				agent, err = client.Agents().GetMyAgent(commandContext(cmd))
			}

			if err != nil {
				return fmt.Errorf("failed to get agent: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), agent, renderAgent)
		},
	}
}

// NewAgentsCommand creates the agents command group.
func NewAgentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Browse agents",
		Long:  "List the public agents of the current universe",
	}

	cmd.AddCommand(newAgentsListCommand())

	return cmd
}

func newAgentsListCommand() *cobra.Command {
	flags := &pageFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents",
		Long:  "List public agents, one page at a time or all with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			agents, err := fetchList(commandContext(cmd), flags, client.Agents().List, client.Agents().ListAll)
			if err != nil {
				return fmt.Errorf("failed to list agents: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), agents, renderAgentsTable)
		},
	}

	flags.register(cmd)

	return cmd
}

func renderAgent(w io.Writer, agent *spacetraders.Agent) error {
	return renderProperties(w, []property{
		{"Symbol", agent.Symbol},
		{"Headquarters", agent.Headquarters},
		{"Credits", strconv.FormatInt(agent.Credits, 10)},
		{"Starting Faction", agent.StartingFaction},
		{"Ships", strconv.Itoa(agent.ShipCount)},
		{"Account", valueOr(agent.AccountID, NotAvailable)},
	})
}

func renderAgentsTable(w io.Writer, agents *listResult[spacetraders.Agent]) error {
	if len(agents.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No agents found")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Headquarters", "Credits", "Faction", "Ships")

	for _, agent := range agents.Items {
		_ = table.Append(agent.Symbol, agent.Headquarters, strconv.FormatInt(agent.Credits, 10),
			agent.StartingFaction, strconv.Itoa(agent.ShipCount))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("rendering agents: %w", err)
	}

	renderPageFooter(w, agents.Meta)

	return nil
}
