package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/spacetraders/internal/constants"
	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewFactionsCommand creates the factions command group.
func NewFactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "factions",
		Aliases: []string{"faction"},
		Short:   "Browse factions",
		Long:    "List and inspect the factions of the universe",
	}

	cmd.AddCommand(newFactionsListCommand())
	cmd.AddCommand(newFactionsGetCommand())

	return cmd
}

func newFactionsListCommand() *cobra.Command {
	flags := &pageFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List factions",
		Long:  "List factions, one page at a time or all with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			factions, err := fetchList(commandContext(cmd), flags, client.Factions().List, client.Factions().ListAll)
			if err != nil {
				return fmt.Errorf("failed to list factions: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), factions, renderFactionsTable)
		},
	}

	flags.register(cmd)

	return cmd
}

func newFactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SYMBOL",
		Short: "Get faction details",
		Long:  "Display a faction with its traits",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			faction, err := client.Factions().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get faction: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), faction, renderFaction)
		},
	}
}

func renderFactionsTable(w io.Writer, factions *listResult[spacetraders.Faction]) error {
	if len(factions.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No factions found")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Name", "Headquarters", "Recruiting")

	for _, faction := range factions.Items {
		_ = table.Append(faction.Symbol, faction.Name, valueOr(faction.Headquarters, NotAvailable),
			formatBool(faction.IsRecruiting))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("rendering factions: %w", err)
	}

	renderPageFooter(w, factions.Meta)

	return nil
}

func renderFaction(w io.Writer, faction *spacetraders.Faction) error {
	traits := make([]string, 0, len(faction.Traits))
	for _, trait := range faction.Traits {
		traits = append(traits, trait.Name)
	}

	return renderProperties(w, []property{
		{"Symbol", faction.Symbol},
		{"Name", faction.Name},
		{"Description", truncate(faction.Description, constants.TruncateDescription)},
		{"Headquarters", valueOr(faction.Headquarters, NotAvailable)},
		{"Recruiting", formatBool(faction.IsRecruiting)},
		{"Traits", valueOr(strings.Join(traits, ", "), NotAvailable)},
	})
}
