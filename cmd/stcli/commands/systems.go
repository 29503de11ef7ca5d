package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/spacetraders/internal/constants"
	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSystemsCommand creates the systems command group.
func NewSystemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "systems",
		Aliases: []string{"system"},
		Short:   "Explore systems",
		Long:    "List star systems and the waypoints inside them",
	}

	cmd.AddCommand(newSystemsListCommand())
	cmd.AddCommand(newSystemsGetCommand())
	cmd.AddCommand(newSystemsWaypointsCommand())

	return cmd
}

func newSystemsListCommand() *cobra.Command {
	flags := &pageFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List systems",
		Long:  "List the systems of the universe. --all walks every page and can take a while",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			listAll := func(ctx context.Context) ([]spacetraders.System, error) {
				return spacetraders.FetchAllPages(ctx, constants.MaxPageLimit, client.Systems().List)
			}

			systems, err := fetchList(commandContext(cmd), flags, client.Systems().List, listAll)
			if err != nil {
				return fmt.Errorf("failed to list systems: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), systems, renderSystemsTable)
		},
	}

	flags.register(cmd)

	return cmd
}

func newSystemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SYSTEM_SYMBOL",
		Short: "Get system details",
		Long:  "Display a system with its waypoints",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			system, err := client.Systems().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get system: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), system, renderSystem)
		},
	}
}

func newSystemsWaypointsCommand() *cobra.Command {
	var (
		flags = &pageFlags{}
		trait string
	)

	cmd := &cobra.Command{
		Use:   "waypoints SYSTEM_SYMBOL",
		Short: "List waypoints of a system",
		Long:  "List the waypoints of a system, optionally only those with a trait such as MARKETPLACE or SHIPYARD",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			systemSymbol := args[0]

			list := func(ctx context.Context, params *spacetraders.PageParams) (*spacetraders.Page[spacetraders.Waypoint], error) {
				return client.Systems().ListWaypoints(ctx, systemSymbol, params)
			}
			listAll := func(ctx context.Context) ([]spacetraders.Waypoint, error) {
				return client.Systems().ListAllWaypoints(ctx, systemSymbol)
			}

			waypoints, err := fetchList(commandContext(cmd), flags, list, listAll)
			if err != nil {
				return fmt.Errorf("failed to list waypoints: %w", err)
			}

			if trait != "" {
				waypoints.Items = filterByTrait(waypoints.Items, strings.ToUpper(trait))
			}

			return renderOutput(cmd.OutOrStdout(), waypoints, renderWaypointsTable)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&trait, "trait", "", "only show waypoints with this trait")

	return cmd
}

// NewWaypointCommand creates the waypoint command group.
func NewWaypointCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "waypoint",
		Aliases: []string{"wp"},
		Short:   "Inspect waypoints",
		Long:    "Inspect a single waypoint. The system is derived from the waypoint symbol",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get WAYPOINT_SYMBOL",
		Short: "Get waypoint details",
		Long:  "Display a waypoint with its traits and orbitals",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			waypoint, err := client.Systems().GetWaypoint(commandContext(cmd), spacetraders.SystemSymbolOf(args[0]), args[0])
			if err != nil {
				return fmt.Errorf("failed to get waypoint: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), waypoint, renderWaypoint)
		},
	})

	return cmd
}

// NewMarketCommand creates the market command.
func NewMarketCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "market WAYPOINT_SYMBOL",
		Short: "Show a marketplace",
		Long:  "Display the goods of a marketplace. Prices are only shown while one of your ships is present",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			market, err := client.Systems().GetMarket(commandContext(cmd), spacetraders.SystemSymbolOf(args[0]), args[0])
			if err != nil {
				return fmt.Errorf("failed to get market: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), market, renderMarket)
		},
	}
}

// NewShipyardCommand creates the shipyard command.
func NewShipyardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shipyard WAYPOINT_SYMBOL",
		Short: "Show a shipyard",
		Long:  "Display the ship types of a shipyard. Prices are only shown while one of your ships is present",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			shipyard, err := client.Systems().GetShipyard(commandContext(cmd), spacetraders.SystemSymbolOf(args[0]), args[0])
			if err != nil {
				return fmt.Errorf("failed to get shipyard: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), shipyard, renderShipyard)
		},
	}
}

func filterByTrait(waypoints []spacetraders.Waypoint, trait string) []spacetraders.Waypoint {
	filtered := make([]spacetraders.Waypoint, 0, len(waypoints))

	for i := range waypoints {
		if waypoints[i].HasTrait(trait) {
			filtered = append(filtered, waypoints[i])
		}
	}

	return filtered
}

func renderSystemsTable(w io.Writer, systems *listResult[spacetraders.System]) error {
	if len(systems.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No systems found")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Sector", "Type", "X", "Y", "Waypoints")

	for _, system := range systems.Items {
		_ = table.Append(system.Symbol, system.SectorSymbol, string(system.Type),
			strconv.Itoa(system.X), strconv.Itoa(system.Y), strconv.Itoa(len(system.Waypoints)))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("rendering systems: %w", err)
	}

	renderPageFooter(w, systems.Meta)

	return nil
}

func renderSystem(w io.Writer, system *spacetraders.System) error {
	factions := make([]string, 0, len(system.Factions))
	for _, faction := range system.Factions {
		factions = append(factions, faction.Symbol)
	}

	err := renderProperties(w, []property{
		{"Symbol", system.Symbol},
		{"Sector", system.SectorSymbol},
		{"Type", string(system.Type)},
		{"Position", fmt.Sprintf("%d, %d", system.X, system.Y)},
		{"Factions", valueOr(strings.Join(factions, ", "), NotAvailable)},
	})
	if err != nil {
		return err
	}

	if len(system.Waypoints) == 0 {
		return nil
	}

	_, _ = fmt.Fprintln(w, "\nWaypoints:")

	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Type", "X", "Y", "Orbits")

	for _, waypoint := range system.Waypoints {
		_ = table.Append(waypoint.Symbol, string(waypoint.Type),
			strconv.Itoa(waypoint.X), strconv.Itoa(waypoint.Y), waypoint.Orbits)
	}

	return table.Render() //nolint:wrapcheck // rendering to the command output
}

func renderWaypointsTable(w io.Writer, waypoints *listResult[spacetraders.Waypoint]) error {
	if len(waypoints.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No waypoints found")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Type", "X", "Y", "Traits")

	for _, waypoint := range waypoints.Items {
		_ = table.Append(waypoint.Symbol, string(waypoint.Type),
			strconv.Itoa(waypoint.X), strconv.Itoa(waypoint.Y),
			truncate(traitSymbols(waypoint.Traits), constants.TruncateDescription))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("rendering waypoints: %w", err)
	}

	renderPageFooter(w, waypoints.Meta)

	return nil
}

func renderWaypoint(w io.Writer, waypoint *spacetraders.Waypoint) error {
	orbitals := make([]string, 0, len(waypoint.Orbitals))
	for _, orbital := range waypoint.Orbitals {
		orbitals = append(orbitals, orbital.Symbol)
	}

	faction := NotAvailable
	if waypoint.Faction != nil {
		faction = waypoint.Faction.Symbol
	}

	return renderProperties(w, []property{
		{"Symbol", waypoint.Symbol},
		{"Type", string(waypoint.Type)},
		{"System", waypoint.SystemSymbol},
		{"Position", fmt.Sprintf("%d, %d", waypoint.X, waypoint.Y)},
		{"Faction", faction},
		{"Orbits", valueOr(waypoint.Orbits, NotAvailable)},
		{"Orbitals", valueOr(strings.Join(orbitals, ", "), NotAvailable)},
		{"Traits", valueOr(traitSymbols(waypoint.Traits), NotAvailable)},
		{"Under Construction", formatBool(waypoint.IsUnderConstruction)},
	})
}

func renderMarket(w io.Writer, market *spacetraders.Market) error {
	_, _ = fmt.Fprintf(w, "Market %s\n", market.Symbol)

	if len(market.TradeGoods) == 0 {
		table := tablewriter.NewWriter(w)
		table.Header("Symbol", "Kind")

		for _, good := range market.Exports {
			_ = table.Append(good.Symbol, "EXPORT")
		}

		for _, good := range market.Imports {
			_ = table.Append(good.Symbol, "IMPORT")
		}

		for _, good := range market.Exchange {
			_ = table.Append(good.Symbol, "EXCHANGE")
		}

		return table.Render() //nolint:wrapcheck // rendering to the command output
	}

	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Type", "Supply", "Activity", "Volume", "Buy", "Sell")

	for _, good := range market.TradeGoods {
		_ = table.Append(good.Symbol, good.Type, string(good.Supply), valueOr(string(good.Activity), NotAvailable),
			strconv.Itoa(good.TradeVolume), strconv.FormatInt(good.PurchasePrice, 10), strconv.FormatInt(good.SellPrice, 10))
	}

	return table.Render() //nolint:wrapcheck // rendering to the command output
}

func renderShipyard(w io.Writer, shipyard *spacetraders.Shipyard) error {
	_, _ = fmt.Fprintf(w, "Shipyard %s (modifications fee: %d)\n", shipyard.Symbol, shipyard.ModificationsFee)

	if len(shipyard.Ships) == 0 {
		table := tablewriter.NewWriter(w)
		table.Header("Ship Type")

		for _, shipType := range shipyard.ShipTypeNames() {
			_ = table.Append(shipType)
		}

		return table.Render() //nolint:wrapcheck // rendering to the command output
	}

	table := tablewriter.NewWriter(w)
	table.Header("Type", "Name", "Supply", "Price")

	for _, ship := range shipyard.Ships {
		_ = table.Append(ship.Type, ship.Name, string(ship.Supply), strconv.FormatInt(ship.PurchasePrice, 10))
	}

	return table.Render() //nolint:wrapcheck // rendering to the command output
}

func traitSymbols(traits []spacetraders.WaypointTrait) string {
	symbols := make([]string, 0, len(traits))
	for _, trait := range traits {
		symbols = append(symbols, trait.Symbol)
	}

	return strings.Join(symbols, ", ")
}
