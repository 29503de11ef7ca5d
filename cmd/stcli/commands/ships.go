package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fivetwenty-io/spacetraders/internal/constants"
	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// navAction is a fleet operation that only changes a ship's nav status.
type navAction func(ctx context.Context, shipSymbol string) (*spacetraders.NavResult, error)

// NewShipsCommand creates the ships command group.
func NewShipsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ships",
		Aliases: []string{"ship", "fleet"},
		Short:   "Command your fleet",
		Long:    "List your ships, move them between orbit and dock, navigate and inspect cargo",
	}

	cmd.AddCommand(newShipsListCommand())
	cmd.AddCommand(newShipsGetCommand())
	cmd.AddCommand(newShipsNavActionCommand("orbit", "Move a ship into orbit",
		"Move a docked ship into orbit around its waypoint",
		func(fleet spacetraders.FleetClient) navAction { return fleet.Orbit }))
	cmd.AddCommand(newShipsNavActionCommand("dock", "Dock a ship",
		"Dock an orbiting ship at its waypoint",
		func(fleet spacetraders.FleetClient) navAction { return fleet.Dock }))
	cmd.AddCommand(newShipsNavigateCommand())
	cmd.AddCommand(newShipsCooldownCommand())
	cmd.AddCommand(newShipsCargoCommand())

	return cmd
}

func newShipsListCommand() *cobra.Command {
	flags := &pageFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ships",
		Long:  "List the ships of your fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			ships, err := fetchList(commandContext(cmd), flags, client.Fleet().List, client.Fleet().ListAll)
			if err != nil {
				return fmt.Errorf("failed to list ships: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), ships, renderShipsTable)
		},
	}

	flags.register(cmd)

	return cmd
}

func newShipsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SHIP_SYMBOL",
		Short: "Get ship details",
		Long:  "Display a ship with its nav, fuel, cargo and cooldown",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			ship, err := client.Fleet().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get ship: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), ship, renderShip)
		},
	}
}

func newShipsNavActionCommand(name, short, long string, action func(spacetraders.FleetClient) navAction) *cobra.Command {
	return &cobra.Command{
		Use:   name + " SHIP_SYMBOL",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			result, err := action(client.Fleet())(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to %s ship: %w", name, err)
			}

			return renderOutput(cmd.OutOrStdout(), result, func(w io.Writer, result *spacetraders.NavResult) error {
				return renderNav(w, &result.Nav)
			})
		},
	}
}

func newShipsNavigateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "navigate SHIP_SYMBOL WAYPOINT_SYMBOL",
		Short: "Navigate a ship",
		Long:  "Send an orbiting ship to a waypoint of its current system",
		Args:  cobra.ExactArgs(constants.ExactlyTwoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			navigation, err := client.Fleet().Navigate(commandContext(cmd), args[0],
				&spacetraders.NavigateRequest{WaypointSymbol: args[1]})
			if err != nil {
				return fmt.Errorf("failed to navigate ship: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), navigation, func(w io.Writer, navigation *spacetraders.Navigation) error {
				err := renderNav(w, &navigation.Nav)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(w, "\nFuel: %d/%d\n", navigation.Fuel.Current, navigation.Fuel.Capacity)

				for _, event := range navigation.Events {
					_, _ = fmt.Fprintf(w, "Event: %s (%s)\n", event.Name, event.Component)
				}

				return nil
			})
		},
	}
}

func newShipsCooldownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cooldown SHIP_SYMBOL",
		Short: "Show a ship's cooldown",
		Long:  "Display the remaining cooldown of a ship's reactor",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			cooldown, err := client.Fleet().GetCooldown(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get cooldown: %w", err)
			}

			if cooldown == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Ship %s has no active cooldown\n", args[0])

				return nil
			}

			return renderOutput(cmd.OutOrStdout(), cooldown, renderCooldown)
		},
	}
}

func newShipsCargoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cargo SHIP_SYMBOL",
		Short: "Show a ship's cargo",
		Long:  "Display the cargo hold of a ship",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			cargo, err := client.Fleet().GetCargo(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get cargo: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), cargo, renderCargo)
		},
	}
}

func renderShipsTable(w io.Writer, ships *listResult[spacetraders.Ship]) error {
	if len(ships.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No ships found")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Role", "Frame", "Status", "Waypoint", "Fuel", "Cargo")

	for _, ship := range ships.Items {
		_ = table.Append(ship.Symbol, ship.Registration.Role, ship.Frame.Name,
			string(ship.Nav.Status), ship.Nav.WaypointSymbol,
			fmt.Sprintf("%d/%d", ship.Fuel.Current, ship.Fuel.Capacity),
			fmt.Sprintf("%d/%d", ship.Cargo.Units, ship.Cargo.Capacity))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("rendering ships: %w", err)
	}

	renderPageFooter(w, ships.Meta)

	return nil
}

func renderShip(w io.Writer, ship *spacetraders.Ship) error {
	return renderProperties(w, []property{
		{"Symbol", ship.Symbol},
		{"Name", ship.Registration.Name},
		{"Faction", ship.Registration.FactionSymbol},
		{"Role", ship.Registration.Role},
		{"Frame", ship.Frame.Name},
		{"Engine", ship.Engine.Name},
		{"Reactor", ship.Reactor.Name},
		{"Status", string(ship.Nav.Status)},
		{"Flight Mode", string(ship.Nav.FlightMode)},
		{"Waypoint", ship.Nav.WaypointSymbol},
		{"Fuel", fmt.Sprintf("%d/%d", ship.Fuel.Current, ship.Fuel.Capacity)},
		{"Cargo", fmt.Sprintf("%d/%d", ship.Cargo.Units, ship.Cargo.Capacity)},
		{"Crew", fmt.Sprintf("%d/%d", ship.Crew.Current, ship.Crew.Capacity)},
		{"Cooldown", strconv.Itoa(ship.Cooldown.RemainingSeconds) + "s"},
		{"Modules", strconv.Itoa(len(ship.Modules))},
		{"Mounts", strconv.Itoa(len(ship.Mounts))},
	})
}

func renderNav(w io.Writer, nav *spacetraders.ShipNav) error {
	rows := []property{
		{"Status", string(nav.Status)},
		{"Flight Mode", string(nav.FlightMode)},
		{"System", nav.SystemSymbol},
		{"Waypoint", nav.WaypointSymbol},
	}

	if nav.Status == spacetraders.ShipNavStatusInTransit {
		rows = append(rows,
			property{"Origin", nav.Route.Origin.Symbol},
			property{"Destination", nav.Route.Destination.Symbol},
			property{"Arrival", formatTime(&nav.Route.Arrival)},
			property{"Arrives In", time.Until(nav.Route.Arrival).Round(time.Second).String()},
		)
	}

	return renderProperties(w, rows)
}

func renderCooldown(w io.Writer, cooldown *spacetraders.Cooldown) error {
	return renderProperties(w, []property{
		{"Ship", cooldown.ShipSymbol},
		{"Remaining", strconv.Itoa(cooldown.RemainingSeconds) + "s"},
		{"Total", strconv.Itoa(cooldown.TotalSeconds) + "s"},
		{"Expires", formatTime(cooldown.Expiration)},
	})
}

func renderCargo(w io.Writer, cargo *spacetraders.ShipCargo) error {
	_, _ = fmt.Fprintf(w, "Cargo: %d/%d\n", cargo.Units, cargo.Capacity)

	if len(cargo.Inventory) == 0 {
		_, _ = fmt.Fprintln(w, "Cargo hold is empty")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Name", "Units")

	for _, item := range cargo.Inventory {
		_ = table.Append(item.Symbol, item.Name, strconv.Itoa(item.Units))
	}

	return table.Render() //nolint:wrapcheck // rendering to the command output
}
