package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server status",
		Long:  "Display the game server status, the current reset and global statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			status, err := client.GetStatus(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to get server status: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), status, renderStatus)
		},
	}
}

func renderStatus(w io.Writer, status *spacetraders.ServerStatus) error {
	err := renderProperties(w, []property{
		{"Status", status.Status},
		{"Version", status.Version},
		{"Reset Date", status.ResetDate},
		{"Next Reset", valueOr(status.ServerResets.Next, NotAvailable)},
		{"Reset Frequency", valueOr(status.ServerResets.Frequency, NotAvailable)},
		{"Agents", strconv.Itoa(status.Stats.Agents)},
		{"Ships", strconv.Itoa(status.Stats.Ships)},
		{"Systems", strconv.Itoa(status.Stats.Systems)},
		{"Waypoints", strconv.Itoa(status.Stats.Waypoints)},
	})
	if err != nil {
		return err
	}

	for _, announcement := range status.Announcements {
		_, _ = fmt.Fprintf(w, "\n%s\n  %s\n", announcement.Title, announcement.Body)
	}

	return nil
}
