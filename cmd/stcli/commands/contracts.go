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

// NewContractsCommand creates the contracts command group.
func NewContractsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contracts",
		Aliases: []string{"contract"},
		Short:   "Manage contracts",
		Long:    "List, accept, deliver and fulfill your agent's contracts",
	}

	cmd.AddCommand(newContractsListCommand())
	cmd.AddCommand(newContractsGetCommand())
	cmd.AddCommand(newContractsAcceptCommand())
	cmd.AddCommand(newContractsDeliverCommand())
	cmd.AddCommand(newContractsFulfillCommand())

	return cmd
}

func newContractsListCommand() *cobra.Command {
	flags := &pageFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contracts",
		Long:  "List your agent's contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			contracts, err := fetchList(commandContext(cmd), flags, client.Contracts().List, client.Contracts().ListAll)
			if err != nil {
				return fmt.Errorf("failed to list contracts: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), contracts, renderContractsTable)
		},
	}

	flags.register(cmd)

	return cmd
}

func newContractsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONTRACT_ID",
		Short: "Get contract details",
		Long:  "Display a contract with its terms and deliveries",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			contract, err := client.Contracts().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get contract: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), contract, renderContract)
		},
	}
}

func newContractsAcceptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accept CONTRACT_ID",
		Short: "Accept a contract",
		Long:  "Accept a contract and receive its advance payment",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Contracts().Accept(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to accept contract: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, renderAgentAndContract)
		},
	}
}

func newContractsDeliverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deliver CONTRACT_ID SHIP_SYMBOL TRADE_SYMBOL UNITS",
		Short: "Deliver cargo for a contract",
		Long:  "Deliver cargo from a docked ship at the contract's destination",
		Args:  cobra.ExactArgs(constants.ExactlyFourArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := parseUnits(args[3])
			if err != nil {
				return err
			}

			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Contracts().Deliver(commandContext(cmd), args[0], &spacetraders.DeliverContractRequest{
				ShipSymbol:  args[1],
				TradeSymbol: args[2],
				Units:       units,
			})
			if err != nil {
				return fmt.Errorf("failed to deliver contract cargo: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, func(w io.Writer, result *spacetraders.ContractAndCargo) error {
				err := renderContract(w, &result.Contract)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(w, "\nCargo: %d/%d\n", result.Cargo.Units, result.Cargo.Capacity)

				return nil
			})
		},
	}
}

func newContractsFulfillCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fulfill CONTRACT_ID",
		Short: "Fulfill a contract",
		Long:  "Fulfill a contract whose deliveries are complete and receive the final payment",
		Args:  cobra.ExactArgs(constants.ExactlyOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAgentClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Contracts().Fulfill(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to fulfill contract: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, renderAgentAndContract)
		},
	}
}

func renderContractsTable(w io.Writer, contracts *listResult[spacetraders.Contract]) error {
	if len(contracts.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No contracts found")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Faction", "Type", "Accepted", "Fulfilled", "Payment", "Deadline")

	for _, contract := range contracts.Items {
		payment := contract.Terms.Payment.OnAccepted + contract.Terms.Payment.OnFulfilled
		_ = table.Append(contract.ID, contract.FactionSymbol, string(contract.Type),
			formatBool(contract.Accepted), formatBool(contract.Fulfilled),
			strconv.FormatInt(payment, 10), formatTime(&contract.Terms.Deadline))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("rendering contracts: %w", err)
	}

	renderPageFooter(w, contracts.Meta)

	return nil
}

func renderContract(w io.Writer, contract *spacetraders.Contract) error {
	err := renderProperties(w, []property{
		{"ID", contract.ID},
		{"Faction", contract.FactionSymbol},
		{"Type", string(contract.Type)},
		{"Accepted", formatBool(contract.Accepted)},
		{"Fulfilled", formatBool(contract.Fulfilled)},
		{"On Accepted", strconv.FormatInt(contract.Terms.Payment.OnAccepted, 10)},
		{"On Fulfilled", strconv.FormatInt(contract.Terms.Payment.OnFulfilled, 10)},
		{"Deadline", formatTime(&contract.Terms.Deadline)},
		{"Accept By", formatTime(contract.DeadlineToAccept)},
	})
	if err != nil {
		return err
	}

	if len(contract.Terms.Deliver) == 0 {
		return nil
	}

	_, _ = fmt.Fprintln(w, "\nDeliveries:")

	table := tablewriter.NewWriter(w)
	table.Header("Good", "Destination", "Fulfilled", "Required")

	for _, good := range contract.Terms.Deliver {
		_ = table.Append(good.TradeSymbol, good.DestinationSymbol,
			strconv.Itoa(good.UnitsFulfilled), strconv.Itoa(good.UnitsRequired))
	}

	return table.Render() //nolint:wrapcheck // rendering to the command output
}

func renderAgentAndContract(w io.Writer, result *spacetraders.AgentAndContract) error {
	err := renderContract(w, &result.Contract)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "\nCredits: %d\n", result.Agent.Credits)

	return nil
}
