package main

import (
	"fmt"
	"os"

	"github.com/Veraticus/coin-exchange-admin/internal/cli"
	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inspect and maintain the coin inventory",
	}

	cmd.AddCommand(inventoryListCmd())
	cmd.AddCommand(inventoryUpdateCmd("add", "Add coins to the inventory", viewmodel.MsgAddFailed))
	cmd.AddCommand(inventoryUpdateCmd("remove", "Remove coins from the inventory", viewmodel.MsgRemoveFailed))
	cmd.AddCommand(inventoryReplenishCmd())
	return cmd
}

func inventoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the coin inventory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			snapshot, err := client.Inventory(cmd.Context())
			if err != nil {
				return failure(err, viewmodel.MsgInventoryFailed)
			}

			printSnapshot(cmd, "Coin Inventory", snapshot.Inventory, snapshot.Total)
			return nil
		},
	}
}

func inventoryUpdateCmd(name, short, fallback string) *cobra.Command {
	var coin, quantity string

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Long: short + `. The backend answers with the updated inventory,
which is printed as returned.`,
		Example: fmt.Sprintf("  coinadmin inventory %s --coin 25 --quantity 40", name),
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, err := viewmodel.InventoryForm{CoinValue: coin, Quantity: quantity}.Update()
			if err != nil {
				return common.NewUserError("Invalid inventory update", err)
			}

			client, _, err := initClient()
			if err != nil {
				return err
			}

			call := client.AddCoins
			if name == "remove" {
				call = client.RemoveCoins
			}
			result, err := call(cmd.Context(), update)
			if err != nil {
				return failure(err, fallback)
			}

			if result.Message != "" {
				printLine(cmd.OutOrStdout(), cli.FormatSuccess(result.Message))
			}
			printSnapshot(cmd, "Coin Inventory", result.Inventory, result.Inventory.TotalCents())
			return nil
		},
	}

	cmd.Flags().StringVar(&coin, "coin", viewmodel.DefaultCoinValue, "coin denomination in cents")
	cmd.Flags().StringVar(&quantity, "quantity", viewmodel.DefaultQuantity, "number of coins")
	return cmd
}

func inventoryReplenishCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "replenish",
		Short: "Reset the coin inventory to its initial stock",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !yes {
				ok, err := cli.Confirm(ctx, cli.NewLineReader(cmd.InOrStdin()), out, "Replace the whole coin inventory with the initial stock?")
				if err != nil {
					return err
				}
				if !ok {
					printLine(out, cli.FormatInfo("Replenish canceled."))
					return nil
				}
			}

			client, _, err := initClient()
			if err != nil {
				return err
			}

			msg, err := client.Replenish(ctx)
			if err != nil {
				return failure(err, viewmodel.MsgReplenishFailed)
			}
			printLine(out, cli.FormatSuccess(msg))

			snapshot, err := client.Inventory(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, cli.FormatWarning(viewmodel.MsgInventoryFailed)) //nolint:forbidigo // User-facing output
				return nil
			}
			printSnapshot(cmd, "Coin Inventory", snapshot.Inventory, snapshot.Total)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func printSnapshot(cmd *cobra.Command, title string, inventory model.CoinInventory, total int) {
	out := cmd.OutOrStdout()
	printLine(out, cli.FormatTitle(title))
	fmt.Fprint(out, cli.RenderDenominations("Coin", inventory, model.CoinLabel)) //nolint:forbidigo // User-facing output
	printLine(out, cli.SubtleStyle.Render("Total: ")+cli.BoldStyle.Render(model.FormatCents(total)))
}
