package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/coin-exchange-admin/internal/cli"
	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show machine status, coin inventory and bills",
		Long: `Print the dashboard: machine status, coin inventory with its total value
and the bills received. Each section is fetched independently; a failing
section is reported without hiding the others.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			client, _, err := initClient()
			if err != nil {
				return err
			}

			printLine(out, cli.FormatTitle("Dashboard"))

			if report, err := client.AdminStatus(ctx); err != nil {
				slog.Debug("status fetch failed", "error", err)
				printLine(out, cli.FormatError(viewmodel.MsgStatusFailed))
			} else {
				printLine(out, "Machine status: "+cli.FormatMachineStatus(report.Operational(), report.Message))
			}
			printLine(out)

			printLine(out, cli.BoldStyle.Render("Coin inventory"))
			if overview, err := client.Overview(ctx); err != nil {
				printLine(out, cli.FormatError(common.MessageOr(err, viewmodel.MsgOverviewFailed)))
			} else {
				fmt.Fprint(out, cli.RenderDenominations("Coin", overview.CoinInventory, model.CoinLabel)) //nolint:forbidigo // User-facing output
				printLine(out, cli.SubtleStyle.Render("Total value: ")+cli.BoldStyle.Render(overview.TotalValue))
			}
			printLine(out)

			printLine(out, cli.BoldStyle.Render("Bills received"))
			if bills, err := client.Bills(ctx); err != nil {
				printLine(out, cli.FormatError(common.MessageOr(err, viewmodel.MsgBillsFailed)))
			} else {
				fmt.Fprint(out, cli.RenderDenominations("Bill", bills.BillInventory, model.BillLabel)) //nolint:forbidigo // User-facing output
				printLine(out, cli.SubtleStyle.Render("Total bills: ")+cli.BoldStyle.Render(fmt.Sprintf("%d", bills.TotalBillsReceived)))
			}
			return nil
		},
	}
}
