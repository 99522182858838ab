package main

import (
	"fmt"

	"github.com/Veraticus/coin-exchange-admin/internal/cli"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func billsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bills",
		Short: "Show the bills the machine has received",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			client, _, err := initClient()
			if err != nil {
				return err
			}

			report, err := client.Bills(cmd.Context())
			if err != nil {
				return failure(err, viewmodel.MsgBillsFailed)
			}

			printLine(out, cli.FormatTitle("Bill Inventory"))
			printLine(out, cli.SubtleStyle.Render("Total bills received: ")+cli.BoldStyle.Render(fmt.Sprintf("%d", report.TotalBillsReceived)))
			printLine(out, cli.SubtleStyle.Render("Face value: ")+cli.BoldStyle.Render(model.BillLabel(report.BillInventory.TotalDollars())))
			printLine(out)
			fmt.Fprint(out, cli.RenderDenominations("Bill", report.BillInventory, model.BillLabel)) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
