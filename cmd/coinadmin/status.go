package main

import (
	"fmt"

	"github.com/Veraticus/coin-exchange-admin/internal/cli"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the machine status",
		Long: `Show the status text reported by the machine, including when it is out
of coins. With --probe only availability is printed: operational when the
status endpoint answers successfully, out of service on any failure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			client, _, err := initClient()
			if err != nil {
				return err
			}

			if probe {
				status := client.Probe(ctx)
				printLine(out, cli.FormatMachineStatus(status == model.StatusOperational, "Machine "+status.String()))
				return nil
			}

			report, err := client.AdminStatus(ctx)
			if err != nil {
				return failure(err, viewmodel.MsgMachineUnhealthy)
			}
			printLine(out, cli.FormatMachineStatus(report.Operational(), report.Message))
			printLine(out, cli.SubtleStyle.Render(fmt.Sprintf("HTTP %d", report.HTTPStatus)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "only report whether the machine is available")
	return cmd
}
