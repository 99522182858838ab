package main

import (
	"fmt"

	"github.com/Veraticus/coin-exchange-admin/internal/cli"
	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func exchangeCmd() *cobra.Command {
	var (
		amount        string
		maximal       bool
		multipleBills bool
	)

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Exchange a bill for coins",
		Long: `Exchange a bill amount for coins. By default the backend returns the
fewest coins possible; --maximal asks for the most coins instead.`,
		Example: `  coinadmin exchange --amount 5
  coinadmin exchange --amount 20 --maximal --multiple-bills`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			strategy := model.StrategyMinimal
			if maximal {
				strategy = model.StrategyMaximal
			}
			req, err := viewmodel.ExchangeForm{
				Amount:             amount,
				Strategy:           strategy,
				AllowMultipleBills: multipleBills,
			}.Request()
			if err != nil {
				return common.NewUserError("Invalid exchange request", err)
			}

			client, _, err := initClient()
			if err != nil {
				return err
			}

			result, err := client.Exchange(cmd.Context(), req)
			if err != nil {
				return failure(err, viewmodel.MsgExchangeFailed)
			}

			if result.Message != "" {
				printLine(out, cli.FormatSuccess(result.Message))
			}
			printLine(out, cli.RenderBox(
				fmt.Sprintf("Change for %s (%s)", model.BillLabel(req.Amount), strategy),
				cli.RenderDenominations("Coin", result.Change, model.CoinLabel)+
					cli.SubtleStyle.Render(fmt.Sprintf("%d coins, %s", result.Change.CoinCount(), model.FormatCents(result.Change.TotalCents()))),
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", viewmodel.DefaultExchangeAmount, "bill amount in dollars")
	cmd.Flags().BoolVar(&maximal, "maximal", false, "return as many coins as possible")
	cmd.Flags().BoolVar(&multipleBills, "multiple-bills", false, "allow the amount to be paid with several bills")
	return cmd
}
