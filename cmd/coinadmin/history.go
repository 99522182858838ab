package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/Veraticus/coin-exchange-admin/internal/cli"
	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/export"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past exchanges",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historySummaryCmd())
	cmd.AddCommand(historyExportCmd())
	return cmd
}

func historyListCmd() *cobra.Command {
	var flags historyFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions, optionally filtered",
		Example: `  coinadmin history list
  coinadmin history list --start 2024-03-01 --end 2024-03-31T18:00 --strategy minimal
  coinadmin history list --min 5 --max 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			client, _, err := initClient()
			if err != nil {
				return err
			}

			txs, err := fetchHistory(cmd.Context(), client, flags)
			if err != nil {
				var userErr *common.UserError
				if errors.As(err, &userErr) {
					return err
				}
				return failure(err, viewmodel.MsgHistoryFailed)
			}

			printLine(out, cli.FormatTitle("Transaction History"))
			if len(txs) == 0 {
				printLine(out, cli.InfoStyle.Render("No transactions found."))
				return nil
			}

			fmt.Fprint(out, cli.RenderTable( //nolint:forbidigo // User-facing output
				[]string{"ID", "Date", "Amount", "Strategy", "Change"},
				transactionRows(txs),
				2,
			))
			view := viewmodel.HistoryView{Transactions: txs}
			printLine(out, cli.SubtleStyle.Render(fmt.Sprintf("%d transactions, $%d exchanged", len(txs), view.TotalExchanged())))
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}

func transactionRows(txs []model.Transaction) [][]string {
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		date := "-"
		if !tx.TransactionDate.IsZero() {
			date = tx.TransactionDate.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{
			strconv.FormatInt(tx.ID, 10),
			date,
			model.BillLabel(tx.Amount),
			string(tx.Strategy()),
			model.Breakdown(tx.Change),
		})
	}
	return rows
}

func historySummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show coins handed out per transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			client, _, err := initClient()
			if err != nil {
				return err
			}

			summary, err := client.HistorySummary(cmd.Context())
			if err != nil {
				return failure(err, viewmodel.MsgSummaryFailed)
			}

			printLine(out, cli.FormatTitle(cli.ChartIcon+" History Summary"))
			if len(summary) == 0 {
				printLine(out, cli.InfoStyle.Render("No transactions found."))
				return nil
			}

			rows := make([][]string, 0, len(summary))
			for _, s := range summary {
				rows = append(rows, []string{model.BillLabel(s.Amount), string(model.StrategyOf(s.Minimal)), strconv.Itoa(s.TotalCoins)})
			}
			fmt.Fprint(out, cli.RenderTable([]string{"Amount", "Strategy", "Coins"}, rows, 0, 2)) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func historyExportCmd() *cobra.Command {
	var (
		flags  historyFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to a CSV file",
		Long: `Write the (optionally filtered) transaction history to a CSV file.
Interrupting the export removes the partial file.`,
		Example: `  coinadmin history export --output march.csv --start 2024-03-01 --end 2024-03-31`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Export").WithHint("Partial file removed.")
			ctx := handler.HandleInterrupts(cmd.Context())
			defer handler.Stop()

			txs, err := fetchHistory(ctx, client, flags)
			if err != nil {
				var userErr *common.UserError
				if errors.As(err, &userErr) {
					return err
				}
				return failure(err, viewmodel.MsgHistoryFailed)
			}

			n, err := exportFile(ctx, output, txs, export.Options{Progress: cmd.ErrOrStderr()})
			if err != nil {
				if handler.WasInterrupted() {
					return nil
				}
				return err
			}

			printLine(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", n, output)))
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV file to write")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// exportFile writes txs to path, removing the file if the export fails.
func exportFile(ctx context.Context, path string, txs []model.Transaction, opts export.Options) (int, error) {
	f, err := os.Create(path) //nolint:gosec // User-chosen output path
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, writeErr := export.WriteTransactions(ctx, f, txs, opts)
	closeErr := f.Close()
	if writeErr == nil && closeErr != nil {
		writeErr = fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	if writeErr != nil {
		if err := os.Remove(path); err != nil {
			slog.Warn("Failed to remove partial export", "path", path, "error", err)
		}
		return n, writeErr
	}
	return n, nil
}
