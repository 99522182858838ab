// Package export writes transaction history to CSV files.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/schollz/progressbar/v3"
)

// Header is the first row of every export.
var Header = []string{"id", "date", "amount", "strategy", "coins", "change_cents", "change"}

// dateLayout matches the backend's LocalDateTime rendering.
const dateLayout = "2006-01-02T15:04:05"

// Options configures a CSV export.
type Options struct {
	// Progress receives a progress bar; nil disables it.
	Progress io.Writer
}

// WriteTransactions writes txs as CSV to w. It stops early with ctx's error
// when ctx is canceled.
func WriteTransactions(ctx context.Context, w io.Writer, txs []model.Transaction, opts Options) (int, error) {
	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = newProgressBar(opts.Progress, len(txs))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	written := 0
	for _, tx := range txs {
		if err := ctx.Err(); err != nil {
			cw.Flush()
			return written, err
		}
		if err := cw.Write(Row(tx)); err != nil {
			return written, fmt.Errorf("failed to write transaction %d: %w", tx.ID, err)
		}
		written++
		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, fmt.Errorf("failed to flush csv: %w", err)
	}
	return written, nil
}

// Row renders one transaction as a CSV record.
func Row(tx model.Transaction) []string {
	date := ""
	if !tx.TransactionDate.IsZero() {
		date = tx.TransactionDate.Format(dateLayout)
	}
	return []string{
		strconv.FormatInt(tx.ID, 10),
		date,
		strconv.Itoa(tx.Amount),
		string(tx.Strategy()),
		strconv.Itoa(tx.Change.CoinCount()),
		strconv.Itoa(tx.Change.TotalCents()),
		model.Breakdown(tx.Change),
	}
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Exporting transactions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
