package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/config"
	"github.com/Veraticus/coin-exchange-admin/internal/exchange"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/storage"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// timeLocation is the zone filter dates are entered in.
var timeLocation = time.Local

// loadConfig resolves the configuration from flags, environment and file.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// credentialProvider picks where basic auth credentials come from.
func credentialProvider(cfg *config.Config) exchange.CredentialProvider {
	if cfg.Auth.Source == config.CredentialSourceEnv {
		return exchange.EnvCredentials{}
	}
	return exchange.StaticCredentials{
		Username: cfg.Auth.Username,
		Password: cfg.Auth.Password,
	}
}

// initClient builds the exchange backend client from configuration.
func initClient() (*exchange.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	client, err := exchange.NewClient(cfg.Server.BaseURL,
		exchange.WithTimeout(cfg.Server.Timeout),
		exchange.WithCredentials(credentialProvider(cfg)),
		exchange.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create exchange client: %w", err)
	}

	slog.Debug("Using exchange backend", "url", client.BaseURL(), "auth_source", cfg.Auth.Source)
	return client, cfg, nil
}

// initPrefs opens the preference database.
func initPrefs(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.Open(ctx, cfg.Prefs.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	return store, nil
}

func closePrefs(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close preferences", "error", err)
	}
}

// initThemes loads the light/dark mode, honoring a ui.theme override.
func initThemes(ctx context.Context, cfg *config.Config, store *storage.SQLiteStorage) (*themes.Manager, error) {
	manager := themes.NewManager(store)
	mode, err := manager.Init(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.UI.Theme != "" {
		override, parseErr := themes.ParseMode(cfg.UI.Theme)
		if parseErr != nil {
			return nil, parseErr
		}
		manager.Override(override)
		mode = override
	}
	slog.Debug("Theme applied", "mode", mode)
	return manager, nil
}

// historyFlags are the filter flags shared by the history commands.
type historyFlags struct {
	start    string
	end      string
	min      string
	max      string
	strategy string
}

func (f *historyFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "only transactions on or after this date (YYYY-MM-DD[THH:MM])")
	cmd.Flags().StringVar(&f.end, "end", "", "only transactions on or before this date (YYYY-MM-DD[THH:MM])")
	cmd.Flags().StringVar(&f.min, "min", "", "minimum bill amount")
	cmd.Flags().StringVar(&f.max, "max", "", "maximum bill amount")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "change strategy (minimal, maximal)")
}

func (f historyFlags) form() viewmodel.HistoryFilterForm {
	return viewmodel.HistoryFilterForm{
		StartDate: f.start,
		EndDate:   f.end,
		MinAmount: f.min,
		MaxAmount: f.max,
		Strategy:  f.strategy,
	}
}

// fetchHistory returns the full history when no filter is set and the
// filtered history otherwise.
func fetchHistory(ctx context.Context, client *exchange.Client, flags historyFlags) ([]model.Transaction, error) {
	form := flags.form()
	if form.IsEmpty() {
		return client.History(ctx)
	}
	filter, err := form.Filter(timeLocation)
	if err != nil {
		return nil, common.NewUserError("Invalid filter", err)
	}
	return client.FilterHistory(ctx, filter)
}

// printLine writes a line of user-facing output.
func printLine(w io.Writer, a ...any) {
	fmt.Fprintln(w, a...) //nolint:forbidigo // User-facing output
}

// msgUnauthorized replaces the fallback when the backend rejects the credentials.
const msgUnauthorized = "Authentication failed; check auth.username and auth.password."

// failure turns a backend error into the message shown to the user: the
// server's own error text when it sent one, fallback otherwise.
func failure(err error, fallback string) error {
	slog.Debug("Request failed", "error", err)
	if exchange.IsUnauthorized(err) {
		fallback = msgUnauthorized
	}
	return common.NewUserError(common.MessageOr(err, fallback), nil)
}
