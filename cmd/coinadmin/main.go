package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	version  = "dev"
	closeLog = func() {}
	rootCmd = &cobra.Command{
		Use:   "coinadmin",
		Short: "🪙 Coin exchange machine administration",
		Long: `coinadmin: a terminal admin client for a coin-exchange machine.

Check machine status, exchange bills for coins, maintain the coin inventory
and browse the transaction history, either from the interactive UI
(coinadmin ui) or from scriptable subcommands.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/coinadmin/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "exchange backend base URL")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("server.base_url", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))

	// Add commands
	rootCmd.AddCommand(uiCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(exchangeCmd())
	rootCmd.AddCommand(inventoryCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(billsCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(themeCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeLog()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	config.SetDefaults(viper.GetViper())

	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(filepath.Join(home, ".config", "coinadmin"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. COINADMIN_SERVER_BASE_URL
	viper.SetEnvPrefix("COINADMIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	closer, err := setupLogging(logFallback(cmd))
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	closeLog = closer
	return nil
}

// logFallback is where logs go without logging.file. The UI owns the
// terminal, so its logs are discarded.
func logFallback(cmd *cobra.Command) io.Writer {
	if cmd.Name() == "ui" {
		return io.Discard
	}
	return os.Stderr
}

// setupLogging installs the global logger. Logs go to logging.file when set,
// otherwise to fallback. The returned func closes the log file.
func setupLogging(fallback io.Writer) (func(), error) {
	noop := func() {}

	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return noop, err
	}

	path := config.ExpandPath(viper.GetString("logging.file"))
	if path == "" {
		return noop, common.SetupLogger(fallback, level, viper.GetString("logging.format"))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return noop, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600) //nolint:gosec // User-chosen log path
	if err != nil {
		return noop, fmt.Errorf("failed to open log file: %w", err)
	}
	closer := func() {
		if err := f.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "failed to close log file:", err) //nolint:forbidigo // Logger is gone
		}
	}
	if err := common.SetupLogger(f, level, viper.GetString("logging.format")); err != nil {
		closer()
		return noop, err
	}
	return closer, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coinadmin %s\n", version) //nolint:forbidigo // User-facing output
		},
	}
}
