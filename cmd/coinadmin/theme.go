package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/coin-exchange-admin/internal/cli"
	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/spf13/cobra"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark preference",
		Long: `The light/dark preference is stored in the preference database and
applied when the UI starts. Without a stored value the terminal background
decides.`,
	}

	cmd.AddCommand(themeShowCmd())
	cmd.AddCommand(themeToggleCmd())
	cmd.AddCommand(themeSetCmd())
	return cmd
}

func themeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active mode and where it comes from",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initPrefs(ctx, cfg)
			if err != nil {
				return err
			}
			defer closePrefs(store)

			source := "stored preference"
			if _, err := store.Get(ctx, themes.PreferenceKey); errors.Is(err, common.ErrNotFound) {
				source = "terminal background"
			} else if err != nil {
				return err
			}
			if cfg.UI.Theme != "" {
				source = "ui.theme setting"
			}

			manager, err := initThemes(ctx, cfg, store)
			if err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), fmt.Sprintf("%s %s", cli.BoldStyle.Render(string(manager.Mode())), cli.SubtleStyle.Render("("+source+")")))
			return nil
		},
	}
}

func themeToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark and save the choice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initPrefs(ctx, cfg)
			if err != nil {
				return err
			}
			defer closePrefs(store)

			manager := themes.NewManager(store)
			if _, err := manager.Init(ctx); err != nil {
				return err
			}
			mode, err := manager.Toggle(ctx)
			if err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), cli.FormatSuccess("Theme set to "+string(mode)))
			return nil
		},
	}
}

func themeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Save a light or dark preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(themes.ModeLight), string(themes.ModeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mode, err := themes.ParseMode(args[0])
			if err != nil {
				return common.NewUserError("Unknown theme", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initPrefs(ctx, cfg)
			if err != nil {
				return err
			}
			defer closePrefs(store)

			if err := themes.NewManager(store).Set(ctx, mode); err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), cli.FormatSuccess("Theme set to "+string(mode)))
			return nil
		},
	}
}
