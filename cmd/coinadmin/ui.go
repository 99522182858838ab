package main

import (
	"github.com/Veraticus/coin-exchange-admin/internal/tui"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	var page string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Launch the interactive admin UI",
		Long: `Open the full-screen admin UI with the dashboard, exchange, inventory,
history, bills and status pages.

Navigate with 1-6 or [ and ], recheck the machine with ctrl+r, toggle
light/dark mode with t and quit with q.
Logs are discarded unless --log-file is set, so they cannot corrupt the screen.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			start, err := viewmodel.ParseRoute(page)
			if err != nil {
				return err
			}

			client, cfg, err := initClient()
			if err != nil {
				return err
			}

			store, err := initPrefs(ctx, cfg)
			if err != nil {
				return err
			}
			defer closePrefs(store)

			manager, err := initThemes(ctx, cfg, store)
			if err != nil {
				return err
			}

			return tui.Run(ctx,
				tui.WithAPI(client),
				tui.WithThemeManager(manager),
				tui.WithStartRoute(start),
				tui.WithPollInterval(cfg.Status.PollInterval),
				tui.WithLocation(timeLocation),
			)
		},
	}

	cmd.Flags().StringVar(&page, "page", "/", "page to open first (/, /exchange, /inventory, /history, /bills, /status)")
	return cmd
}
