package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/service"
	"portfolio/internal/tui"
)

func newBrowseCommand(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the portfolio in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Log lines would corrupt the alt screen.
			logging.Setup(io.Discard, cfg.Location())

			store, db, err := app.OpenStore(ctx, cfg)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			m, err := tui.New(ctx,
				service.NewContentService(store, nil),
				service.NewContactService(app.ContactAddress(cfg, store)),
			)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
}
