package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/contact"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

func newListCommand(cfg *config.AppConfig) *cobra.Command {
	var mode, search string
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "list <category>",
		Short:     "Print the visible items of a category",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"projects", "animations", "edits", "blog"},
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}
			filter, err := model.ParseFilterMode(mode)
			if err != nil {
				return err
			}

			store, db, err := app.OpenStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			res, err := service.NewContentService(store, nil).List(cmd.Context(), category, filter, search)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tFEATURED\tTITLE")
			for _, it := range res.Items {
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", it.ItemID(), it.ItemDate(), it.IsFeatured(), it.ItemTitle())
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(model.FilterFeatured), "Filter mode: featured or recent")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive title substring")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func newContactCommand(cfg *config.AppConfig) *cobra.Command {
	var form contact.Form

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Print the mailto link for a contact message",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, db, err := app.OpenStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			h, err := service.NewContactService(app.ContactAddress(cfg, store)).Compose(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.URI)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "Your email address")
	cmd.Flags().StringVar(&form.Subject, "subject", "", "Message subject")
	cmd.Flags().StringVar(&form.Message, "message", "", "Message text")
	cmd.Flags().StringVar(&cfg.Contact.Address, "to", cfg.Contact.Address, "Recipient address; defaults to the profile's")
	return cmd
}
