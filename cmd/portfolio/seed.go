package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/repository"
	"portfolio/internal/repository/file"
	"portfolio/internal/repository/postgres"
	"portfolio/internal/storage"
)

func newSeedCommand(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the database content with the catalog file",
		Long: `Reads the catalog from --file (and --blog-dir), validates it and writes it
to PostgreSQL in a single transaction, replacing what was stored before.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, err := file.Open(cfg.Content.File, cfg.Content.BlogDir)
			if err != nil {
				return err
			}
			catalog, err := repository.ReadCatalog(ctx, src)
			if err != nil {
				return err
			}
			// Reject what the server would refuse to load.
			if _, err := content.New(catalog); err != nil {
				return err
			}

			db, err := app.OpenDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.NewContentPostgres(db).SaveCatalog(ctx, catalog); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects, %d animations, %d edits, %d posts\n",
				len(catalog.Projects), len(catalog.Animations), len(catalog.Edits), len(catalog.Blog))
			return nil
		},
	}
}

func newMediaCommand(cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media in object storage",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "push <dir>",
		Short: "Upload every file under dir to the media bucket",
		Long: `Uploads files under dir keyed as media/<relative path>. Catalog entries
that reference those keys are served as presigned URLs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.OpenMedia(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if store == nil {
				return fmt.Errorf("object storage is not configured: set MINIO_ENDPOINT")
			}
			keys, err := storage.UploadDir(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	})
	return cmd
}
