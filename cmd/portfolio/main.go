package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"portfolio/internal/config"
	"portfolio/internal/logging"
)

var version = "dev"

func main() {
	if err := newRootCommand(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.AppConfig) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio content server and tools",
		Long: `portfolio serves a personal portfolio's content catalog over HTTP and
provides commands to migrate and seed the database, upload media, query
content and browse the site from a terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), cfg.Location())
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfg.Content.Source, "source", cfg.Content.Source, "Content source: file or postgres")
	rootCmd.PersistentFlags().StringVar(&cfg.Content.File, "file", cfg.Content.File, "Catalog YAML file for the file source")
	rootCmd.PersistentFlags().StringVar(&cfg.Content.BlogDir, "blog-dir", cfg.Content.BlogDir, "Directory of Markdown blog posts for the file source")

	rootCmd.AddCommand(newServeCommand(cfg))
	rootCmd.AddCommand(newMigrateCommand(cfg))
	rootCmd.AddCommand(newSeedCommand(cfg))
	rootCmd.AddCommand(newMediaCommand(cfg))
	rootCmd.AddCommand(newListCommand(cfg))
	rootCmd.AddCommand(newContactCommand(cfg))
	rootCmd.AddCommand(newBrowseCommand(cfg))
	return rootCmd
}
