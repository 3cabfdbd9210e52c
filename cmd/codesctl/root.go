package main

import (
	"github.com/grachmannico95/codes-bot/internal/app"
	"github.com/grachmannico95/codes-bot/internal/config"
	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	catalogPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "codesctl",
		Short: "Extract product codes from spreadsheets",
		Long: `codesctl resolves a spreadsheet's article against the catalog workbook
and prints the codes listed in its source column.

Configuration is read from the environment and .env, the same way the
server reads it. Flags override the catalog path and log level.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog workbook (default $CATALOG_FILE_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newProcessCmd(opts))
	rootCmd.AddCommand(newCatalogCmd(opts))

	return rootCmd
}

func (o *rootOptions) config() *config.Config {
	cfg := config.Load()
	if o.catalogPath != "" {
		cfg.Catalog.FilePath = o.catalogPath
	}
	return cfg
}

func (o *rootOptions) pipeline(cfg *config.Config) (*app.Pipeline, error) {
	return app.NewPipeline(cfg, logger.New(o.logLevel))
}
