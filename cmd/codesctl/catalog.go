package main

import (
	"fmt"

	"github.com/grachmannico95/codes-bot/internal/app"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCatalogCmd(root *rootOptions) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the catalog workbook",
	}

	catalogCmd.AddCommand(&cobra.Command{
		Use:   "lookup <article>",
		Short: "Print the barcode of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadCatalog(cmd, root)
			if err != nil {
				return err
			}

			barcode, ok := p.Catalog.Barcode(args[0])
			if !ok {
				return fmt.Errorf("article %q not found in catalog", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), barcode)
			return nil
		},
	})

	catalogCmd.AddCommand(&cobra.Command{
		Use:   "reverse <barcode>",
		Short: "Print the article that owns a barcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadCatalog(cmd, root)
			if err != nil {
				return err
			}

			article, ok := p.Catalog.Article(args[0])
			if !ok {
				return fmt.Errorf("barcode %q not found in catalog", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), article)
			return nil
		},
	})

	var output string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print every catalog entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadCatalog(cmd, root)
			if err != nil {
				return err
			}

			entries := p.Catalog.Entries()
			switch output {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(entries)
			case "text":
				for _, entry := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Article, entry.Barcode)
				}
				return nil
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}
	listCmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")
	catalogCmd.AddCommand(listCmd)

	return catalogCmd
}

func loadCatalog(cmd *cobra.Command, root *rootOptions) (*app.Pipeline, error) {
	p, err := root.pipeline(root.config())
	if err != nil {
		return nil, err
	}
	if err := p.Catalog.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return p, nil
}
