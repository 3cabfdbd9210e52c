package main

import (
	"fmt"
	"os"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/spf13/cobra"
)

func newProcessCmd(root *rootOptions) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Process one spreadsheet and print or save its codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.config()
			if format != "" {
				cfg.Result.Format = domain.ResultFormat(format)
			}

			p, err := root.pipeline(cfg)
			if err != nil {
				return err
			}

			processed, err := p.Processor.ProcessFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			artifact, err := p.Encoder.Encode(processed)
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}

			if out == "" {
				if cfg.Result.Format == domain.ResultFormatXLSX {
					out = artifact.FileName
				} else {
					_, err := cmd.OutOrStdout().Write(append(artifact.Data, '\n'))
					return err
				}
			}

			if err := os.WriteFile(out, artifact.Data, 0o644); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d codes written to %s\n", processed.Article, len(processed.Codes), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "result format: text or xlsx (default $RESULT_FORMAT)")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")

	return cmd
}
