package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/sheetbill/internal/render"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var (
		in     string
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an invoice JSON file as pdf, png or html",
		Example: `  sheetbillctl render --in invoice.json --format pdf
  sheetbillctl render --in invoice.json --settings settings.json --format html -o inv.html`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			inv, settings, err := opts.loadInput(in)
			if err != nil {
				return err
			}

			result, err := render.NewRenderer(engine).Render(cmd.Context(), inv, settings, nil, nil, f)
			if err != nil {
				return err
			}
			if out == "" {
				out = result.Filename
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(result.Data)
				return err
			}
			if err := os.WriteFile(out, result.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			opts.logger(cmd).Debug("Rendered invoice", slog.String("invoice_id", inv.ID), slog.Int("pages", result.Pages), slog.Int("bytes", len(result.Data)))
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d pages)\n", out, result.Pages)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "invoice JSON file, - for stdin")
	cmd.Flags().StringVar(&format, "format", string(render.FormatPDF), "output format: pdf, png or html")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout (default <invoice id>.<ext>)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
