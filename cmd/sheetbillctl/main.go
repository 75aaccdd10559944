// Command sheetbillctl renders and paginates invoices from JSON files,
// without a spreadsheet or a running server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/render"
	"github.com/spf13/cobra"
)

const defaultBodyHeight = 1000

// nowFunc dates the payment status printed on the invoice.
var nowFunc = time.Now

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	settingsPath string
	bodyHeight   int
	verbose      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "sheetbillctl",
		Short:         "Render and paginate SheetBill invoices offline",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&opts.settingsPath, "settings", "", "settings JSON (company details, banks, preferences)")
	root.PersistentFlags().IntVar(&opts.bodyHeight, "body-height", defaultBodyHeight, "page body height in layout pixels")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log measurement details to stderr")

	root.AddCommand(newRenderCmd(opts), newPaginateCmd(opts))
	return root
}

func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *globalOptions) engine() (*render.Engine, error) {
	if o.bodyHeight <= 0 {
		return nil, fmt.Errorf("--body-height must be positive, got %d", o.bodyHeight)
	}
	return render.NewEngine(render.NewTextMeasurer(), o.bodyHeight), nil
}

// loadInput reads an invoice and optional settings and recomputes the
// invoice's derived amounts.
func (o *globalOptions) loadInput(invoicePath string) (domain.Invoice, domain.Settings, error) {
	var (
		inv      domain.Invoice
		settings domain.Settings
	)
	if err := readJSON(invoicePath, &inv); err != nil {
		return inv, settings, fmt.Errorf("read invoice: %w", err)
	}
	if o.settingsPath != "" {
		if err := readJSON(o.settingsPath, &settings); err != nil {
			return inv, settings, fmt.Errorf("read settings: %w", err)
		}
	}
	inv.Recalculate(settings.Preferences.Rounding)
	return inv, settings, nil
}

func readJSON(path string, into any) error {
	if path == "" {
		return fmt.Errorf("no file given")
	}
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, into)
}
