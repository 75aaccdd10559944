package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/sheetbill/internal/render"
	"github.com/spf13/cobra"
)

type pagePlan struct {
	Page     int      `json:"page"`
	Height   int      `json:"height"`
	Budget   int      `json:"budget"`
	Elements []string `json:"elements"`
}

func newPaginateCmd(opts *globalOptions) *cobra.Command {
	var (
		in     string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "paginate",
		Short: "Print the page plan of an invoice JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			inv, settings, err := opts.loadInput(in)
			if err != nil {
				return err
			}
			comp, err := engine.Compose(cmd.Context(), render.NewView(inv, settings, nowFunc()))
			if err != nil {
				return err
			}

			plans := make([]pagePlan, 0, comp.PageCount())
			for i, page := range comp.Pages {
				plan := pagePlan{Page: i + 1, Height: page.Height, Budget: opts.bodyHeight}
				for _, pb := range comp.PageBlocks(i) {
					plan.Elements = append(plan.Elements, fmt.Sprintf("%s(%d)", pb.Block.Kind, pb.Height))
				}
				plans = append(plans, plan)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(plans)
			}
			fmt.Fprintf(w, "%s: %d items, %d pages\n", inv.ID, len(inv.Items), len(plans))
			for _, p := range plans {
				fmt.Fprintf(w, "page %d  %d/%d  %s\n", p.Page, p.Height, p.Budget, strings.Join(p.Elements, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "invoice JSON file, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
