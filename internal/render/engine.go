package render

import (
	"context"
	"fmt"

	"github.com/SscSPs/sheetbill/internal/layout"
)

// Engine measures the blocks of a view and packs them into pages.
type Engine struct {
	measurer Measurer
	budget   int
}

// NewEngine returns an engine with the given body budget. A budget outside
// (0, MaxBodyHeightPx] falls back to MaxBodyHeightPx, the most a page holds.
func NewEngine(m Measurer, budget int) *Engine {
	if m == nil {
		m = NewTextMeasurer()
	}
	if budget <= 0 || budget > MaxBodyHeightPx {
		budget = MaxBodyHeightPx
	}
	return &Engine{measurer: m, budget: budget}
}

// PlacedBlock is a block on a page with its measured height.
type PlacedBlock struct {
	Block  Block
	Height int
}

// Composition is a paginated view ready for export.
type Composition struct {
	View   *View
	Blocks Blocks
	Plan   layout.Document
	Pages  []layout.Page
}

// Compose measures every block in order and paginates the result. Blocks
// taller than a page are cut into parts first, so no page overflows. Measuring
// stops at the first error, including cancellation of ctx.
func (e *Engine) Compose(ctx context.Context, v *View) (*Composition, error) {
	blocks := BuildBlocks(v)
	measure := func(b Block) (int, error) {
		h, err := e.measurer.Measure(ctx, b)
		if err != nil {
			return 0, fmt.Errorf("measure %s block: %w", b.Kind, err)
		}
		return h, nil
	}
	fit := func(bs []Block, limit int) ([]Block, []int, error) {
		outBlocks := make([]Block, 0, len(bs))
		outHeights := make([]int, 0, len(bs))
		for _, b := range bs {
			h, err := measure(b)
			if err != nil {
				return nil, nil, err
			}
			parts := splitTall(b, h, limit)
			if len(parts) == 1 {
				outBlocks = append(outBlocks, b)
				outHeights = append(outHeights, h)
				continue
			}
			for _, part := range parts {
				ph, err := measure(part)
				if err != nil {
					return nil, nil, err
				}
				outBlocks = append(outBlocks, part)
				outHeights = append(outHeights, ph)
			}
		}
		return outBlocks, outHeights, nil
	}

	var (
		plan layout.Document
		err  error
	)
	if blocks.Before, plan.Before, err = fit(blocks.Before, e.budget); err != nil {
		return nil, err
	}
	if plan.Table.Header, err = measure(blocks.TableHeader); err != nil {
		return nil, err
	}
	if plan.Table.Footer, err = measure(blocks.TableFooter); err != nil {
		return nil, err
	}
	rowLimit := max(e.budget-plan.Table.Header-plan.Table.Footer, lineHeightPx+2*blockPadPx)
	if blocks.Rows, plan.Table.Rows, err = fit(blocks.Rows, rowLimit); err != nil {
		return nil, err
	}
	if blocks.After, plan.After, err = fit(blocks.After, e.budget); err != nil {
		return nil, err
	}

	pages := layout.Paginate(plan, e.budget)
	if len(pages) == 0 {
		pages = []layout.Page{{}}
	}
	return &Composition{View: v, Blocks: blocks, Plan: plan, Pages: pages}, nil
}

// PageCount is the number of pages in the composition.
func (c *Composition) PageCount() int {
	return len(c.Pages)
}

// PageBlocks resolves the placements of page i into blocks, inserting the
// table header where a table segment starts.
func (c *Composition) PageBlocks(i int) []PlacedBlock {
	if i < 0 || i >= len(c.Pages) {
		return nil
	}
	header := PlacedBlock{Block: c.Blocks.TableHeader, Height: c.Plan.Table.Header}
	var out []PlacedBlock
	for _, pl := range c.Pages[i].Placements {
		if pl.WithTableHeader {
			out = append(out, header)
		}
		switch pl.Section {
		case layout.SectionBefore:
			out = append(out, PlacedBlock{Block: c.Blocks.Before[pl.Index], Height: c.Plan.Before[pl.Index]})
		case layout.SectionTableRow:
			out = append(out, PlacedBlock{Block: c.Blocks.Rows[pl.Index], Height: c.Plan.Table.Rows[pl.Index]})
		case layout.SectionTableFooter:
			out = append(out, PlacedBlock{Block: c.Blocks.TableFooter, Height: c.Plan.Table.Footer})
		case layout.SectionAfter:
			out = append(out, PlacedBlock{Block: c.Blocks.After[pl.Index], Height: c.Plan.After[pl.Index]})
		}
	}
	return out
}
