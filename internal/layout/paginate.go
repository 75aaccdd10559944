// Package layout packs measured invoice blocks into fixed-height pages.
//
// Paginate is pure: it sees only heights, never the blocks themselves, so the
// same plan can drive every exporter.
package layout

// MaxPageBodyHeight is the default body budget of one page, in pixels.
const MaxPageBodyHeight = 1000

// Section identifies which part of a Document a placement refers to.
type Section int

const (
	SectionBefore Section = iota
	SectionTableRow
	SectionTableFooter
	SectionAfter
)

func (s Section) String() string {
	switch s {
	case SectionBefore:
		return "before"
	case SectionTableRow:
		return "row"
	case SectionTableFooter:
		return "footer"
	case SectionAfter:
		return "after"
	}
	return "unknown"
}

// Table describes the line-item table. The header repeats on every page the
// table spans; the footer (totals) follows the last row.
type Table struct {
	Header int
	Rows   []int
	Footer int
}

// Document lists block heights in reading order.
type Document struct {
	Before []int
	Table  Table
	After  []int
}

// Placement puts one element on a page. Index points into Before, Rows or
// After depending on Section. WithTableHeader is set on the first table
// element of each page, which is preceded by the table header.
type Placement struct {
	Section         Section
	Index           int
	WithTableHeader bool
	Height          int
}

// Page is one output page.
type Page struct {
	Placements []Placement
	Height     int
}

// Paginate greedily fills pages of the given budget. An element that would
// overflow a non-empty page starts a new one. The table header is charged
// again on every page the table continues on, and the last row is kept
// together with the footer. An element taller than the budget gets a page of
// its own and overflows it.
func Paginate(doc Document, budget int) []Page {
	if budget <= 0 {
		budget = MaxPageBodyHeight
	}
	p := &paginator{budget: budget}

	for i, h := range doc.Before {
		p.place(Placement{Section: SectionBefore, Index: i, Height: h})
	}

	rows := doc.Table.Rows
	if len(rows) == 0 && (doc.Table.Header > 0 || doc.Table.Footer > 0) {
		p.place(Placement{
			Section:         SectionTableFooter,
			WithTableHeader: true,
			Height:          doc.Table.Header + doc.Table.Footer,
		})
	}
	for i, h := range rows {
		last := i == len(rows)-1
		need := h
		if last {
			need += doc.Table.Footer
		}
		header := 0
		if !p.tableOpen {
			header = doc.Table.Header
		}
		if p.height+header+need > budget && len(p.current) > 0 {
			p.flush()
			header = doc.Table.Header
		}
		p.add(Placement{Section: SectionTableRow, Index: i, WithTableHeader: !p.tableOpen, Height: header + h})
		p.tableOpen = true
		if last {
			p.add(Placement{Section: SectionTableFooter, Height: doc.Table.Footer})
		}
	}
	p.tableOpen = false

	for i, h := range doc.After {
		p.place(Placement{Section: SectionAfter, Index: i, Height: h})
	}

	p.flush()
	return p.pages
}

// PageCount is a convenience for callers that only need the number of pages.
func PageCount(doc Document, budget int) int {
	return len(Paginate(doc, budget))
}

type paginator struct {
	budget    int
	height    int
	current   []Placement
	pages     []Page
	tableOpen bool
}

func (p *paginator) place(pl Placement) {
	if p.height+pl.Height > p.budget && len(p.current) > 0 {
		p.flush()
	}
	p.add(pl)
}

func (p *paginator) add(pl Placement) {
	p.current = append(p.current, pl)
	p.height += pl.Height
}

func (p *paginator) flush() {
	if len(p.current) == 0 {
		return
	}
	p.pages = append(p.pages, Page{Placements: p.current, Height: p.height})
	p.current = nil
	p.height = 0
	p.tableOpen = false
}
