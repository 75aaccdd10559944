package render

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorInk   = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorMuted = &props.Color{Red: 108, Green: 117, Blue: 125}
	colorShade = &props.Color{Red: 241, Green: 243, Blue: 245}
)

const pdfFontSize = 8

// pdfBodyRoom leaves a couple of pixels so float rounding never spills the
// footer onto an extra page.
const pdfBodyRoom = MaxBodyHeightPx - 2

// PDFExporter writes every paginated page as one explicit PDF page.
type PDFExporter struct{}

func (PDFExporter) ContentType() string { return "application/pdf" }
func (PDFExporter) Extension() string   { return "pdf" }

func (PDFExporter) Export(ctx context.Context, c *Composition) ([]byte, error) {
	margin := pxToMM(PageMarginPx)
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(margin).WithRightMargin(margin).
		WithTopMargin(margin).WithBottomMargin(margin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: pdfFontSize}).
		WithTitle(c.View.Title+" "+c.View.Invoice.ID, true).
		WithAuthor(c.View.Seller.Name, true).
		Build()
	m := maroto.New(cfg)

	total := c.PageCount()
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows := []core.Row{pdfHeaderBand(c.View)}
		used := 0
		for _, pb := range c.PageBlocks(i) {
			// A block the engine could not cut is clipped to the page, since
			// maroto would otherwise start an unplanned page for it.
			pb.Height = min(pb.Height, pdfBodyRoom-used)
			if pb.Height <= 0 {
				break
			}
			rows = append(rows, pdfBlockRow(pb))
			used += pb.Height
		}
		if spare := pdfBodyRoom - used; spare > 0 {
			rows = append(rows, row.New(pxToMM(spare)))
		}
		rows = append(rows, pdfFooterBand(i+1, total))
		m.AddPages(page.New().Add(rows...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func pdfHeaderBand(v *View) core.Row {
	return row.New(pxToMM(HeaderBandPx)).Add(
		col.New(8).Add(text.New(v.Title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorInk, Top: 1,
		})),
		col.New(4).Add(text.New(v.CopyLabel, props.Text{
			Size: 7, Align: align.Right, Color: colorMuted, Top: 1.5,
		})),
	)
}

func pdfFooterBand(n, total int) core.Row {
	return row.New(pxToMM(FooterBandPx)).Add(
		col.New(12).Add(text.New(fmt.Sprintf("Page %d/%d", n, total), props.Text{
			Size: 7, Align: align.Right, Color: colorMuted, Top: 1.5,
		})),
	)
}

func pdfBlockRow(pb PlacedBlock) core.Row {
	r := row.New(pxToMM(pb.Height))
	if pb.Block.Shaded {
		r.WithStyle(&props.Cell{BackgroundColor: colorShade})
	}
	cols := make([]core.Col, 0, len(pb.Block.Columns))
	for _, c := range pb.Block.Columns {
		cols = append(cols, pdfColumn(c, pb.Height))
	}
	return r.Add(cols...)
}

func pdfColumn(c Column, rowHeight int) core.Col {
	cl := col.New(c.Span)
	top := blockPadPx

	if c.ImageHeight > 0 && (c.Image != nil || c.QR != "") {
		rect := props.Rect{
			Top:     pxToMM(blockPadPx),
			Percent: imagePercent(c.ImageHeight, rowHeight),
			Center:  c.Align == AlignCenter,
		}
		switch {
		case c.QR != "":
			cl.Add(code.NewQr(c.QR, rect))
		case c.Image.Format == ImageJPEG:
			cl.Add(image.NewFromBytes(c.Image.Data, extension.Jpg, rect))
		default:
			cl.Add(image.NewFromBytes(c.Image.Data, extension.Png, rect))
		}
		top += c.ImageHeight
	}

	for i, l := range wrapColumn(c, textAdvancePx) {
		p := props.Text{
			Size:  pdfFontSize,
			Color: colorInk,
			Top:   pxToMM(top + i*lineHeightPx + 2),
			Left:  pxToMM(cellPadPx),
			Right: pxToMM(cellPadPx),
			Align: pdfAlign(c.Align),
		}
		if l.Bold {
			p.Style = fontstyle.Bold
		}
		cl.Add(text.New(l.Text, p))
	}
	return cl
}

func imagePercent(imageHeight, rowHeight int) float64 {
	if rowHeight <= 0 {
		return 100
	}
	pct := float64(imageHeight) * 100 / float64(rowHeight)
	if pct > 100 {
		return 100
	}
	return pct
}

func pdfAlign(a Align) align.Type {
	switch a {
	case AlignRight:
		return align.Right
	case AlignCenter:
		return align.Center
	}
	return align.Left
}
