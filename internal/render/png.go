package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	inkColor   = color.RGBA{R: 33, G: 37, B: 41, A: 255}
	mutedColor = color.RGBA{R: 108, G: 117, B: 125, A: 255}
	shadeColor = color.RGBA{R: 241, G: 243, B: 245, A: 255}
	ruleColor  = color.RGBA{R: 222, G: 226, B: 230, A: 255}
)

// PNGExporter rasterizes the first page at 794x1122.
type PNGExporter struct{}

func (PNGExporter) ContentType() string { return "image/png" }
func (PNGExporter) Extension() string   { return "png" }

func (PNGExporter) Export(ctx context.Context, c *Composition) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img := rasterizePage(c, 0)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func rasterizePage(c *Composition, index int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, PageWidthPx, PageHeightPx))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	y := PageMarginPx
	drawText(canvas, c.View.Title, PageMarginPx+cellPadPx, y+15, inkColor, true)
	label := c.View.CopyLabel
	drawText(canvas, label, PageWidthPx-PageMarginPx-cellPadPx-textWidth(label), y+15, mutedColor, false)
	y += HeaderBandPx

	for _, pb := range c.PageBlocks(index) {
		rasterizeBlock(canvas, pb, y)
		y += pb.Height
	}

	counter := fmt.Sprintf("Page %d/%d", index+1, c.PageCount())
	footerTop := PageHeightPx - PageMarginPx - FooterBandPx
	drawText(canvas, counter, PageWidthPx-PageMarginPx-cellPadPx-textWidth(counter), footerTop+14, mutedColor, false)
	return canvas
}

func rasterizeBlock(dst *image.RGBA, pb PlacedBlock, top int) {
	if pb.Block.Shaded {
		fillRect(dst, image.Rect(PageMarginPx, top, PageWidthPx-PageMarginPx, top+pb.Height), shadeColor)
	}
	if pb.Block.Kind == KindItemRow || pb.Block.Kind == KindTableFooter {
		fillRect(dst, image.Rect(PageMarginPx, top+pb.Height-1, PageWidthPx-PageMarginPx, top+pb.Height), ruleColor)
	}

	start := 0
	for _, c := range pb.Block.Columns {
		x0 := PageMarginPx + ContentWidthPx*start/gridColumns
		x1 := PageMarginPx + ContentWidthPx*(start+c.Span)/gridColumns
		start += c.Span
		rasterizeColumn(dst, c, image.Rect(x0, top, x1, top+pb.Height))
	}
}

func rasterizeColumn(dst *image.RGBA, c Column, cell image.Rectangle) {
	y := cell.Min.Y + blockPadPx
	inner := image.Rect(cell.Min.X+cellPadPx, y, cell.Max.X-cellPadPx, y+c.ImageHeight)

	if c.ImageHeight > 0 {
		switch {
		case c.QR != "":
			drawQR(dst, c.QR, inner, c.Align)
			y += c.ImageHeight
		case c.Image != nil:
			if src, _, err := image.Decode(bytes.NewReader(c.Image.Data)); err == nil {
				drawScaled(dst, src, inner, c.Align)
			}
			y += c.ImageHeight
		}
	}

	for i, l := range wrapColumn(c, textAdvancePx) {
		w := textWidth(l.Text)
		x := cell.Min.X + cellPadPx
		switch c.Align {
		case AlignRight:
			x = cell.Max.X - cellPadPx - w
		case AlignCenter:
			x = cell.Min.X + (cell.Dx()-w)/2
		}
		drawText(dst, l.Text, x, y+i*lineHeightPx+12, inkColor, l.Bold)
	}
}

// drawScaled fits src into box keeping its aspect ratio.
func drawScaled(dst *image.RGBA, src image.Image, box image.Rectangle, a Align) {
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 || box.Dx() <= 0 || box.Dy() <= 0 {
		return
	}
	w, h := box.Dx(), sb.Dy()*box.Dx()/sb.Dx()
	if h > box.Dy() {
		h, w = box.Dy(), sb.Dx()*box.Dy()/sb.Dy()
	}
	target := image.Rect(alignX(box, w, a), box.Min.Y, alignX(box, w, a)+w, box.Min.Y+h)
	draw.ApproxBiLinear.Scale(dst, target, src, sb, draw.Over, nil)
}

func drawQR(dst *image.RGBA, payload string, box image.Rectangle, a Align) {
	size := box.Dy()
	if box.Dx() < size {
		size = box.Dx()
	}
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return
	}
	x := alignX(box, size, a)
	draw.Draw(dst, image.Rect(x, box.Min.Y, x+size, box.Min.Y+size), scaled, scaled.Bounds().Min, draw.Src)
}

func alignX(box image.Rectangle, w int, a Align) int {
	switch a {
	case AlignRight:
		return box.Max.X - w
	case AlignCenter:
		return box.Min.X + (box.Dx()-w)/2
	}
	return box.Min.X
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawText draws s with its baseline at y. Bold is faked by overstriking.
func drawText(dst *image.RGBA, s string, x, y int, c color.Color, bold bool) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: textFace}
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
	if bold {
		d.Dot = fixed.P(x+1, y)
		d.DrawString(s)
	}
}

func textWidth(s string) int {
	return font.MeasureString(textFace, s).Round()
}
