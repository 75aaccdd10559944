package render

// Page geometry in CSS pixels at 96 dpi (A4). Measurement and every exporter
// derive their sizes from these constants.
const (
	PageWidthPx  = 794
	PageHeightPx = 1122
	PageMarginPx = 40

	ContentWidthPx = PageWidthPx - 2*PageMarginPx

	// HeaderBandPx is the title band repeated on every page.
	HeaderBandPx = 22
	// FooterBandPx carries the page counter.
	FooterBandPx = 20

	// MaxBodyHeightPx is what remains for paginated blocks.
	MaxBodyHeightPx = PageHeightPx - 2*PageMarginPx - HeaderBandPx - FooterBandPx

	lineHeightPx   = 16
	blockPadPx     = 6
	cellPadPx      = 4
	gridColumns    = 12
	glyphAdvancePx = 7
)

// A4 is 210 mm wide.
const mmPerPx = 210.0 / PageWidthPx

func pxToMM(px int) float64 {
	return float64(px) * mmPerPx
}

// columnWidthPx is the width of span grid columns inside the content box.
func columnWidthPx(span int) int {
	return ContentWidthPx * span / gridColumns
}
