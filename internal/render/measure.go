package render

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Measurer reports the printed height of a block in pixels.
type Measurer interface {
	Measure(ctx context.Context, b Block) (int, error)
}

// textFace is the fixed-width face used to measure and to rasterize.
var textFace font.Face = basicfont.Face7x13

var textAdvancePx = faceAdvance(textFace)

func faceAdvance(f font.Face) int {
	adv, ok := f.GlyphAdvance('0')
	if !ok || adv.Round() <= 0 {
		return glyphAdvancePx
	}
	return adv.Round()
}

// TextMeasurer computes heights from font metrics: text is wrapped to the
// column width and every line takes lineHeightPx.
type TextMeasurer struct {
	advance int
}

// NewTextMeasurer returns a measurer for the built-in face.
func NewTextMeasurer() *TextMeasurer {
	return &TextMeasurer{advance: textAdvancePx}
}

func (m *TextMeasurer) Measure(ctx context.Context, b Block) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return blockHeight(b, m.advance), nil
}

func blockHeight(b Block, advance int) int {
	tallest := 0
	for _, c := range b.Columns {
		if h := columnHeight(c, advance); h > tallest {
			tallest = h
		}
	}
	return tallest + 2*blockPadPx
}

func columnHeight(c Column, advance int) int {
	h := 0
	if c.Image != nil || c.QR != "" {
		h += c.ImageHeight
	}
	return h + len(wrapColumn(c, advance))*lineHeightPx
}

// wrappedLine is one printed line after wrapping.
type wrappedLine struct {
	Text string
	Bold bool
}

// wrapColumn wraps every line of c to the column width. Exporters print these
// lines so that what they draw matches what was measured.
func wrapColumn(c Column, advance int) []wrappedLine {
	limit := charsPerLine(c.Span, advance)
	var out []wrappedLine
	for _, l := range c.Lines {
		for _, part := range wrapText(l.Text, limit) {
			out = append(out, wrappedLine{Text: part, Bold: l.Bold})
		}
	}
	return out
}

func charsPerLine(span, advance int) int {
	if advance <= 0 {
		advance = glyphAdvancePx
	}
	n := (columnWidthPx(span) - 2*cellPadPx) / advance
	if n < 1 {
		return 1
	}
	return n
}

// wrapText breaks s into lines of at most limit runes at word boundaries.
// Words longer than limit are split. An empty string is one empty line.
func wrapText(s string, limit int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curLen = 0
	}
	for _, w := range words {
		for utf8.RuneCountInString(w) > limit {
			if curLen > 0 {
				flush()
			}
			r := []rune(w)
			lines = append(lines, string(r[:limit]))
			w = string(r[limit:])
		}
		wl := utf8.RuneCountInString(w)
		if wl == 0 {
			continue
		}
		switch {
		case curLen == 0:
		case curLen+1+wl <= limit:
			cur.WriteByte(' ')
			curLen++
		default:
			flush()
		}
		cur.WriteString(w)
		curLen += wl
	}
	if curLen > 0 {
		flush()
	}
	return lines
}
