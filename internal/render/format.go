package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
)

// Format is an export format.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatPNG   Format = "png"
	FormatPrint Format = "html"
)

// ParseFormat accepts pdf, png, html or print.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "png", "image":
		return FormatPNG, nil
	case "html", "print":
		return FormatPrint, nil
	}
	return "", fmt.Errorf("%w: unknown render format %q", apperrors.ErrValidation, s)
}

// Output is an exported document.
type Output struct {
	Data        []byte
	ContentType string
	Filename    string
	Pages       int
}

// Exporter turns a composition into bytes.
type Exporter interface {
	Export(ctx context.Context, c *Composition) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExporterFor returns the exporter of f.
func ExporterFor(f Format) (Exporter, error) {
	switch f {
	case FormatPDF:
		return PDFExporter{}, nil
	case FormatPNG:
		return PNGExporter{}, nil
	case FormatPrint:
		return PrintHTMLExporter{}, nil
	}
	return nil, fmt.Errorf("%w: unknown render format %q", apperrors.ErrValidation, f)
}

// Renderer composes and exports invoices.
type Renderer struct {
	engine *Engine
	now    func() time.Time
}

// NewRenderer returns a renderer that paginates with engine.
func NewRenderer(engine *Engine) *Renderer {
	return &Renderer{engine: engine, now: time.Now}
}

// Render builds the view of inv, paginates it and exports it as f. Logo and
// signature may be nil.
func (r *Renderer) Render(ctx context.Context, inv domain.Invoice, settings domain.Settings, logo, signature *Image, f Format) (*Output, error) {
	exporter, err := ExporterFor(f)
	if err != nil {
		return nil, err
	}
	view := NewView(inv, settings, r.now())
	view.Logo = logo
	view.Signature = signature

	comp, err := r.engine.Compose(ctx, view)
	if err != nil {
		return nil, err
	}
	data, err := exporter.Export(ctx, comp)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", f, err)
	}
	return &Output{
		Data:        data,
		ContentType: exporter.ContentType(),
		Filename:    filename(inv.ID) + "." + exporter.Extension(),
		Pages:       comp.PageCount(),
	}, nil
}

// filename keeps the invoice id safe for a Content-Disposition header.
func filename(id string) string {
	if id == "" {
		return "invoice"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, id)
}
