package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// PrintHTMLExporter renders every page into one HTML document that opens the
// print dialog once loaded.
type PrintHTMLExporter struct{}

func (PrintHTMLExporter) ContentType() string { return "text/html; charset=utf-8" }
func (PrintHTMLExporter) Extension() string   { return "html" }

type htmlPage struct {
	Number int
	Blocks []htmlBlock
}

type htmlBlock struct {
	Kind    BlockKind
	Height  int
	Shaded  bool
	Columns []htmlColumn
}

type htmlColumn struct {
	WidthPct    float64
	Align       string
	Image       template.URL
	ImageHeight int
	Lines       []wrappedLine
}

type htmlDocument struct {
	Title      string
	CopyLabel  string
	Pages      []htmlPage
	Total      int
	PageWidth  int
	PageHeight int
	Margin     int
	HeaderBand int
	FooterBand int
	Body       int
	LineHeight int
	Pad        int
	CellPad    int
}

var printTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 0; }
body { margin: 0; background: #e9ecef; font: 12px/{{.LineHeight}}px monospace; color: #212529; }
.page { position: relative; box-sizing: border-box; width: {{.PageWidth}}px; height: {{.PageHeight}}px; padding: {{.Margin}}px; margin: 0 auto 16px; background: #fff; overflow: hidden; page-break-after: always; }
.band { display: flex; justify-content: space-between; align-items: center; }
.head { height: {{.HeaderBand}}px; font-weight: bold; }
.body { height: {{.Body}}px; }
.foot { height: {{.FooterBand}}px; justify-content: flex-end; color: #6c757d; }
.label { color: #6c757d; font-weight: normal; font-size: 10px; }
.block { display: flex; box-sizing: border-box; padding: {{.Pad}}px 0; overflow: hidden; }
.shaded { background: #f1f3f5; }
.item_row, .table_footer { border-bottom: 1px solid #dee2e6; }
.col { box-sizing: border-box; padding: 0 {{.CellPad}}px; white-space: pre; }
.col img { display: block; object-fit: contain; max-width: 100%; }
.right { text-align: right; } .right img { margin-left: auto; }
.center { text-align: center; } .center img { margin: 0 auto; }
.bold { font-weight: bold; }
@media print { body { background: none; } .page { margin: 0; } }
</style>
</head>
<body onload="window.print()">
{{- range $p := .Pages}}
<div class="page">
  <div class="band head"><span>{{$.Title}}</span><span class="label">{{$.CopyLabel}}</span></div>
  <div class="body">
  {{- range .Blocks}}
    <div class="block {{.Kind}}{{if .Shaded}} shaded{{end}}" style="height: {{.Height}}px">
    {{- range .Columns}}
      <div class="col {{.Align}}" style="width: {{printf "%.4f" .WidthPct}}%">
        {{- if .Image}}<img src="{{.Image}}" style="height: {{.ImageHeight}}px" alt="">{{end}}
        {{- range .Lines}}<div{{if .Bold}} class="bold"{{end}}>{{.Text}}</div>{{end}}
      </div>
    {{- end}}
    </div>
  {{- end}}
  </div>
  <div class="band foot">Page {{$p.Number}}/{{$.Total}}</div>
</div>
{{- end}}
</body>
</html>
`))

func (PrintHTMLExporter) Export(ctx context.Context, c *Composition) ([]byte, error) {
	doc := htmlDocument{
		Title:      c.View.Title,
		CopyLabel:  c.View.CopyLabel,
		Total:      c.PageCount(),
		PageWidth:  PageWidthPx,
		PageHeight: PageHeightPx,
		Margin:     PageMarginPx,
		HeaderBand: HeaderBandPx,
		FooterBand: FooterBandPx,
		Body:       MaxBodyHeightPx,
		LineHeight: lineHeightPx,
		Pad:        blockPadPx,
		CellPad:    cellPadPx,
	}
	for i := 0; i < c.PageCount(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := htmlPage{Number: i + 1}
		for _, pb := range c.PageBlocks(i) {
			p.Blocks = append(p.Blocks, toHTMLBlock(pb))
		}
		doc.Pages = append(doc.Pages, p)
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("execute print template: %w", err)
	}
	return buf.Bytes(), nil
}

func toHTMLBlock(pb PlacedBlock) htmlBlock {
	hb := htmlBlock{Kind: pb.Block.Kind, Height: pb.Height, Shaded: pb.Block.Shaded}
	for _, c := range pb.Block.Columns {
		hc := htmlColumn{
			WidthPct:    float64(c.Span) * 100 / gridColumns,
			Align:       htmlAlign(c.Align),
			ImageHeight: c.ImageHeight,
			Lines:       wrapColumn(c, textAdvancePx),
		}
		switch {
		case c.QR != "":
			hc.Image = qrDataURI(c.QR, c.ImageHeight)
		case c.Image != nil:
			hc.Image = dataURI(c.Image)
		}
		hb.Columns = append(hb.Columns, hc)
	}
	return hb
}

func htmlAlign(a Align) string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return "left"
}

func dataURI(img *Image) template.URL {
	mime := "image/png"
	if img.Format == ImageJPEG {
		mime = "image/jpeg"
	}
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data))
}

func qrDataURI(payload string, size int) template.URL {
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return ""
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return ""
	}
	return dataURI(&Image{Data: buf.Bytes(), Format: ImagePNG})
}
