package render

// splitTall breaks a block taller than limit into consecutive parts that each
// fit, cutting every column at the same wrapped line. Images and QR codes stay
// with the first part. A block that cannot be cut is returned unchanged.
func splitTall(b Block, height, limit int) []Block {
	if height <= limit || limit <= 0 {
		return []Block{b}
	}

	wrapped := make([][]wrappedLine, len(b.Columns))
	total, image := 0, 0
	for i, c := range b.Columns {
		wrapped[i] = wrapColumn(c, textAdvancePx)
		total = max(total, len(wrapped[i]))
		if c.Image != nil || c.QR != "" {
			image = max(image, c.ImageHeight)
		}
	}

	perPart := max((limit-2*blockPadPx)/lineHeightPx, 1)
	first := max(perPart-(image+lineHeightPx-1)/lineHeightPx, 1)
	if total <= first {
		return []Block{b}
	}

	var parts []Block
	for start, n := 0, first; start < total; start, n = start+n, perPart {
		end := min(start+n, total)
		part := Block{Kind: b.Kind, Shaded: b.Shaded, Columns: make([]Column, len(b.Columns))}
		for i, c := range b.Columns {
			col := Column{Span: c.Span, Align: c.Align}
			if start == 0 {
				col.Image, col.QR, col.ImageHeight = c.Image, c.QR, c.ImageHeight
			}
			lines := wrapped[i]
			for _, l := range lines[min(start, len(lines)):min(end, len(lines))] {
				col.Lines = append(col.Lines, Line{Text: l.Text, Bold: l.Bold})
			}
			part.Columns[i] = col
		}
		parts = append(parts, part)
	}
	return parts
}
