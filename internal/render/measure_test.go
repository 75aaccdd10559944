package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits", "hello world", 11, []string{"hello world"}},
		{"wraps at word", "hello brave new world", 11, []string{"hello brave", "new world"}},
		{"splits long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after text", "ab abcdefgh", 4, []string{"ab", "abcd", "efgh"}},
		{"collapses spaces", "  a   b  ", 10, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.in, tt.limit))
		})
	}
}

func TestTextMeasurer_Measure(t *testing.T) {
	m := NewTextMeasurer()
	ctx := context.Background()

	one := Block{Columns: []Column{{Span: gridColumns, Lines: []Line{{Text: "Subtotal"}}}}}
	h, err := m.Measure(ctx, one)
	require.NoError(t, err)
	assert.Equal(t, lineHeightPx+2*blockPadPx, h)

	narrow := Block{Columns: []Column{
		{Span: 1, Lines: []Line{{Text: strings.Repeat("word ", 20)}}},
		{Span: 11, Lines: []Line{{Text: "short"}}},
	}}
	hn, err := m.Measure(ctx, narrow)
	require.NoError(t, err)
	assert.Greater(t, hn, h, "the tallest column decides the height")

	withImage := Block{Columns: []Column{{Span: 2, Image: &Image{}, ImageHeight: 64}}}
	hi, err := m.Measure(ctx, withImage)
	require.NoError(t, err)
	assert.Equal(t, 64+2*blockPadPx, hi)
}

func TestTextMeasurer_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewTextMeasurer().Measure(ctx, Block{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGeometry(t *testing.T) {
	assert.Equal(t, 714, ContentWidthPx)
	assert.Equal(t, 1000, MaxBodyHeightPx)
	assert.Equal(t, ContentWidthPx, columnWidthPx(gridColumns))
	assert.InDelta(t, 210.0, pxToMM(PageWidthPx), 1e-9)
}
