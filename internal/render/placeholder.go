package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"

	"golang.org/x/image/draw"
)

var (
	placeholderOnce sync.Once
	placeholderPNG  []byte
)

// Placeholder is printed instead of a logo or signature that could not be
// fetched. It is a light frame with a diagonal.
func Placeholder() *Image {
	placeholderOnce.Do(func() {
		const w, h = 120, 60
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 248, G: 249, B: 250, A: 255}), image.Point{}, draw.Src)
		frame := color.RGBA{R: 206, G: 212, B: 218, A: 255}
		for x := 0; x < w; x++ {
			img.Set(x, 0, frame)
			img.Set(x, h-1, frame)
			img.Set(x, x*h/w, frame)
		}
		for y := 0; y < h; y++ {
			img.Set(0, y, frame)
			img.Set(w-1, y, frame)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err == nil {
			placeholderPNG = buf.Bytes()
		}
	})
	return &Image{Data: placeholderPNG, Format: ImagePNG}
}
