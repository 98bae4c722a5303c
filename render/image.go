package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/typeline/core"
	"github.com/dshills/typeline/shape"
)

// ImageRenderer draws into an RGBA image. Glyphs are rendered as
// filled boxes sized from their cluster's cell width, which is enough
// to inspect positioning without a rasterizer.
type ImageRenderer struct {
	img *image.RGBA
}

// NewImageRenderer creates a renderer targeting the given image.
func NewImageRenderer(img *image.RGBA) *ImageRenderer {
	return &ImageRenderer{img: img}
}

// Image returns the target image.
func (r *ImageRenderer) Image() *image.RGBA {
	return r.img
}

// Fill floods the whole image with one color.
func (r *ImageRenderer) Fill(c core.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

// Rectangle implements Renderer.
func (r *ImageRenderer) Rectangle(x, y int, w, h uint32, c core.Color) {
	rect := image.Rect(x, y, x+int(w), y+int(h))
	draw.Draw(r.img, rect, image.NewUniform(rgba(c)), image.Point{}, draw.Over)
}

// Glyph implements Renderer. The box width follows the cluster's
// terminal cell width at half an em per cell; whitespace draws
// nothing.
func (r *ImageRenderer) Glyph(g shape.PhysicalGlyph, c core.Color) {
	if strings.TrimSpace(g.Key.Cluster) == "" {
		return
	}
	fontSize := float32(g.Key.FontSizeBits) / 64
	cells := runewidth.StringWidth(g.Key.Cluster)
	if cells < 1 {
		cells = 1
	}
	w := int(float32(cells) * 0.5 * fontSize)
	ascent := int(0.75 * fontSize)
	descent := int(0.15 * fontSize)
	rect := image.Rect(g.X+1, g.Y-ascent, g.X+w-1, g.Y+descent)
	draw.Draw(r.img, rect, image.NewUniform(rgba(c)), image.Point{}, draw.Over)
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
