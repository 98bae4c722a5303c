package render

import (
	"github.com/dshills/typeline/core"
	"github.com/dshills/typeline/shape"
)

// RectOp records one Rectangle call.
type RectOp struct {
	X, Y  int
	W, H  uint32
	Color core.Color
}

// GlyphOp records one Glyph call.
type GlyphOp struct {
	Glyph shape.PhysicalGlyph
	Color core.Color
}

// RecordRenderer captures draw calls for inspection in tests.
type RecordRenderer struct {
	Rects  []RectOp
	Glyphs []GlyphOp
}

// NewRecordRenderer creates an empty recording renderer.
func NewRecordRenderer() *RecordRenderer {
	return &RecordRenderer{}
}

// Rectangle implements Renderer.
func (r *RecordRenderer) Rectangle(x, y int, w, h uint32, color core.Color) {
	r.Rects = append(r.Rects, RectOp{X: x, Y: y, W: w, H: h, Color: color})
}

// Glyph implements Renderer.
func (r *RecordRenderer) Glyph(g shape.PhysicalGlyph, color core.Color) {
	r.Glyphs = append(r.Glyphs, GlyphOp{Glyph: g, Color: color})
}

// Reset clears recorded operations, keeping capacity.
func (r *RecordRenderer) Reset() {
	r.Rects = r.Rects[:0]
	r.Glyphs = r.Glyphs[:0]
}
