// Package render draws layout runs through a minimal backend
// interface. Backends receive axis-aligned rectangles for decorations
// and positioned physical glyphs for text.
package render

import (
	"github.com/dshills/typeline/core"
	"github.com/dshills/typeline/shape"
)

// Renderer is the drawing backend. Coordinates are pixels with the
// origin at the top left of the target surface.
type Renderer interface {
	// Rectangle fills an axis-aligned rectangle.
	Rectangle(x, y int, w, h uint32, color core.Color)
	// Glyph draws one positioned physical glyph.
	Glyph(g shape.PhysicalGlyph, color core.Color)
}
