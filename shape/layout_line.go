package shape

import (
	"math"

	"github.com/dshills/typeline/core"
)

// LayoutGlyph is one positioned glyph on a wrapped layout line.
// Positions and widths are in pixels, already scaled by the glyph's
// effective font size.
type LayoutGlyph struct {
	// Start and End delimit the cluster's byte range in the line text.
	Start int
	End   int

	// X is the left edge relative to the line origin; W the width.
	X float32
	W float32

	// FontSize is the effective font size used for this glyph.
	FontSize float32

	// Weight and Italic select the font face for rasterization.
	Weight uint16
	Italic bool

	// LineHeight is the explicit line height carried over from the
	// glyph's style span metrics; zero when the span has none.
	LineHeight float32

	// RTL is true when the glyph belongs to a right-to-left run.
	RTL bool

	// Color is the explicit glyph color; ColorNone when inherited.
	Color core.Color

	// Deco is the per-glyph decoration descriptor.
	Deco core.Decoration
}

// GlyphKey identifies a glyph image independently of its position;
// rasterizer pixel caches key on it together with the draw color.
type GlyphKey struct {
	// Cluster is the glyph's source text.
	Cluster string

	// FontSizeBits is the font size in 26.6 fixed point, binning
	// subpixel sizes that share an image.
	FontSizeBits int32

	// Weight and Italic select the font face.
	Weight uint16
	Italic bool
}

// PhysicalGlyph is a glyph placed at device pixel coordinates.
type PhysicalGlyph struct {
	X, Y int
	Key  GlyphKey
}

// Physical converts the glyph to device coordinates. text is the
// owning line's text; offsetX/offsetY shift the line origin (offsetY
// is normally the run baseline).
func (g *LayoutGlyph) Physical(text string, offsetX, offsetY float32) PhysicalGlyph {
	return PhysicalGlyph{
		X: int(math.Floor(float64(g.X + offsetX))),
		Y: int(math.Floor(float64(offsetY))),
		Key: GlyphKey{
			Cluster:      text[g.Start:g.End],
			FontSizeBits: int32(g.FontSize * 64.0),
			Weight:       g.Weight,
			Italic:       g.Italic,
		},
	}
}

// DecorationSpan covers a maximal run of consecutive glyphs on one
// layout line that share a decoration descriptor, font size, and
// explicit color. Start and End index into the layout line's glyph
// slice.
type DecorationSpan struct {
	Start int
	End   int

	// Deco is the shared descriptor; at least one feature is enabled.
	Deco core.Decoration

	// FontSize scales the descriptor's metrics.
	FontSize float32

	// Color is the shared explicit glyph color; ColorNone when the
	// group inherits.
	Color core.Color
}

// LayoutLine is one wrapped visual line of a paragraph.
type LayoutLine struct {
	// Glyphs holds the line's glyphs in visual order.
	Glyphs []LayoutGlyph

	// Decorations are the precomputed decoration groups over Glyphs.
	Decorations []DecorationSpan

	// W is the total advance width of the line.
	W float32

	// MaxAscent and MaxDescent bound the glyph extent above and below
	// the baseline.
	MaxAscent  float32
	MaxDescent float32

	// LineHeight is the explicit line height for this visual line when
	// its glyphs (or, for an empty line, the enclosing style span)
	// carry metrics overrides; zero means use the caller's default.
	LineHeight float32
}
