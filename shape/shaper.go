// Package shape provides the shaping collaborator interface, the
// shaped-line data model, a deterministic built-in shaper, and the
// wrap/layout step that turns a shaped paragraph into positioned
// layout lines.
package shape

import (
	"github.com/dshills/typeline/attrs"
	"github.com/dshills/typeline/core"
)

// Shaper converts one paragraph of text plus its style attributes into
// positioned glyph clusters.
//
// Implementations must be deterministic pure functions of their
// inputs: the line cache assumes that re-shaping unchanged inputs
// reproduces the previous result. The destination is never nil;
// implementations reset it and reuse its backing storage instead of
// allocating fresh slices.
type Shaper interface {
	Shape(text string, list *attrs.List, mode core.ShapingMode, tabWidth int, into *ShapedLine)
}

// ShapedGlyph is one positioned glyph cluster before wrapping.
// Advances and vertical metrics are in em units; the layout step
// scales them by the effective font size.
type ShapedGlyph struct {
	// Start and End delimit the cluster's byte range in the line text.
	Start int
	End   int

	// XAdvance is the horizontal advance in em units.
	XAdvance float32

	// Ascent and Descent are the cluster's vertical extent in em units.
	Ascent  float32
	Descent float32

	// RTL is true when the glyph belongs to a right-to-left run.
	RTL bool

	// Tab marks a horizontal tab cluster; the layout step replaces its
	// advance with the distance to the next tab stop.
	Tab bool

	// Whitespace marks clusters that are wrap break opportunities.
	Whitespace bool

	// Weight and Italic are the font selection fields from the
	// covering style span, carried through to the rasterizer cache key.
	Weight uint16
	Italic bool

	// Metrics is the explicit font size / line height override from
	// the covering style span; zero when the span has none.
	Metrics core.Metrics

	// Color is the explicit glyph color; ColorNone when inherited.
	Color core.Color

	// Deco is the decoration descriptor resolved from the covering
	// style span. Attached per glyph so decoration rendering survives
	// wrapping and reordering.
	Deco core.Decoration
}

// ShapedLine is the cached output of shaping one paragraph line:
// glyph clusters in visual order plus the paragraph direction.
type ShapedLine struct {
	// RTL is true when the paragraph base direction is right-to-left.
	RTL bool

	// Glyphs holds the clusters in visual order.
	Glyphs []ShapedGlyph

	// SpaceAdvance is the em advance of U+0020, used for tab stops.
	SpaceAdvance float32

	// TabStop is the tab stop interval in em units
	// (tab width x space advance).
	TabStop float32

	// StartMetrics is the metrics override in effect at the start of
	// the text; it determines the height of empty layout lines, which
	// have no glyphs to carry an override of their own.
	StartMetrics core.Metrics
}

// Reset clears the line for re-shaping while keeping glyph storage.
func (s *ShapedLine) Reset() {
	s.RTL = false
	s.Glyphs = s.Glyphs[:0]
	s.SpaceAdvance = 0
	s.TabStop = 0
	s.StartMetrics = core.Metrics{}
}
