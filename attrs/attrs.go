// Package attrs provides per-range style attributes for paragraph
// lines: the attribute record itself and the ordered span list that
// maps half-open byte ranges of a line's text to attributes.
package attrs

import "github.com/dshills/typeline/core"

// Weight constants in the usual OpenType scale.
const (
	WeightNormal uint16 = 400
	WeightBold   uint16 = 700
)

// Attrs holds the style attributes for a range of text.
// The zero values mean "inherit": a Default color falls through to the
// renderer default, zero Metrics to the layout font size and the
// buffer line height.
type Attrs struct {
	Family  string
	Weight  uint16
	Italic  bool
	Color   core.Color
	Metrics core.Metrics
	Deco    core.TextDecoration
}

// New creates attributes with a normal weight and no overrides.
func New() Attrs {
	return Attrs{Weight: WeightNormal, Color: core.ColorNone}
}

// WithFamily returns a copy with the font family set.
func (a Attrs) WithFamily(family string) Attrs {
	a.Family = family
	return a
}

// WithWeight returns a copy with the weight set.
func (a Attrs) WithWeight(weight uint16) Attrs {
	a.Weight = weight
	return a
}

// WithItalic returns a copy with the italic flag set.
func (a Attrs) WithItalic(italic bool) Attrs {
	a.Italic = italic
	return a
}

// WithColor returns a copy with an explicit text color.
func (a Attrs) WithColor(c core.Color) Attrs {
	a.Color = c
	return a
}

// WithMetrics returns a copy with explicit font size / line height
// metrics overriding the layout defaults.
func (a Attrs) WithMetrics(m core.Metrics) Attrs {
	a.Metrics = m
	return a
}

// WithUnderline returns a copy with the underline style set.
func (a Attrs) WithUnderline(style core.UnderlineStyle) Attrs {
	a.Deco.Underline = style
	return a
}

// WithUnderlineColor returns a copy with an explicit underline color.
func (a Attrs) WithUnderlineColor(c core.Color) Attrs {
	a.Deco.UnderlineColor = c
	return a
}

// WithStrikethrough returns a copy with strikethrough enabled.
func (a Attrs) WithStrikethrough() Attrs {
	a.Deco.Strikethrough = true
	return a
}

// WithStrikethroughColor returns a copy with an explicit strikethrough
// color.
func (a Attrs) WithStrikethroughColor(c core.Color) Attrs {
	a.Deco.StrikethroughColor = c
	return a
}

// WithOverline returns a copy with overline enabled.
func (a Attrs) WithOverline() Attrs {
	a.Deco.Overline = true
	return a
}

// HasMetrics returns true if the attributes carry explicit metrics.
func (a Attrs) HasMetrics() bool {
	return !a.Metrics.IsZero()
}

// Equal compares attributes field by field.
func (a Attrs) Equal(other Attrs) bool {
	return a.Family == other.Family &&
		a.Weight == other.Weight &&
		a.Italic == other.Italic &&
		a.Color.Equal(other.Color) &&
		a.Metrics == other.Metrics &&
		a.Deco.Equal(other.Deco)
}
