package core

// UnderlineStyle selects the underline variant for a text range.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
)

// String returns the string representation of the underline style.
func (s UnderlineStyle) String() string {
	switch s {
	case UnderlineNone:
		return "none"
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	default:
		return "unknown"
	}
}

// TextDecoration describes the enabled decoration features for a text
// range. Feature colors with Default set fall through to the glyph
// color, then to the renderer's default color.
type TextDecoration struct {
	Underline          UnderlineStyle
	UnderlineColor     Color
	Strikethrough      bool
	StrikethroughColor Color
	Overline           bool
	OverlineColor      Color
}

// Any returns true if at least one decoration feature is enabled.
func (d TextDecoration) Any() bool {
	return d.Underline != UnderlineNone || d.Strikethrough || d.Overline
}

// Equal compares two decorations field by field. A change in any
// feature or feature color makes them unequal.
func (d TextDecoration) Equal(other TextDecoration) bool {
	return d.Underline == other.Underline &&
		d.UnderlineColor.Equal(other.UnderlineColor) &&
		d.Strikethrough == other.Strikethrough &&
		d.StrikethroughColor.Equal(other.StrikethroughColor) &&
		d.Overline == other.Overline &&
		d.OverlineColor.Equal(other.OverlineColor)
}

// DecorationMetrics positions a decoration bar relative to the
// baseline. Both fields are in em units and are scaled by the glyph's
// font size when drawn. A negative offset places the bar below the
// baseline.
type DecorationMetrics struct {
	Offset    float32
	Thickness float32
}

// Default decoration metrics used by the built-in shaper. Real shaping
// collaborators supply per-font values.
var (
	DefaultUnderlineMetrics     = DecorationMetrics{Offset: -0.1, Thickness: 0.05}
	DefaultStrikethroughMetrics = DecorationMetrics{Offset: 0.25, Thickness: 0.05}
)

// Decoration is the per-glyph decoration descriptor: which features are
// enabled plus the metrics that position them. It is attached to every
// glyph at shaping time so that decoration rendering stays correct
// after line wrapping and bidi reordering, when glyph order no longer
// matches text order.
type Decoration struct {
	TextDecoration

	UnderlineMetrics     DecorationMetrics
	StrikethroughMetrics DecorationMetrics
	// Overline reuses UnderlineMetrics.Thickness and is drawn at the
	// line top. Per-glyph ascent is not part of the glyph data, so the
	// line top stands in for it.
}

// Equal compares descriptors including metrics.
func (d Decoration) Equal(other Decoration) bool {
	return d.TextDecoration.Equal(other.TextDecoration) &&
		d.UnderlineMetrics == other.UnderlineMetrics &&
		d.StrikethroughMetrics == other.StrikethroughMetrics
}
