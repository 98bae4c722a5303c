// Package core provides shared types for the layout engine.
// This package breaks import cycles between the attribute, shaping,
// line, and render packages.
package core

// LineEnding specifies the line ending attached to a paragraph line.
type LineEnding uint8

const (
	// LineEndingNone means the line has no trailing line break.
	LineEndingNone LineEnding = iota
	// LineEndingLF is a Unix line ending: \n
	LineEndingLF
	// LineEndingCRLF is a Windows line ending: \r\n
	LineEndingCRLF
	// LineEndingCR is an old Mac line ending: \r
	LineEndingCR
)

// String returns a human-readable name for the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingNone:
		return "None"
	case LineEndingLF:
		return "LF"
	case LineEndingCRLF:
		return "CRLF"
	case LineEndingCR:
		return "CR"
	default:
		return "Unknown"
	}
}

// Sequence returns the byte sequence for the line ending.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return ""
	}
}

// ShapingMode selects how much work the shaper does per line.
type ShapingMode uint8

const (
	// ShapingBasic shapes clusters in logical order, left to right.
	// Sufficient for plain ASCII/Latin content.
	ShapingBasic ShapingMode = iota
	// ShapingFull resolves paragraph direction and reorders glyph runs
	// into visual order (bidirectional text).
	ShapingFull
)

// String returns the string representation of the shaping mode.
func (m ShapingMode) String() string {
	switch m {
	case ShapingBasic:
		return "basic"
	case ShapingFull:
		return "full"
	default:
		return "unknown"
	}
}

// Wrap selects the line wrapping strategy.
type Wrap uint8

const (
	// WrapNone disables wrapping; a paragraph produces one layout line.
	WrapNone Wrap = iota
	// WrapGlyph breaks lines between any two glyphs.
	WrapGlyph
	// WrapWord breaks lines only after whitespace. An unbreakable word
	// longer than the wrap width overflows its line.
	WrapWord
	// WrapWordOrGlyph breaks after whitespace when possible, falling
	// back to glyph breaking for unbreakable words.
	WrapWordOrGlyph
)

// String returns the string representation of the wrap mode.
func (w Wrap) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapGlyph:
		return "glyph"
	case WrapWord:
		return "word"
	case WrapWordOrGlyph:
		return "word-or-glyph"
	default:
		return "unknown"
	}
}

// Ellipsize controls truncation of overflowing unwrapped lines.
type Ellipsize uint8

const (
	// EllipsizeNone leaves overflowing lines untouched.
	EllipsizeNone Ellipsize = iota
	// EllipsizeEnd truncates an overflowing line and appends an
	// ellipsis glyph. Only applies when wrapping is disabled.
	EllipsizeEnd
)

// Align selects horizontal alignment of wrapped lines within the wrap
// width.
type Align uint8

const (
	// AlignAuto resolves by paragraph direction: left for LTR lines,
	// right for RTL lines.
	AlignAuto Align = iota
	AlignLeft
	AlignRight
	AlignCenter
	// AlignEnd is the trailing edge: right for LTR, left for RTL.
	AlignEnd
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignAuto:
		return "auto"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Hinting controls glyph position rounding.
type Hinting uint8

const (
	// HintingNone keeps subpixel glyph positions.
	HintingNone Hinting = iota
	// HintingFull rounds glyph x positions to whole pixels.
	HintingFull
)

// Metrics describes a font size and the vertical space a line of that
// size occupies. The zero value means "no override" wherever Metrics
// appears as an optional field.
type Metrics struct {
	FontSize   float32
	LineHeight float32
}

// NewMetrics creates metrics with an explicit font size and line height.
func NewMetrics(fontSize, lineHeight float32) Metrics {
	return Metrics{FontSize: fontSize, LineHeight: lineHeight}
}

// RelativeMetrics creates metrics with a line height relative to the
// font size.
func RelativeMetrics(fontSize, ratio float32) Metrics {
	return Metrics{FontSize: fontSize, LineHeight: fontSize * ratio}
}

// Scale returns the metrics multiplied by the given factor.
func (m Metrics) Scale(factor float32) Metrics {
	return Metrics{FontSize: m.FontSize * factor, LineHeight: m.LineHeight * factor}
}

// IsZero returns true for the "no override" zero value.
func (m Metrics) IsZero() bool {
	return m.FontSize == 0 && m.LineHeight == 0
}

// Affinity distinguishes the two visual positions a text offset can map
// to at a line wrap or direction boundary.
type Affinity uint8

const (
	// AffinityBefore associates the cursor with the preceding glyph.
	AffinityBefore Affinity = iota
	// AffinityAfter associates the cursor with the following glyph.
	AffinityAfter
)

// Cursor is a position within a document: a paragraph line index, a
// byte index into that line's text, and an affinity.
type Cursor struct {
	Line     int
	Index    int
	Affinity Affinity
}

// NewCursor creates a cursor with AffinityBefore.
func NewCursor(line, index int) Cursor {
	return Cursor{Line: line, Index: index}
}

// NewCursorWithAffinity creates a cursor with an explicit affinity.
func NewCursorWithAffinity(line, index int, affinity Affinity) Cursor {
	return Cursor{Line: line, Index: index, Affinity: affinity}
}

// Cmp orders cursors by line, then byte index, then affinity
// (AffinityBefore sorts first). Returns -1, 0, or 1.
func (c Cursor) Cmp(other Cursor) int {
	switch {
	case c.Line != other.Line:
		if c.Line < other.Line {
			return -1
		}
		return 1
	case c.Index != other.Index:
		if c.Index < other.Index {
			return -1
		}
		return 1
	case c.Affinity != other.Affinity:
		if c.Affinity < other.Affinity {
			return -1
		}
		return 1
	default:
		return 0
	}
}
