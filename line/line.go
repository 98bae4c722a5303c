package line

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/typeline/attrs"
	"github.com/dshills/typeline/core"
	"github.com/dshills/typeline/shape"
)

// Line is one paragraph of styled text with lazily computed shaping
// and layout results. The text never contains line break characters;
// the break that terminated the paragraph is recorded as its Ending.
type Line struct {
	text    string
	ending  core.LineEnding
	attrs   *attrs.List
	align   core.Align
	shaping core.ShapingMode

	shapeCache  Cached[*shape.ShapedLine]
	layoutCache Cached[[]shape.LayoutLine]

	metadata    int
	hasMetadata bool
}

// New creates a paragraph line. The caller must not pass text
// containing line break characters.
func New(text string, ending core.LineEnding, list *attrs.List, shaping core.ShapingMode) *Line {
	return &Line{
		text:    text,
		ending:  ending,
		attrs:   list,
		shaping: shaping,
	}
}

// Text returns the paragraph text without its ending.
func (l *Line) Text() string { return l.text }

// Ending returns the line ending that terminated this paragraph.
func (l *Line) Ending() core.LineEnding { return l.ending }

// AttrsList returns the style span list covering the text.
func (l *Line) AttrsList() *attrs.List { return l.attrs }

// Align returns the per-line alignment override.
func (l *Line) Align() core.Align { return l.align }

// Shaping returns the shaping mode used for this line.
func (l *Line) Shaping() core.ShapingMode { return l.shaping }

// SetText replaces the text, ending, and attributes in one step. It
// reports whether anything changed; an identical call leaves every
// cache intact.
func (l *Line) SetText(text string, ending core.LineEnding, list *attrs.List) bool {
	if text == l.text && ending == l.ending && list.Equal(l.attrs) {
		return false
	}
	l.text = text
	l.ending = ending
	l.attrs = list
	l.Reset()
	return true
}

// SetEnding replaces the line ending, reporting whether it changed.
func (l *Line) SetEnding(ending core.LineEnding) bool {
	if ending == l.ending {
		return false
	}
	l.ending = ending
	l.ResetShaping()
	return true
}

// SetAttrs replaces the style span list, reporting whether it changed.
func (l *Line) SetAttrs(list *attrs.List) bool {
	if list.Equal(l.attrs) {
		return false
	}
	l.attrs = list
	l.ResetShaping()
	return true
}

// SetAlign sets the alignment override. Only layout is invalidated;
// shaping does not depend on alignment.
func (l *Line) SetAlign(align core.Align) bool {
	if align == l.align {
		return false
	}
	l.align = align
	l.ResetLayout()
	return true
}

// Metadata returns the caller-assigned metadata, if any.
func (l *Line) Metadata() (int, bool) {
	return l.metadata, l.hasMetadata
}

// SetMetadata attaches caller metadata to the line. Metadata does not
// influence shaping or layout but is cleared by Reset.
func (l *Line) SetMetadata(metadata int) {
	l.metadata = metadata
	l.hasMetadata = true
}

// Append consumes other and joins its text onto this line. The other
// line's span attributes carry over at shifted offsets, its defaults
// become an explicit span where they differ from ours, and its ending
// replaces ours.
func (l *Line) Append(other *Line) {
	base := len(l.text)
	l.ending = other.ending
	if !other.attrs.Defaults().Equal(l.attrs.Defaults()) && len(other.text) > 0 {
		l.attrs.AddSpan(base, base+len(other.text), other.attrs.Defaults())
	}
	for _, span := range other.attrs.Spans() {
		l.attrs.AddSpan(base+span.Start, base+span.End, span.Attrs)
	}
	l.text += other.text
	l.Reset()
}

// SplitOff cuts the line at the given byte index and returns the
// remainder as a new line. The ending moves to the returned line and
// this line's ending becomes LineEndingNone. SplitOff panics when the
// index is out of range or not a rune boundary.
func (l *Line) SplitOff(index int) *Line {
	if index < 0 || index > len(l.text) {
		panic(fmt.Sprintf("line: split index %d out of range [0, %d]", index, len(l.text)))
	}
	if index < len(l.text) && !utf8.RuneStart(l.text[index]) {
		panic(fmt.Sprintf("line: split index %d is not a rune boundary", index))
	}

	tail := &Line{
		text:    l.text[index:],
		ending:  l.ending,
		attrs:   l.attrs.SplitOff(index),
		align:   l.align,
		shaping: l.shaping,
	}
	l.text = l.text[:index]
	l.ending = core.LineEndingNone
	l.Reset()
	return tail
}

// Reset invalidates shaping, layout, and metadata.
func (l *Line) Reset() {
	l.metadata = 0
	l.hasMetadata = false
	l.ResetShaping()
}

// ResetShaping invalidates the shaping result and, transitively, the
// layout result. Both retain their storage for reuse.
func (l *Line) ResetShaping() {
	l.shapeCache.SetUnused()
	l.layoutCache.SetUnused()
}

// ResetLayout invalidates only the layout result.
func (l *Line) ResetLayout() {
	l.layoutCache.SetUnused()
}

// Shape returns the shaping result, computing it if the cache is not
// current. Stale storage from a previous shaping seeds the new one.
func (l *Line) Shape(shaper shape.Shaper, tabWidth int) *shape.ShapedLine {
	if shaped, ok := l.shapeCache.Get(); ok {
		return shaped
	}
	shaped, _ := l.shapeCache.TakeUnused()
	if shaped == nil {
		shaped = &shape.ShapedLine{}
	}
	shaper.Shape(l.text, l.attrs, l.shaping, tabWidth, shaped)
	l.shapeCache.Set(shaped)
	l.layoutCache.SetUnused()
	return shaped
}

// ShapeOpt returns the cached shaping result without computing.
func (l *Line) ShapeOpt() (*shape.ShapedLine, bool) {
	return l.shapeCache.Get()
}

// Layout returns the layout result for the given constraints,
// computing it (and shaping first, if needed) when the cache is not
// current. The caller owns invalidation: passing different constraints
// without resetting layout returns the stale result.
func (l *Line) Layout(
	shaper shape.Shaper,
	fontSize float32,
	width float32,
	wrap core.Wrap,
	ellipsize core.Ellipsize,
	matchMono float32,
	hinting core.Hinting,
	tabWidth int,
) []shape.LayoutLine {
	if lines, ok := l.layoutCache.Get(); ok {
		return lines
	}
	shaped := l.Shape(shaper, tabWidth)
	into, _ := l.layoutCache.TakeUnused()
	lines := shaped.Layout(fontSize, width, wrap, ellipsize, l.align, matchMono, hinting, into)
	l.layoutCache.Set(lines)
	return lines
}

// LayoutOpt returns the cached layout result without computing.
func (l *Line) LayoutOpt() ([]shape.LayoutLine, bool) {
	return l.layoutCache.Get()
}
