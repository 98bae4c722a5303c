package line

import (
	"github.com/dshills/typeline/core"
	"github.com/dshills/typeline/shape"
)

// LayoutRun is one visible layout line positioned in viewport space.
// LineY is the baseline; LineTop is the top edge of the line box.
type LayoutRun struct {
	LineIndex   int
	Text        string
	RTL         bool
	Glyphs      []shape.LayoutGlyph
	Decorations []shape.DecorationSpan
	LineY       float32
	LineTop     float32
	LineHeight  float32
	LineW       float32
}

// RunIter walks cached layout lines top to bottom, yielding only the
// runs that intersect the viewport. Lines whose layout has not been
// computed end the iteration.
type RunIter struct {
	lines             []*Line
	height            float32
	defaultLineHeight float32
	scroll            float32

	lineIdx     int
	layoutIdx   int
	top         float32
	totalHeight float32
	done        bool
}

// NewRunIter creates an iterator over the given paragraph lines.
// height 0 means an unbounded viewport. scroll shifts content upward
// by the given number of pixels. start is the paragraph index at which
// iteration begins.
func NewRunIter(lines []*Line, height, defaultLineHeight, scroll float32, start int) *RunIter {
	return &RunIter{
		lines:             lines,
		height:            height,
		defaultLineHeight: defaultLineHeight,
		scroll:            scroll,
		lineIdx:           start,
	}
}

// Next returns the next visible run. It reports false once the
// viewport bottom is passed or the lines are exhausted.
func (it *RunIter) Next() (LayoutRun, bool) {
	for !it.done && it.lineIdx < len(it.lines) {
		ln := it.lines[it.lineIdx]
		layout, ok := ln.LayoutOpt()
		if !ok {
			it.done = true
			break
		}
		if it.layoutIdx >= len(layout) {
			it.lineIdx++
			it.layoutIdx = 0
			continue
		}

		ll := &layout[it.layoutIdx]
		it.layoutIdx++

		lineHeight := ll.LineHeight
		if lineHeight == 0 {
			lineHeight = it.defaultLineHeight
		}
		lineTop := it.top - it.scroll
		it.top += lineHeight
		it.totalHeight += lineHeight

		centering := (lineHeight - (ll.MaxAscent + ll.MaxDescent)) / 2
		lineY := lineTop + centering + ll.MaxAscent

		if it.height > 0 && lineY-ll.MaxAscent > it.height {
			it.done = true
			break
		}
		if lineY+ll.MaxDescent < 0 {
			continue
		}

		rtl := false
		if shaped, ok := ln.ShapeOpt(); ok {
			rtl = shaped.RTL
		}
		return LayoutRun{
			LineIndex:   it.lineIdx,
			Text:        ln.Text(),
			RTL:         rtl,
			Glyphs:      ll.Glyphs,
			Decorations: ll.Decorations,
			LineY:       lineY,
			LineTop:     lineTop,
			LineHeight:  lineHeight,
			LineW:       ll.W,
		}, true
	}
	return LayoutRun{}, false
}

// TotalHeight returns the summed height of every layout line consumed
// so far, skipped lines included.
func (it *RunIter) TotalHeight() float32 {
	return it.totalHeight
}

// cursorFromGlyphLeft returns the cursor that sits at the left edge of
// the glyph in visual order. The mapping follows the paragraph
// direction, not the glyph's own run direction.
func (r *LayoutRun) cursorFromGlyphLeft(g *shape.LayoutGlyph) core.Cursor {
	if r.RTL {
		return core.NewCursorWithAffinity(r.LineIndex, g.End, core.AffinityBefore)
	}
	return core.NewCursorWithAffinity(r.LineIndex, g.Start, core.AffinityAfter)
}

// cursorFromGlyphRight returns the cursor at the glyph's right edge.
func (r *LayoutRun) cursorFromGlyphRight(g *shape.LayoutGlyph) core.Cursor {
	if r.RTL {
		return core.NewCursorWithAffinity(r.LineIndex, g.Start, core.AffinityAfter)
	}
	return core.NewCursorWithAffinity(r.LineIndex, g.End, core.AffinityBefore)
}

// Highlight returns the horizontal extent covered by the cursor range
// on this run. It reports false when the range does not touch the run.
func (r *LayoutRun) Highlight(start, end core.Cursor) (x, w float32, ok bool) {
	var xStart, xEnd float32
	found := false

	var rtlFactor, ltrFactor float32
	if r.RTL {
		rtlFactor = 1
	} else {
		ltrFactor = 1
	}

	// Glyph storage is visual order, so matched edges are not
	// monotonic in text offset; track the extremes.
	extend := func(edge float32) {
		if !found {
			xStart, xEnd = edge, edge
			found = true
			return
		}
		if edge < xStart {
			xStart = edge
		}
		if edge > xEnd {
			xEnd = edge
		}
	}

	for i := range r.Glyphs {
		g := &r.Glyphs[i]
		left := r.cursorFromGlyphLeft(g)
		if left.Cmp(start) >= 0 && left.Cmp(end) <= 0 {
			extend(g.X + g.W*rtlFactor)
		}
		right := r.cursorFromGlyphRight(g)
		if right.Cmp(start) >= 0 && right.Cmp(end) <= 0 {
			extend(g.X + g.W*ltrFactor)
		}
	}
	if !found {
		return 0, 0, false
	}
	return xStart, xEnd - xStart, true
}
