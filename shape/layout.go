package shape

import (
	"math"

	"github.com/dshills/typeline/core"
)

// Layout wraps the shaped line into positioned layout lines.
//
// fontSize is the base font size; per-glyph metrics overrides win.
// width 0 means unlimited. matchMono, when positive, forces every
// glyph advance to the nearest positive integer multiple of the given
// cell width (monospace column alignment). The result is appended to
// into[:0] so callers can reuse backing storage across recomputation.
func (s *ShapedLine) Layout(
	fontSize float32,
	width float32,
	wrap core.Wrap,
	ellipsize core.Ellipsize,
	align core.Align,
	matchMono float32,
	hinting core.Hinting,
	into []LayoutLine,
) []LayoutLine {
	out := into[:0]

	if len(s.Glyphs) == 0 {
		return append(out, LayoutLine{LineHeight: s.StartMetrics.LineHeight})
	}

	// Break the glyph sequence into visual lines. cur holds indexes
	// into s.Glyphs; lastBreak is the position within cur just after
	// the most recent whitespace glyph.
	var cur []int
	lastBreak := 0
	x := float32(0)

	widthOf := func(i int, x float32) float32 {
		g := &s.Glyphs[i]
		fs := fontSize
		if g.Metrics.FontSize > 0 {
			fs = g.Metrics.FontSize
		}
		if g.Tab {
			stop := s.TabStop * fontSize
			if stop <= 0 {
				return 0
			}
			next := (float32(math.Floor(float64(x/stop))) + 1) * stop
			return next - x
		}
		w := g.XAdvance * fs
		if matchMono > 0 && w > 0 {
			cells := float32(math.Round(float64(w / matchMono)))
			if cells < 1 {
				cells = 1
			}
			w = cells * matchMono
		}
		return w
	}

	// rewind recomputes x after glyphs move to a fresh line.
	rewind := func(indexes []int) float32 {
		x := float32(0)
		for _, i := range indexes {
			x += widthOf(i, x)
		}
		return x
	}

	for i := range s.Glyphs {
		w := widthOf(i, x)

		if width > 0 && wrap != core.WrapNone && len(cur) > 0 && x+w > width {
			breakAt := -1
			switch wrap {
			case core.WrapGlyph:
				breakAt = len(cur)
			case core.WrapWord:
				if lastBreak > 0 {
					breakAt = lastBreak
				}
			case core.WrapWordOrGlyph:
				if lastBreak > 0 {
					breakAt = lastBreak
				} else {
					breakAt = len(cur)
				}
			}
			if breakAt > 0 && breakAt <= len(cur) {
				out = append(out, s.buildLine(cur[:breakAt], fontSize, width, align, matchMono, hinting))
				carry := append([]int(nil), cur[breakAt:]...)
				cur = cur[:0]
				cur = append(cur, carry...)
				lastBreak = 0
				x = rewind(cur)
				w = widthOf(i, x)
			}
		}

		cur = append(cur, i)
		x += w
		if s.Glyphs[i].Whitespace {
			lastBreak = len(cur)
		}
	}

	out = append(out, s.buildLine(cur, fontSize, width, align, matchMono, hinting))

	if ellipsize == core.EllipsizeEnd && wrap == core.WrapNone && width > 0 && len(out) == 1 {
		s.ellipsizeLine(&out[0], fontSize, width, align, hinting)
	}
	return out
}

// buildLine positions the given glyphs on one layout line and derives
// its metrics, alignment offset, and decoration groups.
func (s *ShapedLine) buildLine(
	indexes []int,
	fontSize, width float32,
	align core.Align,
	matchMono float32,
	hinting core.Hinting,
) LayoutLine {
	var line LayoutLine
	line.Glyphs = make([]LayoutGlyph, 0, len(indexes))

	x := float32(0)
	for _, i := range indexes {
		g := &s.Glyphs[i]
		fs := fontSize
		if g.Metrics.FontSize > 0 {
			fs = g.Metrics.FontSize
		}
		w := float32(0)
		if g.Tab {
			stop := s.TabStop * fontSize
			if stop > 0 {
				w = (float32(math.Floor(float64(x/stop)))+1)*stop - x
			}
		} else {
			w = g.XAdvance * fs
			if matchMono > 0 && w > 0 {
				cells := float32(math.Round(float64(w / matchMono)))
				if cells < 1 {
					cells = 1
				}
				w = cells * matchMono
			}
		}

		line.Glyphs = append(line.Glyphs, LayoutGlyph{
			Start:      g.Start,
			End:        g.End,
			X:          x,
			W:          w,
			FontSize:   fs,
			Weight:     g.Weight,
			Italic:     g.Italic,
			LineHeight: g.Metrics.LineHeight,
			RTL:        g.RTL,
			Color:      g.Color,
			Deco:       g.Deco,
		})
		x += w

		if a := g.Ascent * fs; a > line.MaxAscent {
			line.MaxAscent = a
		}
		if d := g.Descent * fs; d > line.MaxDescent {
			line.MaxDescent = d
		}
		if g.Metrics.LineHeight > line.LineHeight {
			line.LineHeight = g.Metrics.LineHeight
		}
	}
	line.W = x

	if len(line.Glyphs) == 0 {
		line.LineHeight = s.StartMetrics.LineHeight
	}

	if offset := s.alignOffset(align, width, line.W); offset > 0 {
		for i := range line.Glyphs {
			line.Glyphs[i].X += offset
		}
	}

	if hinting == core.HintingFull {
		for i := range line.Glyphs {
			line.Glyphs[i].X = float32(math.Round(float64(line.Glyphs[i].X)))
		}
	}

	line.Decorations = groupDecorations(line.Glyphs)
	return line
}

// alignOffset resolves the horizontal offset for one layout line.
// Without a width constraint there is nothing to align into.
func (s *ShapedLine) alignOffset(align core.Align, width, lineW float32) float32 {
	if width <= 0 || lineW >= width {
		return 0
	}
	resolved := align
	switch align {
	case core.AlignAuto:
		if s.RTL {
			resolved = core.AlignRight
		} else {
			resolved = core.AlignLeft
		}
	case core.AlignEnd:
		if s.RTL {
			resolved = core.AlignLeft
		} else {
			resolved = core.AlignRight
		}
	}
	switch resolved {
	case core.AlignRight:
		return width - lineW
	case core.AlignCenter:
		return (width - lineW) / 2
	default:
		return 0
	}
}

// ellipsizeLine truncates an overflowing unwrapped line and appends an
// ellipsis placeholder. The ellipsis advance is one shaped space; the
// real width belongs to the shaping collaborator, which this layer
// cannot consult per glyph.
func (s *ShapedLine) ellipsizeLine(line *LayoutLine, fontSize, width float32, align core.Align, hinting core.Hinting) {
	if line.W <= width || len(line.Glyphs) == 0 {
		return
	}

	ellipsisW := s.SpaceAdvance * fontSize
	cut := len(line.Glyphs)
	x := line.W
	for cut > 0 && x+ellipsisW > width {
		cut--
		x -= line.Glyphs[cut].W
	}

	truncated := line.Glyphs[cut]
	line.Glyphs = line.Glyphs[:cut]
	line.Glyphs = append(line.Glyphs, LayoutGlyph{
		Start:    truncated.Start,
		End:      truncated.Start,
		X:        x,
		W:        ellipsisW,
		FontSize: fontSize,
		Weight:   truncated.Weight,
		Italic:   truncated.Italic,
		RTL:      truncated.RTL,
		Color:    truncated.Color,
		Deco:     truncated.Deco,
	})
	line.W = x + ellipsisW

	if hinting == core.HintingFull {
		for i := range line.Glyphs {
			line.Glyphs[i].X = float32(math.Round(float64(line.Glyphs[i].X)))
		}
	}
	line.Decorations = groupDecorations(line.Glyphs)
}

// groupDecorations builds maximal decoration groups over consecutive
// glyphs whose descriptors, font sizes, and explicit colors all
// compare equal. Undecorated glyphs end the current group.
func groupDecorations(glyphs []LayoutGlyph) []DecorationSpan {
	var spans []DecorationSpan
	start := -1
	for i := range glyphs {
		g := &glyphs[i]
		if start >= 0 {
			prev := &glyphs[start]
			if g.Deco.Any() && g.Deco.Equal(prev.Deco) && g.FontSize == prev.FontSize && g.Color.Equal(prev.Color) {
				continue
			}
			spans = append(spans, DecorationSpan{
				Start:    start,
				End:      i,
				Deco:     prev.Deco,
				FontSize: prev.FontSize,
				Color:    prev.Color,
			})
			start = -1
		}
		if g.Deco.Any() {
			start = i
		}
	}
	if start >= 0 {
		prev := &glyphs[start]
		spans = append(spans, DecorationSpan{
			Start:    start,
			End:      len(glyphs),
			Deco:     prev.Deco,
			FontSize: prev.FontSize,
			Color:    prev.Color,
		})
	}
	return spans
}
