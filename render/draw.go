package render

import (
	"math"

	"github.com/dshills/typeline/core"
	"github.com/dshills/typeline/line"
	"github.com/dshills/typeline/shape"
)

// DrawRun draws one layout run at the given offset: glyphs first, then
// decoration bars on top. defaultColor is used for glyphs and
// decorations that carry no explicit color.
func DrawRun(r Renderer, run *line.LayoutRun, offsetX, offsetY float32, defaultColor core.Color) {
	for i := range run.Glyphs {
		g := &run.Glyphs[i]
		color := defaultColor
		if !g.Color.IsDefault() {
			color = g.Color
		}
		r.Glyph(g.Physical(run.Text, offsetX, offsetY+run.LineY), color)
	}
	DrawDecorations(r, run, offsetX, offsetY, defaultColor)
}

// DrawDecorations draws the underline, strikethrough, and overline
// bars for every decoration span of the run.
func DrawDecorations(r Renderer, run *line.LayoutRun, offsetX, offsetY float32, defaultColor core.Color) {
	for i := range run.Decorations {
		drawDecorationSpan(r, run, &run.Decorations[i], offsetX, offsetY, defaultColor)
	}
}

func drawDecorationSpan(r Renderer, run *line.LayoutRun, span *shape.DecorationSpan, offsetX, offsetY float32, defaultColor core.Color) {
	if span.Start >= span.End {
		return
	}

	// Horizontal extent over the span's glyphs. Glyph x positions are
	// visual, so min and max must be taken per glyph rather than from
	// the first and last entries.
	minX := float32(math.Inf(1))
	maxX := float32(math.Inf(-1))
	for i := span.Start; i < span.End && i < len(run.Glyphs); i++ {
		g := &run.Glyphs[i]
		if g.X < minX {
			minX = g.X
		}
		if g.X+g.W > maxX {
			maxX = g.X + g.W
		}
	}
	if maxX <= minX {
		return
	}

	x := int(math.Floor(float64(offsetX + minX)))
	w := uint32(math.Ceil(float64(maxX - minX)))

	spanColor := func(specific core.Color) core.Color {
		if !specific.IsDefault() {
			return specific
		}
		if !span.Color.IsDefault() {
			return span.Color
		}
		return defaultColor
	}

	if span.Deco.Underline != core.UnderlineNone {
		thickness := barThickness(span.Deco.UnderlineMetrics.Thickness, span.FontSize)
		y := run.LineY - span.Deco.UnderlineMetrics.Offset*span.FontSize
		color := spanColor(span.Deco.UnderlineColor)
		r.Rectangle(x, int(math.Floor(float64(offsetY+y))), w, thickness, color)
		if span.Deco.Underline == core.UnderlineDouble {
			// Second bar below the first, separated by one thickness.
			y2 := y + float32(thickness)*2
			r.Rectangle(x, int(math.Floor(float64(offsetY+y2))), w, thickness, color)
		}
	}

	if span.Deco.Strikethrough {
		thickness := barThickness(span.Deco.StrikethroughMetrics.Thickness, span.FontSize)
		y := run.LineY - span.Deco.StrikethroughMetrics.Offset*span.FontSize
		color := spanColor(span.Deco.StrikethroughColor)
		r.Rectangle(x, int(math.Floor(float64(offsetY+y))), w, thickness, color)
	}

	if span.Deco.Overline {
		thickness := barThickness(span.Deco.UnderlineMetrics.Thickness, span.FontSize)
		color := spanColor(span.Deco.OverlineColor)
		r.Rectangle(x, int(math.Floor(float64(offsetY+run.LineTop))), w, thickness, color)
	}
}

// barThickness scales a relative thickness to pixels, never thinner
// than one pixel.
func barThickness(relative, fontSize float32) uint32 {
	t := relative * fontSize
	if t < 1 {
		t = 1
	}
	return uint32(math.Ceil(float64(t)))
}
