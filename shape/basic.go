package shape

import (
	"unicode"
	"unicode/utf8"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/dshills/typeline/attrs"
	"github.com/dshills/typeline/core"
)

// Fixed-point em metrics for the built-in shaper, in 26.6 format.
// One text cell advances half an em, the common monospace ratio.
const (
	basicCellAdvance fixed.Int26_6 = 32 // 0.5 em
	basicAscent      fixed.Int26_6 = 51 // ~0.8 em
	basicDescent     fixed.Int26_6 = 13 // ~0.2 em
)

// BasicShaper is the built-in deterministic shaper. It segments text
// into grapheme clusters, assigns cell-based advances, and for
// ShapingFull resolves the paragraph direction and visual run order.
//
// It does not consult font data; it exists so that layout, caching,
// and rendering can run headless with reproducible geometry. Real
// shaping engines plug in behind the Shaper interface.
type BasicShaper struct{}

// NewBasicShaper creates a built-in shaper.
func NewBasicShaper() *BasicShaper {
	return &BasicShaper{}
}

// Shape implements Shaper.
func (b *BasicShaper) Shape(text string, list *attrs.List, mode core.ShapingMode, tabWidth int, into *ShapedLine) {
	if tabWidth < 1 {
		tabWidth = 8
	}

	into.Reset()
	into.SpaceAdvance = em(basicCellAdvance)
	into.TabStop = em(basicCellAdvance) * float32(tabWidth)
	into.StartMetrics = list.Get(0).Metrics

	if text == "" {
		return
	}

	if mode == core.ShapingFull {
		into.RTL = paragraphRTL(text)
		for _, run := range visualRuns(text) {
			b.shapeRun(text, run.start, run.end, run.rtl, list, into)
		}
		return
	}
	b.shapeRun(text, 0, len(text), false, list, into)
}

// shapeRun appends the clusters of text[start:end] in visual order.
func (b *BasicShaper) shapeRun(text string, start, end int, rtl bool, list *attrs.List, into *ShapedLine) {
	first := len(into.Glyphs)

	rest := text[start:end]
	offset := start
	state := -1
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		a := list.Get(offset)
		r, _ := utf8.DecodeRuneInString(cluster)

		g := ShapedGlyph{
			Start:      offset,
			End:        offset + len(cluster),
			Ascent:     em(basicAscent),
			Descent:    em(basicDescent),
			RTL:        rtl,
			Tab:        cluster == "\t",
			Whitespace: unicode.IsSpace(r),
			Weight:     a.Weight,
			Italic:     a.Italic,
			Metrics:    a.Metrics,
			Color:      a.Color,
			Deco: core.Decoration{
				TextDecoration:       a.Deco,
				UnderlineMetrics:     core.DefaultUnderlineMetrics,
				StrikethroughMetrics: core.DefaultStrikethroughMetrics,
			},
		}
		if !g.Tab {
			cells := runewidth.StringWidth(cluster)
			g.XAdvance = em(basicCellAdvance.Mul(fixed.I(cells)))
		} else {
			g.XAdvance = into.SpaceAdvance
		}

		into.Glyphs = append(into.Glyphs, g)
		offset += len(cluster)
	}

	// Within an RTL run, storage order is visual order: reverse the
	// logical cluster order.
	if rtl {
		glyphs := into.Glyphs[first:]
		for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
			glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
		}
	}
}

// em converts a 26.6 fixed-point em value to float32 em.
func em(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}

// paragraphRTL returns the paragraph base direction from its first
// strong character, per the usual bidi paragraph rule.
func paragraphRTL(text string) bool {
	for s := text; len(s) > 0; {
		p, sz := bidi.LookupString(s)
		switch p.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
		if sz == 0 {
			break
		}
		s = s[sz:]
	}
	return false
}

type runRange struct {
	start, end int
	rtl        bool
}

// visualRuns resolves the text into direction runs in visual order.
// Falls back to a single LTR run when the bidi algorithm rejects the
// input.
func visualRuns(text string) []runRange {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return []runRange{{start: 0, end: len(text)}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []runRange{{start: 0, end: len(text)}}
	}

	n := ordering.NumRuns()
	if n == 0 {
		return []runRange{{start: 0, end: len(text)}}
	}
	runs := make([]runRange, 0, n)
	for i := 0; i < n; i++ {
		r := ordering.Run(i)
		start, _ := r.Pos()
		runs = append(runs, runRange{
			start: start,
			end:   start + len(r.String()),
			rtl:   r.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}
