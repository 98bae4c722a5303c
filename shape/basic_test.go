package shape

import (
	"reflect"
	"testing"

	"github.com/dshills/typeline/attrs"
	"github.com/dshills/typeline/core"
)

func shapeText(t *testing.T, text string, list *attrs.List, mode core.ShapingMode) *ShapedLine {
	t.Helper()
	if list == nil {
		list = attrs.NewList(attrs.New())
	}
	var shaped ShapedLine
	NewBasicShaper().Shape(text, list, mode, 8, &shaped)
	return &shaped
}

func TestBasicShaperASCII(t *testing.T) {
	shaped := shapeText(t, "ab c", nil, core.ShapingBasic)

	if shaped.RTL {
		t.Error("ASCII paragraph should be LTR")
	}
	if len(shaped.Glyphs) != 4 {
		t.Fatalf("glyph count = %d, want 4", len(shaped.Glyphs))
	}

	wantRanges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	for i, g := range shaped.Glyphs {
		if g.Start != wantRanges[i][0] || g.End != wantRanges[i][1] {
			t.Errorf("glyph %d range = [%d, %d), want %v", i, g.Start, g.End, wantRanges[i])
		}
		if g.XAdvance != 0.5 {
			t.Errorf("glyph %d advance = %v, want 0.5", i, g.XAdvance)
		}
	}
	if !shaped.Glyphs[2].Whitespace {
		t.Error("space glyph should be marked whitespace")
	}
	if shaped.Glyphs[0].Whitespace {
		t.Error("letter glyph should not be marked whitespace")
	}
}

func TestBasicShaperTab(t *testing.T) {
	shaped := shapeText(t, "\ta", nil, core.ShapingBasic)

	if !shaped.Glyphs[0].Tab {
		t.Error("tab glyph should be marked")
	}
	if !shaped.Glyphs[0].Whitespace {
		t.Error("tab glyph should count as whitespace")
	}
	if shaped.Glyphs[1].Tab {
		t.Error("letter glyph should not be marked as tab")
	}
	if want := 0.5 * 8; shaped.TabStop != float32(want) {
		t.Errorf("TabStop = %v, want %v", shaped.TabStop, want)
	}
}

func TestBasicShaperWideCluster(t *testing.T) {
	shaped := shapeText(t, "世a", nil, core.ShapingBasic)

	if len(shaped.Glyphs) != 2 {
		t.Fatalf("glyph count = %d, want 2", len(shaped.Glyphs))
	}
	if shaped.Glyphs[0].XAdvance != 1.0 {
		t.Errorf("wide cluster advance = %v, want 1.0", shaped.Glyphs[0].XAdvance)
	}
	if shaped.Glyphs[0].End != 3 {
		t.Errorf("wide cluster end = %d, want 3", shaped.Glyphs[0].End)
	}
}

func TestBasicShaperEmpty(t *testing.T) {
	list := attrs.NewList(attrs.New().WithMetrics(core.NewMetrics(8, 9.6)))
	shaped := shapeText(t, "", list, core.ShapingFull)

	if len(shaped.Glyphs) != 0 {
		t.Fatalf("glyph count = %d, want 0", len(shaped.Glyphs))
	}
	if shaped.StartMetrics != core.NewMetrics(8, 9.6) {
		t.Errorf("StartMetrics = %+v, want the list defaults", shaped.StartMetrics)
	}
}

func TestBasicShaperRTL(t *testing.T) {
	shaped := shapeText(t, "שלום", nil, core.ShapingFull)

	if !shaped.RTL {
		t.Fatal("Hebrew paragraph should be RTL")
	}
	if len(shaped.Glyphs) != 4 {
		t.Fatalf("glyph count = %d, want 4", len(shaped.Glyphs))
	}
	// Visual order runs right to left: byte offsets descend.
	for i := 1; i < len(shaped.Glyphs); i++ {
		if shaped.Glyphs[i].Start >= shaped.Glyphs[i-1].Start {
			t.Errorf("glyph %d start %d should be before glyph %d start %d",
				i, shaped.Glyphs[i].Start, i-1, shaped.Glyphs[i-1].Start)
		}
	}
	for i, g := range shaped.Glyphs {
		if !g.RTL {
			t.Errorf("glyph %d should be marked RTL", i)
		}
	}
}

func TestBasicShaperBasicModeSkipsReordering(t *testing.T) {
	shaped := shapeText(t, "שלום", nil, core.ShapingBasic)

	if shaped.RTL {
		t.Error("basic shaping should not resolve paragraph direction")
	}
	if shaped.Glyphs[0].Start != 0 {
		t.Errorf("basic shaping should keep logical order, first start = %d", shaped.Glyphs[0].Start)
	}
}

func TestBasicShaperAttrs(t *testing.T) {
	list := attrs.NewList(attrs.New())
	list.AddSpan(1, 3, attrs.New().
		WithColor(core.ColorRed).
		WithMetrics(core.NewMetrics(8, 9.6)).
		WithUnderline(core.UnderlineSingle))

	shaped := shapeText(t, "abcd", list, core.ShapingBasic)

	for i, g := range shaped.Glyphs {
		covered := i >= 1 && i < 3
		if got := g.Color.Equal(core.ColorRed); got != covered {
			t.Errorf("glyph %d color red = %v, want %v", i, got, covered)
		}
		if got := !g.Metrics.IsZero(); got != covered {
			t.Errorf("glyph %d has metrics = %v, want %v", i, got, covered)
		}
		if got := g.Deco.Underline == core.UnderlineSingle; got != covered {
			t.Errorf("glyph %d underlined = %v, want %v", i, got, covered)
		}
	}
}

func TestBasicShaperDeterministic(t *testing.T) {
	list := attrs.NewList(attrs.New())
	list.AddSpan(0, 5, attrs.New().WithColor(core.ColorBlue))

	a := shapeText(t, "hello שלום", list, core.ShapingFull)
	b := shapeText(t, "hello שלום", list, core.ShapingFull)

	if !reflect.DeepEqual(a, b) {
		t.Error("shaping the same inputs twice should reproduce the result")
	}
}

func TestBasicShaperReusesDestination(t *testing.T) {
	var shaped ShapedLine
	shaper := NewBasicShaper()
	list := attrs.NewList(attrs.New())

	shaper.Shape("hello world", list, core.ShapingBasic, 8, &shaped)
	if len(shaped.Glyphs) != 11 {
		t.Fatalf("glyph count = %d, want 11", len(shaped.Glyphs))
	}

	shaper.Shape("hi", list, core.ShapingBasic, 8, &shaped)
	if len(shaped.Glyphs) != 2 {
		t.Fatalf("glyph count after re-shape = %d, want 2", len(shaped.Glyphs))
	}
}
