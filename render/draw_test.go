package render

import (
	"testing"

	"github.com/dshills/typeline/attrs"
	"github.com/dshills/typeline/core"
	"github.com/dshills/typeline/line"
	"github.com/dshills/typeline/shape"
)

// makeRun shapes, lays out, and extracts the first visible run of one
// paragraph at 16px type in a 20px line.
func makeRun(t *testing.T, text string, list *attrs.List) line.LayoutRun {
	t.Helper()
	if list == nil {
		list = attrs.NewList(attrs.New())
	}
	ln := line.New(text, core.LineEndingNone, list, core.ShapingFull)
	ln.Layout(shape.NewBasicShaper(), 16, 0, core.WrapNone, core.EllipsizeNone, 0, core.HintingNone, 8)

	it := line.NewRunIter([]*line.Line{ln}, 0, 20, 0, 0)
	run, ok := it.Next()
	if !ok {
		t.Fatal("no visible run")
	}
	return run
}

func underlined(from, to int, extra func(attrs.Attrs) attrs.Attrs) *attrs.List {
	a := attrs.New().WithUnderline(core.UnderlineSingle)
	if extra != nil {
		a = extra(a)
	}
	list := attrs.NewList(attrs.New())
	list.AddSpan(from, to, a)
	return list
}

func TestDrawRunGlyphs(t *testing.T) {
	run := makeRun(t, "ab", nil)
	rec := NewRecordRenderer()

	DrawRun(rec, &run, 0, 0, core.ColorBlack)

	if len(rec.Glyphs) != 2 {
		t.Fatalf("glyph ops = %d, want 2", len(rec.Glyphs))
	}
	if rec.Glyphs[0].Glyph.X != 0 || rec.Glyphs[1].Glyph.X != 8 {
		t.Errorf("glyph X = %d, %d, want 0, 8", rec.Glyphs[0].Glyph.X, rec.Glyphs[1].Glyph.X)
	}
	// Baseline 14.75 floors to 14.
	if rec.Glyphs[0].Glyph.Y != 14 {
		t.Errorf("glyph Y = %d, want 14", rec.Glyphs[0].Glyph.Y)
	}
	if rec.Glyphs[0].Glyph.Key.Cluster != "a" {
		t.Errorf("glyph cluster = %q, want %q", rec.Glyphs[0].Glyph.Key.Cluster, "a")
	}
	if !rec.Glyphs[0].Color.Equal(core.ColorBlack) {
		t.Errorf("glyph color = %v, want default black", rec.Glyphs[0].Color)
	}
}

func TestDrawUnderline(t *testing.T) {
	run := makeRun(t, "abcd", underlined(1, 3, nil))
	rec := NewRecordRenderer()

	DrawDecorations(rec, &run, 0, 0, core.ColorBlack)

	if len(rec.Rects) != 1 {
		t.Fatalf("rect ops = %d, want 1", len(rec.Rects))
	}
	bar := rec.Rects[0]
	if bar.X != 8 || bar.W != 16 {
		t.Errorf("bar extent = (%d, %d), want (8, 16)", bar.X, bar.W)
	}
	// Baseline 14.75, offset -0.1 em at 16px: the bar sits 1.6px below
	// the baseline.
	if bar.Y != 16 {
		t.Errorf("bar Y = %d, want 16", bar.Y)
	}
	if bar.H != 1 {
		t.Errorf("bar H = %d, want minimum thickness 1", bar.H)
	}
}

func TestDrawDoubleUnderline(t *testing.T) {
	list := attrs.NewList(attrs.New())
	list.AddSpan(0, 2, attrs.New().WithUnderline(core.UnderlineDouble))
	run := makeRun(t, "ab", list)
	rec := NewRecordRenderer()

	DrawDecorations(rec, &run, 0, 0, core.ColorBlack)

	if len(rec.Rects) != 2 {
		t.Fatalf("rect ops = %d, want 2", len(rec.Rects))
	}
	first, second := rec.Rects[0], rec.Rects[1]
	if second.Y <= first.Y {
		t.Errorf("second bar Y = %d, want below %d", second.Y, first.Y)
	}
	// One thickness of bar, one thickness of gap.
	if got := second.Y - first.Y; got != int(first.H)*2 {
		t.Errorf("bar separation = %d, want %d", got, int(first.H)*2)
	}
}

func TestDrawStrikethroughAndOverline(t *testing.T) {
	list := attrs.NewList(attrs.New())
	list.AddSpan(0, 2, attrs.New().WithStrikethrough().WithOverline())
	run := makeRun(t, "ab", list)
	rec := NewRecordRenderer()

	DrawDecorations(rec, &run, 0, 0, core.ColorBlack)

	if len(rec.Rects) != 2 {
		t.Fatalf("rect ops = %d, want 2", len(rec.Rects))
	}
	strike, over := rec.Rects[0], rec.Rects[1]
	// Offset 0.25 em at 16px puts the strike 4px above the baseline.
	if strike.Y != 10 {
		t.Errorf("strikethrough Y = %d, want 10", strike.Y)
	}
	if over.Y != 0 {
		t.Errorf("overline Y = %d, want line top 0", over.Y)
	}
}

func TestDrawDecorationColorChain(t *testing.T) {
	tests := []struct {
		name string
		list *attrs.List
		want core.Color
	}{
		{
			name: "feature color wins",
			list: underlined(0, 2, func(a attrs.Attrs) attrs.Attrs {
				return a.WithColor(core.ColorBlue).WithUnderlineColor(core.ColorRed)
			}),
			want: core.ColorRed,
		},
		{
			name: "glyph color next",
			list: underlined(0, 2, func(a attrs.Attrs) attrs.Attrs {
				return a.WithColor(core.ColorBlue)
			}),
			want: core.ColorBlue,
		},
		{
			name: "default color last",
			list: underlined(0, 2, nil),
			want: core.ColorBlack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := makeRun(t, "ab", tt.list)
			rec := NewRecordRenderer()
			DrawDecorations(rec, &run, 0, 0, core.ColorBlack)

			if len(rec.Rects) != 1 {
				t.Fatalf("rect ops = %d, want 1", len(rec.Rects))
			}
			if !rec.Rects[0].Color.Equal(tt.want) {
				t.Errorf("bar color = %v, want %v", rec.Rects[0].Color, tt.want)
			}
		})
	}
}

func TestDrawDecorationRTLExtent(t *testing.T) {
	list := attrs.NewList(attrs.New())
	list.AddSpan(0, 8, attrs.New().WithUnderline(core.UnderlineSingle))
	run := makeRun(t, "שלום", list)
	rec := NewRecordRenderer()

	DrawDecorations(rec, &run, 0, 0, core.ColorBlack)

	if len(rec.Rects) != 1 {
		t.Fatalf("rect ops = %d, want 1", len(rec.Rects))
	}
	// Four letters at 8px each, regardless of visual order.
	if rec.Rects[0].X != 0 || rec.Rects[0].W != 32 {
		t.Errorf("bar extent = (%d, %d), want (0, 32)", rec.Rects[0].X, rec.Rects[0].W)
	}
}

func TestDrawRunOffset(t *testing.T) {
	run := makeRun(t, "ab", underlined(0, 2, nil))
	rec := NewRecordRenderer()

	DrawRun(rec, &run, 100, 50, core.ColorBlack)

	if rec.Glyphs[0].Glyph.X != 100 {
		t.Errorf("glyph X = %d, want 100", rec.Glyphs[0].Glyph.X)
	}
	// Baseline 14.75 plus the 50px offset floors to 64.
	if rec.Glyphs[0].Glyph.Y != 64 {
		t.Errorf("glyph Y = %d, want 64", rec.Glyphs[0].Glyph.Y)
	}
	if rec.Rects[0].X != 100 {
		t.Errorf("bar X = %d, want 100", rec.Rects[0].X)
	}
}
