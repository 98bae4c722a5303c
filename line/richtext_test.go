package line

import (
	"testing"

	"github.com/dshills/typeline/attrs"
	"github.com/dshills/typeline/core"
	"github.com/dshills/typeline/shape"
)

func TestFromRichTextSplitsLines(t *testing.T) {
	tests := []struct {
		name        string
		spans       []RichSpan
		wantTexts   []string
		wantEndings []core.LineEnding
	}{
		{
			name:        "single span no break",
			spans:       []RichSpan{{Text: "hello", Attrs: attrs.New()}},
			wantTexts:   []string{"hello"},
			wantEndings: []core.LineEnding{core.LineEndingNone},
		},
		{
			name:        "lf breaks",
			spans:       []RichSpan{{Text: "a\nb\n", Attrs: attrs.New()}},
			wantTexts:   []string{"a", "b", ""},
			wantEndings: []core.LineEnding{core.LineEndingLF, core.LineEndingLF, core.LineEndingNone},
		},
		{
			name:        "crlf and cr",
			spans:       []RichSpan{{Text: "a\r\nb\rc", Attrs: attrs.New()}},
			wantTexts:   []string{"a", "b", "c"},
			wantEndings: []core.LineEnding{core.LineEndingCRLF, core.LineEndingCR, core.LineEndingNone},
		},
		{
			name: "break spanning two spans",
			spans: []RichSpan{
				{Text: "a\r", Attrs: attrs.New()},
				{Text: "\nb", Attrs: attrs.New()},
			},
			wantTexts:   []string{"a", "b"},
			wantEndings: []core.LineEnding{core.LineEndingCRLF, core.LineEndingNone},
		},
		{
			name: "fragments joined across spans",
			spans: []RichSpan{
				{Text: "hel", Attrs: attrs.New()},
				{Text: "lo", Attrs: attrs.New().WithWeight(attrs.WeightBold)},
			},
			wantTexts:   []string{"hello"},
			wantEndings: []core.LineEnding{core.LineEndingNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := FromRichText(tt.spans, attrs.New(), core.ShapingBasic)
			if len(lines) != len(tt.wantTexts) {
				t.Fatalf("line count = %d, want %d", len(lines), len(tt.wantTexts))
			}
			for i, ln := range lines {
				if ln.Text() != tt.wantTexts[i] {
					t.Errorf("line %d text = %q, want %q", i, ln.Text(), tt.wantTexts[i])
				}
				if ln.Ending() != tt.wantEndings[i] {
					t.Errorf("line %d ending = %v, want %v", i, ln.Ending(), tt.wantEndings[i])
				}
			}
		})
	}
}

func TestFromRichTextSpanAttrs(t *testing.T) {
	bold := attrs.New().WithWeight(attrs.WeightBold)
	lines := FromRichText([]RichSpan{
		{Text: "ab", Attrs: attrs.New()},
		{Text: "cd", Attrs: bold},
	}, attrs.New(), core.ShapingBasic)

	if len(lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(lines))
	}
	list := lines[0].AttrsList()
	if !list.Get(0).Equal(attrs.New()) {
		t.Errorf("attrs at 0 = %+v, want plain", list.Get(0))
	}
	if !list.Get(2).Equal(bold) {
		t.Errorf("attrs at 2 = %+v, want bold", list.Get(2))
	}
}

// A line that exists only through its terminating break inherits that
// break's style, so blank lines inside a small-type region stay short.
func TestFromRichTextLineHeights(t *testing.T) {
	small := attrs.New().WithMetrics(core.RelativeMetrics(8.0, 1.2))

	lines := FromRichText([]RichSpan{
		{Text: "Before", Attrs: attrs.New()},
		{Text: "\n\n\nSmall\n\n", Attrs: small},
		{Text: "After", Attrs: attrs.New()},
	}, attrs.New(), core.ShapingBasic)

	if len(lines) != 6 {
		t.Fatalf("line count = %d, want 6", len(lines))
	}

	shaper := shape.NewBasicShaper()
	for _, ln := range lines {
		ln.Layout(shaper, 32, 0, core.WrapWord, core.EllipsizeNone, 0, core.HintingNone, 8)
	}

	wantHeights := []float32{44, 9.6, 9.6, 9.6, 9.6, 44}
	it := NewRunIter(lines, 0, 44, 0, 0)
	for i, want := range wantHeights {
		run, ok := it.Next()
		if !ok {
			t.Fatalf("run %d missing", i)
		}
		if !nearF(run.LineHeight, want) {
			t.Errorf("run %d LineHeight = %v, want %v", i, run.LineHeight, want)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("unexpected extra run")
	}
}
