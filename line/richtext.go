package line

import (
	"strings"

	"github.com/dshills/typeline/attrs"
	"github.com/dshills/typeline/core"
)

// RichSpan is a styled fragment of rich text. Fragments may contain
// line breaks; FromRichText splits them into paragraph lines.
type RichSpan struct {
	Text  string
	Attrs attrs.Attrs
}

// richLineBuilder accumulates one paragraph line. The line's default
// attributes are decided by the first event on the line, fragment or
// terminating break, so an empty line styled only by its break still
// inherits that break's attributes.
type richLineBuilder struct {
	text    strings.Builder
	spans   []attrs.Span
	start   attrs.Attrs
	started bool
	shaping core.ShapingMode
}

func (b *richLineBuilder) event(a attrs.Attrs) {
	if !b.started {
		b.start = a
		b.started = true
	}
}

func (b *richLineBuilder) fragment(text string, a attrs.Attrs) {
	if text == "" {
		return
	}
	b.event(a)
	start := b.text.Len()
	b.text.WriteString(text)
	if !a.Equal(b.start) {
		b.spans = append(b.spans, attrs.Span{Start: start, End: b.text.Len(), Attrs: a})
	}
}

func (b *richLineBuilder) finish(ending core.LineEnding, defaults attrs.Attrs) *Line {
	base := defaults
	if b.started {
		base = b.start
	}
	list := attrs.NewList(base)
	for _, span := range b.spans {
		list.AddSpan(span.Start, span.End, span.Attrs)
	}
	ln := New(b.text.String(), ending, list, b.shaping)
	b.text.Reset()
	b.spans = b.spans[:0]
	b.started = false
	return ln
}

// FromRichText splits styled spans into paragraph lines. Break
// characters terminate lines and never appear in line text; a CR
// followed by LF counts as one break even across span boundaries.
func FromRichText(spans []RichSpan, defaults attrs.Attrs, shaping core.ShapingMode) []*Line {
	var lines []*Line
	builder := richLineBuilder{shaping: shaping}
	pendingCR := false

	for _, span := range spans {
		text := span.Text
		if pendingCR && strings.HasPrefix(text, "\n") {
			lines[len(lines)-1].SetEnding(core.LineEndingCRLF)
			text = text[1:]
		}
		pendingCR = false

		for len(text) > 0 {
			i := strings.IndexAny(text, "\r\n")
			if i < 0 {
				builder.fragment(text, span.Attrs)
				break
			}
			builder.fragment(text[:i], span.Attrs)
			builder.event(span.Attrs)

			var ending core.LineEnding
			switch {
			case text[i] == '\n':
				ending = core.LineEndingLF
				text = text[i+1:]
			case i+1 < len(text) && text[i+1] == '\n':
				ending = core.LineEndingCRLF
				text = text[i+2:]
			default:
				ending = core.LineEndingCR
				text = text[i+1:]
				pendingCR = len(text) == 0
			}
			lines = append(lines, builder.finish(ending, defaults))
		}
	}
	lines = append(lines, builder.finish(core.LineEndingNone, defaults))
	return lines
}
