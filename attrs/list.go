package attrs

import "sort"

// Span is a half-open byte range of a line's text with explicit
// attributes.
type Span struct {
	Start int
	End   int
	Attrs Attrs
}

// List maps byte ranges of one line's text to attributes. Spans are
// kept sorted and non-overlapping; byte positions not covered by any
// span resolve to the list defaults. Span ranges may extend past the
// current text length, which is harmless: lookups beyond the text
// never occur.
type List struct {
	defaults Attrs
	spans    []Span
}

// NewList creates a span list with the given default attributes.
func NewList(defaults Attrs) *List {
	return &List{defaults: defaults}
}

// Defaults returns the default attributes for uncovered ranges.
func (l *List) Defaults() Attrs {
	return l.defaults
}

// Spans returns the explicit spans in ascending range order.
// The returned slice is owned by the list and must not be mutated.
func (l *List) Spans() []Span {
	return l.spans
}

// Equal reports whether two lists have equal defaults and equal spans.
func (l *List) Equal(other *List) bool {
	if l == other {
		return true
	}
	if other == nil {
		return false
	}
	if !l.defaults.Equal(other.defaults) {
		return false
	}
	if len(l.spans) != len(other.spans) {
		return false
	}
	for i, s := range l.spans {
		o := other.spans[i]
		if s.Start != o.Start || s.End != o.End || !s.Attrs.Equal(o.Attrs) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	c := &List{defaults: l.defaults}
	if len(l.spans) > 0 {
		c.spans = make([]Span, len(l.spans))
		copy(c.spans, l.spans)
	}
	return c
}

// AddSpan sets the attributes for [start, end). Overlapped parts of
// existing spans are clipped or split; adjacent spans with equal
// attributes are coalesced. Empty or inverted ranges are ignored.
func (l *List) AddSpan(start, end int, a Attrs) {
	if start >= end {
		return
	}

	out := l.spans[:0]
	var tail []Span
	for _, s := range l.spans {
		switch {
		case s.End <= start || s.Start >= end:
			// No overlap.
			out = append(out, s)
		default:
			// Keep the uncovered parts on either side.
			if s.Start < start {
				out = append(out, Span{Start: s.Start, End: start, Attrs: s.Attrs})
			}
			if s.End > end {
				tail = append(tail, Span{Start: end, End: s.End, Attrs: s.Attrs})
			}
		}
	}
	out = append(out, Span{Start: start, End: end, Attrs: a})
	out = append(out, tail...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	l.spans = coalesce(out)
}

// coalesce merges touching spans with equal attributes.
func coalesce(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if last.End == s.Start && last.Attrs.Equal(s.Attrs) {
			last.End = s.End
			continue
		}
		out = append(out, s)
	}
	return out
}

// Get returns the attributes in effect at the given byte index: the
// covering span's attributes, or the defaults when no span covers it.
func (l *List) Get(index int) Attrs {
	if s, ok := l.SpanAt(index); ok {
		return s.Attrs
	}
	return l.defaults
}

// SpanAt returns the explicit span covering the byte index, if any.
func (l *List) SpanAt(index int) (Span, bool) {
	i := sort.Search(len(l.spans), func(i int) bool { return l.spans[i].End > index })
	if i < len(l.spans) && l.spans[i].Start <= index {
		return l.spans[i], true
	}
	return Span{}, false
}

// SplitOff removes all span coverage at and after the byte index,
// returning a new list (with the same defaults) holding the removed
// coverage re-based to start at zero. A span straddling the index is
// split between the two lists.
func (l *List) SplitOff(index int) *List {
	tail := &List{defaults: l.defaults}

	kept := l.spans[:0]
	for _, s := range l.spans {
		switch {
		case s.End <= index:
			kept = append(kept, s)
		case s.Start >= index:
			tail.spans = append(tail.spans, Span{Start: s.Start - index, End: s.End - index, Attrs: s.Attrs})
		default:
			kept = append(kept, Span{Start: s.Start, End: index, Attrs: s.Attrs})
			tail.spans = append(tail.spans, Span{Start: 0, End: s.End - index, Attrs: s.Attrs})
		}
	}
	l.spans = kept
	return tail
}

// Shift moves the offsets of every span starting at or after from by
// delta bytes. Used when text before the spans changes length. Spans
// that would acquire negative offsets are clamped at zero.
func (l *List) Shift(from, delta int) {
	if delta == 0 {
		return
	}
	for i := range l.spans {
		if l.spans[i].Start >= from {
			l.spans[i].Start += delta
			l.spans[i].End += delta
			if l.spans[i].Start < 0 {
				l.spans[i].Start = 0
			}
			if l.spans[i].End < 0 {
				l.spans[i].End = 0
			}
		}
	}
}
