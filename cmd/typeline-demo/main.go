// Package main renders a styled TOML document to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/typeline/attrs"
	"github.com/dshills/typeline/core"
	"github.com/dshills/typeline/line"
	"github.com/dshills/typeline/render"
	"github.com/dshills/typeline/shape"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Document is the TOML input format. Top level settings apply to the
// whole document; each [[span]] is a styled run of text.
type Document struct {
	FontSize   float32    `toml:"font_size"`
	LineHeight float32    `toml:"line_height"`
	Width      float32    `toml:"width"`
	Height     float32    `toml:"height"`
	Wrap       string     `toml:"wrap"`
	Align      string     `toml:"align"`
	TabWidth   int        `toml:"tab_width"`
	Foreground string     `toml:"foreground"`
	Background string     `toml:"background"`
	Selection  *SelConf   `toml:"selection"`
	Spans      []SpanConf `toml:"span"`
}

// SelConf is an optional selection range, drawn as a band behind the
// text. Start and end are [line, byte index] pairs.
type SelConf struct {
	Start []int `toml:"start"`
	End   []int `toml:"end"`
}

// SpanConf is one styled span of the document.
type SpanConf struct {
	Text          string  `toml:"text"`
	Color         string  `toml:"color"`
	Bold          bool    `toml:"bold"`
	Italic        bool    `toml:"italic"`
	FontSize      float32 `toml:"font_size"`
	LineHeight    float32 `toml:"line_height"`
	Underline     string  `toml:"underline"`
	Strikethrough bool    `toml:"strikethrough"`
	Overline      bool    `toml:"overline"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		inPath      string
		outPath     string
		width       float64
		height      float64
		scroll      float64
		showVersion bool
	)
	flag.StringVar(&inPath, "in", "", "Path to TOML document")
	flag.StringVar(&outPath, "out", "out.png", "Path to output PNG")
	flag.Float64Var(&width, "width", 640, "Image width in pixels")
	flag.Float64Var(&height, "height", 480, "Image height in pixels")
	flag.Float64Var(&scroll, "scroll", 0, "Vertical scroll offset in pixels")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "typeline-demo - render a styled TOML document to PNG\n\n")
		fmt.Fprintf(os.Stderr, "Usage: typeline-demo -in doc.toml [-out out.png]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("typeline-demo %s (%s)\n", version, commit)
		return 0
	}
	if inPath == "" {
		flag.Usage()
		return 2
	}

	doc, err := loadDocument(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	if err := renderDocument(doc, img, float32(scroll)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating %s: %v\n", outPath, err)
		return 1
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encoding PNG: %v\n", err)
		return 1
	}
	return 0
}

func loadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	doc := &Document{
		FontSize:   16,
		LineHeight: 20,
		Wrap:       "word",
		TabWidth:   8,
	}
	if err := toml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	if len(doc.Spans) == 0 {
		return nil, fmt.Errorf("document %s has no spans", path)
	}
	return doc, nil
}

func renderDocument(doc *Document, img *image.RGBA, scroll float32) error {
	spans := make([]line.RichSpan, 0, len(doc.Spans))
	for i, sc := range doc.Spans {
		a, err := spanAttrs(sc)
		if err != nil {
			return fmt.Errorf("span %d: %w", i, err)
		}
		spans = append(spans, line.RichSpan{Text: sc.Text, Attrs: a})
	}

	wrap, err := parseWrap(doc.Wrap)
	if err != nil {
		return err
	}
	align, err := parseAlign(doc.Align)
	if err != nil {
		return err
	}

	fg := core.ColorBlack
	if doc.Foreground != "" {
		if fg, err = core.ColorFromHex(doc.Foreground); err != nil {
			return fmt.Errorf("foreground: %w", err)
		}
	}
	bg := core.ColorWhite
	if doc.Background != "" {
		if bg, err = core.ColorFromHex(doc.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}

	var selStart, selEnd core.Cursor
	if doc.Selection != nil {
		if selStart, err = selCursor(doc.Selection.Start, "start"); err != nil {
			return err
		}
		if selEnd, err = selCursor(doc.Selection.End, "end"); err != nil {
			return err
		}
		if selStart.Cmp(selEnd) > 0 {
			selStart, selEnd = selEnd, selStart
		}
	}
	selColor := bg.Blend(fg, 0.25)

	width := doc.Width
	if width == 0 {
		width = float32(img.Bounds().Dx())
	}
	height := doc.Height
	if height == 0 {
		height = float32(img.Bounds().Dy())
	}

	lines := line.FromRichText(spans, attrs.New(), core.ShapingFull)
	shaper := shape.NewBasicShaper()
	for _, ln := range lines {
		ln.SetAlign(align)
		ln.Layout(shaper, doc.FontSize, width, wrap, core.EllipsizeNone, 0, core.HintingNone, doc.TabWidth)
	}

	renderer := render.NewImageRenderer(img)
	renderer.Fill(bg)

	iter := line.NewRunIter(lines, height, doc.LineHeight, scroll, 0)
	for {
		run, ok := iter.Next()
		if !ok {
			break
		}
		if doc.Selection != nil {
			if x, w, ok := run.Highlight(selStart, selEnd); ok && w > 0 {
				renderer.Rectangle(int(x), int(run.LineTop), uint32(w), uint32(run.LineHeight), selColor)
			}
		}
		render.DrawRun(renderer, &run, 0, 0, fg)
	}
	return nil
}

func selCursor(pair []int, field string) (core.Cursor, error) {
	if len(pair) != 2 {
		return core.Cursor{}, fmt.Errorf("selection %s must be a [line, index] pair", field)
	}
	return core.NewCursor(pair[0], pair[1]), nil
}

func spanAttrs(sc SpanConf) (attrs.Attrs, error) {
	a := attrs.New()
	if sc.Bold {
		a = a.WithWeight(attrs.WeightBold)
	}
	if sc.Italic {
		a = a.WithItalic(true)
	}
	if sc.Color != "" {
		c, err := core.ColorFromHex(sc.Color)
		if err != nil {
			return a, fmt.Errorf("color: %w", err)
		}
		a = a.WithColor(c)
	}
	if sc.FontSize > 0 {
		lh := sc.LineHeight
		if lh == 0 {
			lh = sc.FontSize * 1.25
		}
		a = a.WithMetrics(core.NewMetrics(sc.FontSize, lh))
	}
	switch sc.Underline {
	case "", "none":
	case "single":
		a = a.WithUnderline(core.UnderlineSingle)
	case "double":
		a = a.WithUnderline(core.UnderlineDouble)
	default:
		return a, fmt.Errorf("invalid underline %q (must be none, single, or double)", sc.Underline)
	}
	if sc.Strikethrough {
		a = a.WithStrikethrough()
	}
	if sc.Overline {
		a = a.WithOverline()
	}
	return a, nil
}

func parseWrap(s string) (core.Wrap, error) {
	switch s {
	case "", "word":
		return core.WrapWord, nil
	case "none":
		return core.WrapNone, nil
	case "glyph":
		return core.WrapGlyph, nil
	case "word-or-glyph":
		return core.WrapWordOrGlyph, nil
	}
	return core.WrapNone, fmt.Errorf("invalid wrap %q (must be none, glyph, word, or word-or-glyph)", s)
}

func parseAlign(s string) (core.Align, error) {
	switch s {
	case "", "auto":
		return core.AlignAuto, nil
	case "left":
		return core.AlignLeft, nil
	case "right":
		return core.AlignRight, nil
	case "center":
		return core.AlignCenter, nil
	case "end":
		return core.AlignEnd, nil
	}
	return core.AlignAuto, fmt.Errorf("invalid align %q (must be auto, left, right, center, or end)", s)
}
