package canvastext

// The boundary with the drawing surface. canvastext is a pure,
// synchronous transformation from (style, text, surface dimensions) to
// paint calls and a numeric area; everything that touches pixels lives
// behind these interfaces.

// TextPaint carries every property a surface needs to paint a run of
// glyphs. Vertical positioning always uses top-baseline semantics: the
// y coordinate passed to FillText is the top of the em box, not the
// alphabetic baseline.
type TextPaint struct {
	// Font identity, as produced by style resolution. The surface uses
	// it to select and size its active font.
	Font string

	// Fill color string. See [ParseColor] for the accepted forms.
	Color string

	// How the anchor x coordinate is interpreted: left edge, center or
	// right edge of the painted text.
	Align Align

	// Shadow parameters. An empty ShadowColor disables the shadow.
	ShadowColor   string
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64
}

// Surface is the minimal set of drawing primitives required by
// [Renderer]. Implementations must be deterministic: measuring the
// same string with the same font identity twice must yield the same
// width, or layout results become unstable.
type Surface interface {
	// Size returns the surface dimensions in surface units.
	Size() (width, height float64)

	// TextWidth returns the rendered width of text under the given
	// font identity, in surface units.
	TextWidth(font string, text string) float64

	// FillText paints text with its anchor at (x, y), top-baseline.
	FillText(text string, x, y float64, paint TextPaint)

	// StrokeLine strokes a straight line between the two points.
	// Decoration strokes never carry the text shadow, so no shadow
	// parameters exist here.
	StrokeLine(x1, y1, x2, y2 float64, color string, width float64)

	// Offscreen allocates a transient pixel buffer used for probe
	// glyph measurement. The buffer is discarded after one use.
	Offscreen(width, height int) Offscreen
}

// Offscreen is a throwaway pixel buffer that can be painted on and read
// back. [MetricsCache] scans it for the vertical extent of ink.
type Offscreen interface {
	// FillText paints text exactly like [Surface.FillText].
	FillText(text string, x, y float64, paint TextPaint)

	// Pixels returns the raw RGBA pixel data (4 bytes per pixel,
	// row-major) along with the buffer dimensions.
	Pixels() (pix []byte, width, height int)
}
