package canvastext

// Horizontal alignment of the laid out rows within the surface.
// The alignment also decides how anchor coordinates are interpreted
// by [Surface.FillText]: the anchor is the left edge, the center or
// the right edge of the painted text, respectively.
type Align uint8

const (
	Left Align = iota
	Center
	Right
)

func (self Align) String() string {
	switch self {
	case Left: return "Left"
	case Center: return "Center"
	case Right: return "Right"
	default:
		return "UnknownAlign"
	}
}

// Vertical alignment of the block of rows within the surface.
type VertAlign uint8

const (
	Top VertAlign = iota
	Middle
	Bottom
)

func (self VertAlign) String() string {
	switch self {
	case Top: return "Top"
	case Middle: return "Middle"
	case Bottom: return "Bottom"
	default:
		return "UnknownVertAlign"
	}
}

// Line decoration stroked over or under each row, independent of the
// text glyphs themselves.
type Decoration uint8

const (
	DecorationNone Decoration = iota
	Underline
	Strikethrough
)

func (self Decoration) String() string {
	switch self {
	case DecorationNone: return "None"
	case Underline: return "Underline"
	case Strikethrough: return "Strikethrough"
	default:
		return "UnknownDecoration"
	}
}

// Style describes how a block of text is laid out and painted. The zero
// value is valid: left/top alignment, no padding, 12pt sans-serif, no
// shadow, no decoration.
//
// Many fields are mutually substitutable shorthands:
//   - Font, when non-empty, takes precedence over FontSize + FontFamily.
//   - Padding is the shorthand for all four sides; the per-side pointer
//     fields override it individually when set.
//   - ShadowOffset, when set, applies to both axes; otherwise
//     ShadowOffsetX / ShadowOffsetY apply per axis.
//
// Styles are resolved into fully-populated values in a single pure step
// before any layout or paint logic runs, so optionality is never
// re-checked at use sites.
type Style struct {
	Align     Align
	VertAlign VertAlign

	// Padding, in surface units. Negative values are treated as zero.
	Padding       float64
	PaddingLeft   *float64
	PaddingRight  *float64
	PaddingTop    *float64
	PaddingBottom *float64

	// Font is the full font identity (e.g. "12pt 'Open Sans'"). When
	// empty, the identity is synthesized from FontSize and FontFamily.
	// Equal inputs always resolve to equal identities; the identity
	// doubles as the metrics cache key.
	Font       string
	FontSize   float64 // defaults to 12 when <= 0
	FontFamily string  // defaults to "sans-serif" when empty

	// Color is the fill color, either surface-native or a 6 hex digit
	// RGB string. Alpha, when set, requires the hex form and must lie
	// in [0, 1]; the pair resolves to an "rgba(r,g,b,a)" string.
	Color string
	Alpha *float64

	// LineHeight multiplies the measured font height to obtain the row
	// height. Values <= 0 fall back to the renderer's default.
	LineHeight float64

	ShadowColor   string
	ShadowBlur    float64
	ShadowOffset  *float64
	ShadowOffsetX *float64
	ShadowOffsetY *float64

	Decoration Decoration
}
