package canvastext

import "errors"
import "strconv"
import "strings"

// Style normalization. Every optional or shorthand field of [Style] is
// collapsed here into plain values; nothing past this file deals with
// pointers or fallbacks.

const defaultFontSize = 12
const defaultFontFamily = "sans-serif"

// Returned when a style sets Alpha with a color that isn't a well
// formed 6 hex digit RGB string.
var ErrBadHexColor = errors.New("color with alpha must be a 6 hex digit RGB string")

// Padding holds the four resolved, non-negative padding sides, in
// surface units.
type Padding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Fully-populated internal form of a [Style]. Built once per Draw call
// and threaded explicitly through wrapping and composition.
type resolvedStyle struct {
	align      Align
	vertAlign  VertAlign
	padding    Padding
	font       string
	sizeHint   float64
	color      string
	lineHeight float64
	shadowColor   string
	shadowBlur    float64
	shadowOffsetX float64
	shadowOffsetY float64
	decoration Decoration
}

func resolveStyle(style *Style, defaultLineHeight float64) (resolvedStyle, error) {
	color, err := resolveColor(style.Color, style.Alpha)
	if err != nil { return resolvedStyle{}, err }

	font := resolveFont(style)
	lineHeight := style.LineHeight
	if lineHeight <= 0 { lineHeight = defaultLineHeight }
	shadowX, shadowY := resolveShadowOffset(style)
	return resolvedStyle {
		align: style.Align,
		vertAlign: style.VertAlign,
		padding: resolvePadding(style),
		font: font,
		sizeHint: fontSizeHint(style, font),
		color: color,
		lineHeight: lineHeight,
		shadowColor: style.ShadowColor,
		shadowBlur: style.ShadowBlur,
		shadowOffsetX: shadowX,
		shadowOffsetY: shadowY,
		decoration: style.Decoration,
	}, nil
}

// Returns Style.Font verbatim when present, or synthesizes the
// "<size>pt '<family>'" identity otherwise. Deterministic: equal
// inputs yield byte-identical identities.
func resolveFont(style *Style) string {
	if style.Font != "" { return style.Font }
	size := style.FontSize
	if size <= 0 { size = defaultFontSize }
	family := style.FontFamily
	if family == "" { family = defaultFontFamily }
	return strconv.FormatFloat(size, 'f', -1, 64) + "pt '" + family + "'"
}

// Per-side precedence: explicit side > shorthand > zero. Negative
// values clamp to zero; there are no error conditions.
func resolvePadding(style *Style) Padding {
	side := func(override *float64) float64 {
		value := style.Padding
		if override != nil { value = *override }
		if value < 0 { return 0 }
		return value
	}
	return Padding {
		Left: side(style.PaddingLeft),
		Right: side(style.PaddingRight),
		Top: side(style.PaddingTop),
		Bottom: side(style.PaddingBottom),
	}
}

// With alpha set, decodes color as a 6 hex digit RGB string (optional
// leading '#', case-insensitive) and produces "rgba(r,g,b,a)". With
// alpha unset, returns color unchanged, surface-native or not.
func resolveColor(color string, alpha *float64) (string, error) {
	if alpha == nil { return color, nil }
	r, g, b, ok := hexRGB(color)
	if !ok { return "", ErrBadHexColor }
	a := *alpha
	if a < 0 { a = 0 }
	if a > 1 { a = 1 }
	var builder strings.Builder
	builder.WriteString("rgba(")
	builder.WriteString(strconv.Itoa(int(r)))
	builder.WriteByte(',')
	builder.WriteString(strconv.Itoa(int(g)))
	builder.WriteByte(',')
	builder.WriteString(strconv.Itoa(int(b)))
	builder.WriteByte(',')
	builder.WriteString(strconv.FormatFloat(a, 'f', -1, 64))
	builder.WriteByte(')')
	return builder.String(), nil
}

func resolveShadowOffset(style *Style) (x, y float64) {
	if style.ShadowOffset != nil {
		return *style.ShadowOffset, *style.ShadowOffset
	}
	if style.ShadowOffsetX != nil { x = *style.ShadowOffsetX }
	if style.ShadowOffsetY != nil { y = *style.ShadowOffsetY }
	return x, y
}

// Best-effort size extraction for the off-screen probe buffers. For
// synthesized identities this recovers the exact FontSize; for verbatim
// Style.Font values it reads the leading number, falling back to the
// default size when the identity doesn't start with one.
func fontSizeHint(style *Style, font string) float64 {
	if style.Font == "" {
		if style.FontSize > 0 { return style.FontSize }
		return defaultFontSize
	}
	end := 0
	for end < len(font) && (font[end] == '.' || (font[end] >= '0' && font[end] <= '9')) {
		end += 1
	}
	size, err := strconv.ParseFloat(font[0 : end], 64)
	if err != nil || size <= 0 { return defaultFontSize }
	return size
}
