package canvastext

import "image/color"
import "strconv"
import "strings"

// Color-string decoding shared by the surface implementations. The
// resolver only ever emits hex passthroughs or "rgba(...)" strings, but
// surfaces also accept the short hex and "rgb(...)" forms for colors
// given directly by callers.

// ParseColor decodes a color string into a non-premultiplied RGBA
// color. Supported forms: "#rrggbb", "rrggbb", "#rgb", "rgb(r,g,b)"
// and "rgba(r,g,b,a)" with a in [0, 1]. Reports false for anything
// else; surfaces treat unparseable colors as opaque black.
func ParseColor(src string) (color.NRGBA, bool) {
	src = strings.TrimSpace(src)
	if strings.HasPrefix(src, "rgb") { return parseRGBFunc(src) }

	hex := strings.TrimPrefix(src, "#")
	if len(hex) == 3 {
		r, okr := hexNibble(hex[0])
		g, okg := hexNibble(hex[1])
		b, okb := hexNibble(hex[2])
		if !okr || !okg || !okb { return color.NRGBA{}, false }
		return color.NRGBA{ R: r*17, G: g*17, B: b*17, A: 255 }, true
	}
	r, g, b, ok := hexRGB(src)
	if !ok { return color.NRGBA{}, false }
	return color.NRGBA{ R: r, G: g, B: b, A: 255 }, true
}

// Decodes a 6 hex digit RGB string with an optional leading '#'.
// Case-insensitive. This is the exact color form required when a
// style sets Alpha.
func hexRGB(src string) (r, g, b uint8, ok bool) {
	src = strings.TrimPrefix(src, "#")
	if len(src) != 6 { return 0, 0, 0, false }
	red, errR := strconv.ParseUint(src[0 : 2], 16, 8)
	green, errG := strconv.ParseUint(src[2 : 4], 16, 8)
	blue, errB := strconv.ParseUint(src[4 : 6], 16, 8)
	if errR != nil || errG != nil || errB != nil { return 0, 0, 0, false }
	return uint8(red), uint8(green), uint8(blue), true
}

func hexNibble(char byte) (uint8, bool) {
	switch {
	case char >= '0' && char <= '9': return char - '0', true
	case char >= 'a' && char <= 'f': return char - 'a' + 10, true
	case char >= 'A' && char <= 'F': return char - 'A' + 10, true
	default:
		return 0, false
	}
}

func parseRGBFunc(src string) (color.NRGBA, bool) {
	open := strings.IndexByte(src, '(')
	if open == -1 || !strings.HasSuffix(src, ")") { return color.NRGBA{}, false }
	hasAlpha := strings.HasPrefix(src, "rgba")
	if !hasAlpha && !strings.HasPrefix(src, "rgb") { return color.NRGBA{}, false }

	fields := strings.Split(src[open + 1 : len(src) - 1], ",")
	expected := 3
	if hasAlpha { expected = 4 }
	if len(fields) != expected { return color.NRGBA{}, false }

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseUint(strings.TrimSpace(fields[i]), 10, 8)
		if err != nil { return color.NRGBA{}, false }
		channels[i] = uint8(value)
	}
	alpha := uint8(255)
	if hasAlpha {
		value, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil || value < 0 || value > 1 { return color.NRGBA{}, false }
		alpha = uint8(value*255 + 0.5)
	}
	return color.NRGBA{ R: channels[0], G: channels[1], B: channels[2], A: alpha }, true
}
