package canvastext

import "math"

// Draw lays out text against the surface width and paints the resulting
// rows, returning the total covered area (the sum over rows of font
// height times row width, padding included). Consumers use the area for
// things like auto-sizing.
//
// The only error condition is style resolution failing (see
// [ErrBadHexColor]); layout and painting themselves can't fail. Drawing
// on a nil surface panics, as that's always a programming mistake.
func (self *Renderer) Draw(surface Surface, text string, style *Style) (float64, error) {
	if surface == nil { panic("can't draw on a nil Surface") }
	if style == nil { style = &Style{} }
	resolved, err := resolveStyle(style, self.lineHeight)
	if err != nil { return 0, err }

	surfaceWidth, surfaceHeight := surface.Size()
	rows := wrapRows(surface, resolved.font, text, resolved.padding, surfaceWidth)
	if len(rows) == 0 { return 0, nil }

	metrics := self.metrics.Measure(surface, resolved.font, resolved.sizeHint)
	rowHeight := metrics.Height*resolved.lineHeight

	// horizontal anchor, passed through as the FillText anchor under
	// the matching surface-native alignment
	var rowX float64
	switch resolved.align {
	case Left: rowX = resolved.padding.Left
	case Right: rowX = surfaceWidth - resolved.padding.Right
	case Center: rowX = surfaceWidth/2
	default:
		panic("unhandled switch case")
	}

	// vertical start of the block
	var rowY float64
	switch resolved.vertAlign {
	case Top:
		rowY = resolved.padding.Top
	case Bottom:
		rowY = surfaceHeight - float64(len(rows))*rowHeight - metrics.DescenderHeight - resolved.padding.Bottom
	case Middle:
		rowY = (surfaceHeight - float64(len(rows))*rowHeight)/2
	default:
		panic("unhandled switch case")
	}

	paint := TextPaint {
		Font: resolved.font,
		Color: resolved.color,
		Align: resolved.align,
		ShadowColor: resolved.shadowColor,
		ShadowBlur: resolved.shadowBlur,
		ShadowOffsetX: resolved.shadowOffsetX,
		ShadowOffsetY: resolved.shadowOffsetY,
	}

	var totalArea float64
	for _, row := range rows {
		// the vertical correction centers the glyph ink within the line
		// box and cancels the top-baseline inset measured by the probes
		y := rowY - metrics.BaselineOffset + (rowHeight - metrics.Height)/2
		surface.FillText(row, rowX, y, paint)

		contentWidth := surface.TextWidth(resolved.font, row)
		if resolved.decoration != DecorationNone {
			strokeDecoration(surface, resolved, metrics, rowX, y, contentWidth)
		}

		totalArea += metrics.Height*(contentWidth + resolved.padding.Left + resolved.padding.Right)
		rowY += rowHeight
	}
	return totalArea, nil
}

// Strokes an underline or strikethrough spanning the row's content
// width. The stroke reuses the resolved fill color and never casts the
// text shadow; StrokeLine has no shadow parameters at all.
func strokeDecoration(surface Surface, resolved resolvedStyle, metrics Metrics, rowX, y, contentWidth float64) {
	lineWidth := math.Max(1, metrics.Height/10)

	var lineY float64
	switch resolved.decoration {
	case Underline:
		lineY = y + metrics.Height + math.Min(20, metrics.Height/2)
	case Strikethrough:
		lineY = y + metrics.Height/2 + lineWidth/2
	default:
		panic("unhandled switch case")
	}

	// mirror the alignment anchor logic to recover the left edge
	startX := rowX
	switch resolved.align {
	case Right: startX = rowX - contentWidth
	case Center: startX = rowX - contentWidth/2
	}
	surface.StrokeLine(startX, lineY, startX + contentWidth, lineY, resolved.color, lineWidth)
}
