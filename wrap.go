package canvastext

import "strings"

// Greedy word wrapping: a single pass, no backtracking, spaces as the
// only break points. Runs of whitespace are normalized to single
// separators before splitting, so no empty words can corrupt the row
// joins.

// Wrap splits text into the rows that [Renderer.Draw] would paint for
// the given style, without painting anything. Each row is a sequence of
// words joined by single spaces.
//
// Layout depends only on the text, the resolved padding, the surface
// width and the surface's measurement primitive: identical inputs
// always produce identical rows. Empty or whitespace-only text yields
// zero rows.
func (self *Renderer) Wrap(surface Surface, text string, style *Style) ([]string, error) {
	if surface == nil { panic("can't wrap text with a nil Surface") }
	if style == nil { style = &Style{} }
	resolved, err := resolveStyle(style, self.lineHeight)
	if err != nil { return nil, err }
	width, _ := surface.Size()
	return wrapRows(surface, resolved.font, text, resolved.padding, width), nil
}

// Core greedy accumulation. A candidate row whose measured width
// (text plus horizontal padding) reaches the surface width closes the
// current row, unless the accumulator is still empty: a single word
// wider than the budget gets its own row and is never split mid-word.
// Zero or negative surface widths therefore degenerate to one row per
// word.
func wrapRows(surface Surface, font, text string, padding Padding, surfaceWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 { return nil }

	rows := make([]string, 0, 1)
	accumulator := ""
	for _, word := range words {
		candidate := word
		if accumulator != "" { candidate = accumulator + " " + word }
		width := surface.TextWidth(font, candidate) + padding.Left + padding.Right
		if width >= surfaceWidth && accumulator != "" {
			rows = append(rows, accumulator)
			accumulator = word
		} else {
			accumulator = candidate
		}
	}
	if accumulator != "" { rows = append(rows, accumulator) }
	return rows
}
