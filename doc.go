// canvastext lays out blocks of plain text into word-wrapped rows that
// fit a fixed-width drawing surface and paints them according to
// alignment, padding, line spacing, color, shadow and decoration
// settings.
//
// The package revolves around three pieces:
//   - [Style], a loosely-specified configuration that gets normalized
//     into fully-resolved values before any layout happens.
//   - [MetricsCache], which answers "how tall is a line of this font and
//     where is its true visual top" by rendering probe glyphs off-screen
//     and scanning the pixels for ink. Results are memoized per font
//     identity for the lifetime of the cache.
//   - [Renderer], which wraps the input text greedily against the width
//     budget and issues the paint calls, returning the total covered
//     area.
//
// The drawing surface itself stays behind the [Surface] interface. Two
// implementations are included: imgcanvas, which draws onto CPU images
// (or Ebitengine images), and tdcanvas, built on top of
// github.com/tdewolff/canvas.
//
// A minimal example:
//
//	library := imgcanvas.NewFontLibrary()
//	err := library.Register("sans-serif", goregular.TTF)
//	if err != nil { /* ... */ }
//	surface  := imgcanvas.NewImage(320, 200, library)
//	renderer := canvastext.NewRenderer()
//	area, err := renderer.Draw(surface, "Buy Our Stuff! $49.95!", &canvastext.Style{
//		FontSize: 18,
//		Color: "#20B2AA",
//		Align: canvastext.Center,
//		VertAlign: canvastext.Middle,
//	})
//
// canvastext only handles plain text: no rich text, no bidirectional or
// vertical scripts, no hyphenation. Words are never broken mid-word; a
// single word wider than the surface gets a row of its own.
package canvastext
