package canvastext

import "reflect"
import "strings"
import "testing"

func TestWrapRowsFit(t *testing.T) {
	surface := newTestSurface(100, 100)
	renderer := NewRenderer()

	text := "the quick brown fox jumps over the lazy dog"
	rows, err := renderer.Wrap(surface, text, &Style{})
	if err != nil { t.Fatal(err) }
	if len(rows) < 2 { t.Fatalf("expected wrapping, got %d rows", len(rows)) }
	for i, row := range rows {
		width := surface.TextWidth("", row)
		if width >= 100 && strings.Contains(row, " ") {
			t.Fatalf("row %d too wide (%g) and not a single-word row: %q", i, width, row)
		}
	}
}

func TestWrapRowsPaddingCounts(t *testing.T) {
	surface := newTestSurface(100, 100)
	renderer := NewRenderer()

	text := "aaa bbb"
	noPad, err := renderer.Wrap(surface, text, &Style{})
	if err != nil { t.Fatal(err) }
	if len(noPad) != 1 { t.Fatalf("expected 1 row without padding, got %v", noPad) }

	// 70 units of text + 2*20 padding overflows the 100 unit budget
	padded, err := renderer.Wrap(surface, text, &Style{ Padding: 20 })
	if err != nil { t.Fatal(err) }
	if len(padded) != 2 { t.Fatalf("expected 2 rows with padding, got %v", padded) }
}

func TestWrapRowsOversizedWord(t *testing.T) {
	surface := newTestSurface(100, 100)
	renderer := NewRenderer()

	rows, err := renderer.Wrap(surface, "hi incomprehensibilities go", &Style{})
	if err != nil { t.Fatal(err) }
	expected := []string{ "hi", "incomprehensibilities", "go" }
	if !reflect.DeepEqual(rows, expected) {
		t.Fatalf("expected %v, got %v", expected, rows)
	}
}

func TestWrapRowsReconstruction(t *testing.T) {
	surface := newTestSurface(100, 100)
	renderer := NewRenderer()

	text := "words   with \t odd\n\nwhitespace   runs between them"
	rows, err := renderer.Wrap(surface, text, &Style{})
	if err != nil { t.Fatal(err) }
	rejoined := strings.Join(rows, " ")
	normalized := strings.Join(strings.Fields(text), " ")
	if rejoined != normalized {
		t.Fatalf("rows don't reconstruct the text: %q vs %q", rejoined, normalized)
	}
}

func TestWrapRowsDeterminism(t *testing.T) {
	surface := newTestSurface(120, 100)
	renderer := NewRenderer()
	style := &Style{ Padding: 7 }

	text := "pack my box with five dozen liquor jugs"
	first, err := renderer.Wrap(surface, text, style)
	if err != nil { t.Fatal(err) }
	for i := 0; i < 5; i++ {
		again, err := renderer.Wrap(surface, text, style)
		if err != nil { t.Fatal(err) }
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("layout not deterministic: %v vs %v", first, again)
		}
	}
}

func TestWrapRowsEmptyInput(t *testing.T) {
	surface := newTestSurface(100, 100)
	renderer := NewRenderer()

	for _, text := range []string{ "", "   ", " \t\n " } {
		rows, err := renderer.Wrap(surface, text, &Style{})
		if err != nil { t.Fatal(err) }
		if len(rows) != 0 { t.Fatalf("expected no rows for %q, got %v", text, rows) }
	}
}

// Zero or negative surface widths make every candidate overflow
// immediately: one row per word, degenerate but defined.
func TestWrapRowsDegenerateWidth(t *testing.T) {
	renderer := NewRenderer()
	for _, width := range []float64{ 0, -50 } {
		surface := newTestSurface(width, 100)
		rows, err := renderer.Wrap(surface, "one two three", &Style{})
		if err != nil { t.Fatal(err) }
		expected := []string{ "one", "two", "three" }
		if !reflect.DeepEqual(rows, expected) {
			t.Fatalf("width %g: expected %v, got %v", width, expected, rows)
		}
	}
}
