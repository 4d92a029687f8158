package tdcanvas

import "testing"

import "golang.org/x/image/font/gofont/goregular"

import canvastext "github.com/d4lton/CanvasText"

func newTestRegistry(t *testing.T) *FontRegistry {
	t.Helper()
	registry := NewFontRegistry()
	err := registry.Register("sans-serif", goregular.TTF)
	if err != nil { t.Fatalf("unexpected font registration error: %s", err) }
	return registry
}

func inkCount(canvas *Canvas) int {
	img := canvas.Image()
	count := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 { count += 1 }
	}
	return count
}

func TestRegistry(t *testing.T) {
	registry := newTestRegistry(t)
	if registry.Size() != 1 { t.Fatalf("expected size 1, got %d", registry.Size()) }
	if !registry.HasFamily("sans-serif") { t.Fatal("expected sans-serif to be registered") }
	if registry.HasFamily("serif") { t.Fatal("expected serif to not be registered") }

	err := registry.Register("sans-serif", goregular.TTF)
	if err != ErrAlreadyRegistered {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
	err = registry.Register("junk", []byte{1, 2, 3})
	if err == nil { t.Fatal("expected error registering junk font data") }
	if registry.Size() != 1 { t.Fatalf("expected size 1, got %d", registry.Size()) }
}

func TestRegistryFallback(t *testing.T) {
	registry := newTestRegistry(t)
	surface := New(200, 60, registry)

	// unknown families fall back to the first registered one
	knownWidth := surface.TextWidth("12pt 'sans-serif'", "hello")
	unknownWidth := surface.TextWidth("12pt 'no-such-family'", "hello")
	if knownWidth <= 0 { t.Fatalf("expected positive width, got %f", knownWidth) }
	if unknownWidth != knownWidth {
		t.Fatalf("expected fallback width %f, got %f", knownWidth, unknownWidth)
	}

	emptyRegistry := NewFontRegistry()
	emptySurface := New(200, 60, emptyRegistry)
	if width := emptySurface.TextWidth("12pt 'sans-serif'", "hello"); width != 0 {
		t.Fatalf("expected zero width without fonts, got %f", width)
	}
}

func TestTextWidth(t *testing.T) {
	surface := New(200, 60, newTestRegistry(t))
	short := surface.TextWidth("12pt 'sans-serif'", "hi")
	long := surface.TextWidth("12pt 'sans-serif'", "hello there")
	if short <= 0 { t.Fatalf("expected positive width, got %f", short) }
	if long <= short {
		t.Fatalf("expected %q wider than %q (%f vs %f)", "hello there", "hi", long, short)
	}

	small := surface.TextWidth("8pt 'sans-serif'", "hello")
	big := surface.TextWidth("24pt 'sans-serif'", "hello")
	if big <= small {
		t.Fatalf("expected bigger size to be wider (%f vs %f)", big, small)
	}
}

func TestFillTextInk(t *testing.T) {
	surface := New(200, 60, newTestRegistry(t))
	if count := inkCount(surface); count != 0 {
		t.Fatalf("expected blank canvas, found %d inked pixels", count)
	}
	paint := canvastext.TextPaint{ Font: "16pt 'sans-serif'", Color: "#000000" }
	surface.FillText("Hello", 10, 10, paint)
	if count := inkCount(surface); count == 0 {
		t.Fatal("expected inked pixels after FillText")
	}
}

func TestStrokeLine(t *testing.T) {
	surface := New(100, 100, newTestRegistry(t))
	surface.StrokeLine(10, 50, 90, 50, "#ff0000", 2)
	if count := inkCount(surface); count == 0 {
		t.Fatal("expected inked pixels after StrokeLine")
	}

	blank := New(100, 100, newTestRegistry(t))
	blank.StrokeLine(10, 50, 90, 50, "#ff0000", 0)
	if count := inkCount(blank); count != 0 {
		t.Fatalf("expected zero width stroke to draw nothing, found %d pixels", count)
	}
}

func TestOffscreenPixels(t *testing.T) {
	surface := New(200, 60, newTestRegistry(t))
	off := surface.Offscreen(64, 48)
	pix, width, height := off.Pixels()
	if width != 64 || height != 48 {
		t.Fatalf("expected 64x48 buffer, got %dx%d", width, height)
	}
	if len(pix) != 64*48*4 {
		t.Fatalf("expected %d bytes, got %d", 64*48*4, len(pix))
	}

	off.FillText("M", 10, 10, canvastext.TextPaint{ Font: "16pt 'sans-serif'", Color: "#000000" })
	pix, _, _ = off.Pixels()
	inked := 0
	for i := 3; i < len(pix); i += 4 {
		if pix[i] > 0 { inked += 1 }
	}
	if inked == 0 { t.Fatal("expected inked pixels in offscreen buffer") }
}

func TestDrawEndToEnd(t *testing.T) {
	surface := New(200, 100, newTestRegistry(t))
	renderer := canvastext.NewRenderer()
	style := canvastext.Style{
		Font: "16pt 'sans-serif'",
		Color: "#202020",
		Align: canvastext.Center,
		VertAlign: canvastext.Middle,
	}
	area, err := renderer.Draw(surface, "vector surfaces work too", &style)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if area <= 0 { t.Fatalf("expected positive covered area, got %f", area) }
	if count := inkCount(surface); count == 0 {
		t.Fatal("expected inked pixels after Draw")
	}

	metrics := renderer.Metrics(surface, &style)
	if metrics.Height < 8 || metrics.Height > 24 {
		t.Fatalf("implausible height %f for a 16pt font", metrics.Height)
	}
	if metrics.DescenderHeight < 1 || metrics.DescenderHeight > metrics.Height {
		t.Fatalf("implausible descender height %f", metrics.DescenderHeight)
	}
}

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		identity string
		size float64
		family string
	}{
		{"12pt 'sans-serif'", 12, "sans-serif"},
		{"24pt \"Times New Roman\"", 24, "Times New Roman"},
		{"9.5px mono", 9.5, "mono"},
		{"sans-serif", 12, "sans-serif"},
		{"", 12, ""},
	}
	for _, test := range tests {
		size, family := parseIdentity(test.identity)
		if size != test.size || family != test.family {
			t.Fatalf(
				"parseIdentity(%q) = (%f, %q), expected (%f, %q)",
				test.identity, size, family, test.size, test.family,
			)
		}
	}
}
