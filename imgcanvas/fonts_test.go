package imgcanvas

import "errors"
import "testing"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gobold"

func TestFontLibraryRegister(t *testing.T) {
	library := NewFontLibrary()
	if library.Size() != 0 { t.Fatalf("expected empty library, got size %d", library.Size()) }

	if err := library.Register("sans-serif", goregular.TTF); err != nil { t.Fatal(err) }
	if library.Size() != 1 { t.Fatalf("expected size 1, got %d", library.Size()) }
	if !library.HasFamily("sans-serif") { t.Fatal("expected family to be registered") }

	err := library.Register("sans-serif", gobold.TTF)
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	if err := library.Register("bold", gobold.TTF); err != nil { t.Fatal(err) }
	if library.Size() != 2 { t.Fatalf("expected size 2, got %d", library.Size()) }

	if err := library.Register("broken", []byte("not a font")); err == nil {
		t.Fatal("expected a parse error for junk bytes")
	}
}

func TestFontLibraryFallback(t *testing.T) {
	library := NewFontLibrary()
	if face := library.faceFor("12pt 'anything'"); face != nil {
		t.Fatal("expected nil face from an empty library")
	}

	if err := library.Register("sans-serif", goregular.TTF); err != nil { t.Fatal(err) }

	// the first registered family acts as the fallback
	if face := library.faceFor("12pt 'no-such-family'"); face == nil {
		t.Fatal("expected fallback face")
	}

	if err := library.Register("bold", gobold.TTF); err != nil { t.Fatal(err) }
	library.SetFallback("bold")
	if face := library.faceFor("14pt 'no-such-family'"); face == nil {
		t.Fatal("expected fallback face after SetFallback")
	}
}

func TestFontLibraryFaceCache(t *testing.T) {
	library := NewFontLibrary()
	if err := library.Register("sans-serif", goregular.TTF); err != nil { t.Fatal(err) }

	first := library.faceFor("16pt 'sans-serif'")
	again := library.faceFor("16pt 'sans-serif'")
	if first == nil || first != again { t.Fatal("expected the sized face to be cached") }
	other := library.faceFor("17pt 'sans-serif'")
	if other == nil || other == first { t.Fatal("expected a distinct face per size") }
}

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		identity string
		size float64
		family string
	}{
		{ "12pt 'sans-serif'", 12, "sans-serif" },
		{ "18.5pt 'Open Sans'", 18.5, "Open Sans" },
		{ "24px \"Lato\"", 24, "Lato" },
		{ "16 monospace", 16, "monospace" },
		{ "serif", 12, "serif" },
		{ "  12pt   'padded'  ", 12, "padded" },
	}
	for _, test := range tests {
		size, family := parseIdentity(test.identity)
		if size != test.size || family != test.family {
			t.Fatalf("parseIdentity(%q): expected (%g, %q), got (%g, %q)",
				test.identity, test.size, test.family, size, family)
		}
	}
}
