package imgcanvas

import "errors"
import "strconv"
import "strings"
import "sync"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"
import "golang.org/x/image/font/sfnt"

// Returned by [FontLibrary.Register] when the family name is taken.
var ErrAlreadyRegistered = errors.New("font family already registered")

// A collection of parsed fonts accessible by family name, plus a cache
// of sized faces derived from them.
//
// Font identities like "12pt 'Open Sans'" are resolved against the
// library: the leading number selects the face size and the remainder
// the family. Identities naming an unregistered family fall back to
// the family set with [FontLibrary.SetFallback], or render nothing if
// no fallback exists.
//
// The library is safe for concurrent registration and lookup, but the
// faces handed out are not; canvases use them strictly from their own
// synchronous paint calls.
type FontLibrary struct {
	mutex sync.Mutex
	fonts map[string]*sfnt.Font
	faces map[faceKey]font.Face
	fallback string
}

type faceKey struct {
	family string
	size float64
}

// Creates a new, empty font library.
func NewFontLibrary() *FontLibrary {
	return &FontLibrary {
		fonts: make(map[string]*sfnt.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// Returns the current number of registered font families.
func (self *FontLibrary) Size() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.fonts)
}

// Finds out whether a family with the given name has been registered.
func (self *FontLibrary) HasFamily(family string) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, found := self.fonts[family]
	return found
}

// Register parses the given font bytes (ttf/otf) and registers them
// under the given family name. The first registered family becomes the
// fallback unless [FontLibrary.SetFallback] says otherwise.
func (self *FontLibrary) Register(family string, data []byte) error {
	parsed, err := opentype.Parse(data)
	if err != nil { return err }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.fonts[family]; found { return ErrAlreadyRegistered }
	self.fonts[family] = parsed
	if self.fallback == "" { self.fallback = family }
	return nil
}

// Sets the family used for identities that name no registered family.
func (self *FontLibrary) SetFallback(family string) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.fallback = family
}

// Resolves a font identity to a sized face, creating and caching it on
// first use. Returns nil when neither the identity's family nor the
// fallback are registered.
func (self *FontLibrary) faceFor(identity string) font.Face {
	size, family := parseIdentity(identity)

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.fonts[family]; !found { family = self.fallback }
	parsed, found := self.fonts[family]
	if !found { return nil }

	key := faceKey{ family: family, size: size }
	if face, cached := self.faces[key]; cached { return face }
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions {
		Size: size,
		DPI: 72, // 1pt == 1px, so identities in pt and px agree
		Hinting: font.HintingFull,
	})
	if err != nil { return nil }
	self.faces[key] = face
	return face
}

// Splits a font identity into size and family. The size is the leading
// number (default 12 when absent); an immediately following "pt"/"px"
// unit is skipped; the remainder, stripped of quotes, is the family.
func parseIdentity(identity string) (size float64, family string) {
	identity = strings.TrimSpace(identity)

	end := 0
	for end < len(identity) && (identity[end] == '.' || (identity[end] >= '0' && identity[end] <= '9')) {
		end += 1
	}
	size = 12
	if parsed, err := strconv.ParseFloat(identity[0 : end], 64); err == nil && parsed > 0 {
		size = parsed
	}

	rest := identity[end : len(identity)]
	rest = strings.TrimPrefix(rest, "pt")
	rest = strings.TrimPrefix(rest, "px")
	family = strings.Trim(strings.TrimSpace(rest), "'\"")
	return size, family
}
