package tdcanvas

import "errors"
import "image/color"
import "strconv"
import "strings"
import "sync"

import "github.com/tdewolff/canvas"

// This error can be returned by (*FontRegistry).Register().
var ErrAlreadyRegistered = errors.New("font family already registered")

// Conversion factor between surface units and the point sizes
// expected by canvas.FontFamily.Face(). Surface units map one to
// one to millimeters on the underlying canvas.
const unitsToPt = 72.0/25.4

// A collection of font families for use with tdcanvas canvases.
// Font families must be registered before any text using them is
// measured or drawn. The first registered family becomes the
// fallback for identities naming unknown families.
//
// FontRegistries are safe for concurrent use.
type FontRegistry struct {
	mutex sync.Mutex
	families map[string]*canvas.FontFamily
	fallback string
}

// Creates an empty font registry.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{ families: make(map[string]*canvas.FontFamily) }
}

// Returns the number of registered font families.
func (self *FontRegistry) Size() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.families)
}

// Returns whether a font family with the given name has been
// registered.
func (self *FontRegistry) HasFamily(name string) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, found := self.families[name]
	return found
}

// Parses the given font data and registers it under the given
// family name. The method will return an error if the name is
// already taken or the font data can't be parsed.
func (self *FontRegistry) Register(name string, data []byte) error {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	_, found := self.families[name]
	if found { return ErrAlreadyRegistered }
	family := canvas.NewFontFamily(name)
	err := family.LoadFont(data, 0, canvas.FontRegular)
	if err != nil { return err }
	self.families[name] = family
	if self.fallback == "" { self.fallback = name }
	return nil
}

// Sets the family used when a font identity names an unregistered
// family. The method panics if the given name hasn't been
// registered.
func (self *FontRegistry) SetFallback(name string) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, found := self.families[name]
	if !found { panic("can't use unregistered font family \"" + name + "\" as fallback") }
	self.fallback = name
}

// Resolves a font identity to a font face with the given color.
// Returns nil if no family can serve the identity.
func (self *FontRegistry) faceFor(identity string, col color.Color) *canvas.FontFace {
	size, familyName := parseIdentity(identity)

	self.mutex.Lock()
	family, found := self.families[familyName]
	if !found { family = self.families[self.fallback] }
	self.mutex.Unlock()
	if family == nil { return nil }
	return family.Face(size*unitsToPt, col, canvas.FontRegular, canvas.FontNormal)
}

// Splits a font identity like "12pt 'Times New Roman'" into its
// size and family name parts. Missing or malformed sizes default
// to 12.
func parseIdentity(identity string) (float64, string) {
	identity = strings.TrimSpace(identity)

	digits := 0
	for digits < len(identity) {
		char := identity[digits]
		if (char < '0' || char > '9') && char != '.' { break }
		digits += 1
	}
	size := 12.0
	rest := identity
	if digits > 0 {
		parsed, err := strconv.ParseFloat(identity[: digits], 64)
		if err == nil && parsed > 0 { size = parsed }
		rest = identity[digits :]
	}
	rest = strings.TrimPrefix(rest, "pt")
	rest = strings.TrimPrefix(rest, "px")
	rest = strings.TrimSpace(rest)
	rest = strings.Trim(rest, "'\"")
	return size, rest
}
