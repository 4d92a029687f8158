package canvastext

import "strings"

// Test double for the drawing surface: widths are rune-count based
// (10 units per rune, spaces included), probe fills produce synthetic
// ink with a fixed baseline inset, and every call is recorded so tests
// can assert on the exact paint sequence.

const testCharWidth = 10.0
const testInkRows = 11      // "M" probe ink extent (height resolves to 10)
const testDescInkRows = 15  // descender probe ink extent (descender resolves to 4)
const testInkInset = 2      // rows between the draw position and the first ink row

type testFill struct {
	text string
	x, y float64
	paint TextPaint
}

type testStroke struct {
	x1, y1, x2, y2 float64
	color string
	width float64
}

type testSurface struct {
	width, height float64
	offscreens int
	fills []testFill
	strokes []testStroke
}

func newTestSurface(width, height float64) *testSurface {
	return &testSurface{ width: width, height: height }
}

func (self *testSurface) Size() (float64, float64) { return self.width, self.height }

func (self *testSurface) TextWidth(font, text string) float64 {
	return float64(len([]rune(text)))*testCharWidth
}

func (self *testSurface) FillText(text string, x, y float64, paint TextPaint) {
	self.fills = append(self.fills, testFill{ text: text, x: x, y: y, paint: paint })
}

func (self *testSurface) StrokeLine(x1, y1, x2, y2 float64, color string, width float64) {
	self.strokes = append(self.strokes, testStroke{ x1, y1, x2, y2, color, width })
}

func (self *testSurface) Offscreen(width, height int) Offscreen {
	self.offscreens += 1
	return &testOffscreen{ width: width, height: height }
}

type testOffscreen struct {
	width, height int
	fills []testFill
}

func (self *testOffscreen) FillText(text string, x, y float64, paint TextPaint) {
	self.fills = append(self.fills, testFill{ text: text, x: x, y: y, paint: paint })
}

// Fonts with "ghost" in the identity render no ink at all; everything
// else inks a fixed band of rows below the draw position, taller when
// the text contains descenders.
func (self *testOffscreen) Pixels() ([]byte, int, int) {
	pix := make([]byte, self.width*self.height*4)
	for _, fill := range self.fills {
		if strings.Contains(fill.paint.Font, "ghost") { continue }
		rows := testInkRows
		if strings.ContainsAny(fill.text, "jqyg") { rows = testDescInkRows }
		first := int(fill.y) + testInkInset
		for row := first; row < first + rows && row < self.height; row++ {
			if row < 0 { continue }
			pix[row*self.width*4 + 3] = 255
		}
	}
	return pix, self.width, self.height
}

func floatPtr(value float64) *float64 { return &value }
