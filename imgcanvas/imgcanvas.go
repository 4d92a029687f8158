// imgcanvas implements the canvastext drawing surface on top of plain
// CPU images using golang.org/x/image font faces, with optional
// Ebitengine targets (see [Target]).
//
// Text painting uses top-baseline semantics: the y coordinate passed to
// FillText is the top of the em box. Colors are plain strings decoded
// with [canvastext.ParseColor]; unparseable colors paint opaque black.
package imgcanvas

import "image"
import "image/color"
import "image/draw"
import "math"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/vector"

import canvastext "github.com/d4lton/CanvasText"

var _ canvastext.Surface = (*Canvas)(nil)

// Canvas paints onto an underlying image through the canvastext
// [canvastext.Surface] interface. Create canvases with [New] for
// existing targets or [NewImage] for a freshly allocated CPU buffer.
type Canvas struct {
	target draw.Image
	rgba *image.RGBA // non-nil only for NewImage canvases
	library *FontLibrary
}

// Creates a canvas painting onto the given target.
func New(target Target, library *FontLibrary) *Canvas {
	if target == nil { panic("can't create a canvas with a nil target") }
	if library == nil { panic("can't create a canvas with a nil FontLibrary") }
	return &Canvas{ target: target, library: library }
}

// Creates a canvas backed by a newly allocated RGBA image of the given
// size. The image is reachable through [Canvas.RGBA] for encoding or
// compositing. Dimensions below 1 are clamped to 1.
func NewImage(width, height int, library *FontLibrary) *Canvas {
	if library == nil { panic("can't create a canvas with a nil FontLibrary") }
	if width < 1 { width = 1 }
	if height < 1 { height = 1 }
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{ target: rgba, rgba: rgba, library: library }
}

// Returns the backing image for canvases created with [NewImage], or
// nil for canvases painting onto external targets.
func (self *Canvas) RGBA() *image.RGBA { return self.rgba }

// Returns the library the canvas resolves font identities against.
func (self *Canvas) FontLibrary() *FontLibrary { return self.library }

// Size returns the target dimensions in pixels.
func (self *Canvas) Size() (width, height float64) {
	bounds := self.target.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

// TextWidth measures the rendered width of text under the given font
// identity. Unresolvable identities measure zero.
func (self *Canvas) TextWidth(fontID, text string) float64 {
	face := self.library.faceFor(fontID)
	if face == nil || text == "" { return 0 }
	drawer := font.Drawer{ Face: face }
	return fixedToFloat(drawer.MeasureString(text))
}

// FillText paints text with its anchor at (x, y), y being the top of
// the em box. The anchor is interpreted per paint.Align; a shadow is
// painted first when paint.ShadowColor is set.
func (self *Canvas) FillText(text string, x, y float64, paint canvastext.TextPaint) {
	face := self.library.faceFor(paint.Font)
	if face == nil || text == "" { return }

	drawer := font.Drawer{ Face: face }
	width := drawer.MeasureString(text)
	switch paint.Align {
	case canvastext.Center: x -= fixedToFloat(width)/2
	case canvastext.Right: x -= fixedToFloat(width)
	}
	baseline := y + fixedToFloat(face.Metrics().Ascent)

	if paint.ShadowColor != "" {
		self.paintShadow(text, x, baseline, face, width, paint)
	}

	drawer.Dst = self.target
	drawer.Src = image.NewUniform(fillColor(paint.Color))
	drawer.Dot = fixed.Point26_6{ X: floatToFixed(x), Y: floatToFixed(baseline) }
	drawer.DrawString(text)
}

// Renders the text into a transient alpha mask, blurs it and composites
// it at the shadow offset, all before the main glyphs go down.
func (self *Canvas) paintShadow(text string, x, baseline float64, face font.Face, width fixed.Int26_6, paint canvastext.TextPaint) {
	shadow, ok := canvastext.ParseColor(paint.ShadowColor)
	if !ok { return }

	radius := int(math.Ceil(paint.ShadowBlur))
	if radius < 0 { radius = 0 }
	metrics := face.Metrics()
	pad := radius + 1
	maskWidth := width.Ceil() + pad*2
	maskHeight := (metrics.Ascent + metrics.Descent).Ceil() + pad*2
	if maskWidth < 1 || maskHeight < 1 { return }

	mask := image.NewAlpha(image.Rect(0, 0, maskWidth, maskHeight))
	drawer := font.Drawer {
		Dst: mask,
		Src: image.Opaque,
		Face: face,
		Dot: fixed.P(pad, pad + metrics.Ascent.Ceil()),
	}
	drawer.DrawString(text)
	if radius > 0 { stackblurAlpha(mask, radius) }

	originX := int(math.Round(x + paint.ShadowOffsetX)) - pad
	originY := int(math.Round(baseline + paint.ShadowOffsetY)) - metrics.Ascent.Ceil() - pad
	rect := mask.Bounds().Add(image.Pt(originX, originY))
	draw.DrawMask(self.target, rect, image.NewUniform(shadow), image.Point{}, mask, image.Point{}, draw.Over)
}

// StrokeLine strokes a straight butt-capped line by rasterizing the
// quad spanned by the two endpoints and the stroke width.
func (self *Canvas) StrokeLine(x1, y1, x2, y2 float64, clr string, width float64) {
	length := math.Hypot(x2 - x1, y2 - y1)
	if width <= 0 || length == 0 { return }

	// half-width perpendicular displacement
	perpX := -(y2 - y1)/length*width/2
	perpY := (x2 - x1)/length*width/2
	quadX := [4]float64{ x1 + perpX, x2 + perpX, x2 - perpX, x1 - perpX }
	quadY := [4]float64{ y1 + perpY, y2 + perpY, y2 - perpY, y1 - perpY }

	minX, minY := quadX[0], quadY[0]
	maxX, maxY := quadX[0], quadY[0]
	for i := 1; i < 4; i++ {
		minX = math.Min(minX, quadX[i])
		minY = math.Min(minY, quadY[i])
		maxX = math.Max(maxX, quadX[i])
		maxY = math.Max(maxY, quadY[i])
	}
	originX, originY := int(math.Floor(minX)), int(math.Floor(minY))
	maskWidth := int(math.Ceil(maxX)) - originX
	maskHeight := int(math.Ceil(maxY)) - originY
	if maskWidth < 1 || maskHeight < 1 { return }

	rasterizer := vector.NewRasterizer(maskWidth, maskHeight)
	rasterizer.DrawOp = draw.Src
	rasterizer.MoveTo(float32(quadX[0] - float64(originX)), float32(quadY[0] - float64(originY)))
	for i := 1; i < 4; i++ {
		rasterizer.LineTo(float32(quadX[i] - float64(originX)), float32(quadY[i] - float64(originY)))
	}
	rasterizer.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, maskWidth, maskHeight))
	rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	rect := mask.Bounds().Add(image.Pt(originX, originY))
	draw.DrawMask(self.target, rect, image.NewUniform(fillColor(clr)), image.Point{}, mask, image.Point{}, draw.Over)
}

// Offscreen allocates a CPU pixel buffer sharing the canvas's font
// library, used by the metrics probes. Dimensions below 1 clamp to 1.
func (self *Canvas) Offscreen(width, height int) canvastext.Offscreen {
	if width < 1 { width = 1 }
	if height < 1 { height = 1 }
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	return &offscreen{ canvas: Canvas{ target: rgba, rgba: rgba, library: self.library } }
}

type offscreen struct {
	canvas Canvas
}

func (self *offscreen) FillText(text string, x, y float64, paint canvastext.TextPaint) {
	self.canvas.FillText(text, x, y, paint)
}

func (self *offscreen) Pixels() (pix []byte, width, height int) {
	bounds := self.canvas.rgba.Bounds()
	return self.canvas.rgba.Pix, bounds.Dx(), bounds.Dy()
}

func fillColor(clr string) color.Color {
	parsed, ok := canvastext.ParseColor(clr)
	if !ok { return color.NRGBA{ A: 255 } }
	return parsed
}

func fixedToFloat(value fixed.Int26_6) float64 { return float64(value)/64 }

func floatToFixed(value float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(value*64))
}
