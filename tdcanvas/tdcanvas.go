// tdcanvas implements the canvastext drawing surface on top of
// github.com/tdewolff/canvas, a vector graphics library. Unlike
// imgcanvas, which paints directly into raster images, tdcanvas
// accumulates vector drawing operations and rasterizes on demand,
// which also makes it suitable for exporting to vector formats.
//
// Surface units map one to one to canvas millimeters, and the canvas
// rasterizes at one pixel per millimeter, so coordinates behave like
// pixels throughout.
//
// Shadow blur radii are ignored on this surface. Shadows are drawn
// as a solid offset copy of the text.
package tdcanvas

import "image"
import "image/color"

import "github.com/tdewolff/canvas"
import "github.com/tdewolff/canvas/renderers/rasterizer"

import canvastext "github.com/d4lton/CanvasText"

var _ canvastext.Surface = (*Canvas)(nil)

// A vector-backed implementation of [canvastext.Surface].
type Canvas struct {
	canvas *canvas.Canvas
	context *canvas.Context
	registry *FontRegistry
	width float64
	height float64
}

// Creates a canvas of the given dimensions, drawing text with fonts
// from the given registry. Dimensions are clamped to be at least 1.
// The method panics if the registry is nil.
func New(width, height float64, registry *FontRegistry) *Canvas {
	if registry == nil { panic("can't create tdcanvas.Canvas with nil font registry") }
	if width < 1 { width = 1 }
	if height < 1 { height = 1 }
	target := canvas.New(width, height)
	context := canvas.NewContext(target)
	context.SetCoordSystem(canvas.CartesianIV)
	return &Canvas{
		canvas: target,
		context: context,
		registry: registry,
		width: width,
		height: height,
	}
}

// Returns the font registry the canvas draws with.
func (self *Canvas) FontRegistry() *FontRegistry { return self.registry }

// Rasterizes the accumulated drawing operations into an RGBA image
// at one pixel per surface unit.
func (self *Canvas) Image() *image.RGBA {
	return rasterizer.Draw(self.canvas, canvas.DPMM(1.0), canvas.DefaultColorSpace)
}

// Implements [canvastext.Surface].
func (self *Canvas) Size() (width, height float64) {
	return self.width, self.height
}

// Implements [canvastext.Surface].
func (self *Canvas) TextWidth(font string, text string) float64 {
	face := self.registry.faceFor(font, color.Black)
	if face == nil { return 0 }
	return face.TextWidth(text)
}

// Implements [canvastext.Surface].
func (self *Canvas) FillText(text string, x, y float64, paint canvastext.TextPaint) {
	fillText(self.context, self.registry, text, x, y, paint)
}

// Implements [canvastext.Surface].
func (self *Canvas) StrokeLine(x1, y1, x2, y2 float64, lineColor string, width float64) {
	if width <= 0 { return }
	self.context.SetStrokeColor(paintColor(lineColor))
	self.context.SetStrokeWidth(width)
	path := &canvas.Path{}
	path.MoveTo(0, 0)
	path.LineTo(x2 - x1, y2 - y1)
	self.context.DrawPath(x1, y1, path)
}

// Implements [canvastext.Surface].
func (self *Canvas) Offscreen(width, height int) canvastext.Offscreen {
	return &offscreen{ canvas: New(float64(width), float64(height), self.registry) }
}

type offscreen struct { canvas *Canvas }

func (self *offscreen) FillText(text string, x, y float64, paint canvastext.TextPaint) {
	self.canvas.FillText(text, x, y, paint)
}

func (self *offscreen) Pixels() (pix []byte, width, height int) {
	img := self.canvas.Image()
	bounds := img.Bounds()
	return img.Pix, bounds.Dx(), bounds.Dy()
}

func fillText(context *canvas.Context, registry *FontRegistry, text string, x, y float64, paint canvastext.TextPaint) {
	align := textAlign(paint.Align)
	if paint.ShadowColor != "" {
		shadowFace := registry.faceFor(paint.Font, paintColor(paint.ShadowColor))
		if shadowFace != nil {
			line := canvas.NewTextLine(shadowFace, text, align)
			baseline := y + paint.ShadowOffsetY + shadowFace.Metrics().Ascent
			context.DrawText(x + paint.ShadowOffsetX, baseline, line)
		}
	}

	face := registry.faceFor(paint.Font, paintColor(paint.Color))
	if face == nil { return }
	line := canvas.NewTextLine(face, text, align)
	context.DrawText(x, y + face.Metrics().Ascent, line)
}

func textAlign(align canvastext.Align) canvas.TextAlign {
	switch align {
	case canvastext.Center : return canvas.Center
	case canvastext.Right  : return canvas.Right
	default: return canvas.Left
	}
}

// Resolves a color string, falling back to opaque black when the
// string can't be parsed.
func paintColor(src string) color.Color {
	nrgba, ok := canvastext.ParseColor(src)
	if !ok { return color.Black }
	return nrgba
}
