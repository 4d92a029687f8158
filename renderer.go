package canvastext

// This file contains the Renderer type definition and its getter and
// setter methods. The actual draw operation lives in renderer_draw.go.

// Canonical line height multiplier applied when a style doesn't set its
// own. Historical revisions of this engine disagreed on the value; 1.1
// is the one canvastext standardizes on.
const DefaultLineHeight = 1.1

// The Renderer is the entry point of canvastext: it resolves a [Style],
// wraps the text against the surface width and paints the resulting
// rows. Each call to [Renderer.Draw] is a single synchronous pass; the
// font metrics cache is the only state that persists across calls.
//
// The zero value is not meant to be used directly; create renderers
// with [NewRenderer]().
type Renderer struct {
	metrics *MetricsCache
	lineHeight float64
}

// Creates a new [Renderer] with its own metrics cache and the default
// line height multiplier.
func NewRenderer() *Renderer {
	return &Renderer {
		metrics: NewMetricsCache(),
		lineHeight: DefaultLineHeight,
	}
}

// Sets the default line height multiplier applied to styles that don't
// set their own. Must be strictly positive.
func (self *Renderer) SetLineHeight(lineHeight float64) {
	if lineHeight <= 0 { panic("lineHeight must be strictly positive") }
	self.lineHeight = lineHeight
}

// Returns the current default line height multiplier.
func (self *Renderer) GetLineHeight() float64 { return self.lineHeight }

// Sets the metrics cache used by the renderer. Nil caches are not
// allowed. The main reason to call this is sharing one cache between
// multiple renderers that target the same fonts.
func (self *Renderer) SetMetricsCache(metrics *MetricsCache) {
	if metrics == nil { panic("nil MetricsCache") }
	self.metrics = metrics
}

// Returns the renderer's metrics cache.
func (self *Renderer) GetMetricsCache() *MetricsCache { return self.metrics }

// Metrics resolves the style's font identity and returns its measured
// [Metrics], reading the cache when the font has been measured before.
func (self *Renderer) Metrics(surface Surface, style *Style) Metrics {
	if surface == nil { panic("can't measure fonts with a nil Surface") }
	if style == nil { style = &Style{} }
	font := resolveFont(style)
	return self.metrics.Measure(surface, font, fontSizeHint(style, font))
}
