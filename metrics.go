package canvastext

import "math"
import "sync"

// Probe strings rendered off-screen to measure ink extents. The height
// probe is uppercase-only; the descender probe adds glyphs whose ink
// falls below the baseline.
const heightProbe = "M"
const descenderProbe = "Mjqyg"

// Metrics describe the vertical ink extents of a font, measured by
// rendering probe glyphs off-screen and scanning the pixels. None of
// this information is exposed directly by the width-measurement
// primitive, which is why it has to be detected here.
type Metrics struct {
	// Height is the vertical ink extent of the uppercase probe glyph.
	Height float64

	// BaselineOffset is the distance from a top-baseline draw position
	// to the first row of actual ink, used to correct "top" anchored
	// draws to the true visual top.
	BaselineOffset float64

	// DescenderHeight is the extra ink extent below Height contributed
	// by descending glyphs, used to reserve space for bottom alignment.
	DescenderHeight float64
}

// MetricsCache measures fonts through a [Surface] and memoizes the
// results per font identity for its whole lifetime. Entries are never
// invalidated: font identity strings are assumed stable, and if the
// environment's glyphs change after the first measurement (say, a font
// finishing to load), the stale metrics persist. That's the accepted
// staleness policy, not something to fix silently.
//
// MetricsCache is concurrency-safe, though the expected usage is a
// single renderer measuring synchronously. The check-measure-store path
// runs under the lock, so a font identity is measured at most once.
type MetricsCache struct {
	mutex sync.Mutex
	metrics map[string]Metrics
}

// Creates a new, empty metrics cache.
func NewMetricsCache() *MetricsCache {
	return &MetricsCache {
		metrics: make(map[string]Metrics),
	}
}

// Returns the current number of measured fonts.
func (self *MetricsCache) Size() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.metrics)
}

// Measure returns the metrics for the given font identity, measuring
// through the surface on the first call and reading the cache on every
// later one. The sizeHint (font size in surface units) only controls
// how generously the probe buffers are allocated.
//
// A font whose probes yield no ink resolves to all-zero metrics; that's
// a defined degenerate result, not an error.
func (self *MetricsCache) Measure(surface Surface, font string, sizeHint float64) Metrics {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if metrics, cached := self.metrics[font]; cached { return metrics }

	var metrics Metrics
	inset := probeInset(sizeHint)
	minRow, maxRow, inked := probeInkRows(surface, font, heightProbe, sizeHint)
	if inked {
		metrics.Height = float64(maxRow - minRow)
		metrics.BaselineOffset = float64(minRow) - inset
		descMin, descMax, descInked := probeInkRows(surface, font, descenderProbe, sizeHint)
		if descInked {
			metrics.DescenderHeight = float64(descMax - descMin) - metrics.Height
		}
	}
	self.metrics[font] = metrics
	return metrics
}

// Vertical inset at which probes are painted, leaving headroom for
// fonts whose ink rises above the top-baseline draw position.
func probeInset(sizeHint float64) float64 {
	if sizeHint <= 0 { return 0 }
	return math.Ceil(sizeHint)
}

// Renders the probe string onto a generously sized off-screen buffer
// (height ~5x the font size, width ~2x the measured probe width) and
// scans every pixel for non-zero alpha, returning the min and max row
// indices containing ink.
func probeInkRows(surface Surface, font, probe string, sizeHint float64) (minRow, maxRow int, inked bool) {
	width := int(math.Ceil(surface.TextWidth(font, probe)*2))
	height := int(math.Ceil(sizeHint*5))
	if width < 1 { width = 1 }
	if height < 1 { height = 1 }

	offscreen := surface.Offscreen(width, height)
	offscreen.FillText(probe, 0, probeInset(sizeHint), TextPaint{ Font: font, Color: "#000000" })

	pix, pixWidth, pixHeight := offscreen.Pixels()
	for row := 0; row < pixHeight; row++ {
		rowStart := row*pixWidth*4
		for col := 0; col < pixWidth; col++ {
			if pix[rowStart + col*4 + 3] == 0 { continue }
			if !inked { minRow = row }
			maxRow = row
			inked = true
			break
		}
	}
	return minRow, maxRow, inked
}
