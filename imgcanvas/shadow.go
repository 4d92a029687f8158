package imgcanvas

import "image"

// Single-channel take on the classic StackBlur algorithm: two sliding
// box passes per axis give the triangular falloff of the stack without
// the per-pixel stack bookkeeping, which a lone alpha channel doesn't
// justify.

// stackblurAlpha blurs the alpha mask in place with the given radius.
func stackblurAlpha(mask *image.Alpha, radius int) {
	if radius < 1 { return }
	width, height := mask.Rect.Dx(), mask.Rect.Dy()
	if width < 1 || height < 1 { return }

	scratch := make([]uint8, len(mask.Pix))
	for pass := 0; pass < 2; pass++ {
		boxBlurRows(mask.Pix, scratch, width, height, mask.Stride, radius)
		boxBlurCols(scratch, mask.Pix, width, height, mask.Stride, radius)
	}
}

func boxBlurRows(src, dst []uint8, width, height, stride, radius int) {
	div := 2*radius + 1
	for y := 0; y < height; y++ {
		row := y*stride
		sum := 0
		for i := -radius; i <= radius; i++ {
			sum += int(src[row + clampIndex(i, width)])
		}
		for x := 0; x < width; x++ {
			dst[row + x] = uint8(sum/div)
			sum += int(src[row + clampIndex(x + radius + 1, width)])
			sum -= int(src[row + clampIndex(x - radius, width)])
		}
	}
}

func boxBlurCols(src, dst []uint8, width, height, stride, radius int) {
	div := 2*radius + 1
	for x := 0; x < width; x++ {
		sum := 0
		for i := -radius; i <= radius; i++ {
			sum += int(src[clampIndex(i, height)*stride + x])
		}
		for y := 0; y < height; y++ {
			dst[y*stride + x] = uint8(sum/div)
			sum += int(src[clampIndex(y + radius + 1, height)*stride + x])
			sum -= int(src[clampIndex(y - radius, height)*stride + x])
		}
	}
}

// Clamps an index to [0, limit), extending the edge values of the
// buffer outwards the way the original StackBlur does.
func clampIndex(index, limit int) int {
	if index < 0 { return 0 }
	if index >= limit { return limit - 1 }
	return index
}
