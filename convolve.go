package grayscan

import (
	"fmt"
	"math"
)

// Convolve applies kernel k over img and returns the response clamped to
// 8-bit samples. The engine applies no normalization of its own; callers
// that need unit gain pre-normalize their kernel (see GaussianKernel).
//
// Sizing contract: for a k x k kernel over a w x h image the output is
// (w-2k) x (h-2k). No boundary padding is applied, and the sampling window
// for output (x, y) starts at input (x, y), so the crop falls entirely on
// the trailing edges rather than being split around the border. Every
// downstream stage depends on this asymmetric shrink-by-2k behavior;
// keep it as is.
func Convolve(img *Raster, k *Kernel) (*Raster, error) {
	out, err := ConvolveFloat(img.Float(), k)
	if err != nil {
		return nil, err
	}
	return rasterFromFloat(out), nil
}

// ConvolveFloat applies kernel k over a float intensity grid and returns
// unclamped responses. Same sizing contract as Convolve. It fails with
// ErrInvalidDimensions when the kernel is not square or either image
// dimension is at most twice the kernel side.
func ConvolveFloat(img [][]float64, k *Kernel) ([][]float64, error) {
	if k == nil || !k.square() {
		return nil, fmt.Errorf("%w: convolution kernel must be square and non-empty", ErrInvalidDimensions)
	}
	height := len(img)
	width := 0
	if height > 0 {
		width = len(img[0])
	}
	size := k.Width
	outW := width - 2*size
	outH := height - 2*size
	if outW <= 0 || outH <= 0 {
		return nil, fmt.Errorf("%w: image %dx%d too small for %dx%d kernel",
			ErrInvalidDimensions, width, height, size, size)
	}

	dst := make([][]float64, outH)
	for y := 0; y < outH; y++ {
		dst[y] = make([]float64, outW)
		for x := 0; x < outW; x++ {
			var sum float64
			for ky := 0; ky < size; ky++ {
				for kx := 0; kx < size; kx++ {
					sum += img[y+ky][x+kx] * k.Values[ky][kx]
				}
			}
			dst[y][x] = sum
		}
	}

	return dst, nil
}

// rasterFromFloat clamps a float grid into a new 8-bit raster.
func rasterFromFloat(grid [][]float64) *Raster {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}
	out := NewRaster(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.SetValue(x, y, clampUint8(grid[y][x]))
		}
	}
	return out
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
