package grayscan

import (
	"fmt"
	"image"
	"math"
)

// Histogram counts the raster's samples into 256 bins.
func Histogram(img *Raster) []int {
	hist := make([]int, 256)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			hist[img.ValueAt(x, y)]++
		}
	}
	return hist
}

// CDF converts a histogram into a normalized cumulative distribution.
// total is the number of samples counted into hist; the last entry of the
// result approaches 1 within floating-point tolerance.
func CDF(hist []int, total int) []float64 {
	cdf := make([]float64, len(hist))
	if len(hist) == 0 || total <= 0 {
		return cdf
	}
	n := float64(total)
	cdf[0] = float64(hist[0]) / n
	for i := 1; i < len(hist); i++ {
		cdf[i] = cdf[i-1] + float64(hist[i])/n
	}
	return cdf
}

// Equalize remaps each sample through the raster's normalized CDF,
// spreading the intensity distribution across the full 8-bit range.
func Equalize(img *Raster) *Raster {
	hist := Histogram(img)
	cdf := CDF(hist, img.Width()*img.Height())

	lut := make([]uint8, 256)
	for i := range lut {
		lut[i] = uint8(math.Round(cdf[i] * 255))
	}

	out := NewRaster(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out.SetValue(x, y, lut[img.ValueAt(x, y)])
		}
	}
	return out
}

// Normalize rescales the raster's intensity range to [0, 255] using
// floating-point intermediates. A constant raster has no range to
// stretch and fails with ErrInvalidRange.
func Normalize(img *Raster) (*Raster, error) {
	minVal, maxVal := img.ValueAt(0, 0), img.ValueAt(0, 0)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			v := img.ValueAt(x, y)
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if maxVal == minVal {
		return nil, fmt.Errorf("%w: constant intensity %d", ErrInvalidRange, minVal)
	}

	scale := 255.0 / float64(maxVal-minVal)
	out := NewRaster(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			v := float64(img.ValueAt(x, y)-minVal) * scale
			out.SetValue(x, y, clampUint8(v))
		}
	}
	return out, nil
}

// ChannelStats carries per-channel histograms and normalized CDFs for an
// RGB image, indexed R, G, B. A grayscale input yields the same slices in
// all three slots.
type ChannelStats struct {
	Histograms [3][]int
	CDFs       [3][]float64
}

// RGBStats computes per-channel histograms and CDFs, typically used for
// display alongside the grayscale pipeline. Only 8-bit grayscale and
// RGB(A) layouts are supported; anything else fails with
// ErrUnsupportedFormat.
func RGBStats(img image.Image) (*ChannelStats, error) {
	switch img.(type) {
	case *image.Gray, *image.RGBA, *image.NRGBA:
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedFormat, img)
	}

	stats := &ChannelStats{}
	for i := range stats.Histograms {
		stats.Histograms[i] = make([]int, 256)
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			stats.Histograms[0][r>>8]++
			stats.Histograms[1][g>>8]++
			stats.Histograms[2][b>>8]++
		}
	}

	total := bounds.Dx() * bounds.Dy()
	for i := range stats.CDFs {
		stats.CDFs[i] = CDF(stats.Histograms[i], total)
	}
	return stats, nil
}
