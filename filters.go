package grayscan

import (
	"fmt"
	"math"
	"sort"
)

// GaussianFilter smooths the raster with a normalized size x size
// Gaussian kernel. The output shrinks per Convolve's sizing contract.
func GaussianFilter(img *Raster, size int, sigma float64) (*Raster, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: kernel size %d must be odd and positive", ErrInvalidDimensions, size)
	}
	return Convolve(img, GaussianKernel(size, sigma))
}

// MeanFilter replaces each sample with the mean of its size x size
// neighborhood. The input is conceptually padded with zeros, so the
// output keeps the input's dimensions and border pixels are pulled
// toward black.
func MeanFilter(img *Raster, size int) (*Raster, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: kernel size %d must be odd and positive", ErrInvalidDimensions, size)
	}

	width, height := img.Width(), img.Height()
	pad := size / 2
	area := float64(size * size)
	out := NewRaster(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := 0
			for ky := -pad; ky <= pad; ky++ {
				for kx := -pad; kx <= pad; kx++ {
					sx, sy := x+kx, y+ky
					if sx < 0 || sx >= width || sy < 0 || sy >= height {
						continue // zero padding
					}
					sum += int(img.ValueAt(sx, sy))
				}
			}
			out.SetValue(x, y, clampUint8(math.Round(float64(sum)/area)))
		}
	}

	return out, nil
}

// MedianFilter replaces each sample with the median of its size x size
// neighborhood over the same zero-padded input as MeanFilter. The window
// always holds size*size values (padding contributes zeros), and an odd
// size keeps the median well-defined.
func MedianFilter(img *Raster, size int) (*Raster, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: kernel size %d must be odd and positive", ErrInvalidDimensions, size)
	}

	width, height := img.Width(), img.Height()
	pad := size / 2
	out := NewRaster(width, height)
	window := make([]int, 0, size*size)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			window = window[:0]
			for ky := -pad; ky <= pad; ky++ {
				for kx := -pad; kx <= pad; kx++ {
					sx, sy := x+kx, y+ky
					if sx < 0 || sx >= width || sy < 0 || sy >= height {
						window = append(window, 0)
						continue
					}
					window = append(window, int(img.ValueAt(sx, sy)))
				}
			}
			sort.Ints(window)
			out.SetValue(x, y, uint8(window[len(window)/2]))
		}
	}

	return out, nil
}
