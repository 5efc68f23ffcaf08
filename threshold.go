package grayscan

import "fmt"

// ThresholdGlobal produces a binary raster from a single scalar cutoff:
// samples at or above the cutoff become white, all others black.
func ThresholdGlobal(img *Raster, cutoff uint8) *Raster {
	out := NewRaster(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.ValueAt(x, y) >= cutoff {
				out.SetValue(x, y, 255)
			}
		}
	}
	return out
}

// ThresholdLocal partitions the raster into non-overlapping blockSize x
// blockSize tiles and thresholds each sample against its own tile's mean
// minus bias. Tiles at the right and bottom edges may be smaller. It fails
// with ErrInvalidDimensions for a non-positive block size.
func ThresholdLocal(img *Raster, blockSize int, bias float64) (*Raster, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidDimensions, blockSize)
	}

	width, height := img.Width(), img.Height()
	out := NewRaster(width, height)

	for by := 0; by < height; by += blockSize {
		for bx := 0; bx < width; bx += blockSize {
			y1 := min(by+blockSize, height)
			x1 := min(bx+blockSize, width)

			sum := 0
			for y := by; y < y1; y++ {
				for x := bx; x < x1; x++ {
					sum += int(img.ValueAt(x, y))
				}
			}
			mean := float64(sum) / float64((y1-by)*(x1-bx))
			cut := mean - bias

			for y := by; y < y1; y++ {
				for x := bx; x < x1; x++ {
					if float64(img.ValueAt(x, y)) >= cut {
						out.SetValue(x, y, 255)
					}
				}
			}
		}
	}

	return out, nil
}
