package grayscan

import "math"

// NewFlatRaster creates a raster with every sample set to value.
func NewFlatRaster(width, height int, value uint8) *Raster {
	img := NewRaster(width, height)
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

// NewGradientRaster creates a horizontal ramp from black to white.
func NewGradientRaster(width, height int) *Raster {
	img := NewRaster(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetValue(x, y, uint8(255*x/(width-1)))
		}
	}
	return img
}

// NewStepRaster creates an image with a sharp vertical boundary: columns
// left of the midpoint are black, the rest white.
func NewStepRaster(width, height int) *Raster {
	img := NewRaster(width, height)
	for y := 0; y < height; y++ {
		for x := width / 2; x < width; x++ {
			img.SetValue(x, y, 255)
		}
	}
	return img
}

// NewCheckerboardRaster creates a checkerboard pattern for edge testing.
func NewCheckerboardRaster(width, height, squareSize int) *Raster {
	img := NewRaster(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetValue(x, y, 255)
			}
		}
	}
	return img
}

// CalculateMSE calculates the Mean Squared Error between two rasters.
func CalculateMSE(img1, img2 *Raster) float64 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxFloat64
	}

	width, height := img1.Width(), img1.Height()
	var sumSq float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := float64(img1.ValueAt(x, y)) - float64(img2.ValueAt(x, y))
			sumSq += d * d
		}
	}
	return sumSq / float64(width*height)
}

// CalculateMaxDiff calculates the maximum sample difference between two
// rasters.
func CalculateMaxDiff(img1, img2 *Raster) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return 256
	}

	maxDiff := 0
	for y := 0; y < img1.Height(); y++ {
		for x := 0; x < img1.Width(); x++ {
			if d := abs(int(img1.ValueAt(x, y)) - int(img2.ValueAt(x, y))); d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff
}

// CalculateJaccardIndex calculates the Jaccard similarity between two
// binary edge maps. Returns a value between 0 (no overlap) and 1
// (perfect overlap); two empty maps count as identical.
func CalculateJaccardIndex(edges1, edges2 *EdgeMap) float64 {
	if edges1.Width() != edges2.Width() || edges1.Height() != edges2.Height() {
		return 0
	}

	var intersection, union int
	for y := 0; y < edges1.Height(); y++ {
		for x := 0; x < edges1.Width(); x++ {
			e1 := edges1.IsEdge(x, y)
			e2 := edges2.IsEdge(x, y)
			if e1 && e2 {
				intersection++
			}
			if e1 || e2 {
				union++
			}
		}
	}

	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
