package grayscan

import "math"

// Kernel represents a convolution kernel.
type Kernel struct {
	Values [][]float64
	Width  int
	Height int
}

// NewKernel creates a new kernel from a 2D slice.
func NewKernel(values [][]float64) *Kernel {
	height := len(values)
	width := 0
	if height > 0 {
		width = len(values[0])
	}
	return &Kernel{
		Values: values,
		Width:  width,
		Height: height,
	}
}

// Transpose returns a new kernel with rows and columns swapped.
func (k *Kernel) Transpose() *Kernel {
	values := make([][]float64, k.Width)
	for x := 0; x < k.Width; x++ {
		values[x] = make([]float64, k.Height)
		for y := 0; y < k.Height; y++ {
			values[x][y] = k.Values[y][x]
		}
	}
	return NewKernel(values)
}

// square reports whether the kernel is non-empty with equal side lengths.
func (k *Kernel) square() bool {
	return k.Width > 0 && k.Width == k.Height
}

// LaplacianKernel returns the 4-neighbor Laplacian operator.
func LaplacianKernel() *Kernel {
	return NewKernel([][]float64{
		{0, 1, 0},
		{1, -4, 1},
		{0, 1, 0},
	})
}

// PrewittKernel returns the Prewitt operator for the horizontal derivative.
func PrewittKernel() *Kernel {
	return NewKernel([][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	})
}

// SobelKernel returns the Sobel operator for the horizontal derivative.
// Its transpose is the vertical-derivative operator.
func SobelKernel() *Kernel {
	return NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
}

// RobertsKernel returns the 2x2 Roberts cross operator.
func RobertsKernel() *Kernel {
	return NewKernel([][]float64{
		{1, 0},
		{0, -1},
	})
}

// GaussianKernel builds a size x size kernel sampled from the 2D Gaussian
// density with standard deviation sigma, then normalizes it to unit sum so
// convolution preserves DC gain. At the default smoothing parameters
// (size 3, sigma 10) the kernel is nearly uniform because sigma is large
// relative to the kernel extent.
func GaussianKernel(size int, sigma float64) *Kernel {
	center := (size - 1) / 2
	values := make([][]float64, size)
	sum := 0.0
	norm := 1.0 / (2 * math.Pi * sigma * sigma)
	for y := 0; y < size; y++ {
		values[y] = make([]float64, size)
		for x := 0; x < size; x++ {
			dx := float64(x - center)
			dy := float64(y - center)
			v := norm * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
			values[y][x] = v
			sum += v
		}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			values[y][x] /= sum
		}
	}
	return NewKernel(values)
}
