package grayscan

import (
	"fmt"
	"math"
)

// Operator selects one of the fixed directional edge kernels. The set is
// closed, so operators are modeled as tagged constants selecting a kernel
// rather than as an interface hierarchy.
type Operator int

const (
	Laplacian Operator = iota
	Prewitt
	Sobel
	Roberts
)

// String returns the operator's lowercase name.
func (op Operator) String() string {
	switch op {
	case Laplacian:
		return "laplacian"
	case Prewitt:
		return "prewitt"
	case Sobel:
		return "sobel"
	case Roberts:
		return "roberts"
	}
	return fmt.Sprintf("operator(%d)", int(op))
}

// Kernel returns the operator's weight matrix for the horizontal
// derivative; the vertical variant is its transpose.
func (op Operator) Kernel() *Kernel {
	switch op {
	case Laplacian:
		return LaplacianKernel()
	case Prewitt:
		return PrewittKernel()
	case Roberts:
		return RobertsKernel()
	default:
		return SobelKernel()
	}
}

// Direction selects the derivative axis for DetectEdges.
type Direction int

const (
	// Horizontal differentiates along x, responding to vertical boundaries.
	Horizontal Direction = iota
	// Vertical differentiates along y, responding to horizontal boundaries.
	Vertical
	// Both combines the two directional responses with the Euclidean norm.
	Both
)

// String returns the direction's lowercase name.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Both:
		return "both"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// DetectEdges convolves img with the operator's kernel and returns the
// absolute edge response clamped to [0, 255] before narrowing, so large
// magnitudes saturate instead of wrapping. Horizontal applies the kernel
// as-is, Vertical applies its transpose, and Both combines the two
// responses per pixel. The output inherits Convolve's shrunk shape.
func DetectEdges(img *Raster, op Operator, dir Direction) (*Raster, error) {
	kernel := op.Kernel()
	gray := img.Float()

	if dir == Horizontal || dir == Vertical {
		if dir == Vertical {
			kernel = kernel.Transpose()
		}
		resp, err := ConvolveFloat(gray, kernel)
		if err != nil {
			return nil, err
		}
		for y := range resp {
			for x := range resp[y] {
				resp[y][x] = math.Abs(resp[y][x])
			}
		}
		return rasterFromFloat(resp), nil
	}

	gx, err := ConvolveFloat(gray, kernel)
	if err != nil {
		return nil, err
	}
	gy, err := ConvolveFloat(gray, kernel.Transpose())
	if err != nil {
		return nil, err
	}

	height := len(gx)
	width := len(gx[0])
	out := NewRaster(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.SetValue(x, y, clampUint8(math.Hypot(gx[y][x], gy[y][x])))
		}
	}
	return out, nil
}
