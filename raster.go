// Package grayscan implements classical spatial-domain analysis of a
// single grayscale raster: intensity-distribution transforms (histogram,
// CDF, equalization, normalization), global and block-local thresholding,
// synthetic noise injection, linear and rank-order smoothing filters, and
// gradient-based edge detection up to a full multi-stage Canny detector.
package grayscan

import (
	"image"
	"image/color"
)

// Raster is a single-channel 8-bit intensity grid. It wraps image.Gray
// with convenience methods for pixel access. Every operation in this
// package treats its input Raster as read-only and allocates a new Raster
// for the result.
type Raster struct {
	*image.Gray
}

// NewRaster creates a zero-filled Raster with the specified dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// RasterFromImage converts any image.Image that is already grayscale in
// content to a Raster, taking each pixel's luma channel.
func RasterFromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	out := NewRaster(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return out
}

// Width returns the raster width.
func (r *Raster) Width() int {
	return r.Bounds().Dx()
}

// Height returns the raster height.
func (r *Raster) Height() int {
	return r.Bounds().Dy()
}

// ValueAt returns the intensity at (x, y).
func (r *Raster) ValueAt(x, y int) uint8 {
	return r.GrayAt(x, y).Y
}

// SetValue sets the intensity at (x, y).
func (r *Raster) SetValue(x, y int, v uint8) {
	r.Gray.SetGray(x, y, color.Gray{Y: v})
}

// Clone creates a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	clone := NewRaster(r.Width(), r.Height())
	copy(clone.Pix, r.Pix)
	return clone
}

// Float converts the raster to a [][]float64 grid for unclamped
// intermediate arithmetic.
func (r *Raster) Float() [][]float64 {
	width, height := r.Width(), r.Height()
	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			out[y][x] = float64(r.GrayAt(x, y).Y)
		}
	}
	return out
}

// Sample values an EdgeMap holds.
const (
	NotEdgePixel uint8 = 0
	EdgePixel    uint8 = 255
)

// EdgeMap is the binary result of an edge detector. It wraps image.Gray
// the same way Raster does but is kept a distinct type: every sample is
// either EdgePixel or NotEdgePixel, and the map is never mutated by the
// package after it is returned.
type EdgeMap struct {
	*image.Gray
}

// NewEdgeMap creates an all-NotEdgePixel EdgeMap with the specified
// dimensions.
func NewEdgeMap(width, height int) *EdgeMap {
	return &EdgeMap{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// Width returns the map width.
func (m *EdgeMap) Width() int {
	return m.Bounds().Dx()
}

// Height returns the map height.
func (m *EdgeMap) Height() int {
	return m.Bounds().Dy()
}

// IsEdge reports whether (x, y) is classified as an edge.
func (m *EdgeMap) IsEdge(x, y int) bool {
	return m.GrayAt(x, y).Y != NotEdgePixel
}

// CountEdges returns the number of edge pixels in the map.
func (m *EdgeMap) CountEdges() int {
	count := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.IsEdge(x, y) {
				count++
			}
		}
	}
	return count
}
