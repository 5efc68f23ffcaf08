package grayscan

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Historical smoothing defaults for the Canny pre-stage. Sigma 10 over a
// 3x3 kernel yields a nearly uniform kernel; callers that want a real
// Gaussian pass their own CannyOptions.
const (
	DefaultBlurSize  = 3
	DefaultBlurSigma = 10.0
)

// EdgeClass is the tri-state classification assigned by double
// thresholding: not an edge, a weak candidate, or a strong edge.
type EdgeClass uint8

const (
	EdgeNone EdgeClass = iota
	EdgeWeak
	EdgeStrong
)

// GradientField holds co-indexed per-pixel gradient grids of equal shape.
// Magnitude is non-negative; Orientation is the signed Atan2 angle in
// (-pi, pi]. Edge direction is line-symmetric, so consumers fold the
// orientation into [0, pi) before quantizing it.
type GradientField struct {
	Magnitude   [][]float64
	Orientation [][]float64
}

// Width returns the field width.
func (f *GradientField) Width() int {
	if len(f.Magnitude) == 0 {
		return 0
	}
	return len(f.Magnitude[0])
}

// Height returns the field height.
func (f *GradientField) Height() int {
	return len(f.Magnitude)
}

// CannyOptions configures CannyWithOptions. The zero value selects the
// package defaults and disables logging.
type CannyOptions struct {
	// BlurSize is the Gaussian kernel side length; DefaultBlurSize if 0.
	BlurSize int
	// BlurSigma is the Gaussian standard deviation; DefaultBlurSigma if 0.
	BlurSigma float64
	// Logger receives per-stage debug timings; nil disables logging.
	Logger *zerolog.Logger
}

// Canny runs the full multi-stage edge detector with default smoothing:
// Gaussian blur, Sobel gradient field, non-maximum suppression, double
// thresholding, and hysteresis linking. Each 3x3 convolution stage trims
// six rows and columns, so the returned EdgeMap is smaller than img.
func Canny(img *Raster, low, high float64) (*EdgeMap, error) {
	return CannyWithOptions(img, low, high, CannyOptions{})
}

// CannyWithOptions runs the detector with explicit smoothing parameters.
// It fails with ErrInvalidThresholds for a malformed low/high pair and
// ErrInvalidDimensions when the image cannot accommodate the smoothing
// and gradient convolutions.
func CannyWithOptions(img *Raster, low, high float64, opts CannyOptions) (*EdgeMap, error) {
	if low < 0 || high < 0 || low > high {
		return nil, fmt.Errorf("%w: low=%g high=%g", ErrInvalidThresholds, low, high)
	}
	size := opts.BlurSize
	if size == 0 {
		size = DefaultBlurSize
	}
	sigma := opts.BlurSigma
	if sigma == 0 {
		sigma = DefaultBlurSigma
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	start := time.Now()
	blurred, err := ConvolveFloat(img.Float(), GaussianKernel(size, sigma))
	if err != nil {
		return nil, err
	}
	logger.Debug().Dur("elapsed", time.Since(start)).
		Int("kernel", size).Float64("sigma", sigma).Msg("gaussian smoothing")

	start = time.Now()
	field, err := ComputeGradient(blurred)
	if err != nil {
		return nil, err
	}
	logger.Debug().Dur("elapsed", time.Since(start)).
		Int("width", field.Width()).Int("height", field.Height()).Msg("gradient field")

	start = time.Now()
	suppressed := SuppressNonMaxima(field)
	classes, err := ClassifyEdges(suppressed, low, high)
	if err != nil {
		return nil, err
	}
	edges := LinkEdges(classes)
	logger.Debug().Dur("elapsed", time.Since(start)).
		Int("edges", edges.CountEdges()).Msg("suppression and linking")

	return edges, nil
}

// ComputeGradient builds the gradient field of a float intensity grid
// from horizontal and vertical Sobel convolutions. The field inherits the
// convolution's shrunk shape, and the two grids are always co-shaped.
func ComputeGradient(img [][]float64) (*GradientField, error) {
	sobel := SobelKernel()
	gx, err := ConvolveFloat(img, sobel)
	if err != nil {
		return nil, err
	}
	gy, err := ConvolveFloat(img, sobel.Transpose())
	if err != nil {
		return nil, err
	}

	height := len(gx)
	width := len(gx[0])
	magnitude := make([][]float64, height)
	orientation := make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		orientation[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			magnitude[y][x] = math.Hypot(gx[y][x], gy[y][x])
			orientation[y][x] = math.Atan2(gy[y][x], gx[y][x])
		}
	}

	return &GradientField{Magnitude: magnitude, Orientation: orientation}, nil
}

// SuppressNonMaxima thins the magnitude field to single-pixel ridges.
// Each interior pixel's orientation is folded into [0, pi] and quantized
// into one of three neighbor selections: horizontal, diagonal, vertical.
// The pixel keeps its magnitude only if it is >= both orientation-aligned
// neighbors; otherwise it is zeroed. Border pixels are left at zero so no
// neighbor read can go out of range.
//
// An angle outside the three predicates keeps its magnitude. After
// folding the bins cover the whole range, so the fallback exists only to
// pin the behavior down deterministically.
func SuppressNonMaxima(field *GradientField) [][]float64 {
	mag := field.Magnitude
	height := field.Height()
	width := field.Width()

	out := make([][]float64, height)
	for y := range out {
		out[y] = make([]float64, width)
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			angle := field.Orientation[y][x]
			if angle < 0 {
				angle += math.Pi
			}
			m := mag[y][x]

			var q, r float64
			switch {
			case angle < math.Pi/8 || angle >= 7*math.Pi/8:
				// near-horizontal gradient: compare along the row
				q, r = mag[y][x+1], mag[y][x-1]
			case angle < 3*math.Pi/8 || angle >= 5*math.Pi/8:
				// both diagonal bands compare against the same pair
				q, r = mag[y+1][x-1], mag[y-1][x+1]
			case angle < 5*math.Pi/8:
				// near-vertical gradient: compare along the column
				q, r = mag[y+1][x], mag[y-1][x]
			default:
				out[y][x] = m
				continue
			}

			if m >= q && m >= r {
				out[y][x] = m
			}
		}
	}

	return out
}

// ClassifyEdges buckets each suppressed magnitude into an EdgeClass:
// EdgeStrong for magnitude > high, EdgeWeak for low <= magnitude <= high,
// EdgeNone otherwise. The returned grid is independent storage; the
// magnitude field is not modified.
func ClassifyEdges(magnitude [][]float64, low, high float64) ([][]EdgeClass, error) {
	if low < 0 || high < 0 || low > high {
		return nil, fmt.Errorf("%w: low=%g high=%g", ErrInvalidThresholds, low, high)
	}

	classes := make([][]EdgeClass, len(magnitude))
	for y := range magnitude {
		classes[y] = make([]EdgeClass, len(magnitude[y]))
		for x, m := range magnitude[y] {
			switch {
			case m > high:
				classes[y][x] = EdgeStrong
			case m >= low:
				classes[y][x] = EdgeWeak
			}
		}
	}

	return classes, nil
}

// LinkEdges performs edge tracking by hysteresis. Strong pixels seed a
// flood fill over 8-connected weak pixels: every reached weak pixel is
// promoted to an edge and its own neighbors are enqueued. Weak pixels the
// fill never reaches are discarded.
//
// The traversal uses an explicit worklist instead of recursion so large
// connected weak regions cannot exhaust the call stack. Promotion is
// monotonic and idempotent, so the visitation order does not affect the
// final map.
func LinkEdges(classes [][]EdgeClass) *EdgeMap {
	height := len(classes)
	width := 0
	if height > 0 {
		width = len(classes[0])
	}
	edges := NewEdgeMap(width, height)

	// working copy so the caller's classification grid stays intact
	state := make([][]EdgeClass, height)
	for y := range classes {
		state[y] = append([]EdgeClass(nil), classes[y]...)
	}

	type point struct{ x, y int }
	worklist := make([]point, 0, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if state[y][x] == EdgeStrong {
				worklist = append(worklist, point{x, y})
			}
		}
	}

	for len(worklist) > 0 {
		p := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.x+dx, p.y+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if state[ny][nx] == EdgeWeak {
					state[ny][nx] = EdgeStrong
					worklist = append(worklist, point{nx, ny})
				}
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if state[y][x] == EdgeStrong {
				edges.Pix[y*edges.Stride+x] = EdgePixel
			}
		}
	}

	return edges
}
