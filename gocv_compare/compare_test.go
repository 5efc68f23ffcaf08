// Package gocv_compare holds parity tests that check the pure Go image
// operations against their OpenCV equivalents. It lives in its own module so
// the main library does not pick up a cgo dependency; running these tests
// requires a working OpenCV installation.
package gocv_compare

import (
	"image"
	"image/color"
	"testing"

	"github.com/kburns/grayscan"
	"gocv.io/x/gocv"
)

// rasterToMat converts a Raster into a single-channel 8-bit Mat.
func rasterToMat(r *grayscan.Raster) gocv.Mat {
	mat := gocv.NewMatWithSize(r.Height(), r.Width(), gocv.MatTypeCV8U)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			mat.SetUCharAt(y, x, r.ValueAt(x, y))
		}
	}
	return mat
}

// matToRaster converts a single-channel 8-bit Mat back into a Raster.
func matToRaster(mat gocv.Mat) *grayscan.Raster {
	r := grayscan.NewRaster(mat.Cols(), mat.Rows())
	for y := 0; y < mat.Rows(); y++ {
		for x := 0; x < mat.Cols(); x++ {
			r.SetValue(x, y, mat.GetUCharAt(y, x))
		}
	}
	return r
}

// nrgbaToMat converts an NRGBA image into a 3-channel BGR Mat, which is the
// layout OpenCV expects for color input.
func nrgbaToMat(img *image.NRGBA) gocv.Mat {
	bounds := img.Bounds()
	mat := gocv.NewMatWithSize(bounds.Dy(), bounds.Dx(), gocv.MatTypeCV8UC3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			mat.SetUCharAt(y, x*3+0, c.B)
			mat.SetUCharAt(y, x*3+1, c.G)
			mat.SetUCharAt(y, x*3+2, c.R)
		}
	}
	return mat
}

// colorBars builds a small NRGBA image with vertical primary-color bars.
func colorBars(width, height int) *image.NRGBA {
	bars := []color.NRGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		{R: 255, G: 255, A: 255},
		{R: 128, G: 128, B: 128, A: 255},
		{A: 255},
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	barWidth := width / len(bars)
	if barWidth < 1 {
		barWidth = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := x / barWidth
			if idx >= len(bars) {
				idx = len(bars) - 1
			}
			img.SetNRGBA(x, y, bars[idx])
		}
	}
	return img
}

func TestCompareGrayscaleConversion(t *testing.T) {
	img := colorBars(70, 20)

	ours := grayscan.ToGrayscale(img)

	src := nrgbaToMat(img)
	defer src.Close()
	dst := gocv.NewMat()
	defer dst.Close()
	gocv.CvtColor(src, &dst, gocv.ColorBGRToGray)
	theirs := matToRaster(dst)

	// Both use the BT.601 luma weights; only rounding differs.
	mse := grayscan.CalculateMSE(ours, theirs)
	if mse > 1.0 {
		t.Errorf("Expected grayscale MSE <= 1.0 vs OpenCV, got %f", mse)
	}
}

func TestCompareGlobalThreshold(t *testing.T) {
	img := grayscan.NewGradientRaster(64, 32)

	ours := grayscan.ThresholdGlobal(img, 128)

	src := rasterToMat(img)
	defer src.Close()
	dst := gocv.NewMat()
	defer dst.Close()
	// THRESH_BINARY keeps v > 127.5, which matches the inclusive v >= 128 cut.
	gocv.Threshold(src, &dst, 127.5, 255, gocv.ThresholdBinary)
	theirs := matToRaster(dst)

	if diff := grayscan.CalculateMaxDiff(ours, theirs); diff != 0 {
		t.Errorf("Expected identical threshold output, got max diff %d", diff)
	}
}

func TestCompareMedianFilterInterior(t *testing.T) {
	img := grayscan.NewCheckerboardRaster(32, 32, 4)
	img.SetValue(10, 10, 255)
	img.SetValue(21, 17, 0)

	ours, err := grayscan.MedianFilter(img, 3)
	if err != nil {
		t.Fatalf("Expected no error from MedianFilter, got %v", err)
	}

	src := rasterToMat(img)
	defer src.Close()
	dst := gocv.NewMat()
	defer dst.Close()
	gocv.MedianBlur(src, &dst, 3)
	theirs := matToRaster(dst)

	// Border handling differs (zero padding vs replication), so only the
	// interior is expected to agree exactly.
	for y := 1; y < img.Height()-1; y++ {
		for x := 1; x < img.Width()-1; x++ {
			if ours.ValueAt(x, y) != theirs.ValueAt(x, y) {
				t.Fatalf("Median mismatch at (%d,%d): got %d, OpenCV %d",
					x, y, ours.ValueAt(x, y), theirs.ValueAt(x, y))
			}
		}
	}
}

func TestCompareCanny(t *testing.T) {
	img := grayscan.NewRaster(64, 64)
	for y := 20; y < 44; y++ {
		for x := 16; x < 48; x++ {
			img.SetValue(x, y, 220)
		}
	}

	ours, err := grayscan.Canny(img, 50, 150)
	if err != nil {
		t.Fatalf("Expected no error from Canny, got %v", err)
	}

	src := rasterToMat(img)
	defer src.Close()
	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Canny(src, &dst, 50, 150)
	theirs := matToRaster(dst)

	// The Go pipeline shrinks the image per convolution stage and anchors
	// its output two pixels up-left of the window center, so the OpenCV
	// result is cropped to the matching region before comparing.
	crop := grayscan.NewEdgeMap(ours.Width(), ours.Height())
	for y := 0; y < crop.Height(); y++ {
		for x := 0; x < crop.Width(); x++ {
			crop.SetGray(x, y, color.Gray{Y: theirs.ValueAt(x+2, y+2)})
		}
	}

	// The two implementations differ in smoothing and gradient norm, so this
	// is a loose structural check rather than an exact one.
	jaccard := grayscan.CalculateJaccardIndex(ours, crop)
	if jaccard < 0.25 {
		t.Errorf("Expected Canny Jaccard index >= 0.25 vs OpenCV, got %f", jaccard)
	}
	if ours.CountEdges() == 0 {
		t.Error("Expected Canny to find edges on the rectangle image")
	}
}
