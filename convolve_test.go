package grayscan

import (
	"errors"
	"testing"
)

func TestConvolveShrinksByTwiceKernelSize(t *testing.T) {
	img := NewGradientRaster(10, 10)
	kernel := NewKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	out, err := Convolve(img, kernel)
	if err != nil {
		t.Fatalf("Convolve failed: %v", err)
	}
	if out.Width() != 4 || out.Height() != 4 {
		t.Errorf("Expected 4x4 output for 10x10 input and 3x3 kernel, got %dx%d",
			out.Width(), out.Height())
	}
}

func TestConvolveIdentityKernel(t *testing.T) {
	img := NewGradientRaster(12, 12)
	identity := NewKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	out, err := Convolve(img, identity)
	if err != nil {
		t.Fatalf("Convolve failed: %v", err)
	}

	// The window for output (x, y) starts at input (x, y), so the
	// identity response is the input sampled at the kernel center offset.
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			want := img.ValueAt(x+1, y+1)
			if got := out.ValueAt(x, y); got != want {
				t.Errorf("Identity kernel at (%d,%d): expected %d, got %d", x, y, want, got)
			}
		}
	}
}

func TestConvolveUnitGainKernelPreservesFlat(t *testing.T) {
	img := NewFlatRaster(16, 16, 100)
	out, err := Convolve(img, GaussianKernel(3, 1.0))
	if err != nil {
		t.Fatalf("Convolve failed: %v", err)
	}

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			if got := out.ValueAt(x, y); got != 100 {
				t.Errorf("Unit-gain kernel on flat input at (%d,%d): expected 100, got %d", x, y, got)
			}
		}
	}
}

func TestConvolveImageTooSmall(t *testing.T) {
	img := NewFlatRaster(6, 6, 128)
	_, err := Convolve(img, GaussianKernel(3, 1.0))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions for 6x6 image with 3x3 kernel, got %v", err)
	}

	// one dimension large enough is not enough
	img = NewFlatRaster(20, 6, 128)
	_, err = Convolve(img, GaussianKernel(3, 1.0))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions for 20x6 image, got %v", err)
	}
}

func TestConvolveRejectsNonSquareKernel(t *testing.T) {
	img := NewFlatRaster(16, 16, 128)
	kernel := NewKernel([][]float64{
		{1, 0, -1},
		{1, 0, -1},
	})
	_, err := Convolve(img, kernel)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions for 3x2 kernel, got %v", err)
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, size := range []int{3, 5, 7} {
		k := GaussianKernel(size, 1.4)
		sum := 0.0
		for _, row := range k.Values {
			for _, v := range row {
				sum += v
			}
		}
		if sum < 0.999999 || sum > 1.000001 {
			t.Errorf("Gaussian kernel size %d: expected unit sum, got %f", size, sum)
		}
	}
}

func TestKernelTranspose(t *testing.T) {
	sobelY := SobelKernel().Transpose()
	want := [][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
	for y := range want {
		for x := range want[y] {
			if sobelY.Values[y][x] != want[y][x] {
				t.Errorf("Transposed Sobel at (%d,%d): expected %g, got %g",
					x, y, want[y][x], sobelY.Values[y][x])
			}
		}
	}
}
