package grayscan

import (
	"math"
	"math/rand"
)

// NoiseKind selects a synthetic degradation model.
type NoiseKind int

const (
	// NoiseUniform adds samples drawn from U[0, amount*255].
	NoiseUniform NoiseKind = iota
	// NoiseGaussian adds samples drawn from N(0, amount*255/5).
	NoiseGaussian
	// NoiseSaltPepper overwrites a fraction amount of the pixels, half
	// with white and half with black, at random coordinates.
	NoiseSaltPepper
)

// String returns the kind's lowercase name.
func (k NoiseKind) String() string {
	switch k {
	case NoiseUniform:
		return "uniform"
	case NoiseGaussian:
		return "gaussian"
	}
	return "salt-pepper"
}

// InjectNoise returns a degraded copy of img; the input raster is never
// modified and no state is retained between calls. seed makes the output
// reproducible for tests (seed 0 is replaced with a fixed non-zero seed).
// amount <= 0 returns a plain copy.
func InjectNoise(img *Raster, kind NoiseKind, amount float64, seed int64) *Raster {
	out := img.Clone()
	if amount <= 0 {
		return out
	}
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	width, height := img.Width(), img.Height()
	switch kind {
	case NoiseUniform:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := float64(img.ValueAt(x, y)) + rng.Float64()*amount*255
				out.SetValue(x, y, clampUint8(v))
			}
		}
	case NoiseGaussian:
		std := amount * 255 / 5
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := float64(img.ValueAt(x, y)) + rng.NormFloat64()*std
				out.SetValue(x, y, clampUint8(v))
			}
		}
	case NoiseSaltPepper:
		// salt and pepper coordinates may collide; the fraction is an
		// upper bound, not an exact count
		n := int(math.Ceil(amount * float64(width*height) * 0.5))
		for i := 0; i < n; i++ {
			out.SetValue(rng.Intn(width), rng.Intn(height), 255)
		}
		for i := 0; i < n; i++ {
			out.SetValue(rng.Intn(width), rng.Intn(height), 0)
		}
	}

	return out
}
