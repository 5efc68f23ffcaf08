package grayscan

import "image"

// ToGrayscale converts any image to a Raster using the NTSC luminance
// formula: Y = 0.299*R + 0.587*G + 0.114*B.
// Integer math scaled by 1000 keeps the conversion fast and within one
// count of the floating-point result.
func ToGrayscale(img image.Image) *Raster {
	bounds := img.Bounds()
	out := NewRaster(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := (299*int(r>>8) + 587*int(g>>8) + 114*int(b>>8) + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			out.SetValue(x-bounds.Min.X, y-bounds.Min.Y, uint8(lum))
		}
	}

	return out
}
