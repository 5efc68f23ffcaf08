package grayscan

import "errors"

// Error kinds reported by this package. All are precondition failures
// surfaced before any pixels are produced; no operation returns a partial
// result. Wrapped errors carry the offending dimensions or parameters and
// match these sentinels under errors.Is.
var (
	// ErrInvalidDimensions means an image is too small for the requested
	// kernel or block size, or a kernel is malformed.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidThresholds means a low/high threshold pair is negative
	// or inverted.
	ErrInvalidThresholds = errors.New("invalid thresholds")

	// ErrInvalidRange means an intensity range is degenerate (max == min)
	// and cannot be rescaled.
	ErrInvalidRange = errors.New("invalid intensity range")

	// ErrUnsupportedFormat means an input image has a channel layout the
	// grayscale/histogram path cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
