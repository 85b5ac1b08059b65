package convert

import "qimgshrink/internal/scan"

// Result reports the outcome of converting a single file. SizeBefore
// and SizeAfter reflect bytes actually written (in test mode, bytes
// that would have been written); they are only meaningful when Resized
// is true.
type Result struct {
	Resized    bool
	SizeBefore int64
	SizeAfter  int64
}

// Converter is the contract shared by the conversion backends. A
// backend is constructed once per run, holds only configuration, and is
// applied to every file in turn. Resized=false with a nil error means
// the image was already within the size limit and its bytes were left
// untouched.
type Converter interface {
	Name() string
	Convert(f scan.ImageFile) (Result, error)
}
