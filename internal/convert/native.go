package convert

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"qimgshrink/internal/config"
	"qimgshrink/internal/fsx"
	"qimgshrink/internal/scan"
)

// Native converts images in process with the compiled-in codecs: no
// subprocess is ever spawned. Decoding and encoding cover JPEG, PNG,
// BMP and TIFF.
type Native struct {
	cfg  config.Config
	warn io.Writer
}

// NewNative constructs the in-process backend. The codecs are compiled
// in so construction cannot fail; the error return keeps the signature
// uniform for the selector.
func NewNative(cfg config.Config) (*Native, error) {
	return &Native{cfg: cfg, warn: os.Stderr}, nil
}

func (n *Native) Name() string { return "native" }

// Convert resizes the image at f.Path in place if its long side exceeds
// the configured maximum. Images already within the limit are left
// byte-identical.
func (n *Native) Convert(f scan.ImageFile) (Result, error) {
	src, err := os.Open(f.Path)
	if err != nil {
		return Result{}, &AccessError{Path: f.Path, Err: err}
	}
	defer src.Close()

	// Header-only probe first; most files are expected to be within the
	// limit already and must not be re-encoded.
	dims, format, err := image.DecodeConfig(src)
	if err != nil {
		return Result{}, &DecodeError{Path: f.Path, Err: err}
	}
	if max(dims.Width, dims.Height) <= n.cfg.MaxSize {
		return Result{}, nil
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return Result{}, &AccessError{Path: f.Path, Err: err}
	}
	img, _, err := image.Decode(src)
	if err != nil {
		return Result{}, &DecodeError{Path: f.Path, Err: err}
	}

	newW, newH := scaledDims(dims.Width, dims.Height, n.cfg.MaxSize)
	scaled := resize.Resize(uint(newW), uint(newH), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := encodeImage(&buf, scaled, format, n.cfg.Quality); err != nil {
		return Result{}, &DecodeError{Path: f.Path, Err: err}
	}

	res := Result{Resized: true, SizeBefore: f.Size}

	if n.cfg.TestMode {
		written, err := fsx.WriteScratch(f.Path, buf.Bytes())
		if err != nil {
			return Result{}, &AccessError{Path: f.Path, Err: err}
		}
		res.SizeAfter = written
		return res, nil
	}

	if err := fsx.Replace(f.Path, buf.Bytes(), f.Mode); err != nil {
		return Result{}, &AccessError{Path: f.Path, Err: err}
	}
	if err := fsx.RestoreOwner(f.Path, f.UID, f.GID); err != nil {
		fmt.Fprintf(n.warn, "warning: %s: ownership not restored: %v\n", f.Path, err)
	}
	res.SizeAfter = int64(buf.Len())
	return res, nil
}

// scaledDims shrinks w x h so the longer side equals maxSize, keeping
// the aspect ratio exact on both axes.
func scaledDims(w, h, maxSize int) (int, int) {
	scale := float64(maxSize) / float64(max(w, h))
	return int(math.Round(float64(w) * scale)), int(math.Round(float64(h) * scale))
}

func encodeImage(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case "png":
		// Lossless format: the quality setting does not apply,
		// compression is forced to maximum instead.
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}
