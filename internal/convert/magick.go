package convert

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"qimgshrink/internal/config"
	"qimgshrink/internal/fsx"
	"qimgshrink/internal/scan"
)

// lookPath is replaceable so tests can simulate missing executables.
var lookPath = exec.LookPath

// Magick shells out to the ImageMagick command line tools: "identify"
// for the dimension probe, "convert" for the resize and re-encode. Both
// invocations block until the subprocess exits.
type Magick struct {
	cfg          config.Config
	convertPath  string
	identifyPath string
	warn         io.Writer
}

// NewMagick constructs the external-tool backend. Both executables must
// be resolvable on PATH at construction time.
func NewMagick(cfg config.Config) (*Magick, error) {
	convertPath, err := lookPath("convert")
	if err != nil {
		return nil, &UnavailableError{Backend: "imagemagick", Reason: "'convert' not found in PATH"}
	}
	identifyPath, err := lookPath("identify")
	if err != nil {
		return nil, &UnavailableError{Backend: "imagemagick", Reason: "'identify' not found in PATH"}
	}
	return &Magick{
		cfg:          cfg,
		convertPath:  convertPath,
		identifyPath: identifyPath,
		warn:         os.Stderr,
	}, nil
}

func (m *Magick) Name() string { return "imagemagick" }

// dimensions probes the pixel size of path via identify.
func (m *Magick) dimensions(path string) (int, int, error) {
	out, err := exec.Command(m.identifyPath, "-format", "%w %h", path).Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		return 0, 0, &ExecError{Cmd: "identify", Err: err, Stderr: stderr}
	}

	w, h, err := parseDimensions(string(out))
	if err != nil {
		return 0, 0, &DecodeError{Path: path, Err: err}
	}
	return w, h, nil
}

// parseDimensions accepts identify output of the exact shape
// "width height" with two positive integers. Anything else fails
// closed.
func parseDimensions(out string) (int, int, error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected identify output %q", strings.TrimSpace(out))
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in identify output %q", fields[0])
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in identify output %q", fields[1])
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("non-positive dimensions %dx%d", w, h)
	}
	return w, h, nil
}

// Convert resizes the image at f.Path in place via the convert tool if
// its long side exceeds the configured maximum.
func (m *Magick) Convert(f scan.ImageFile) (Result, error) {
	w, h, err := m.dimensions(f.Path)
	if err != nil {
		return Result{}, err
	}
	if max(w, h) <= m.cfg.MaxSize {
		return Result{}, nil
	}

	// The output extension tells convert which encoder to use, so the
	// scratch file must keep the original suffix.
	ext := filepath.Ext(f.Path)
	tmp, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".magick-*"+ext)
	if err != nil {
		return Result{}, &AccessError{Path: f.Path, Err: err}
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	// The ">" geometry suffix shrinks only images larger than the
	// target, it never enlarges.
	args := []string{f.Path, "-resize", fmt.Sprintf("%dx%d>", m.cfg.MaxSize, m.cfg.MaxSize)}
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		args = append(args, "-quality", strconv.Itoa(m.cfg.Quality))
	case "png":
		// Lossless format: quality has no effect, force maximum
		// compression and interlaced output instead.
		args = append(args, "-quality", "100", "-define", "png:compression-level=9", "-interlace", "PNG")
	}
	args = append(args, tmpName)

	if _, err := exec.Command(m.convertPath, args...).Output(); err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		return Result{}, &ExecError{Cmd: "convert", Err: err, Stderr: stderr}
	}

	fi, err := os.Stat(tmpName)
	if err != nil {
		return Result{}, &AccessError{Path: tmpName, Err: err}
	}
	res := Result{Resized: true, SizeBefore: f.Size, SizeAfter: fi.Size()}

	if m.cfg.TestMode {
		// Deferred remove drops the scratch output; the original stays
		// untouched.
		return res, nil
	}

	if err := os.Chmod(tmpName, f.Mode); err != nil {
		return Result{}, &AccessError{Path: f.Path, Err: err}
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		return Result{}, &AccessError{Path: f.Path, Err: err}
	}
	if err := fsx.RestoreOwner(f.Path, f.UID, f.GID); err != nil {
		fmt.Fprintf(m.warn, "warning: %s: ownership not restored: %v\n", f.Path, err)
	}
	return res, nil
}
