package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ImageFile describes one candidate file found during discovery. It is
// a plain value: the scanner fills it in once and nothing mutates it
// afterwards.
type ImageFile struct {
	Path string      // absolute path
	Mode os.FileMode // permission bits at discovery time (mode & 0o777)
	UID  int         // owning user id
	GID  int         // owning group id
	Size int64       // size in bytes at discovery time
}

// supportedExt holds the raster formats the converters understand.
var supportedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// DiscoverImages walks dir recursively and returns every regular file
// with a supported image extension, sorted by path. Paths matching any
// of the exclude patterns are skipped; matching directories are pruned
// whole.
func DiscoverImages(dir string, excludePatterns []string) ([]ImageFile, error) {
	excludeRegexps := make([]*regexp.Regexp, 0, len(excludePatterns))
	for _, pattern := range excludePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		excludeRegexps = append(excludeRegexps, re)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %q: %w", dir, err)
	}

	fi, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("work directory %q is not accessible: %w", dir, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("work directory %q is not a directory", dir)
	}

	var files []ImageFile

	err = filepath.Walk(absDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			for _, re := range excludeRegexps {
				if re.MatchString(path) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		for _, re := range excludeRegexps {
			if re.MatchString(path) {
				return nil
			}
		}

		if !info.Mode().IsRegular() {
			return nil
		}
		if !supportedExt[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		uid, gid := fileOwner(info)
		files = append(files, ImageFile{
			Path: path,
			Mode: info.Mode().Perm(),
			UID:  uid,
			GID:  gid,
			Size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files, nil
}
