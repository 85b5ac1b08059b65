package fsx

import (
	"fmt"
	"os"
	"path/filepath"
)

// renameFunc is replaceable so tests can simulate rename failures.
var renameFunc = os.Rename

// Replace overwrites the file at path with data. The write goes to a
// temporary file in the same directory (rename stays atomic on the same
// filesystem); mode is applied to the temporary file before the rename
// so the replacement never shows up with the wrong permission bits.
func Replace(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("failed to set permissions on temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := renameFunc(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %q: %w", path, err)
	}
	return nil
}

// RestoreOwner re-applies the original uid/gid after a replace. Callers
// treat a failure as a warning: without privileges chown is expected to
// fail for files owned by other users.
func RestoreOwner(path string, uid, gid int) error {
	return os.Chown(path, uid, gid)
}

// WriteScratch writes data to a throwaway file next to path and reports
// how many bytes landed on disk. The scratch file is removed before
// returning on every path, success or error.
func WriteScratch(path string, data []byte) (int64, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, "."+base+".test-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create scratch file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	n, err := tmp.Write(data)
	if err != nil {
		return 0, fmt.Errorf("failed to write scratch file: %w", err)
	}
	return int64(n), nil
}
