package fsx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// dirEntries returns the names currently present in dir.
func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.jpg")
	if err := os.WriteFile(path, []byte("original"), 0600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := Replace(path, []byte("replaced"), 0640); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(got) != "replaced" {
		t.Errorf("content = %q, want %q", got, "replaced")
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat: %v", err)
	}
	if fi.Mode().Perm() != 0640 {
		t.Errorf("mode = %o, want 640", fi.Mode().Perm())
	}

	if names := dirEntries(t, dir); len(names) != 1 {
		t.Errorf("directory contains leftovers: %v", names)
	}
}

func TestReplaceRenameFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.jpg")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	renameFunc = func(oldpath, newpath string) error {
		return errors.New("boom")
	}
	defer func() { renameFunc = os.Rename }()

	if err := Replace(path, []byte("replaced"), 0644); err == nil {
		t.Fatal("Replace did not propagate rename failure")
	}

	got, _ := os.ReadFile(path)
	if string(got) != "original" {
		t.Errorf("original modified on failed replace: %q", got)
	}
	if names := dirEntries(t, dir); len(names) != 1 {
		t.Errorf("temporary file leaked: %v", names)
	}
}

func TestWriteScratch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	n, err := WriteScratch(path, []byte("scratch-data"))
	if err != nil {
		t.Fatalf("WriteScratch returned error: %v", err)
	}
	if n != int64(len("scratch-data")) {
		t.Errorf("n = %d, want %d", n, len("scratch-data"))
	}

	got, _ := os.ReadFile(path)
	if string(got) != "original" {
		t.Errorf("original modified by scratch write: %q", got)
	}
	if names := dirEntries(t, dir); len(names) != 1 {
		t.Errorf("scratch file leaked: %v", names)
	}
}
