package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Link describes one symbolic link to lay out: Path -> Target.
type Link struct {
	Path   string
	Target string
}

// MustLinks creates every link in order and fails the test on error.
func MustLinks(t testing.TB, fsys *MemoryFS, links ...Link) {
	t.Helper()
	for _, l := range links {
		if err := fsys.Symlink(l.Target, l.Path); err != nil {
			t.Fatalf("symlink %s -> %s: %v", l.Path, l.Target, err)
		}
	}
}

// MustOSLinks creates links on the real filesystem below root. Link paths
// are relative to root; targets are stored exactly as given.
func MustOSLinks(t testing.TB, root string, links ...Link) {
	t.Helper()
	for _, l := range links {
		path := filepath.Join(root, l.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.Symlink(l.Target, path); err != nil {
			t.Fatalf("symlink %s -> %s: %v", path, l.Target, err)
		}
	}
}
