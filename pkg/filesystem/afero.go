package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/pathkit/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.LinkFS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a LinkFS over any afero filesystem. Filesystems that
// cannot lstat fall back to Stat and so never report a link; filesystems
// that cannot read links fail Readlink with afero.ErrNoReadlink.
func NewAferoFS(fs afero.Fs) types.LinkFS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if reader, ok := a.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", &fs.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}
