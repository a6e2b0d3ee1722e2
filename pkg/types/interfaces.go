package types

import (
	"io/fs"
)

// LinkFS is the read-only filesystem surface that link resolution needs.
// Nothing else in pathkit consults the filesystem.
type LinkFS interface {
	// Lstat describes name without following a final symbolic link.
	Lstat(name string) (fs.FileInfo, error)

	// Readlink returns the one-hop target stored in the link at name.
	Readlink(name string) (string, error)
}

// IsSymlink reports whether name is itself a symbolic link. Any Lstat
// failure, including a missing path, counts as "not a link".
func IsSymlink(fsys LinkFS, name string) bool {
	info, err := fsys.Lstat(name)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}
