package links

import (
	"io/fs"

	"github.com/arthur-debert/pathkit/pkg/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// cachedFS memoizes Readlink results. Lstat is always passed through so a
// link that disappears is noticed.
type cachedFS struct {
	types.LinkFS
	targets *lru.Cache[string, string]
}

// NewCachedFS wraps fsys with an LRU cache of up to size link targets.
// A size of zero or less returns fsys unchanged.
func NewCachedFS(fsys types.LinkFS, size int) types.LinkFS {
	if size <= 0 {
		return fsys
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return fsys
	}
	return &cachedFS{LinkFS: fsys, targets: cache}
}

func (c *cachedFS) Lstat(name string) (fs.FileInfo, error) {
	return c.LinkFS.Lstat(name)
}

func (c *cachedFS) Readlink(name string) (string, error) {
	if target, ok := c.targets.Get(name); ok {
		return target, nil
	}
	target, err := c.LinkFS.Readlink(name)
	if err != nil {
		return "", err
	}
	c.targets.Add(name, target)
	return target, nil
}
