package filesystem

import (
	"github.com/arthur-debert/pathkit/pkg/types"
	"github.com/spf13/afero"
)

// NewOS creates a read-only LinkFS over the host filesystem
func NewOS() types.LinkFS {
	return NewAferoFS(afero.NewReadOnlyFs(afero.NewOsFs()))
}
