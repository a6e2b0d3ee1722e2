// Package paths provides purely lexical POSIX path handling for pathkit.
//
// Nothing in this package touches the filesystem. It handles:
//
//   - dirname/basename segmentation (Dir, Base, Split)
//   - joining a base directory with a possibly relative target (Join)
//   - collapsing "." and ".." segments and repeated slashes (Normalize)
//
// Normalize differs from path.Clean in one way: ".." segments that cannot
// be resolved against a real preceding segment are kept, even directly
// below the root, so "/../a" stays "/../a".
//
// # Usage
//
//	import "github.com/arthur-debert/pathkit/pkg/paths"
//
//	paths.Normalize("a/b/c/../d/./")      // "a/b/d"
//	paths.Normalize("/../b/././../../a")  // "/../../a"
//
//	joined, err := paths.Join("a/b///", "c")  // "a/b/c"
package paths
