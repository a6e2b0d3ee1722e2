// Package links resolves chains of symbolic links.
//
// An Expander follows the link at a path, joins the link's directory with
// the stored target, and repeats until the path is no longer a link. The
// final path is then normalized lexically with paths.Normalize.
//
// Only the last component is dereferenced at each hop. Directory links in
// the middle of a path are left to the operating system.
//
// Resolution is bounded: revisiting a link reports ErrLinkCycle, and
// exceeding the hop budget reports ErrLinkDepth.
package links
