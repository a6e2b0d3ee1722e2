// Package filesystem provides types.LinkFS implementations for pathkit.
//
// NewOS wraps the host filesystem behind afero's read-only layer, so link
// resolution can never modify anything. NewAferoFS adapts any other afero
// filesystem.
package filesystem
