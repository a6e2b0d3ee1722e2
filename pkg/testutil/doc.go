// Package testutil provides utilities for testing pathkit components.
//
// Key components:
//   - MemoryFS: in-memory, symlink-capable types.LinkFS for fast, isolated tests
//   - Chain helpers for laying out link chains in a MemoryFS
package testutil
