package paths

import "strings"

// Separator is the only path separator pathkit understands.
const Separator = "/"

// Base returns the last segment of p, ignoring trailing slashes.
// A path made only of slashes yields "/" and the empty path yields "".
func Base(p string) string {
	if p == "" {
		return ""
	}
	trimmed := strings.TrimRight(p, Separator)
	if trimmed == "" {
		return Separator
	}
	if i := strings.LastIndex(trimmed, Separator); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// Dir returns everything before the last segment of p, ignoring trailing
// slashes. A path with no directory part yields ".".
func Dir(p string) string {
	if p == "" {
		return "."
	}
	trimmed := strings.TrimRight(p, Separator)
	if trimmed == "" {
		return Separator
	}
	i := strings.LastIndex(trimmed, Separator)
	if i < 0 {
		return "."
	}
	dir := strings.TrimRight(trimmed[:i], Separator)
	if dir == "" {
		return Separator
	}
	return dir
}

// Split returns Dir(p) and Base(p).
func Split(p string) (dir, base string) {
	return Dir(p), Base(p)
}

// IsAbs reports whether p starts at the root.
func IsAbs(p string) bool {
	return strings.HasPrefix(p, Separator)
}
