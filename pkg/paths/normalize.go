package paths

import "strings"

const (
	current = "."
	parent  = ".."
)

// Normalize lexically collapses "." and ".." segments and repeated slashes.
//
// A ".." only cancels the segment right before it when that segment is a
// real name. Leading ".." segments, including those directly under the
// root, are kept verbatim. The literal inputs ".." and "/.." come back
// unchanged. An empty or fully collapsed relative path yields ".".
func Normalize(p string) string {
	if p == parent || p == Separator+parent {
		return p
	}

	abs := IsAbs(p)
	stack := make([]string, 0, strings.Count(p, Separator)+1)

	for _, seg := range strings.Split(p, Separator) {
		switch seg {
		case "", current:
			continue
		case parent:
			if n := len(stack); n > 0 && stack[n-1] != parent {
				stack = stack[:n-1]
				continue
			}
			stack = append(stack, parent)
		default:
			stack = append(stack, seg)
		}
	}

	joined := strings.Join(stack, Separator)
	switch {
	case abs:
		return Separator + joined
	case joined == "":
		return current
	default:
		return joined
	}
}
