package paths

import (
	"strings"

	"github.com/arthur-debert/pathkit/pkg/errors"
)

// Join combines base and target into a single path.
//
// An absolute target is returned as-is and base is ignored. Otherwise every
// trailing slash of base is dropped before the two are joined with a single
// "/". The result is not normalized. Both arguments must be non-empty.
func Join(base, target string) (string, error) {
	if base == "" {
		return "", errors.New(errors.ErrInvalidArgument, "join: base path is empty")
	}
	if target == "" {
		return "", errors.New(errors.ErrInvalidArgument, "join: target path is empty").
			WithDetail("base", base)
	}

	if IsAbs(target) {
		return target, nil
	}

	return strings.TrimRight(base, Separator) + Separator + target, nil
}
