package links

import (
	"github.com/arthur-debert/pathkit/pkg/errors"
	"github.com/arthur-debert/pathkit/pkg/paths"
	"github.com/arthur-debert/pathkit/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultMaxHops matches the Linux kernel's limit on nested link lookups.
const DefaultMaxHops = 40

// Expander resolves link chains against a LinkFS.
type Expander struct {
	fs           types.LinkFS
	maxHops      int
	detectCycles bool
	logger       zerolog.Logger
}

// Option configures an Expander.
type Option func(*Expander)

// WithMaxHops bounds the number of links followed for a single path.
// Values below 1 are ignored.
func WithMaxHops(n int) Option {
	return func(e *Expander) {
		if n > 0 {
			e.maxHops = n
		}
	}
}

// WithCycleDetection toggles the visited-set check. With detection off a
// cycle still ends once the hop budget runs out.
func WithCycleDetection(enabled bool) Option {
	return func(e *Expander) {
		e.detectCycles = enabled
	}
}

// WithLogger attaches a logger; every hop is logged at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Expander) {
		e.logger = logger
	}
}

// New creates an Expander reading links from fsys.
func New(fsys types.LinkFS, opts ...Option) *Expander {
	e := &Expander{
		fs:           fsys,
		maxHops:      DefaultMaxHops,
		detectCycles: true,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand is a convenience for New(fsys).Expand(path).
func Expand(fsys types.LinkFS, path string) (string, error) {
	return New(fsys).Expand(path)
}

// Expand follows the link chain starting at path and returns the
// normalized final path. A path that is not a link is only normalized.
func (e *Expander) Expand(path string) (string, error) {
	res, err := e.Trace(path)
	if err != nil {
		return "", err
	}
	return res.Resolved, nil
}

// Resolution records how a path was resolved.
type Resolution struct {
	// Input is the path Expand was called with.
	Input string
	// Hops holds every link followed, in order, as the path that was read.
	Hops []Hop
	// Final is the last joined path before normalization.
	Final string
	// Resolved is Normalize(Final).
	Resolved string
}

// Hop is a single link dereference.
type Hop struct {
	Link   string
	Target string
	Joined string
}

// Trace resolves path like Expand and also reports each hop.
func (e *Expander) Trace(path string) (*Resolution, error) {
	if path == "" {
		return nil, errors.New(errors.ErrInvalidArgument, "expand: path is empty")
	}

	res := &Resolution{Input: path}
	var visited map[string]struct{}
	if e.detectCycles {
		visited = make(map[string]struct{})
	}

	current := path
	for types.IsSymlink(e.fs, current) {
		if visited != nil {
			if _, seen := visited[current]; seen {
				return nil, errors.Newf(errors.ErrLinkCycle, "symbolic link cycle at %s", current).
					WithDetail("path", path).
					WithDetail("chain", hopLinks(res.Hops))
			}
			visited[current] = struct{}{}
		}

		if len(res.Hops) >= e.maxHops {
			return nil, errors.Newf(errors.ErrLinkDepth, "more than %d symbolic links resolving %s", e.maxHops, path).
				WithDetail("path", path).
				WithDetail("hops", len(res.Hops))
		}

		target, err := e.fs.Readlink(current)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrNotASymlink, "cannot read link %s", current).
				WithDetail("path", current)
		}

		joined, err := paths.Join(paths.Dir(current), target)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "link %s has an empty target", current).
				WithDetail("path", current)
		}

		e.logger.Trace().
			Str("link", current).
			Str("target", target).
			Str("joined", joined).
			Int("hop", len(res.Hops)+1).
			Msg("Followed symbolic link")

		res.Hops = append(res.Hops, Hop{Link: current, Target: target, Joined: joined})
		current = joined
	}

	res.Final = current
	res.Resolved = paths.Normalize(current)

	e.logger.Debug().
		Str("path", path).
		Str("resolved", res.Resolved).
		Int("hops", len(res.Hops)).
		Msg("Resolved path")

	return res, nil
}

func hopLinks(hops []Hop) []string {
	links := make([]string, len(hops))
	for i, h := range hops {
		links[i] = h.Link
	}
	return links
}
