package cli

// Command descriptions
const (
	MsgRootShort = "Lexical path normalization and symbolic link resolution"
	MsgRootLong  = `pathkit normalizes paths purely lexically, joins paths, and follows
chains of symbolic links to their final target.

Normalization never touches the filesystem: "." segments and repeated
slashes are dropped and ".." cancels the real segment before it. Leading
".." segments that have nothing to cancel are kept.`

	MsgJoinShort = "Join a base directory and a target path"
	MsgJoinLong  = `Join prints TARGET unchanged when it is absolute. Otherwise it strips every
trailing slash from BASE and prints BASE/TARGET. The result is not normalized.`

	MsgNormalizeShort = "Lexically normalize a path"
	MsgNormalizeLong  = `Normalize collapses "." and ".." segments and repeated slashes without
consulting the filesystem, so the path does not need to exist.`

	MsgExpandLinkShort = "Follow a chain of symbolic links"
	MsgExpandLinkLong  = `Expand-link follows the symbolic link at PATH, then the link its target
names, and so on, and prints the normalized final path. A path that is not
a link is only normalized. Link cycles and chains longer than
links.max_hops are reported as errors.`

	MsgConfigShort  = "Print the effective configuration"
	MsgVersionShort = "Print version information"
	MsgManShort     = "Generate man pages into DIR"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/pathkit/config.toml)"
	MsgFlagStdin   = "Read paths from standard input, one per line"
	MsgFlagTrace   = "Print every link followed before the result"
)

// Output formats
const (
	MsgTraceHop      = "%s -> %s\n"
	MsgConfigSource  = "# loaded from %s\n"
	MsgVersionFormat = "pathkit version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s\n"
	MsgErrorFormat   = "Error: %v\n"
)

// Error messages
const (
	MsgErrArity       = "%s expects %d argument(s), got %d"
	MsgErrStdinArgs   = "%s --stdin takes no arguments, got %d"
	MsgErrReadStdin   = "failed to read paths from standard input"
	MsgErrWriteOutput = "failed to write output"
	MsgErrManDir      = "failed to generate man pages in %s"
)
