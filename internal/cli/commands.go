package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/pathkit/internal/version"
	"github.com/arthur-debert/pathkit/pkg/config"
	"github.com/arthur-debert/pathkit/pkg/errors"
	"github.com/arthur-debert/pathkit/pkg/filesystem"
	"github.com/arthur-debert/pathkit/pkg/links"
	"github.com/arthur-debert/pathkit/pkg/logging"
	"github.com/arthur-debert/pathkit/pkg/paths"
	"github.com/arthur-debert/pathkit/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// app carries state shared by all subcommands of one invocation
type app struct {
	verbosity  int
	configFile string
	configDir  string
	cfg        *config.Config

	// newFS builds the filesystem links are read from
	newFS func() types.LinkFS
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{newFS: filesystem.NewOS})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pathkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{File: a.configFile, Dir: a.configDir})
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.SetupLogger(a.verbosity, logging.Options{File: cfg.Log.File, Console: cmd.ErrOrStderr()})
			logging.LogCommand(cmd.Name(), args)
			if cfg.Source != "" {
				log.Debug().Str("path", cfg.Source).Msg("Loaded user configuration")
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newJoinCmd())
	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newExpandLinkCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join BASE TARGET",
		Short: MsgJoinShort,
		Long:  MsgJoinLong,
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			joined, err := paths.Join(args[0], args[1])
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), joined)
		},
	}
}

func newNormalizeCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "normalize PATH",
		Short: MsgNormalizeShort,
		Long:  MsgNormalizeLong,
		Args:  pathArgs(&fromStdin),
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachPath(cmd, args, fromStdin, func(p string) error {
				return writeLine(cmd.OutOrStdout(), paths.Normalize(p))
			})
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, MsgFlagStdin)
	return cmd
}

func newExpandLinkCmd(a *app) *cobra.Command {
	var (
		fromStdin bool
		trace     bool
	)

	cmd := &cobra.Command{
		Use:     "expand-link PATH",
		Aliases: []string{"expand"},
		Short:   MsgExpandLinkShort,
		Long:    MsgExpandLinkLong,
		Args:    pathArgs(&fromStdin),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.expand-link")
			done := logging.LogOperationStart(logger, "expand-link")
			defer done()

			fsys := a.newFS()
			if fromStdin {
				fsys = links.NewCachedFS(fsys, a.cfg.Links.CacheSize)
			}

			expander := links.New(fsys,
				links.WithMaxHops(a.cfg.Links.MaxHops),
				links.WithCycleDetection(a.cfg.Links.DetectCycles),
				links.WithLogger(logging.GetLogger("links")),
			)

			out := cmd.OutOrStdout()
			return eachPath(cmd, args, fromStdin, func(p string) error {
				res, err := expander.Trace(p)
				if err != nil {
					return err
				}
				if trace {
					for _, hop := range res.Hops {
						if _, err := fmt.Fprintf(out, MsgTraceHop, hop.Link, hop.Target); err != nil {
							return errors.Wrap(err, errors.ErrInternal, MsgErrWriteOutput)
						}
					}
				}
				return writeLine(out, res.Resolved)
			})
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, MsgFlagStdin)
	cmd.Flags().BoolVar(&trace, "trace", false, MsgFlagTrace)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.cfg.Source != "" {
				fmt.Fprintf(out, MsgConfigSource, a.cfg.Source)
			}
			_, err = out.Write(rendered)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man DIR",
		Short:  MsgManShort,
		Args:   exactArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, MsgErrManDir, dir)
			}
			header := &doc.GenManHeader{
				Title:   "PATHKIT",
				Section: "1",
				Source:  "pathkit " + version.Version,
				Manual:  "pathkit manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, MsgErrManDir, dir)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
}

// exactArgs is cobra.ExactArgs reporting ErrInvalidArgument
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.Newf(errors.ErrInvalidArgument, MsgErrArity, cmd.Name(), n, len(args)).
				WithDetail("args", args)
		}
		return nil
	}
}

// pathArgs requires one PATH, or none when paths come from stdin
func pathArgs(fromStdin *bool) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if *fromStdin {
			if len(args) != 0 {
				return errors.Newf(errors.ErrInvalidArgument, MsgErrStdinArgs, cmd.Name(), len(args))
			}
			return nil
		}
		return exactArgs(1)(cmd, args)
	}
}

// eachPath runs fn on the single argument or on every non-blank stdin line
func eachPath(cmd *cobra.Command, args []string, fromStdin bool, fn func(string) error) error {
	if !fromStdin {
		return fn(args[0])
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, MsgErrReadStdin)
	}
	return nil
}

func writeLine(w io.Writer, s string) error {
	if _, err := fmt.Fprintln(w, s); err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrWriteOutput)
	}
	return nil
}

// ExitCode maps an error returned by the root command to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsErrorCode(err, errors.ErrInvalidArgument):
		return 2
	default:
		return 1
	}
}
