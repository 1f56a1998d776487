// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pizzachili/internal/clibase"
	"pizzachili/internal/cmdutil"
	"pizzachili/internal/config"
	"pizzachili/internal/version"
)

// Exit codes shared by every tool.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitFailure  = 3
	ExitCanceled = 130
)

// Env is what a tool body gets to work with.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer // buffered; flushed by Run
	Stderr io.Writer
	Log    *logrus.Logger
	Config config.Config
}

// Body is the tool-specific part of a run. args are the validated positionals.
type Body func(ctx context.Context, env *Env, args []string) error

// Run is the shared RunContext implementation: it answers help and version
// requests, loads configuration, executes the cobra command and maps the
// outcome to an exit code.
func Run(parent context.Context, t clibase.Tool, body Body, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	flush := func(code int) int {
		if err := outw.Flush(); IsBrokenPipe(err) {
			return ExitOK
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitFailure
		}
		return code
	}

	if wantsHelp(t, argv) {
		clibase.PrintUsage(outw, t)
		return flush(ExitOK)
	}
	if len(argv) == 1 && argv[0] == "--version" {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", t.Name, version.Version)
		return flush(ExitOK)
	}

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	lg, err := cmdutil.NewLogger(stderr, cfg.LogLevel, cfg.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	env := &Env{Stdin: stdin, Stdout: outw, Stderr: stderr, Log: lg, Config: cfg}

	cmd := clibase.NewCommand(t, func(c *cobra.Command, args []string) error {
		return body(c.Context(), env, args)
	})
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetIn(stdin)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	rerr := cmd.ExecuteContext(parent)
	code := flush(ExitOK)
	switch {
	case rerr == nil:
		return code
	case IsBrokenPipe(rerr):
		return ExitOK
	case errors.Is(rerr, context.Canceled):
		return ExitCanceled
	case clibase.IsUsage(rerr):
		_, _ = fmt.Fprintln(stderr, "error:", rerr)
		clibase.PrintUsage(stderr, t)
		return ExitUsage
	default:
		_, _ = fmt.Fprintln(stderr, "error:", rerr)
		return ExitFailure
	}
}

// wantsHelp: no arguments on a tool that takes some, or a lone -h/--help.
func wantsHelp(t clibase.Tool, argv []string) bool {
	if len(argv) == 0 {
		return t.MaxArgs() > 0
	}
	return len(argv) == 1 && (argv[0] == "-h" || argv[0] == "--help")
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close early; that is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
