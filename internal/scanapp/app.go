// internal/scanapp/app.go
package scanapp

import (
	"context"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/pkg/profile"

	"pizzachili/core/corpus"
	"pizzachili/core/pattern"
	"pizzachili/core/scan"
	"pizzachili/internal/appcore"
	"pizzachili/internal/clibase"
	"pizzachili/internal/config"
)

// Tool describes the linscan command line.
var Tool = clibase.Tool{
	Name:  "linscan",
	Title: "Verifier for bri-count & bri-locate",
	About: []string{
		"Counts the number of occs with 0, 1, 2 mismatches",
		"Note: VERY SLOW, use only for verification",
	},
	Args: []clibase.Arg{
		{Name: "text", Help: "text file"},
		{Name: "patt", Help: "pattern file in Pizza&Chili format"},
	},
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, nil, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return appcore.Run(ctx, Tool, run, argv, stdin, stdout, stderr)
}

func run(ctx context.Context, env *appcore.Env, args []string) error {
	textPath, pattPath := args[0], args[1]
	cfg := env.Config

	if mode := profileMode(cfg.Profile); mode != nil {
		defer profile.Start(mode, profile.ProfilePath(cfg.ProfileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	env.Log.WithField("text", textPath).WithField("patterns", pattPath).Info("read")
	text, err := corpus.ReadFile(textPath)
	if err != nil {
		return err
	}
	set, err := pattern.ReadFile(pattPath)
	if err != nil {
		return err
	}
	if set.Length > len(text) {
		env.Log.Warnf("pattern length %d exceeds text length %d; every count will be 0", set.Length, len(text))
	}

	var bar *pb.ProgressBar
	if cfg.Progress && !cfg.Quiet {
		bar = pb.New(set.Len())
		bar.SetWriter(env.Stderr)
		bar.Start()
		defer bar.Finish()
	}

	total, err := scan.Verify(ctx, text, set, func(i int, t scan.Tally) error {
		if bar != nil {
			bar.Increment()
		}
		return writePattern(env.Stdout, i, t)
	})
	if err != nil {
		return err
	}
	return writeTotals(env.Stdout, total)
}

func writePattern(w io.Writer, i int, t scan.Tally) error {
	_, err := fmt.Fprintf(w,
		"%d-th pattern:\n - occs with 0 miss : %d\n - occs with 1 miss : %d\n - occs with 2 miss : %d\n",
		i+1, t.Occ[0], t.Occ[1], t.Occ[2])
	return err
}

func writeTotals(w io.Writer, t scan.Tally) error {
	for k, c := range t.Occ {
		if _, err := fmt.Fprintf(w, "<occs with %d miss>: %d\n", k, c); err != nil {
			return err
		}
	}
	_, err := color.New(color.Bold).Fprintf(w, "<total occs>      : %d\n", t.Total())
	return err
}

func profileMode(name string) func(*profile.Profile) {
	switch name {
	case config.ProfileCPU:
		return profile.CPUProfile
	case config.ProfileMem:
		return profile.MemProfile
	case config.ProfileBlock:
		return profile.BlockProfile
	}
	return nil
}
