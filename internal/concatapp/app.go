// internal/concatapp/app.go
package concatapp

import (
	"context"
	"fmt"
	"io"

	"pizzachili/core/corpus"
	"pizzachili/internal/appcore"
	"pizzachili/internal/clibase"
)

// Tool describes the fasta2txt command line.
var Tool = clibase.Tool{
	Name:  "fasta2txt",
	Title: "FASTA Concatenator",
	About: []string{"concatenate documents in .fasta file"},
	Args: []clibase.Arg{
		{Name: "input", Help: "input fasta file (.gz/.sz accepted, '-' for stdin)"},
		{Name: "output", Help: "output file name"},
		{Name: "delim", Help: "delimiter (none by default)", Optional: true},
	},
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, nil, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return appcore.Run(ctx, Tool, run, argv, stdin, stdout, stderr)
}

func run(ctx context.Context, env *appcore.Env, args []string) error {
	in, out := args[0], args[1]
	delim := ""
	if len(args) > 2 {
		delim = args[2]
	}

	env.Log.WithField("input", in).Info("reading")
	env.Log.WithField("output", out).Info("opening")
	items, err := corpus.ConcatFile(ctx, in, out, delim)
	if err != nil {
		return err
	}
	if items == 0 {
		env.Log.Warnf("no '%c' header lines in %s; output is a single unnamed record", corpus.RecordMarker, in)
	}

	_, _ = fmt.Fprintln(env.Stdout, "successfully processed")
	_, err = fmt.Fprintf(env.Stdout, "concatenated items: %d\n", items)
	return err
}
