// internal/patternapp/app.go
package patternapp

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"pizzachili/core/corpus"
	"pizzachili/core/pattern"
	"pizzachili/internal/appcore"
	"pizzachili/internal/clibase"
)

// DefaultSuffix is appended to the text path when no output is given.
const DefaultSuffix = ".patt"

// Tool describes the genpatterns command line.
var Tool = clibase.Tool{
	Name:  "genpatterns",
	Title: "Pizza&Chili format pattern file generator",
	About: []string{
		"Randomly extracts substrings from a text file, and save <text>" + DefaultSuffix,
		"Text is read as raw bytes (ISO-8859-1): one byte is one character.",
		"Set PIZZACHILI_SEED for reproducible patterns.",
	},
	Args: []clibase.Arg{
		{Name: "text", Help: "text file"},
		{Name: "n", Help: "number of generated patterns"},
		{Name: "m", Help: "length of patterns"},
		{Name: "patt", Help: "output filename (<text>" + DefaultSuffix + " by default)", Optional: true},
	},
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, nil, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return appcore.Run(ctx, Tool, run, argv, stdin, stdout, stderr)
}

func run(_ context.Context, env *appcore.Env, args []string) error {
	textPath := args[0]
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return clibase.Usagef("<n> must be an integer, got %q", args[1])
	}
	m, err := strconv.Atoi(args[2])
	if err != nil {
		return clibase.Usagef("<m> must be an integer, got %q", args[2])
	}
	outPath := textPath + DefaultSuffix
	if len(args) > 3 {
		outPath = args[3]
	}

	seed := env.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	env.Log.WithField("seed", seed).Debug("random source")

	env.Log.WithField("text", textPath).Info("read")
	text, err := corpus.ReadFile(textPath)
	if err != nil {
		return err
	}

	set, err := pattern.Sample(rand.New(rand.NewSource(seed)), text, n, m)
	if err != nil {
		return fmt.Errorf("%s: %w", textPath, err)
	}
	set.File = textPath

	env.Log.WithField("output", outPath).Info("write")
	if err := pattern.WriteFile(outPath, set); err != nil {
		return err
	}
	_, err = fmt.Fprintf(env.Stdout, "done. %d patterns of length %d written to %s\n", n, m, outPath)
	return err
}
