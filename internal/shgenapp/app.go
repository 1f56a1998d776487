// internal/shgenapp/app.go
package shgenapp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"pizzachili/core/shgen"
	"pizzachili/internal/appcore"
	"pizzachili/internal/clibase"
)

// Tool describes the gensh command line. It takes no arguments.
var Tool = clibase.Tool{
	Name:  "gensh",
	Title: "Shell script generator for computer experiments",
	About: []string{
		"generates " + shgen.DriverName + " which executes all generated scripts",
		"(the driver name can be changed with PIZZACHILI_DRIVER)",
	},
	Prompts: []string{
		"base file name, '*' marks a variable",
		"one space separated variable list per '*' in the file name",
		"base command, '*' marks a variable",
		"one index per '*' in the command: i reuses the i-th file name variable, -1 reads its own list",
		"one space separated variable list per -1 index",
	},
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return appcore.Run(ctx, Tool, run, argv, stdin, stdout, stderr)
}

func run(ctx context.Context, env *appcore.Env, _ []string) error {
	if env.Stdin == nil {
		return errors.New("no input to read answers from")
	}
	_, _ = fmt.Fprintf(env.Stdout, "--- %s ---\n", Tool.Title)
	_, _ = fmt.Fprintf(env.Stdout, "generates %s which executes all generated scripts\n", env.Config.Driver)

	plan, err := Ask(env.Stdin, env.Stdout)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(env.Stdout, "generating shell scripts...")
	names, err := shgen.Generate(ctx, ".", plan)
	if err != nil {
		return err
	}
	for _, n := range names {
		env.Log.WithField("script", n).Debug("generated")
	}
	if err := shgen.WriteDriver(env.Config.Driver, names); err != nil {
		return err
	}
	env.Log.WithField("driver", env.Config.Driver).Infof("%d scripts", len(names))
	_, err = fmt.Fprintln(env.Stdout, "done.")
	return err
}
