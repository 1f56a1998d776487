// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Arg describes one positional argument.
type Arg struct {
	Name     string
	Help     string
	Optional bool
}

// Tool describes a positional-only command line tool.
type Tool struct {
	Name    string   // binary name
	Title   string   // banner line
	About   []string // free text printed under the banner
	Args    []Arg
	Prompts []string // interactive prompts, in order (tools without args)
}

// MinArgs is the number of required positionals.
func (t Tool) MinArgs() int {
	n := 0
	for _, a := range t.Args {
		if !a.Optional {
			n++
		}
	}
	return n
}

// MaxArgs is the number of accepted positionals.
func (t Tool) MaxArgs() int { return len(t.Args) }

// UseLine renders "name <a> <b> [<c>]".
func (t Tool) UseLine() string {
	parts := []string{t.Name}
	for _, a := range t.Args {
		if a.Optional {
			parts = append(parts, "[<"+a.Name+">]")
		} else {
			parts = append(parts, "<"+a.Name+">")
		}
	}
	return strings.Join(parts, " ")
}

// PrintUsage writes the banner, the usage line and the argument table.
func PrintUsage(out io.Writer, t Tool) {
	_, _ = color.New(color.Bold).Fprintf(out, "---- %s ----\n", t.Title)
	for _, l := range t.About {
		_, _ = fmt.Fprintln(out, l)
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "Usage: %s\n", t.UseLine())

	width := 0
	for _, a := range t.Args {
		if w := len(a.Name) + 2; w > width {
			width = w
		}
	}
	for _, a := range t.Args {
		_, _ = fmt.Fprintf(out, "    %-*s %s\n", width, "<"+a.Name+">", a.Help)
	}
	if len(t.Prompts) > 0 {
		_, _ = fmt.Fprintln(out, "\nPrompts (answered on stdin, in order):")
		for i, p := range t.Prompts {
			_, _ = fmt.Fprintf(out, "  %d. %s\n", i+1, p)
		}
	}

	_, _ = fmt.Fprintln(out, "\nEnvironment:")
	_, _ = fmt.Fprintln(out, "  PIZZACHILI_CONFIG     settings file (yaml, toml, json)")
	_, _ = fmt.Fprintln(out, "  PIZZACHILI_LOG_LEVEL  debug | info | warn | error [info]")
	_, _ = fmt.Fprintln(out, "  PIZZACHILI_QUIET      only log warnings and errors [false]")
}
