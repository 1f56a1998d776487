package shgenapp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pizzachili/core/shgen"
)

// Prompt texts, in the order they are asked.
const (
	promptFileTemplate = "base file name (type * for variables): "
	promptFileVars     = "%d-th variable list for filename separated by space: "
	promptCmdTemplate  = "base command in the file content (type * for variables): "
	promptBindings     = "index list for each * (i if it's same as i-th var in filename otherwise -1): "
	promptCmdVars      = "%d-th variable list for command separated by space: "
)

type flusher interface{ Flush() error }

// prompter asks one question per line of input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	n   int
}

func (p *prompter) ask(format string, a ...any) (string, error) {
	p.n++
	if _, err := fmt.Fprintf(p.out, format, a...); err != nil {
		return "", err
	}
	if f, ok := p.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return "", err
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("input ended before answer %d", p.n)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask collects a plan interactively: filename template, one list per
// filename slot, command template, slot bindings, then one list per
// independent command slot.
func Ask(in io.Reader, out io.Writer) (*shgen.Plan, error) {
	p := &prompter{in: bufio.NewReader(in), out: out}
	plan := &shgen.Plan{}

	line, err := p.ask(promptFileTemplate)
	if err != nil {
		return nil, err
	}
	plan.FileParts = shgen.SplitTemplate(line)
	for i := 0; i < plan.FileSlots(); i++ {
		if line, err = p.ask(promptFileVars, i); err != nil {
			return nil, err
		}
		plan.FileVars = append(plan.FileVars, strings.Fields(line))
	}

	if line, err = p.ask(promptCmdTemplate); err != nil {
		return nil, err
	}
	plan.CmdParts = shgen.SplitTemplate(line)

	if line, err = p.ask(promptBindings); err != nil {
		return nil, err
	}
	if plan.Bindings, err = parseBindings(line, plan.CmdSlots(), plan.FileSlots()); err != nil {
		return nil, err
	}

	for i := 0; i < plan.Independents(); i++ {
		if line, err = p.ask(promptCmdVars, i); err != nil {
			return nil, err
		}
		plan.CmdVars = append(plan.CmdVars, strings.Fields(line))
	}
	return plan, plan.Validate()
}

// parseBindings reads one integer per command slot.
func parseBindings(line string, slots, fileSlots int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) != slots {
		return nil, fmt.Errorf("command has %d '*' but %d indices were given", slots, len(fields))
	}
	out := make([]int, len(fields))
	for j, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("index %q is not an integer", f)
		}
		if v != shgen.Independent && (v < 0 || v >= fileSlots) {
			return nil, fmt.Errorf("index %d must be -1 or in [0,%d)", v, fileSlots)
		}
		out[j] = v
	}
	return out, nil
}
