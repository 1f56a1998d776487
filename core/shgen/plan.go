// Package shgen expands experiment templates into shell scripts.
//
// A filename template and a command template both use '*' as a variable
// slot. Every combination of filename variables yields one script; inside a
// script every combination of the command's independent variables yields one
// command line. A command slot may instead be bound to a filename slot, in
// which case it reuses the value chosen for that file.
package shgen

import (
	"errors"
	"fmt"
	"strings"
)

// Wildcard marks a variable slot in a template.
const Wildcard = "*"

// Independent binds a command slot to its own variable list.
const Independent = -1

// ErrBindingCount reports a mismatch between independent command slots and
// the independent variable lists supplied for them.
var ErrBindingCount = errors.New("shgen: independent command slots and variable lists differ in number")

// Plan is a fully specified experiment expansion.
type Plan struct {
	// FileParts is the filename template split on Wildcard (n+1 fragments).
	FileParts []string
	// FileVars holds one ordered variable list per filename slot (n lists).
	FileVars [][]string
	// CmdParts is the command template split on Wildcard (m+1 fragments).
	CmdParts []string
	// Bindings has one entry per command slot: a filename slot index, or Independent.
	Bindings []int
	// CmdVars holds one list per Independent binding, in slot order.
	CmdVars [][]string
}

// SplitTemplate cuts a template into its literal fragments.
func SplitTemplate(tmpl string) []string { return strings.Split(tmpl, Wildcard) }

// FileSlots is the number of filename variables.
func (p *Plan) FileSlots() int { return len(p.FileParts) - 1 }

// CmdSlots is the number of command variables.
func (p *Plan) CmdSlots() int { return len(p.CmdParts) - 1 }

// Independents counts the command slots that draw from their own list.
func (p *Plan) Independents() int {
	n := 0
	for _, b := range p.Bindings {
		if b == Independent {
			n++
		}
	}
	return n
}

// Validate checks that every slot has exactly one source of values.
func (p *Plan) Validate() error {
	if len(p.FileParts) == 0 {
		return errors.New("shgen: empty filename template")
	}
	if len(p.CmdParts) == 0 {
		return errors.New("shgen: empty command template")
	}
	if got, want := len(p.FileVars), p.FileSlots(); got != want {
		return fmt.Errorf("shgen: filename has %d slots but %d variable lists", want, got)
	}
	if got, want := len(p.Bindings), p.CmdSlots(); got != want {
		return fmt.Errorf("shgen: command has %d slots but %d bindings", want, got)
	}
	for j, b := range p.Bindings {
		if b != Independent && (b < 0 || b >= p.FileSlots()) {
			return fmt.Errorf("shgen: binding %d of command slot %d is out of range [0,%d) and not %d",
				b, j, p.FileSlots(), Independent)
		}
	}
	if got, want := len(p.CmdVars), p.Independents(); got != want {
		return fmt.Errorf("%w: %d slots, %d lists", ErrBindingCount, want, got)
	}
	return nil
}
