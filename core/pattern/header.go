// Package pattern reads and writes Pizza&Chili pattern files: one header line
// followed by fixed-length patterns stored back-to-back with no separators.
package pattern

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Header keys.
const (
	KeyNumber = "number"
	KeyLength = "length"
	KeyFile   = "file"
)

// Header is the first line of a pattern file.
type Header struct {
	Number int    // pattern count n
	Length int    // pattern length m
	File   string // text the patterns were drawn from (informational)
}

// String renders the header line without its trailing newline.
func (h Header) String() string {
	return fmt.Sprintf("# %s=%d %s=%d %s=%s", KeyNumber, h.Number, KeyLength, h.Length, KeyFile, h.File)
}

// Size is the byte length of the pattern region the header announces.
func (h Header) Size() (int, error) {
	if h.Number < 0 || h.Length < 0 {
		return 0, fmt.Errorf("pattern: negative size %d×%d", h.Number, h.Length)
	}
	if h.Number > 0 && h.Length > int(^uint(0)>>1)/h.Number {
		return 0, fmt.Errorf("pattern: size %d×%d overflows", h.Number, h.Length)
	}
	return h.Number * h.Length, nil
}

// HeaderError reports a header line that cannot be used to slice the file.
type HeaderError struct {
	Line   string
	Reason string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("pattern: malformed header %q: %s", e.Line, e.Reason)
}

// ParseHeader parses "# number=<n> length=<m> file=<path>". Tokens are
// whitespace separated key=value pairs in any order; number and length are
// required, unknown keys are ignored. file= consumes the rest of the line so
// paths containing spaces survive.
func ParseHeader(line string) (Header, error) {
	line = strings.TrimRight(line, "\r\n")
	bad := func(format string, a ...any) (Header, error) {
		return Header{}, &HeaderError{Line: line, Reason: fmt.Sprintf(format, a...)}
	}
	if !strings.HasPrefix(line, "#") {
		return bad("missing leading '#'")
	}

	var h Header
	var haveNum, haveLen bool
	rest := strings.TrimLeftFunc(line[1:], unicode.IsSpace)
	for rest != "" {
		if strings.HasPrefix(rest, KeyFile+"=") {
			h.File = strings.TrimRightFunc(rest[len(KeyFile)+1:], unicode.IsSpace)
			break
		}
		tok := rest
		if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
			tok = rest[:i]
		}
		rest = strings.TrimLeftFunc(rest[len(tok):], unicode.IsSpace)

		key, val, ok := strings.Cut(tok, "=")
		if !ok || key == "" {
			return bad("token %q is not key=value", tok)
		}
		switch key {
		case KeyNumber, KeyLength:
			v, err := strconv.Atoi(val)
			if err != nil {
				return bad("%s=%q is not an integer", key, val)
			}
			if v < 0 {
				return bad("%s=%d is negative", key, v)
			}
			if key == KeyNumber {
				if haveNum {
					return bad("duplicate %s", key)
				}
				h.Number, haveNum = v, true
			} else {
				if haveLen {
					return bad("duplicate %s", key)
				}
				h.Length, haveLen = v, true
			}
		}
	}
	if !haveNum {
		return bad("missing %s=", KeyNumber)
	}
	if !haveLen {
		return bad("missing %s=", KeyLength)
	}
	return h, nil
}
