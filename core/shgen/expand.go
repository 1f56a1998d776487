package shgen

import "strings"

// File is one filename combination.
type File struct {
	Name   string
	Values []string // chosen value per filename slot
}

// product calls fn with every combination of lists, first list varying
// slowest (depth-first order). The slice passed to fn is reused.
func product(lists [][]string, fn func([]string)) {
	for _, l := range lists {
		if len(l) == 0 {
			return
		}
	}
	idx := make([]int, len(lists))
	cur := make([]string, len(lists))
	for {
		for i, l := range lists {
			cur[i] = l[idx[i]]
		}
		fn(cur)

		i := len(lists) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(lists[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// fill interleaves the literal parts with values: parts[0] v[0] parts[1] ...
func fill(parts, values []string) string {
	var b strings.Builder
	b.WriteString(parts[0])
	for i, v := range values {
		b.WriteString(v)
		b.WriteString(parts[i+1])
	}
	return b.String()
}

// Files enumerates every filename combination. Their count is the product
// of the filename list sizes.
func (p *Plan) Files() []File {
	var out []File
	product(p.FileVars, func(vals []string) {
		v := append([]string(nil), vals...)
		out = append(out, File{Name: fill(p.FileParts, v), Values: v})
	})
	return out
}

// Commands enumerates the command lines of one script. Bound slots take
// f.Values[binding]; independent slots range over their own lists, so the
// count is the product of the independent list sizes.
func (p *Plan) Commands(f File) []string {
	var out []string
	vals := make([]string, len(p.Bindings))
	product(p.CmdVars, func(free []string) {
		k := 0
		for j, b := range p.Bindings {
			if b == Independent {
				vals[j] = free[k]
				k++
				continue
			}
			vals[j] = f.Values[b]
		}
		out = append(out, fill(p.CmdParts, vals))
	})
	return out
}
