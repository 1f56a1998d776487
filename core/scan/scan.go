// Package scan is the brute-force reference matcher used to verify index
// query results: every alignment of every pattern is compared against the
// text and bucketed by Hamming distance.
//
// It is deliberately O(patterns × text × pattern length). Use it on small
// inputs only.
package scan

import (
	"context"
	"fmt"
)

// MaxMismatches is the largest distance that is tallied. Alignments with more
// mismatches are dropped without being counted anywhere.
const MaxMismatches = 2

// Tally holds occurrence counts by mismatch count: Occ[k] is the number of
// alignments at Hamming distance k.
type Tally struct {
	Occ [MaxMismatches + 1]int
}

// Total is the number of alignments within MaxMismatches.
func (t Tally) Total() int {
	n := 0
	for _, c := range t.Occ {
		n += c
	}
	return n
}

// Add accumulates o into t.
func (t *Tally) Add(o Tally) {
	for k := range t.Occ {
		t.Occ[k] += o.Occ[k]
	}
}

func (t Tally) String() string {
	return fmt.Sprintf("occ0=%d occ1=%d occ2=%d", t.Occ[0], t.Occ[1], t.Occ[2])
}

// Count compares p against every window text[j:j+len(p)], j in
// [0, len(text)-len(p)], and tallies the distances 0..MaxMismatches.
func Count(text, p []byte) Tally {
	var t Tally
	m := len(p)
	for j := 0; j+m <= len(text); j++ {
		if d := Distance(text[j:j+m], p, MaxMismatches); d <= MaxMismatches {
			t.Occ[d]++
		}
	}
	return t
}

// Patterns is an indexed, fixed-size collection of patterns.
type Patterns interface {
	Len() int
	At(i int) []byte
}

// Verify runs Count for each pattern in order and hands the per-pattern tally
// to visit (which may be nil). It returns the sum over all patterns.
// Cancellation is checked between patterns; a visit error stops the scan.
func Verify(ctx context.Context, text []byte, ps Patterns, visit func(i int, t Tally) error) (Tally, error) {
	var total Tally
	for i := 0; i < ps.Len(); i++ {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}
		t := Count(text, ps.At(i))
		total.Add(t)
		if visit != nil {
			if err := visit(i, t); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}
