package pattern

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrInvalidCount   = errors.New("pattern: number of patterns must be >= 0")
	ErrInvalidLength  = errors.New("pattern: pattern length must be >= 1")
	ErrPatternTooLong = errors.New("pattern: pattern length exceeds text length")
)

// Sample draws n substrings of length m from text at offsets chosen uniformly
// in [0, len(text)-m]. Repeats are allowed. The returned set has File unset.
func Sample(rng *rand.Rand, text []byte, n, m int) (*Set, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCount, n)
	case m < 1:
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidLength, m)
	case m > len(text):
		return nil, fmt.Errorf("%w (%d > %d)", ErrPatternTooLong, m, len(text))
	}
	h := Header{Number: n, Length: m}
	if _, err := h.Size(); err != nil {
		return nil, err
	}

	data := make([]byte, 0, n*m)
	span := len(text) - m + 1
	for i := 0; i < n; i++ {
		off := rng.Intn(span)
		data = append(data, text[off:off+m]...)
	}
	return &Set{Header: h, Data: data}, nil
}
