package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"pizzachili/core/corpus"
)

var (
	// ErrTruncated means the file holds fewer than number×length pattern bytes.
	ErrTruncated = errors.New("pattern: pattern region shorter than header announces")
	// ErrTrailingData means bytes follow the last announced pattern.
	ErrTrailingData = errors.New("pattern: data after last pattern")
)

// Set is a parsed pattern file. Data holds Number patterns of Length bytes.
type Set struct {
	Header
	Data []byte
}

// Len returns the number of patterns.
func (s *Set) Len() int { return s.Number }

// At returns the i-th pattern (0-based). The slice aliases s.Data.
func (s *Set) At(i int) []byte {
	off := i * s.Length
	return s.Data[off : off+s.Length : off+s.Length]
}

// Read parses a pattern file from r. The pattern region must be exactly
// number×length bytes long.
func Read(r io.Reader) (*Set, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("pattern: read header: %w", err)
	}
	if line == "" {
		return nil, &HeaderError{Line: line, Reason: "empty file"}
	}
	h, err := ParseHeader(line)
	if err != nil {
		return nil, err
	}
	size, err := h.Size()
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(br, int64(size)))
	if err != nil {
		return nil, fmt.Errorf("pattern: read patterns: %w", err)
	}
	if len(data) < size {
		return nil, fmt.Errorf("%w: have %d bytes, want %d (number=%d length=%d)",
			ErrTruncated, len(data), size, h.Number, h.Length)
	}
	if _, err := br.ReadByte(); err == nil {
		return nil, fmt.Errorf("%w (number=%d length=%d)", ErrTrailingData, h.Number, h.Length)
	} else if err != io.EOF {
		return nil, fmt.Errorf("pattern: read patterns: %w", err)
	}
	return &Set{Header: h, Data: data}, nil
}

// ReadFile reads the pattern file at path (compressed inputs are accepted).
func ReadFile(path string) (*Set, error) {
	rc, err := corpus.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	s, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write emits the header line followed by the raw pattern bytes.
func Write(w io.Writer, s *Set) error {
	size, err := s.Size()
	if err != nil {
		return err
	}
	if len(s.Data) != size {
		return fmt.Errorf("pattern: set holds %d bytes, header announces %d", len(s.Data), size)
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(s.Header.String() + "\n"); err != nil {
		return err
	}
	if _, err := bw.Write(s.Data); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes s to it.
func WriteFile(path string, s *Set) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, s); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
