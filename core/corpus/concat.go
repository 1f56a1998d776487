package corpus

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// RecordMarker opens a FASTA header line.
const RecordMarker = '>'

// Concat flattens the FASTA stream r into w. Header lines are dropped; every
// record after the first is preceded by delim. Body lines are trimmed and
// written back-to-back, blank lines are skipped. Body lines that appear
// before the first header are kept.
//
// It returns the number of records seen. Lines may be arbitrarily long.
// Cancellation via ctx is checked between lines.
func Concat(ctx context.Context, r io.Reader, w io.Writer, delim string) (int, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	items := 0

	for {
		select {
		case <-ctx.Done():
			_ = bw.Flush()
			return items, ctx.Err()
		default:
		}

		line, rerr := br.ReadBytes('\n')
		if rerr != nil && rerr != io.EOF {
			_ = bw.Flush()
			return items, fmt.Errorf("fasta read: %w", rerr)
		}
		if len(line) > 0 {
			if line[0] == RecordMarker {
				items++
				if items != 1 && delim != "" {
					if _, err := bw.WriteString(delim); err != nil {
						return items, err
					}
				}
			} else if body := bytes.TrimSpace(line); len(body) > 0 {
				if _, err := bw.Write(body); err != nil {
					return items, err
				}
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	if err := bw.Flush(); err != nil {
		return items, err
	}
	return items, nil
}

// ConcatFile runs Concat from the input path into a freshly created output
// file. A failure part-way leaves the truncated output on disk.
func ConcatFile(ctx context.Context, in, out, delim string) (int, error) {
	rc, err := Open(in)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	fo, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	items, cerr := Concat(ctx, rc, fo, delim)
	if err := fo.Close(); err != nil && cerr == nil {
		cerr = err
	}
	return items, cerr
}
