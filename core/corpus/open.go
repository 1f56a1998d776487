// core/corpus/open.go
package corpus

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// snappyMagic is the stream identifier chunk that opens every framed snappy stream.
var snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" reads stdin. Gzip input is detected by
// magic number (1F 8B) or a .gz suffix, framed snappy by its stream identifier
// or a .sz suffix; everything else is returned as-is.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(len(snappyMagic))

	switch {
	case (len(sig) >= 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	case bytes.Equal(sig, snappyMagic) || strings.HasSuffix(path, ".sz"):
		return &multiReadCloser{Reader: snappy.NewReader(br), closers: []io.Closer{fh}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{fh}}, nil
}

// ReadFile loads the whole (possibly compressed) file at path as raw bytes.
// No decoding is applied: every byte is one character.
func ReadFile(path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
