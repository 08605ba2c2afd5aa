// internal/input/open.go
package input

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

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

// Open returns a reader for path; "-" reads stdin.
// Gzip input is detected by magic number (1F 8B) or by .gz suffix, for files
// and stdin alike.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return wrap(bufio.NewReader(os.Stdin), io.NopCloser(nil), false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := wrap(bufio.NewReader(fh), fh, strings.HasSuffix(path, ".gz"))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func wrap(br *bufio.Reader, c io.Closer, gz bool) (io.ReadCloser, error) {
	if sig, _ := br.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gz = true
	}
	if !gz {
		return &multiReadCloser{Reader: br, closers: []io.Closer{c}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, c}}, nil
}
