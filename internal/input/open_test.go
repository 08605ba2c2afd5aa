package input

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const plain = `>seq1
ACGT
>seq2
NNnn
`

// writeGz creates a gzipped file with the provided data under dir.
func writeGz(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())
	return path
}

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.fa")
	require.NoError(t, os.WriteFile(path, []byte(plain), 0o644))
	require.Equal(t, plain, readAll(t, path))
}

func TestOpenGzipBySuffix(t *testing.T) {
	path := writeGz(t, t.TempDir(), "x.fa.gz", plain)
	require.Equal(t, plain, readAll(t, path))
}

func TestOpenGzipByMagic(t *testing.T) {
	path := writeGz(t, t.TempDir(), "x.ms", plain)
	require.Equal(t, plain, readAll(t, path))
}

func TestOpenStdin(t *testing.T) {
	// Fake stdin by swapping os.Stdin
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	require.Equal(t, plain, readAll(t, Stdin))
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.fa"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
