package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"popseq/core/formaterr"
	"popseq/internal/summary"
)

func writeMS(t *testing.T, dir, name string, reps int) string {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "ms 2 %d -t 1.0 -r 1.0 100\n1 2 3\n", reps)
	for i := 0; i < reps; i++ {
		fmt.Fprintf(&b, "\n//\nsegsites: 1\npositions: 0.%d5\n0\n1\n", i%10)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestSummarizeFilesKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 6; i++ {
		paths = append(paths, writeMS(t, dir, fmt.Sprintf("f%d.ms", i), 3+i))
	}

	var got []string
	err := SummarizeFiles(context.Background(), Config{Workers: 3}, paths, func(s summary.Simulation) error {
		got = append(got, fmt.Sprintf("%s#%d", filepath.Base(s.SourceFile), s.Index))
		return nil
	})
	require.NoError(t, err)

	var want []string
	for i := 0; i < 6; i++ {
		for j := 1; j <= 3+i; j++ {
			want = append(want, fmt.Sprintf("f%d.ms#%d", i, j))
		}
	}
	assert.Equal(t, want, got)
}

func TestSummarizeFilesBasePositions(t *testing.T) {
	path := writeMS(t, t.TempDir(), "a.ms", 2)
	var base [][]int
	err := SummarizeFiles(context.Background(), Config{Workers: 1}, []string{path}, func(s summary.Simulation) error {
		base = append(base, s.BasePositions)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5}, {15}}, base)
}

func TestSummarizeFilesWarnsOnReplicateCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.ms")
	require.NoError(t, os.WriteFile(path, []byte("ms 2 3 -t 1.0\n1\n//\nsegsites: 0\n"), 0o644))

	var warns []string
	err := SummarizeFiles(context.Background(), Config{Warn: func(file, msg string) {
		warns = append(warns, file+": "+msg)
	}}, []string{path}, func(summary.Simulation) error { return nil })
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "1 simulations read, command line asks for 3")
}

func TestSummarizeFilesFormatError(t *testing.T) {
	dir := t.TempDir()
	good := writeMS(t, dir, "good.ms", 2)
	bad := filepath.Join(dir, "bad.ms")
	require.NoError(t, os.WriteFile(bad, []byte("ms 2 1\n1\n//\nsegsites: x\n"), 0o644))

	err := SummarizeFiles(context.Background(), Config{Workers: 2}, []string{good, bad}, func(summary.Simulation) error { return nil })
	require.ErrorIs(t, err, formaterr.ErrFormat)
	assert.Contains(t, err.Error(), "bad.ms")
}

func TestSummarizeFilesMissingFile(t *testing.T) {
	err := SummarizeFiles(context.Background(), Config{}, []string{filepath.Join(t.TempDir(), "nope.ms")},
		func(summary.Simulation) error { return nil })
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSummarizeFilesVisitError(t *testing.T) {
	path := writeMS(t, t.TempDir(), "a.ms", 4)
	stop := errors.New("stop")
	n := 0
	err := SummarizeFiles(context.Background(), Config{}, []string{path, path, path}, func(summary.Simulation) error {
		n++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}

func TestSummarizeFilesCanceled(t *testing.T) {
	path := writeMS(t, t.TempDir(), "a.ms", 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := SummarizeFiles(ctx, Config{}, []string{path}, func(summary.Simulation) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
