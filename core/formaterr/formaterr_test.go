package formaterr

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "fasta: line 3: bad header", New("fasta", 3, "bad header").Error())
	assert.Equal(t, "ms: no command line", New("ms", 0, "no command line").Error())
}

func TestWrapKeepsCause(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := Wrap(cause, "ms", 1, "sample count %q", "x")

	require.ErrorIs(t, err, ErrFormat)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `sample count "x"`)

	var fe *Error
	require.True(t, errors.As(error(err), &fe))
	assert.Equal(t, 1, fe.Line)
}
