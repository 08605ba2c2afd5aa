package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	N int `json:"n"`
}

func never(error) bool { return false }

func TestStartEncodesInOrder(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[row](&buf, 2, func(enc *json.Encoder, r row) error { return enc.Encode(r) }, never)
	for i := 1; i <= 3; i++ {
		in <- row{N: i}
	}
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "{\"n\":1}\n{\"n\":2}\n{\"n\":3}\n", buf.String())
}

func TestStartDrainsAfterError(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[row](&bytes.Buffer{}, 1, func(*json.Encoder, row) error { return boom }, never)
	for i := 0; i < 10; i++ {
		in <- row{N: i} // must not block
	}
	close(in)
	assert.ErrorIs(t, <-done, boom)
}

func TestStartSuppressesBrokenPipe(t *testing.T) {
	boom := errors.New("pipe")
	in, done := Start[row](&bytes.Buffer{}, 1,
		func(*json.Encoder, row) error { return boom },
		func(err error) bool { return errors.Is(err, boom) })
	in <- row{}
	close(in)
	assert.NoError(t, <-done)
}
