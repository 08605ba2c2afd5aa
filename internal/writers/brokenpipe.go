package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of our output went away,
// as when popseq is piped into `head`.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
