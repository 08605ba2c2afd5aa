// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a stderr-style logger for one command invocation.
// quiet keeps only errors, whatever level says.
func NewLogger(dst io.Writer, level string, quiet bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if quiet {
		lvl = log.ErrorLevel
	}
	return log.NewWithOptions(dst, log.Options{
		Level:  lvl,
		Prefix: "popseq",
	})
}

// Warnf logs a warning unless the logger is muted.
func Warnf(l *log.Logger, format string, a ...any) {
	if l == nil {
		return
	}
	l.Warnf(format, a...)
}
