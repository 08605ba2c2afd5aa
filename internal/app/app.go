// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"popseq/internal/cmd"
	"popseq/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// RunContext executes one popseq invocation and returns its exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := cmd.NewRootCmd(stdout, stderr)
	root.SetArgs(argv)

	err := root.ExecuteContext(parent)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case writers.IsBrokenPipe(err):
		return ExitOK
	case cmd.IsUsage(err):
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		_, _ = fmt.Fprintln(stderr, "Run 'popseq --help' for usage.")
		return ExitUsage
	}
	_, _ = fmt.Fprintln(stderr, "Error:", err)
	return ExitFailure
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
