package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"popseq/internal/version"
)

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(e.stdout, "popseq version %s\n", version.Version)
			return err
		},
	}
}
