// Package cmd is the cobra command tree of the popseq binary.
package cmd

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"popseq/internal/cmdutil"
	"popseq/internal/config"
	"popseq/internal/input"
	"popseq/internal/version"
)

// UsageError marks failures caused by how the command was invoked.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// env is the state shared by every command of one invocation.
type env struct {
	v       *viper.Viper
	cfgPath string
	cfg     config.Config
	log     *log.Logger
	stdout  io.Writer
	stderr  io.Writer
}

// NewRootCmd builds the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	e := &env{v: viper.New(), stdout: stdout, stderr: stderr}
	config.SetDefaults(e.v)

	root := &cobra.Command{
		Use:   "popseq",
		Short: "Read FASTA records and ms coalescent simulator output",
		Long: `popseq parses FASTA sequence files and the text output of Hudson's ms
simulator: it splits ms runs into simulations, partitions haplotypes by
population and maps relative site positions onto base coordinates.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(e.v, e.cfgPath)
			if err != nil {
				return &UsageError{Err: err}
			}
			e.cfg = cfg
			e.log = cmdutil.NewLogger(stderr, cfg.LogLevel, cfg.Quiet)
			e.log.Debug("configuration loaded", "output", cfg.Output, "workers", cfg.Workers)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&e.cfgPath, "config", "", "config file (yaml, toml or json)")
	pf.String(config.KeyLogLevel, "info", "log level: debug | info | warn | error")
	pf.BoolP(config.KeyQuiet, "q", false, "only log errors")
	pf.StringP(config.KeyOutput, "o", "text", "output: text | jsonl")

	root.AddCommand(newFastaCmd(e), newMSCmd(e), newVersionCmd(e))
	return root
}

// inputs resolves positional paths; none means stdin.
func inputs(args []string) ([]string, error) {
	paths, err := input.Expand(args)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	return paths, nil
}

// IsUsage reports whether err came from a bad invocation.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

func atMostOneInput(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}
