// Package config holds the settings shared by every popseq command. Values are
// layered by viper: defaults, an optional config file, POPSEQ_* environment
// variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"popseq/core/fasta"
	"popseq/internal/writers"
)

// Keys, shared by flags, environment variables and config files.
const (
	KeyLogLevel    = "log-level"
	KeyQuiet       = "quiet"
	KeyOutput      = "output"
	KeyWorkers     = "workers"
	KeyLineWidth   = "line-width"
	KeyLocusLength = "locus-length"
	KeyNoHeader    = "no-header"
	KeyPositions   = "positions"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "POPSEQ"

// Config is the root-level settings struct.
type Config struct {
	// logging
	LogLevel string `mapstructure:"log-level"`
	Quiet    bool   `mapstructure:"quiet"`

	// output format: text | jsonl
	Output string `mapstructure:"output"`
	// suppress the header row of text tables
	NoHeader bool `mapstructure:"no-header"`
	// include relative positions in summaries
	Positions bool `mapstructure:"positions"`

	// files parsed concurrently (0 = all CPUs)
	Workers int `mapstructure:"workers"`
	// FASTA line width for written records
	LineWidth int `mapstructure:"line-width"`
	// overrides the -r locus length when > 0
	LocusLength int `mapstructure:"locus-length"`
}

// SetDefaults registers defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyOutput, writers.FormatText)
	v.SetDefault(KeyNoHeader, false)
	v.SetDefault(KeyPositions, false)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyLineWidth, fasta.LineWidth)
	v.SetDefault(KeyLocusLength, 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file at path (if any) into v, then
// decodes and validates the result.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.Output = strings.ToLower(c.Output)
	return c, c.Validate()
}

// Validate applies the invariants every command relies on.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid --%s %q", KeyLogLevel, c.LogLevel)
	}
	if err := writers.ValidFormat(c.Output); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if c.LineWidth <= 0 {
		return errors.New("--line-width must be > 0")
	}
	if c.LocusLength < 0 {
		return errors.New("--locus-length must be ≥ 0")
	}
	return nil
}
