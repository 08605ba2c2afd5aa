// core/ms/args.go
package ms

import (
	"strconv"
	"strings"

	"popseq/core/formaterr"
)

// FormatError is the error raised for malformed ms output.
type FormatError = formaterr.Error

// Flags with positional meaning.
const (
	FlagPopulations   = "I"
	FlagRecombination = "r"
)

// Args is the parsed ms command line: "ms nsam nreps -flag value ...".
// Values of a repeated flag are kept in encounter order.
type Args struct {
	raw      string
	program  string
	nsamples int
	nreps    int
	flags    map[string][]string
}

// ParseArgs splits an ms command line on '-' delimiters. The first segment
// holds the program, sample count and replicate count; every later segment
// is "flag value...", keyed by the text before its first space.
func ParseArgs(line string) (*Args, error) {
	line = strings.TrimRight(line, " \t\r\n")
	items := strings.Split(line, "-")

	required := strings.Fields(items[0])
	if len(required) < 3 {
		return nil, formaterr.New("ms", 1, "command line needs program, sample count and replicate count: %q", items[0])
	}
	nsam, err := strconv.Atoi(required[1])
	if err != nil {
		return nil, formaterr.Wrap(err, "ms", 1, "sample count")
	}
	nreps, err := strconv.Atoi(required[2])
	if err != nil {
		return nil, formaterr.Wrap(err, "ms", 1, "replicate count")
	}

	a := &Args{
		raw:      line,
		program:  required[0],
		nsamples: nsam,
		nreps:    nreps,
		flags:    make(map[string][]string),
	}
	for _, seg := range items[1:] {
		sp := strings.IndexByte(seg, ' ')
		if sp <= 0 {
			return nil, formaterr.New("ms", 1, "malformed flag segment %q", "-"+seg)
		}
		flag := seg[:sp]
		a.flags[flag] = append(a.flags[flag], strings.TrimRight(seg[sp+1:], " \t"))
	}
	return a, nil
}

func (a *Args) Raw() string     { return a.raw }
func (a *Args) Program() string { return a.program }
func (a *Args) Samples() int    { return a.nsamples }
func (a *Args) Replicates() int { return a.nreps }

// Has reports whether flag appeared at least once.
func (a *Args) Has(flag string) bool { return len(a.flags[flag]) > 0 }

// Values returns every value given for flag, in encounter order.
func (a *Args) Values(flag string) []string {
	return append([]string(nil), a.flags[flag]...)
}

// First returns the first value given for flag.
func (a *Args) First(flag string) (string, bool) {
	v := a.flags[flag]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Last returns the last value given for flag.
func (a *Args) Last(flag string) (string, bool) {
	v := a.flags[flag]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Flags lists the distinct flags present, in no particular order.
func (a *Args) Flags() []string {
	out := make([]string, 0, len(a.flags))
	for f := range a.flags {
		out = append(out, f)
	}
	return out
}

// PopulationSizes returns the per-population sample sizes from the last -I
// argument, or a single population holding every sample when -I is absent.
// The sizes must be as many as the declared population count and sum to the
// sample count.
func (a *Args) PopulationSizes() ([]int, error) {
	v, ok := a.Last(FlagPopulations)
	if !ok {
		return []int{a.nsamples}, nil
	}
	items := strings.Fields(v)
	if len(items) == 0 {
		return nil, formaterr.New("ms", 1, "-I without a population count")
	}
	npops, err := strconv.Atoi(items[0])
	if err != nil {
		return nil, formaterr.Wrap(err, "ms", 1, "-I population count")
	}
	sizes := make([]int, 0, len(items)-1)
	sum := 0
	for _, it := range items[1:] {
		n, err := strconv.Atoi(it)
		if err != nil {
			return nil, formaterr.Wrap(err, "ms", 1, "-I population size")
		}
		sizes = append(sizes, n)
		sum += n
	}
	if npops != len(sizes) {
		return nil, formaterr.New("ms", 1, "-I declares %d populations but lists %d sizes", npops, len(sizes))
	}
	if sum != a.nsamples {
		return nil, formaterr.New("ms", 1, "-I sizes sum to %d, sample count is %d", sum, a.nsamples)
	}
	return sizes, nil
}

// LocusLength returns the number of sites from the first -r argument
// ("-r rho nsites"). ok is false when the run has no -r.
func (a *Args) LocusLength() (n int, ok bool, err error) {
	v, ok := a.First(FlagRecombination)
	if !ok {
		return 0, false, nil
	}
	items := strings.Fields(v)
	if len(items) < 2 {
		return 0, true, formaterr.New("ms", 1, "-r needs rho and a locus length: %q", v)
	}
	n, err = strconv.Atoi(items[1])
	if err != nil {
		return 0, true, formaterr.Wrap(err, "ms", 1, "-r locus length")
	}
	return n, true, nil
}
