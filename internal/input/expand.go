package input

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// Expand resolves the input paths of a command. No paths means stdin; glob
// patterns are expanded (useful when the shell did not), and a pattern that
// matches nothing is an error rather than a silent no-op.
func Expand(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return []string{Stdin}, nil
	}
	var out []string
	for _, p := range paths {
		if p == Stdin || !hasGlobMeta(p) {
			out = append(out, p)
			continue
		}
		m, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", p, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", p)
		}
		out = append(out, m...)
	}
	return out, nil
}
