package picker

import (
	"strings"

	"randompick/internal/errors"

	"github.com/gobwas/glob"
)

// ParseItems splits raw on newlines, trims every line and drops the empty
// ones. Order and duplicates are kept.
func ParseItems(raw string) []string {
	lines := strings.Split(raw, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Exclusion drops items matching any of its glob patterns.
type Exclusion struct {
	patterns []string
	globs    []glob.Glob
}

// NewExclusion compiles patterns. An empty list excludes nothing.
func NewExclusion(patterns ...string) (*Exclusion, error) {
	ex := &Exclusion{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError("invalid exclude pattern", p, errors.InvalidPattern, err)
		}
		ex.patterns = append(ex.patterns, p)
		ex.globs = append(ex.globs, g)
	}
	return ex, nil
}

// Apply returns the items no pattern matches. It returns items itself when
// there is nothing to exclude.
func (ex *Exclusion) Apply(items []string) []string {
	if ex == nil || len(ex.globs) == 0 {
		return items
	}
	kept := items[:0:0]
	for _, item := range items {
		if !ex.matches(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

func (ex *Exclusion) matches(item string) bool {
	for _, g := range ex.globs {
		if g.Match(item) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns.
func (ex *Exclusion) Patterns() []string {
	if ex == nil {
		return nil
	}
	return append([]string(nil), ex.patterns...)
}
