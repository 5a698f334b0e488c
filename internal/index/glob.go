package index

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// globPattern holds comma-separated doublestar patterns; entries
// prefixed with "!" exclude.
type globPattern struct {
	positive []string
	negative []string
}

func parseGlobPattern(patterns string) *globPattern {
	gp := &globPattern{}
	for _, pattern := range strings.Split(patterns, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.HasPrefix(pattern, "!") {
			gp.negative = append(gp.negative, strings.TrimPrefix(pattern, "!"))
		} else {
			gp.positive = append(gp.positive, pattern)
		}
	}
	return gp
}

// match tests a slash-normalized relative path against the patterns.
// With no positive patterns everything matches unless excluded.
func (gp *globPattern) match(path string) (bool, error) {
	path = filepath.ToSlash(path)

	matches := len(gp.positive) == 0
	for _, pattern := range gp.positive {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if ok {
			matches = true
			break
		}
	}
	if !matches {
		return false, nil
	}

	for _, pattern := range gp.negative {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}
