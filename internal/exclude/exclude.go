// Package exclude implements the plain-text exclusion list checked before a
// file is translated. The list holds one glob pattern per line; blank lines
// and lines starting with # are ignored.
package exclude

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// List holds the parsed exclusion patterns
type List struct {
	patterns []string
}

// Load reads an exclusion list file. A missing file is an error; callers
// that treat the list as optional should check for existence first.
func Load(path string) (*List, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exclusion list: %w", err)
	}
	return Parse(string(content)), nil
}

// Parse builds a List from raw file content
func Parse(content string) *List {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return &List{patterns: patterns}
}

// Empty returns a list that matches nothing
func Empty() *List {
	return &List{}
}

// Match reports whether path matches any exclusion pattern. Each pattern is
// tried against the slash-normalized path and against its basename, so
// "drafts/*.qmd" and "*.draft.qmd" both work as expected.
func (l *List) Match(path string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(slashed)
	for _, pattern := range l.patterns {
		if ok, err := filepath.Match(pattern, slashed); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// Len returns the number of patterns in the list
func (l *List) Len() int {
	return len(l.patterns)
}
