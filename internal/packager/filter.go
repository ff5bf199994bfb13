package packager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agentx-labs/skillpack/internal/skill"
	"github.com/gobwas/glob"
)

// ErrInvalidPattern is returned for an exclude pattern that does not compile.
var ErrInvalidPattern = errors.New("invalid exclude pattern")

// excludedDirs are pruned before the walk descends into them.
var excludedDirs = map[string]bool{
	".git":        true,
	"__pycache__": true,
}

// excludedFiles are skipped wherever they appear.
var excludedFiles = map[string]bool{
	".DS_Store": true,
}

const bytecodeSuffix = ".pyc"

// Filter decides which entries of a skill directory are packaged.
type Filter struct {
	patterns []glob.Glob
}

// NewFilter returns a filter with the built-in exclusions plus the given glob
// patterns. Patterns use "/" as separator and are matched against both the
// slash-separated path relative to the skill root and the entry's base name,
// so "*.log" excludes log files at any depth while "docs/drafts" only excludes
// that one directory.
func NewFilter(patterns ...string) (*Filter, error) {
	f := &Filter{patterns: make([]glob.Glob, 0, len(patterns))}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, p, err)
		}
		f.patterns = append(f.patterns, g)
	}
	return f, nil
}

// SkipDir reports whether the directory with the given base name and
// relative path is pruned from the walk.
func (f *Filter) SkipDir(name, rel string) bool {
	return excludedDirs[name] || f.matches(name, rel)
}

// SkipFile reports whether the file with the given base name and relative
// path is left out of the archive. The root SKILL.md is always kept.
func (f *Filter) SkipFile(name, rel string) bool {
	if excludedFiles[name] || strings.HasSuffix(name, bytecodeSuffix) {
		return true
	}
	if rel == skill.FileName {
		return false
	}
	return f.matches(name, rel)
}

func (f *Filter) matches(name, rel string) bool {
	if f == nil {
		return false
	}
	for _, g := range f.patterns {
		if g.Match(rel) || g.Match(name) {
			return true
		}
	}
	return false
}
