package files

import (
	"os"
	"path/filepath"
	"strings"

	gitgitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ignoreSet accumulates .gitignore patterns while a walk descends. Each
// pattern carries its directory as domain, so patterns from sibling
// directories never apply to each other.
type ignoreSet struct {
	absRoot  string
	disabled bool
	patterns []gitgitignore.Pattern
}

func newIgnoreSet(absRoot string, disabled bool) *ignoreSet {
	return &ignoreSet{absRoot: absRoot, disabled: disabled}
}

// load reads the .gitignore in relDir, if any.
func (s *ignoreSet) load(relDir string) {
	if s.disabled {
		return
	}
	b, err := os.ReadFile(filepath.Join(s.absRoot, relDir, ".gitignore"))
	if err != nil {
		return
	}
	domain := splitRel(relDir)
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.patterns = append(s.patterns, gitgitignore.ParsePattern(line, domain))
	}
}

func (s *ignoreSet) match(rel string, isDir bool) bool {
	if s.disabled || len(s.patterns) == 0 {
		return false
	}
	return gitgitignore.NewMatcher(s.patterns).Match(splitRel(rel), isDir)
}

func splitRel(rel string) []string {
	if rel == "." || rel == "" {
		return []string{}
	}
	return strings.Split(filepath.ToSlash(rel), "/")
}
