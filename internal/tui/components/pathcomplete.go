package components

import (
	"sort"
	"strings"

	"github.com/vvka-141/fsh/pkg/fsh"
)

// PathSuggester proposes existing names for a mistyped path argument. The
// shell uses it for "did you mean" hints when cd or edit misses. It goes
// through the fsh.Filesystem interface so the in-memory implementation can
// drive it in tests.
type PathSuggester struct {
	fs       fsh.Filesystem
	dirsOnly bool
}

// NewPathSuggester creates a suggester. If dirsOnly is true, only
// directories are proposed.
func NewPathSuggester(fs fsh.Filesystem, dirsOnly bool) *PathSuggester {
	return &PathSuggester{fs: fs, dirsOnly: dirsOnly}
}

// Suggest returns up to limit names in the parent directory of input whose
// prefix matches the final path component, case-insensitively. An
// unreadable parent yields no suggestions rather than an error; the caller
// has already reported the primary failure.
func (s *PathSuggester) Suggest(input string, limit int) []string {
	parent, prefix := splitInput(input)
	if prefix == "" {
		return nil
	}

	items, err := s.fs.ListItems(parent)
	if err != nil {
		return nil
	}

	lowPrefix := strings.ToLower(prefix)
	var matches []string
	for _, item := range items {
		if s.dirsOnly && !item.IsDir() {
			continue
		}
		name := item.Name()
		if name == prefix {
			continue
		}
		if strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			matches = append(matches, name)
		}
	}

	sort.Strings(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// splitInput splits a path argument into the directory to search and the
// name prefix to match.
//
//	"src/com" → ("src", "com")
//	"src/"    → ("src", "")
//	"my"      → (".", "my")
func splitInput(input string) (parent, prefix string) {
	input = strings.ReplaceAll(input, "\\", "/")
	if input == "" || input == "." {
		return ".", ""
	}
	if strings.HasSuffix(input, "/") {
		return strings.TrimRight(input, "/"), ""
	}

	if i := strings.LastIndex(input, "/"); i >= 0 {
		parent = input[:i]
		if parent == "" {
			parent = "/"
		}
		return parent, input[i+1:]
	}
	return ".", input
}
