// Package walker enumerates the files a conversion run must touch.
//
// A run targets either a single file or a folder. In folder mode the tree is
// descended recursively; directories are always traversed and only leaf files
// are filtered through a filename mask. Missing roots and unreadable
// subdirectories degrade to empty output rather than errors.
package walker

import (
	"fmt"
	"regexp"
	"strings"
)

// Mask is a compiled filename glob. `*` matches any run of characters, `?`
// matches exactly one, everything else is literal. Matching is
// case-insensitive and anchored to the whole name.
type Mask struct {
	glob string
	re   *regexp.Regexp
}

// CompileMask translates a glob into a full-match, case-insensitive pattern.
// An empty glob yields a mask that matches every name.
func CompileMask(glob string) (*Mask, error) {
	m := &Mask{glob: glob}
	if glob == "" {
		return m, nil
	}

	var b strings.Builder
	b.WriteString(`^(?s:`)
	for _, r := range strings.ToLower(glob) {
		switch r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`)$`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compile mask %q: %w", glob, err)
	}
	m.re = re
	return m, nil
}

// Match reports whether name passes the mask. A nil or empty mask matches
// everything.
func (m *Mask) Match(name string) bool {
	if m == nil || m.re == nil {
		return true
	}
	return m.re.MatchString(strings.ToLower(name))
}

// Empty reports whether the mask accepts every name.
func (m *Mask) Empty() bool {
	return m == nil || m.re == nil
}

func (m *Mask) String() string {
	if m == nil {
		return ""
	}
	return m.glob
}
