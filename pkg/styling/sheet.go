// Package styling collects the CSS blocks a page needs into one stylesheet.
package styling

import (
	"strings"
	"sync"
)

// Sheet is an ordered set of named CSS blocks. Components register their
// block under a stable name so a page rendering the same component many
// times carries its CSS once.
type Sheet struct {
	mu     sync.RWMutex
	names  []string
	blocks map[string]string
}

// NewSheet returns an empty sheet
func NewSheet() *Sheet {
	return &Sheet{blocks: make(map[string]string)}
}

// Add registers css under name. The first registration of a name wins and
// blank blocks are ignored.
func (s *Sheet) Add(name, css string) {
	css = strings.TrimSpace(removeComments(css))
	if name == "" || css == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blocks[name]; ok {
		return
	}
	s.names = append(s.names, name)
	s.blocks[name] = css
}

// Len returns the number of registered blocks
func (s *Sheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}

// String joins all blocks in registration order
func (s *Sheet) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	for _, name := range s.names {
		b.WriteString(s.blocks[name])
		b.WriteString("\n")
	}
	return b.String()
}

// removeComments strips /* */ comments; an unterminated comment runs to the end
func removeComments(css string) string {
	if !strings.Contains(css, "/*") {
		return css
	}

	var result strings.Builder
	for {
		start := strings.Index(css, "/*")
		if start < 0 {
			result.WriteString(css)
			break
		}
		result.WriteString(css[:start])
		end := strings.Index(css[start+2:], "*/")
		if end < 0 {
			break
		}
		css = css[start+2+end+2:]
	}
	return result.String()
}
