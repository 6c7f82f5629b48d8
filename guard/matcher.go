package guard

import (
	"errors"
	"fmt"
	"strings"
)

// Matcher tests request paths against a route pattern such as "/admin/:path*".
//
// Literal segments must match exactly. A trailing ":name*" matches zero or more further
// segments, so "/admin/:path*" matches "/admin", "/admin/" and "/admin/users/5" but not
// "/adminx". A pattern without a trailing parameter matches only that path, with or
// without a trailing slash.
type Matcher struct {
	pattern  string
	segments []string
	subtree  bool
}

// Compile parses pattern. Parameters are only supported as the final ":name*" segment.
func Compile(pattern string) (*Matcher, error) {
	if pattern == "" {
		return nil, errors.New("guard: empty pattern")
	}
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("guard: pattern %q must start with /", pattern)
	}
	m := &Matcher{pattern: pattern}
	parts := splitPath(pattern)
	for i, part := range parts {
		if !strings.HasPrefix(part, ":") {
			m.segments = append(m.segments, part)
			continue
		}
		if i != len(parts)-1 || !strings.HasSuffix(part, "*") || len(part) < 3 {
			return nil, fmt.Errorf("guard: pattern %q: only a trailing :name* parameter is supported", pattern)
		}
		m.subtree = true
	}
	return m, nil
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether path falls under the pattern.
func (m *Matcher) Match(path string) bool {
	parts := splitPath(path)
	if len(parts) < len(m.segments) {
		return false
	}
	if !m.subtree && len(parts) != len(m.segments) {
		return false
	}
	for i, seg := range m.segments {
		if parts[i] != seg {
			return false
		}
	}
	return true
}

func (m *Matcher) String() string {
	return m.pattern
}

// splitPath splits a path into its segments, ignoring the leading slash and a single
// trailing slash.
func splitPath(p string) []string {
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
