package annotations

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
)

// Set maps base emoji to their display label and search keywords. A
// decoded Set is read-only and safe for concurrent use.
type Set struct {
	m map[string][]string
}

// Decode parses the YAML annotations artifact. Every value must be a
// non-empty list whose first element is the display label. Like the
// catalog loader, Decode is atomic: bad input fails the whole set.
func Decode(d []byte) (Set, error) {
	var m map[string][]string
	if err := yaml.Unmarshal(d, &m); err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := validate(m); err != nil {
		return Set{}, err
	}
	return Set{m: m}, nil
}

func validate(m map[string][]string) error {
	for base, words := range m {
		if base == "" {
			return fmt.Errorf("%w: empty emoji key", ErrDecode)
		}
		if len(words) == 0 {
			return fmt.Errorf("%w: %q has no label", ErrDecode, base)
		}
		for _, w := range words {
			if w == "" {
				return fmt.Errorf("%w: %q has an empty annotation", ErrDecode, base)
			}
		}
	}
	return nil
}

func (s Set) Len() int {
	return len(s.m)
}

// Label returns base's display label.
func (s Set) Label(base string) (string, bool) {
	words, ok := s.m[base]
	if !ok {
		return "", false
	}
	return words[0], true
}

// Keywords returns base's search keywords, label excluded.
func (s Set) Keywords(base string) []string {
	words, ok := s.m[base]
	if !ok || len(words) < 2 {
		return nil
	}
	return words[1:]
}

// Bases returns the annotated emoji, sorted for stable iteration.
func (s Set) Bases() []string {
	bases := make([]string, 0, len(s.m))
	for base := range s.m {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	return bases
}

// Search returns the emoji whose label or keywords contain term,
// compared case folded.
func (s Set) Search(term string) []string {
	fold := cases.Fold()
	term = fold.String(term)
	var hits []string
	for _, base := range s.Bases() {
		for _, w := range s.m[base] {
			if strings.Contains(fold.String(w), term) {
				hits = append(hits, base)
				break
			}
		}
	}
	return hits
}
