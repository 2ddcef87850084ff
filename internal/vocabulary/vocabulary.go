// Package vocabulary holds the controlled set of skills recognised by the analyzer.
package vocabulary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Vocabulary is an immutable set of canonical, lowercase skill names.
type Vocabulary struct {
	entries []string
	set     map[string]struct{}
	keys    map[string]string
	phrases []string
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// Default returns the built-in vocabulary. It is built once and shared.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		v, err := New(defaultSkills...)
		if err != nil {
			panic(fmt.Sprintf("building default vocabulary: %s", err))
		}
		defaultVocab = v
	})

	return defaultVocab
}

// New builds a vocabulary from the given entries. Entries are lowercased and
// trimmed, duplicates collapse. An empty entry is an error.
func New(entries ...string) (*Vocabulary, error) {
	if len(entries) == 0 {
		return nil, errors.New("vocabulary must not be empty")
	}

	set := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		skill := strings.ToLower(strings.TrimSpace(entry))
		if skill == "" {
			return nil, fmt.Errorf("entry %d is empty", i)
		}
		set[skill] = struct{}{}
	}

	sorted := make([]string, 0, len(set))
	for skill := range set {
		sorted = append(sorted, skill)
	}
	sort.Strings(sorted)

	v := &Vocabulary{
		entries: sorted,
		set:     set,
		keys:    make(map[string]string, len(sorted)*2),
	}

	// Normalized keys first, in sorted order so the first entry wins a collision.
	for _, skill := range sorted {
		key := Key(skill)
		if _, taken := v.keys[key]; !taken {
			v.keys[key] = skill
		}
		if IsPhrase(skill) {
			v.phrases = append(v.phrases, skill)
		}
	}
	// An exact entry always resolves to itself.
	for _, skill := range sorted {
		v.keys[skill] = skill
	}

	return v, nil
}

// Extend returns a new vocabulary containing the entries of base plus extra.
func Extend(base *Vocabulary, extra ...string) (*Vocabulary, error) {
	if base == nil {
		return New(extra...)
	}

	if len(extra) == 0 {
		return base, nil
	}

	merged := make([]string, 0, base.Len()+len(extra))
	merged = append(merged, base.entries...)
	merged = append(merged, extra...)

	return New(merged...)
}

// Key strips spaces, dots and slashes so that "node.js" and "nodejs" share a key.
func Key(skill string) string {
	return strings.NewReplacer(" ", "", ".", "", "/", "").Replace(skill)
}

// IsPhrase reports whether the entry has to be matched against raw text
// rather than the token stream.
func IsPhrase(skill string) bool {
	return strings.ContainsAny(skill, " .")
}

// Lookup resolves a token key to its canonical entry.
func (v *Vocabulary) Lookup(key string) (string, bool) {
	skill, ok := v.keys[key]
	return skill, ok
}

// Contains reports whether skill is a canonical entry. The check is case-insensitive.
func (v *Vocabulary) Contains(skill string) bool {
	_, ok := v.set[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// Entries returns a sorted copy of all entries.
func (v *Vocabulary) Entries() []string {
	return append([]string(nil), v.entries...)
}

// Phrases returns a sorted copy of the entries that contain a space or a period.
func (v *Vocabulary) Phrases() []string {
	return append([]string(nil), v.phrases...)
}

func (v *Vocabulary) Len() int {
	return len(v.entries)
}
