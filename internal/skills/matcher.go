// Package skills extracts vocabulary skills from normalized tokens and raw text.
package skills

import (
	"strings"

	"github.com/spigell/skill-gap/internal/vocabulary"
)

// Matcher finds vocabulary entries in a document.
type Matcher struct {
	vocab *vocabulary.Vocabulary
}

// NewMatcher creates a Matcher over the given vocabulary, or the default one when nil.
func NewMatcher(vocab *vocabulary.Vocabulary) *Matcher {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Matcher{vocab: vocab}
}

func (m *Matcher) Vocabulary() *vocabulary.Vocabulary {
	return m.vocab
}

// Extract returns the skills found in the token stream plus the multi-word
// and dotted skills found in the raw text.
//
// Phrases are plain substring matches, so "node.js" also fires inside
// "xnode.jsx". Changing that would change which skills get reported.
func (m *Matcher) Extract(tokens []string, raw string) Set {
	found := make(Set)

	for _, token := range tokens {
		key := strings.NewReplacer(".", "", "/", "").Replace(token)
		if skill, ok := m.vocab.Lookup(key); ok {
			found.Add(skill)
		}
	}

	lower := strings.ToLower(raw)
	for _, phrase := range m.vocab.Phrases() {
		if strings.Contains(lower, phrase) {
			found.Add(phrase)
		}
	}

	return found
}
