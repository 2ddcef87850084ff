// Package textnorm turns raw resume and job description text into tokens.
package textnorm

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const minTokenLength = 3

var notPermitted = regexp.MustCompile(`[^a-z0-9\s+#./]`)

// Normalizer lowercases, cleans and tokenizes text, dropping stop words and short tokens.
type Normalizer struct {
	tokenizer Tokenizer
	logger    *zap.Logger
}

// New creates a Normalizer. A nil tokenizer means naive whitespace splitting.
func New(tokenizer Tokenizer, logger *zap.Logger) *Normalizer {
	if tokenizer == nil {
		tokenizer = NaiveTokenizer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Normalizer{
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// Tokenizer returns the name of the tokenizer in use.
func (n *Normalizer) Tokenizer() string {
	return n.tokenizer.Name()
}

// Clean lowercases text, replaces every character outside [a-z0-9 + # . /]
// and whitespace with a space, and collapses whitespace.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, " ")
	}

	text = notPermitted.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Join(strings.Fields(text), " ")
}

// Normalize returns the filtered token sequence of text in original order.
// Empty or unusable input yields an empty slice.
func (n *Normalizer) Normalize(text string) []string {
	cleaned := Clean(text)
	if cleaned == "" {
		return []string{}
	}

	tokens, err := n.tokenizer.Tokenize(cleaned)
	if err != nil {
		n.logger.Warn("tokenizer failed, splitting on whitespace",
			zap.String("tokenizer", n.tokenizer.Name()),
			zap.Error(err),
		)
		tokens = strings.Fields(cleaned)
	}

	return Filter(tokens)
}

// Filter drops stop words and tokens shorter than three characters.
func Filter(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) < minTokenLength || IsStopWord(token) {
			continue
		}
		filtered = append(filtered, token)
	}
	return filtered
}
