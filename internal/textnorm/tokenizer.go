package textnorm

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/blevesearch/segment"
	"go.uber.org/zap"
)

const (
	TokenizerSegment = "segment"
	TokenizerNaive   = "naive"
)

// Tokenizer splits cleaned text into tokens.
type Tokenizer interface {
	Name() string
	Tokenize(text string) ([]string, error)
}

// NaiveTokenizer splits on whitespace only.
type NaiveTokenizer struct{}

func (NaiveTokenizer) Name() string { return TokenizerNaive }

func (NaiveTokenizer) Tokenize(text string) ([]string, error) {
	return strings.Fields(text), nil
}

// SegmentTokenizer walks Unicode word boundaries. Symbols that are part of a
// skill name (c++, c#, ci/cd, node.js) stay glued to the word they touch,
// while dots and slashes at the edge of a run are detached.
type SegmentTokenizer struct{}

func (SegmentTokenizer) Name() string { return TokenizerSegment }

func (SegmentTokenizer) Tokenize(text string) ([]string, error) {
	var (
		tokens []string
		run    strings.Builder
	)

	flush := func() {
		token := strings.Trim(run.String(), "./")
		if token != "" {
			tokens = append(tokens, token)
		}
		run.Reset()
	}

	segmenter := segment.NewWordSegmenterDirect([]byte(text))
	for segmenter.Segment() {
		piece := segmenter.Bytes()
		if segmenter.Type() == segment.None && isSpace(piece) {
			flush()
			continue
		}
		run.Write(piece)
	}
	if err := segmenter.Err(); err != nil {
		return nil, fmt.Errorf("segmenting text: %w", err)
	}
	flush()

	return tokens, nil
}

func isSpace(b []byte) bool {
	for _, r := range string(b) {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

var (
	probeInput  = "node.js c++ and ci/cd."
	probeOutput = []string{"node.js", "c++", "and", "ci/cd"}
)

// SelectTokenizer returns the tokenizer with the given name if it passes a
// capability probe, and the naive tokenizer otherwise.
func SelectTokenizer(name string, logger *zap.Logger) Tokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	var preferred Tokenizer
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", TokenizerSegment:
		preferred = SegmentTokenizer{}
	case TokenizerNaive:
		return NaiveTokenizer{}
	default:
		logger.Warn("unknown tokenizer, using naive", zap.String("tokenizer", name))
		return NaiveTokenizer{}
	}

	if err := Probe(preferred); err != nil {
		logger.Warn("tokenizer probe failed, using naive",
			zap.String("tokenizer", preferred.Name()),
			zap.Error(err),
		)
		return NaiveTokenizer{}
	}

	logger.Debug("tokenizer selected", zap.String("tokenizer", preferred.Name()))
	return preferred
}

// Probe checks that the tokenizer keeps punctuated skill names intact.
func Probe(t Tokenizer) error {
	got, err := t.Tokenize(probeInput)
	if err != nil {
		return err
	}
	if !slices.Equal(got, probeOutput) {
		return fmt.Errorf("unexpected probe tokens %q", got)
	}
	return nil
}
