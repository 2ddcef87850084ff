package similarity

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

const DefaultMaxFeatures = 500

// ErrEmptyVocabulary is returned when neither document yields a usable term.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop characters")

var termPattern = regexp.MustCompile(`\b\w\w+\b`)

// TFIDF scores two documents by the cosine of their tf-idf vectors, fit
// jointly over exactly those two documents.
type TFIDF struct {
	// MaxFeatures caps the vocabulary to the most frequent terms.
	MaxFeatures int
}

func (t TFIDF) Name() string { return MethodTFIDF }

func (t TFIDF) Similarity(resume, job string) (float64, error) {
	docs := [][]string{terms(resume), terms(job)}

	counts := make([]map[string]int, len(docs))
	total := make(map[string]int)
	df := make(map[string]int)
	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, term := range doc {
			counts[i][term]++
			total[term]++
		}
		for term := range counts[i] {
			df[term]++
		}
	}

	features := limitFeatures(total, t.maxFeatures())
	if len(features) == 0 {
		return 0, ErrEmptyVocabulary
	}

	n := float64(len(docs))
	vectors := make([][]float64, len(docs))
	for i := range docs {
		vec := make([]float64, len(features))
		for j, term := range features {
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			vec[j] = float64(counts[i][term]) * idf
		}
		vectors[i] = normalize(vec)
	}

	return clamp(dot(vectors[0], vectors[1]), 0, 1), nil
}

func (t TFIDF) maxFeatures() int {
	if t.MaxFeatures <= 0 {
		return DefaultMaxFeatures
	}
	return t.MaxFeatures
}

func terms(text string) []string {
	return termPattern.FindAllString(strings.ToLower(text), -1)
}

// limitFeatures keeps the limit most frequent terms, breaking ties
// alphabetically, and returns them in alphabetical order.
func limitFeatures(total map[string]int, limit int) []string {
	features := make([]string, 0, len(total))
	for term := range total {
		features = append(features, term)
	}

	sort.Slice(features, func(i, j int) bool {
		if total[features[i]] != total[features[j]] {
			return total[features[i]] > total[features[j]]
		}
		return features[i] < features[j]
	})

	if len(features) > limit {
		features = features[:limit]
	}
	sort.Strings(features)

	return features
}

func normalize(vec []float64) []float64 {
	norm := math.Sqrt(dot(vec, vec))
	if norm == 0 {
		return vec
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
