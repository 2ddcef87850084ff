// Package similarity scores how close a resume is to a job description.
package similarity

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

const (
	MethodTFIDF   = "tfidf"
	MethodOverlap = "overlap"
)

// Vectorizer compares two documents and returns a similarity in [0, 1].
type Vectorizer interface {
	Name() string
	Similarity(resume, job string) (float64, error)
}

// Result is the outcome of a scoring call.
type Result struct {
	// Score is a percentage in [0, 100] rounded to two decimals.
	Score float64
	// Method names the vectorizer that produced Score.
	Method string
	// FallbackUsed is set when the primary method failed for this call.
	FallbackUsed bool
	// Err is the primary method failure, if any.
	Err error
}

// Scorer runs the primary vectorizer and degrades to the fallback on failure.
type Scorer struct {
	primary  Vectorizer
	fallback Vectorizer
	logger   *zap.Logger
}

// NewScorer builds a scorer for the given method. The tf-idf method is probed
// once; when the probe fails the scorer uses word overlap only.
func NewScorer(method string, maxFeatures int, logger *zap.Logger) (*Scorer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Scorer{fallback: Overlap{}, logger: logger}

	switch strings.ToLower(strings.TrimSpace(method)) {
	case "", MethodTFIDF:
		primary := TFIDF{MaxFeatures: maxFeatures}
		if err := Probe(primary); err != nil {
			logger.Warn("tf-idf probe failed, using word overlap",
				zap.Error(err),
			)
			s.primary = Overlap{}
			return s, nil
		}
		s.primary = primary
	case MethodOverlap:
		s.primary = Overlap{}
	default:
		return nil, fmt.Errorf("unknown similarity method: %s", method)
	}

	return s, nil
}

// NewScorerWith builds a scorer from explicit strategies.
func NewScorerWith(primary, fallback Vectorizer, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fallback == nil {
		fallback = Overlap{}
	}
	if primary == nil {
		primary = fallback
	}

	return &Scorer{primary: primary, fallback: fallback, logger: logger}
}

// Method returns the name of the primary vectorizer.
func (s *Scorer) Method() string {
	return s.primary.Name()
}

// Score compares resume against job.
func (s *Scorer) Score(resume, job string) Result {
	value, err := s.primary.Similarity(resume, job)
	if err == nil {
		return Result{Score: percent(value), Method: s.primary.Name()}
	}

	s.logger.Warn("similarity method failed, using fallback",
		zap.String("method", s.primary.Name()),
		zap.String("fallback", s.fallback.Name()),
		zap.Error(err),
	)

	result := Result{Method: s.fallback.Name(), FallbackUsed: true, Err: err}

	value, fallbackErr := s.fallback.Similarity(resume, job)
	if fallbackErr != nil {
		s.logger.Error("fallback similarity failed", zap.Error(fallbackErr))
		return result
	}

	result.Score = percent(value)
	return result
}

// Probe checks that the vectorizer rates identical documents above unrelated ones.
func Probe(v Vectorizer) error {
	same, err := v.Similarity("python developer with docker", "python developer with docker")
	if err != nil {
		return err
	}
	other, err := v.Similarity("python developer with docker", "accountant fluent in french")
	if err != nil {
		return err
	}
	if same < other || same < 0 || same > 1+1e-9 {
		return fmt.Errorf("inconsistent probe scores: same=%f other=%f", same, other)
	}
	return nil
}

func percent(value float64) float64 {
	return math.Round(clamp(value, 0, 1)*100*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
