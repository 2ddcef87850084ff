// Package analysis compares a resume with a job description and reports the skill gap.
package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skill-gap/internal/similarity"
	"github.com/spigell/skill-gap/internal/skills"
	"github.com/spigell/skill-gap/internal/textnorm"
)

const (
	DefaultTopSkills          = 5
	DefaultMaxRecommendations = 10
)

// ErrInvalidInput is returned when the resume or the job description is blank.
var ErrInvalidInput = errors.New("invalid input")

// Deps holds the pipeline components used by the Analyzer.
type Deps struct {
	Normalizer *textnorm.Normalizer
	Matcher    *skills.Matcher
	Scorer     *similarity.Scorer
	Logger     *zap.Logger
}

// Options tunes the size of the ranked outputs.
type Options struct {
	TopSkills          int
	MaxRecommendations int
}

// Analyzer runs the gap analysis pipeline. It keeps no state between calls.
type Analyzer struct {
	normalizer *textnorm.Normalizer
	matcher    *skills.Matcher
	scorer     *similarity.Scorer
	logger     *zap.Logger

	topSkills          int
	maxRecommendations int
}

// New creates an Analyzer. Missing dependencies get their defaults.
func New(deps Deps, opts Options) *Analyzer {
	a := &Analyzer{
		normalizer:         deps.Normalizer,
		matcher:            deps.Matcher,
		scorer:             deps.Scorer,
		logger:             deps.Logger,
		topSkills:          opts.TopSkills,
		maxRecommendations: opts.MaxRecommendations,
	}

	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	if a.normalizer == nil {
		a.normalizer = textnorm.New(textnorm.SelectTokenizer(textnorm.TokenizerSegment, a.logger), a.logger)
	}
	if a.matcher == nil {
		a.matcher = skills.NewMatcher(nil)
	}
	if a.scorer == nil {
		a.scorer = similarity.NewScorerWith(similarity.TFIDF{MaxFeatures: similarity.DefaultMaxFeatures}, similarity.Overlap{}, a.logger)
	}
	if a.topSkills <= 0 {
		a.topSkills = DefaultTopSkills
	}
	if a.maxRecommendations <= 0 {
		a.maxRecommendations = DefaultMaxRecommendations
	}

	return a
}

// Analyze compares resume with job.
func (a *Analyzer) Analyze(resume, job string) (*Result, error) {
	if strings.TrimSpace(resume) == "" {
		return nil, fmt.Errorf("%w: resume text cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(job) == "" {
		return nil, fmt.Errorf("%w: job description text cannot be empty", ErrInvalidInput)
	}

	resumeSkills := a.matcher.Extract(a.normalizer.Normalize(resume), resume)
	jobSkills := a.matcher.Extract(a.normalizer.Normalize(job), job)

	matched := resumeSkills.Intersect(jobSkills)
	missing := jobSkills.Difference(resumeSkills)
	extra := resumeSkills.Difference(jobSkills)

	score := a.scorer.Score(resume, job)

	result := &Result{
		MatchedSkills:     matched.Sorted(),
		MissingSkills:     missing.Sorted(),
		ExtraSkills:       extra.Sorted(),
		MatchPercentage:   score.Score,
		SimilarityMethod:  score.Method,
		FallbackUsed:      score.FallbackUsed,
		TopRelevantSkills: RankSkills(jobSkills, matched, job, a.topSkills),
		TotalResumeSkills: resumeSkills.Len(),
		TotalJobSkills:    jobSkills.Len(),
		MatchCount:        matched.Len(),
	}

	result.Recommendations = Recommend(result.MissingSkills, a.maxRecommendations)

	result.Proficiency = make([]SkillProficiency, 0, len(result.MatchedSkills))
	for _, skill := range result.MatchedSkills {
		result.Proficiency = append(result.Proficiency, DetectProficiency(resume, skill))
	}
	result.Suggestions = Suggestions(result.MatchedSkills, result.MissingSkills, job)

	a.logger.Debug("analysis finished",
		zap.Int("resume_skills", result.TotalResumeSkills),
		zap.Int("job_skills", result.TotalJobSkills),
		zap.Int("matched", result.MatchCount),
		zap.Float64("match_percentage", result.MatchPercentage),
		zap.String("similarity_method", result.SimilarityMethod),
		zap.Bool("fallback_used", result.FallbackUsed),
	)

	return result, nil
}

// RankSkills orders job skills by whether they are matched, then by how
// often they occur in the job text, and returns the first n. Ties keep
// alphabetical order.
func RankSkills(jobSkills, matched skills.Set, job string, n int) []string {
	lower := strings.ToLower(job)
	ranked := jobSkills.Sorted()

	counts := make(map[string]int, len(ranked))
	for _, skill := range ranked {
		counts[skill] = strings.Count(lower, skill)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		mi, mj := matched.Has(ranked[i]), matched.Has(ranked[j])
		if mi != mj {
			return mi
		}
		return counts[ranked[i]] > counts[ranked[j]]
	})

	return head(ranked, n)
}

// Recommend builds learning recommendations for the first limit missing
// skills. missing must already be sorted.
func Recommend(missing []string, limit int) []Recommendation {
	selected := head(missing, limit)
	out := make([]Recommendation, 0, len(selected))
	for _, skill := range selected {
		category := Categorize(skill)
		out = append(out, Recommendation{
			Skill:    skill,
			Category: category,
			Resource: Resource(category),
		})
	}
	return out
}
