// Package coach asks an LLM for a learning plan that closes a computed skill gap.
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/skill-gap/internal/analysis"
	"github.com/spigell/skill-gap/internal/logger"
)

const (
	systemInstruction = "You are a precise career advisor. Answer with JSON only."

	maxResumeRunes = 4000
	maxJobRunes    = 3000

	defaultMaxLogLength = 200
)

const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

// Step is the learning guidance for one missing skill.
type Step struct {
	Skill        string `json:"skill"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	LearningTime string `json:"learning_time"`
	Suggestion   string `json:"suggestion"`
}

// LearningPlan is the structured answer of the model. Score and matched
// skills always come from the local analysis.
type LearningPlan struct {
	MatchScore     float64  `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
	Steps          []Step   `json:"missing_skills"`
	Plan           string   `json:"learning_plan"`
	Summary        string   `json:"summary"`
}

type Planner struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewPlanner(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Planner {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Planner{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Plan requests a learning plan for the gap described by result.
func (p *Planner) Plan(ctx context.Context, resume, job string, result *analysis.Result) (*LearningPlan, error) {
	if result == nil {
		return nil, errors.New("analysis result is required")
	}
	if p.generator == nil {
		return nil, errors.New("content generator is not configured")
	}

	prompt := buildPrompt(resume, job, result)

	p.logger.Debug("learning plan request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, p.maxLogLen)),
	)

	raw, err := p.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("learning plan response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, p.maxLogLen)),
	)

	plan, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	plan.MatchScore = result.MatchPercentage
	plan.MatchingSkills = append([]string(nil), result.MatchedSkills...)
	sortSteps(plan.Steps)

	return plan, nil
}

func buildPrompt(resume, job string, result *analysis.Result) string {
	replacer := strings.NewReplacer(
		"{{RESUME}}", truncateRunes(resume, maxResumeRunes),
		"{{JOB}}", truncateRunes(job, maxJobRunes),
		"{{SCORE}}", strconv.FormatFloat(result.MatchPercentage, 'f', 1, 64),
		"{{MATCHED}}", joinOrNone(result.MatchedSkills),
		"{{MISSING}}", joinOrNone(result.MissingSkills),
	)
	return replacer.Replace(promptTemplate)
}

func parseResponse(raw string) (*LearningPlan, error) {
	cleaned := extractJSON(raw)

	var plan LearningPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("parse learning plan: %w (raw: %s)", err, logger.TruncateForLog(cleaned, defaultMaxLogLength))
	}

	steps := plan.Steps[:0]
	for _, step := range plan.Steps {
		step.Skill = strings.TrimSpace(step.Skill)
		if step.Skill == "" {
			continue
		}
		step.Priority = strings.ToLower(strings.TrimSpace(step.Priority))
		step.Category = strings.ToLower(strings.TrimSpace(step.Category))
		steps = append(steps, step)
	}
	plan.Steps = steps
	plan.Plan = strings.TrimSpace(plan.Plan)
	plan.Summary = strings.TrimSpace(plan.Summary)

	return &plan, nil
}

// extractJSON strips markdown fences and any prose around the JSON object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		raw = raw[start : end+1]
	}

	return strings.TrimSpace(raw)
}

func priorityRank(priority string) int {
	switch priority {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

func sortSteps(steps []Step) {
	sort.SliceStable(steps, func(i, j int) bool {
		return priorityRank(steps[i].Priority) < priorityRank(steps[j].Priority)
	})
}

func truncateRunes(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
