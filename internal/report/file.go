package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/skill-gap/internal/analysis"
	"github.com/spigell/skill-gap/internal/coach"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	DefaultFile = "skill_gap_analysis.txt"
)

// Envelope is the machine readable report.
type Envelope struct {
	ID          string              `json:"id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Analysis    *analysis.Result    `json:"analysis"`
	Plan        *coach.LearningPlan `json:"learning_plan,omitempty"`
}

// NewEnvelope wraps result with a fresh report id.
func NewEnvelope(result *analysis.Result, plan *coach.LearningPlan) *Envelope {
	return &Envelope{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Analysis:    result,
		Plan:        plan,
	}
}

// JSON renders the envelope with indentation.
func JSON(env *Envelope) (string, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}

// Render produces the report in the requested format.
func Render(format string, env *Envelope) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return Console(env.Analysis, env.Plan), nil
	case FormatJSON:
		return JSON(env)
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

// Save writes content to path, creating parent directories.
func Save(path, content string) error {
	if strings.TrimSpace(path) == "" {
		path = DefaultFile
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// DumpToTmpFile writes the envelope as JSON into a temporary file and
// returns its name.
func DumpToTmpFile(env *Envelope) (string, error) {
	file, err := os.CreateTemp("", "skill_gap_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return "", err
	}
	return file.Name(), nil
}
