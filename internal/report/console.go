// Package report renders analysis results for people and machines.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spigell/skill-gap/internal/analysis"
	"github.com/spigell/skill-gap/internal/coach"
)

const (
	width = 80

	consoleRecommendations = 5
)

var titleCaser = cases.Title(language.English)

// CategoryTitle turns "data_science" into "Data Science".
func CategoryTitle(c analysis.Category) string {
	return titleCaser.String(strings.ReplaceAll(string(c), "_", " "))
}

// Console renders the text report. plan may be nil.
func Console(result *analysis.Result, plan *coach.LearningPlan) string {
	var b reportBuilder

	b.rule("=")
	b.center("RESUME SKILL GAP ANALYSIS REPORT")
	b.rule("=")
	b.line("")

	b.section("SUMMARY STATISTICS")
	b.line(fmt.Sprintf("%-30s%.2f%%", "Overall Match Score:", result.MatchPercentage))
	b.line(fmt.Sprintf("%-30s%s", "Similarity Method:", methodLabel(result)))
	b.line(fmt.Sprintf("%-30s%d", "Total Skills in Resume:", result.TotalResumeSkills))
	b.line(fmt.Sprintf("%-30s%d", "Total Skills Required:", result.TotalJobSkills))
	b.line(fmt.Sprintf("%-30s%d", "Skills Matched:", result.MatchCount))
	b.line(fmt.Sprintf("%-30s%d", "Skills Gap:", len(result.MissingSkills)))
	b.line("")

	b.section("MATCHED SKILLS")
	b.list(result.MatchedSkills, "No matching skills found.")

	b.section("MISSING SKILLS (SKILL GAP)")
	b.list(result.MissingSkills, "No missing skills! You have all required skills.")

	b.section("ADDITIONAL SKILLS IN RESUME")
	b.list(result.ExtraSkills, "No additional skills beyond job requirements.")

	b.section(fmt.Sprintf("TOP %d MOST RELEVANT SKILLS FROM JOB DESCRIPTION", len(result.TopRelevantSkills)))
	for i, skill := range result.TopRelevantSkills {
		status := "Need"
		if result.Has(skill) {
			status = "Have"
		}
		b.line(fmt.Sprintf("  %d. %-30s [%s]", i+1, skill, status))
	}
	b.line("")

	if len(result.Recommendations) > 0 {
		b.section("LEARNING RECOMMENDATIONS")
		for i, rec := range result.Recommendations {
			if i == consoleRecommendations {
				break
			}
			b.line(fmt.Sprintf("  %d. %s", i+1, strings.ToUpper(rec.Skill)))
			b.line("     Category: " + CategoryTitle(rec.Category))
			b.line("     Resource: " + rec.Resource)
			b.line("")
		}
	}

	if len(result.Proficiency) > 0 {
		b.section("PROFICIENCY")
		for _, p := range result.Proficiency {
			level := string(p.Level)
			if p.Years > 0 {
				level = fmt.Sprintf("%s, %d years", level, p.Years)
			}
			b.line(fmt.Sprintf("  %-30s %s", p.Skill, level))
		}
		b.line("")
	}

	if len(result.Suggestions) > 0 {
		b.section("SUGGESTIONS")
		for _, s := range result.Suggestions {
			b.line("  - " + s)
		}
		b.line("")
	}

	if plan != nil {
		writePlan(&b, plan)
	}

	b.rule("=")
	b.center("End of Report")
	b.rule("=")

	return b.String()
}

func writePlan(b *reportBuilder, plan *coach.LearningPlan) {
	b.section("LEARNING PLAN")
	if plan.Summary != "" {
		b.line(plan.Summary)
		b.line("")
	}
	for i, step := range plan.Steps {
		b.line(fmt.Sprintf("  %d. %s [%s]", i+1, strings.ToUpper(step.Skill), step.Priority))
		if step.LearningTime != "" {
			b.line("     Time: " + step.LearningTime)
		}
		if step.Suggestion != "" {
			b.line("     How:  " + step.Suggestion)
		}
	}
	if plan.Plan != "" {
		b.line("")
		b.line(plan.Plan)
	}
	b.line("")
}

func methodLabel(result *analysis.Result) string {
	if result.FallbackUsed {
		return result.SimilarityMethod + " (fallback)"
	}
	return result.SimilarityMethod
}

type reportBuilder struct {
	lines []string
}

func (b *reportBuilder) line(s string) {
	b.lines = append(b.lines, s)
}

func (b *reportBuilder) rule(ch string) {
	b.line(strings.Repeat(ch, width))
}

func (b *reportBuilder) center(s string) {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.line(strings.Repeat(" ", pad) + s)
}

func (b *reportBuilder) section(title string) {
	b.line(title)
	b.rule("-")
}

func (b *reportBuilder) list(items []string, empty string) {
	if len(items) == 0 {
		b.line("  " + empty)
	}
	for i, item := range items {
		b.line(fmt.Sprintf("  %d. %s", i+1, item))
	}
	b.line("")
}

func (b *reportBuilder) String() string {
	return strings.Join(b.lines, "\n")
}
