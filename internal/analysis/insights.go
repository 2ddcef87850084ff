package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/skill-gap/internal/vocabulary"
)

const (
	proficiencyWindow = 100
	suggestionSkills  = 3
)

var yearsPattern = regexp.MustCompile(`\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

var (
	advancedMarkers     = []string{"expert", "advanced", "senior"}
	intermediateMarkers = []string{"intermediate", "proficient", "experienced"}
	basicMarkers        = []string{"basic", "beginner", "familiar", "learning"}
)

// DetectProficiency looks at the text following each mention of skill, up
// to the end of the sentence, for level keywords and years of experience.
// Mentions are found by vocabulary key, so "NodeJS" counts for node.js.
func DetectProficiency(text, skill string) SkillProficiency {
	lower := strings.ToLower(text)
	skill = strings.ToLower(skill)
	pattern := regexp.MustCompile(mentionPattern(skill) + `([^.]{0,` + strconv.Itoa(proficiencyWindow) + `})`)
	var tails []string
	for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
		tails = append(tails, m[1])
	}
	window := strings.Join(tails, " ")

	years := 0
	if m := yearsPattern.FindStringSubmatch(window); m != nil {
		years, _ = strconv.Atoi(m[1])
	}

	p := SkillProficiency{Skill: skill, Level: LevelIntermediate, Years: years}
	switch {
	case containsAny(window, advancedMarkers) || years >= 5:
		p.Level = LevelAdvanced
	case containsAny(window, intermediateMarkers) || years >= 2:
		p.Level = LevelIntermediate
	case containsAny(window, basicMarkers):
		p.Level = LevelBasic
	}

	return p
}

// Suggestions returns resume improvement hints.
func Suggestions(matched, missing []string, job string) []string {
	var out []string

	if len(matched) > 0 {
		out = append(out, fmt.Sprintf(
			"Highlight your experience with %s prominently in your resume summary.",
			strings.Join(head(matched, suggestionSkills), ", "),
		))
	}

	if len(missing) > 0 {
		out = append(out, fmt.Sprintf(
			"Consider learning %s to match job requirements. Even basic knowledge can help pass ATS screening.",
			strings.Join(head(missing, suggestionSkills), ", "),
		))
	}

	out = append(out,
		"Use numbers and metrics to quantify your achievements (e.g., 'Improved performance by 40%' instead of 'Improved performance').",
		"Mirror the language used in the job description to improve ATS matching and recruiter appeal.",
	)

	if m := yearsPattern.FindStringSubmatch(strings.ToLower(job)); m != nil {
		out = append(out, fmt.Sprintf(
			"Ensure you clearly state your total years of experience. The job requires %s+ years.", m[1],
		))
	}

	return out
}

// mentionPattern matches skill with the separators its key drops: "ci/cd"
// also matches "cicd" and "ci cd".
func mentionPattern(skill string) string {
	key := []rune(vocabulary.Key(skill))
	if len(key) == 0 {
		return regexp.QuoteMeta(skill)
	}

	var b strings.Builder
	b.WriteString("(?:")
	for i, r := range key {
		if i > 0 {
			b.WriteString(`[ ./]?`)
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteString(")")
	return b.String()
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
