package analysis

// Result is the outcome of comparing one resume with one job description.
type Result struct {
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	ExtraSkills       []string `json:"extra_skills"`
	MatchPercentage   float64  `json:"match_percentage"`
	SimilarityMethod  string   `json:"similarity_method"`
	FallbackUsed      bool     `json:"fallback_used"`
	TopRelevantSkills []string `json:"top_relevant_skills"`

	Recommendations []Recommendation   `json:"recommendations"`
	Proficiency     []SkillProficiency `json:"proficiency"`
	Suggestions     []string           `json:"suggestions"`

	TotalResumeSkills int `json:"total_resume_skills"`
	TotalJobSkills    int `json:"total_job_skills"`
	MatchCount        int `json:"match_count"`
}

// Recommendation points at a learning resource for a missing skill.
type Recommendation struct {
	Skill    string   `json:"skill"`
	Category Category `json:"category"`
	Resource string   `json:"resource"`
}

// Level is the detected proficiency in a skill.
type Level string

const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// SkillProficiency describes how a resume presents a matched skill.
type SkillProficiency struct {
	Skill string `json:"skill"`
	Level Level  `json:"level"`
	// Years is zero when the resume does not state it.
	Years int `json:"years,omitempty"`
}

// Has reports whether skill is among the matched skills.
func (r *Result) Has(skill string) bool {
	for _, matched := range r.MatchedSkills {
		if matched == skill {
			return true
		}
	}
	return false
}
