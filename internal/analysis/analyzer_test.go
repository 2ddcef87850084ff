package analysis

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/skill-gap/internal/similarity"
	"github.com/spigell/skill-gap/internal/skills"
	"github.com/spigell/skill-gap/internal/textnorm"
)

const (
	resumeText = "Experienced in Python, Django, and AWS. Strong communication skills."
	jobText    = "Looking for a Python developer with Django, AWS, and Docker experience. Good communication required."
)

func TestAnalyzeExample(t *testing.T) {
	a := New(Deps{}, Options{})

	res, err := a.Analyze(resumeText, jobText)
	require.NoError(t, err)

	assert.Equal(t, []string{"aws", "communication", "django", "python"}, res.MatchedSkills)
	assert.Equal(t, []string{"docker"}, res.MissingSkills)
	assert.Empty(t, res.ExtraSkills)
	assert.Greater(t, res.MatchPercentage, 0.0)
	assert.LessOrEqual(t, res.MatchPercentage, 100.0)
	assert.Equal(t, similarity.MethodTFIDF, res.SimilarityMethod)
	assert.False(t, res.FallbackUsed)

	assert.Equal(t, []string{"aws", "communication", "django", "python", "docker"}, res.TopRelevantSkills)
	assert.Equal(t, []Recommendation{{
		Skill:    "docker",
		Category: CategoryGeneral,
		Resource: "Online tutorials and documentation",
	}}, res.Recommendations)

	assert.Equal(t, 4, res.TotalResumeSkills)
	assert.Equal(t, 5, res.TotalJobSkills)
	assert.Equal(t, 4, res.MatchCount)
	assert.Len(t, res.Proficiency, 4)
	assert.NotEmpty(t, res.Suggestions)
}

func TestAnalyzeInvalidInput(t *testing.T) {
	a := New(Deps{}, Options{})

	cases := []struct {
		name   string
		resume string
		job    string
	}{
		{name: "empty resume", resume: "", job: jobText},
		{name: "blank resume", resume: " \n\t ", job: jobText},
		{name: "empty job", resume: resumeText, job: ""},
		{name: "blank job", resume: resumeText, job: "   "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := a.Analyze(tc.resume, tc.job)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Nil(t, res)
		})
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := New(Deps{}, Options{})
	resume := "Senior engineer: Python, Go, Kubernetes, Machine Learning, PostgreSQL, React, leadership. 6 years of Python."
	job := "We need Java, Python, Docker, Kubernetes, SQL, machine learning, data analysis, communication, Terraform, AWS, Azure, Jenkins."

	first, err := a.Analyze(resume, job)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := a.Analyze(resume, job)
		require.NoError(t, err)
		require.Equal(t, first, next)
	}
}

func TestAnalyzeSetInvariants(t *testing.T) {
	a := New(Deps{}, Options{})
	resume := "Python, React, Node.js, MongoDB, machine learning, teamwork and Scrum."
	job := "Looking for JavaScript, React, Node.js, PostgreSQL, Docker, machine learning, Scrum and leadership."

	res, err := a.Analyze(resume, job)
	require.NoError(t, err)

	matcher := skills.NewMatcher(nil)
	n := textnorm.New(textnorm.SegmentTokenizer{}, nil)
	resumeSkills := matcher.Extract(n.Normalize(resume), resume)
	jobSkills := matcher.Extract(n.Normalize(job), job)

	matched := skills.NewSet(res.MatchedSkills...)
	missing := skills.NewSet(res.MissingSkills...)
	extra := skills.NewSet(res.ExtraSkills...)

	assert.Zero(t, matched.Intersect(missing).Len())
	assert.Equal(t, jobSkills.Sorted(), matched.Union(missing).Sorted())
	assert.Equal(t, resumeSkills.Intersect(jobSkills).Sorted(), res.MatchedSkills)
	assert.Equal(t, resumeSkills.Sorted(), matched.Union(extra).Sorted())

	for _, list := range [][]string{res.MatchedSkills, res.MissingSkills, res.ExtraSkills} {
		assert.True(t, sort.StringsAreSorted(list))
	}
}

func TestAnalyzeMultiWordSkill(t *testing.T) {
	a := New(Deps{}, Options{})

	res, err := a.Analyze("Built MACHINE LEARNING models", "Machine Learning engineer")
	require.NoError(t, err)
	assert.Contains(t, res.MatchedSkills, "machine learning")
}

func TestAnalyzeUsesFallbackScore(t *testing.T) {
	scorer, err := similarity.NewScorer(similarity.MethodTFIDF, 0, nil)
	require.NoError(t, err)
	a := New(Deps{Scorer: scorer}, Options{})

	res, err := a.Analyze("a b", "a c")
	require.NoError(t, err)
	assert.True(t, res.FallbackUsed)
	assert.Equal(t, similarity.MethodOverlap, res.SimilarityMethod)
	assert.Equal(t, 50.0, res.MatchPercentage)
	assert.Empty(t, res.MatchedSkills)
}

func TestAnalyzeIdenticalTextsScoreHighest(t *testing.T) {
	a := New(Deps{}, Options{})

	same, err := a.Analyze(jobText, jobText)
	require.NoError(t, err)
	other, err := a.Analyze("Accountant with French and bookkeeping background", jobText)
	require.NoError(t, err)

	assert.Equal(t, 100.0, same.MatchPercentage)
	assert.GreaterOrEqual(t, same.MatchPercentage, other.MatchPercentage)
}

func TestRankSkills(t *testing.T) {
	job := "Docker, docker and more docker. Kubernetes twice: kubernetes. Python once. Terraform."
	jobSkills := skills.NewSet("docker", "kubernetes", "python", "terraform")
	matched := skills.NewSet("python", "terraform")

	got := RankSkills(jobSkills, matched, job, 3)
	assert.Equal(t, []string{"python", "terraform", "docker"}, got)

	got = RankSkills(jobSkills, matched, job, 10)
	assert.Equal(t, []string{"python", "terraform", "docker", "kubernetes"}, got)
}

func TestRecommend(t *testing.T) {
	missing := []string{
		"angular", "aws", "c++", "communication", "data analysis", "docker",
		"html", "java", "mongodb", "mysql", "react", "scrum",
	}

	got := Recommend(missing, DefaultMaxRecommendations)
	require.Len(t, got, 10)

	skillsInOrder := make([]string, 0, len(got))
	for _, rec := range got {
		skillsInOrder = append(skillsInOrder, rec.Skill)
		assert.Equal(t, Resource(rec.Category), rec.Resource)
	}
	assert.True(t, sort.StringsAreSorted(skillsInOrder))
	assert.Equal(t, missing[:10], skillsInOrder)

	assert.Empty(t, Recommend(nil, DefaultMaxRecommendations))
}

func TestCategorize(t *testing.T) {
	cases := map[string]Category{
		"python":             CategoryProgramming,
		"javascript":         CategoryProgramming,
		"Ruby":               CategoryProgramming,
		"react":              CategoryWeb,
		"postgresql":         CategoryDatabase,
		"database":           CategoryDatabase,
		"google cloud":       CategoryCloud,
		"aws":                CategoryCloud,
		"data analysis":      CategoryDataScience,
		"data visualization": CategoryDataScience,
		"machine learning":   CategoryDataScience,
		"communication":      CategorySoftSkill,
		"leadership":         CategorySoftSkill,
		"made-up-skill":      CategoryGeneral,
		"docker":             CategoryGeneral,
	}

	for skill, want := range cases {
		assert.Equal(t, want, Categorize(skill), skill)
	}
}

func TestCategorizeOrderMatters(t *testing.T) {
	// "ruby on rails" hits programming through "ruby".
	assert.Equal(t, CategoryProgramming, Categorize("ruby on rails"))
	// "sql data" hits database before data_science.
	assert.Equal(t, CategoryDatabase, Categorize("sql data"))
}

func TestResource(t *testing.T) {
	assert.Equal(t, "Kaggle, DataCamp, fast.ai courses", Resource(CategoryDataScience))
	assert.Equal(t, "Online tutorials and documentation", Resource(CategoryGeneral))
	assert.Equal(t, "Online tutorials and documentation", Resource(Category("unknown")))
	assert.Equal(t, CategoryGeneral, Categories()[len(Categories())-1])
}

func TestDetectProficiency(t *testing.T) {
	cases := []struct {
		text  string
		skill string
		level Level
		years int
	}{
		{text: "Expert in Python. Used Java.", skill: "python", level: LevelIntermediate},
		{text: "Python expert with many projects", skill: "python", level: LevelAdvanced},
		{text: "Python: 6 years in production", skill: "python", level: LevelAdvanced, years: 6},
		{text: "Docker, 3+ yrs", skill: "docker", level: LevelIntermediate, years: 3},
		{text: "Kubernetes (beginner)", skill: "kubernetes", level: LevelBasic},
		{text: "Machine learning projects", skill: "machine learning", level: LevelIntermediate},
		{text: "SQL proficient", skill: "sql", level: LevelIntermediate},
	}

	for _, tc := range cases {
		got := DetectProficiency(tc.text, tc.skill)
		assert.Equal(t, tc.level, got.Level, tc.text)
		assert.Equal(t, tc.years, got.Years, tc.text)
		assert.Equal(t, tc.skill, got.Skill)
	}
}

func TestSuggestions(t *testing.T) {
	got := Suggestions(
		[]string{"aws", "django", "python", "sql"},
		[]string{"docker"},
		"We want 5+ years of experience",
	)

	require.Len(t, got, 5)
	assert.Contains(t, got[0], "aws, django, python")
	assert.NotContains(t, got[0], "sql")
	assert.Contains(t, got[1], "docker")
	assert.True(t, strings.HasSuffix(got[4], "The job requires 5+ years."))

	got = Suggestions(nil, nil, "no years here")
	assert.Len(t, got, 2)
}

func TestDetectProficiencyByKey(t *testing.T) {
	got := DetectProficiency("NodeJS expert, 7 years building APIs", "node.js")
	assert.Equal(t, SkillProficiency{Skill: "node.js", Level: LevelAdvanced, Years: 7}, got)

	got = DetectProficiency("Pipelines: cicd, 3 yrs", "ci/cd")
	assert.Equal(t, LevelIntermediate, got.Level)
	assert.Equal(t, 3, got.Years)

	got = DetectProficiency("Set up CI CD for beginners", "ci/cd")
	assert.Equal(t, LevelBasic, got.Level)
}

func TestAnalyzeProficiencyForNormalizedMention(t *testing.T) {
	a := New(Deps{}, Options{})

	res, err := a.Analyze("NodeJS expert, 7 years building APIs", "We need Node.js developers")
	require.NoError(t, err)

	assert.Equal(t, []string{"node.js"}, res.MatchedSkills)
	assert.Equal(t, []SkillProficiency{{Skill: "node.js", Level: LevelAdvanced, Years: 7}}, res.Proficiency)
}

func TestYearsIgnoreCalendarNumbers(t *testing.T) {
	got := DetectProficiency("Python: 2015 years of history aside, 4 years hands-on", "python")
	assert.Equal(t, 4, got.Years)
	assert.Equal(t, LevelIntermediate, got.Level)

	hints := Suggestions(nil, nil, "Founded 1998 years ago in spirit; 5+ years required")
	require.Len(t, hints, 3)
	assert.True(t, strings.HasSuffix(hints[2], "The job requires 5+ years."))
}
