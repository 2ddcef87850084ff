package analysis

import "strings"

// Category groups a skill for learning recommendations.
type Category string

const (
	CategoryProgramming Category = "programming"
	CategoryWeb         Category = "web"
	CategoryDatabase    Category = "database"
	CategoryCloud       Category = "cloud"
	CategoryDataScience Category = "data_science"
	CategorySoftSkill   Category = "soft_skill"
	CategoryGeneral     Category = "general"
)

type keywordGroup struct {
	category Category
	keywords []string
}

// Groups are tested in this order and the first hit wins.
var categoryGroups = []keywordGroup{
	{CategoryProgramming, []string{"python", "java", "javascript", "c++", "ruby"}},
	{CategoryWeb, []string{"html", "css", "react", "angular", "vue"}},
	{CategoryDatabase, []string{"sql", "mysql", "mongodb", "database"}},
	{CategoryCloud, []string{"aws", "azure", "gcp", "cloud"}},
	{CategoryDataScience, []string{"machine learning", "data", "analysis", "tensorflow"}},
	{CategorySoftSkill, []string{"communication", "leadership", "teamwork"}},
}

var learningResources = map[Category]string{
	CategoryProgramming: "Online courses: Coursera, Udemy, freeCodeCamp",
	CategoryWeb:         "MDN Web Docs, Frontend Masters, The Odin Project",
	CategoryDatabase:    "SQL tutorials, MongoDB University, database documentation",
	CategoryCloud:       "AWS Training, Azure Learn, Google Cloud Skills Boost",
	CategoryDataScience: "Kaggle, DataCamp, fast.ai courses",
	CategorySoftSkill:   "LinkedIn Learning, soft skills workshops, practice projects",
}

const generalResource = "Online tutorials and documentation"

// Categorize assigns a skill to the first keyword group it contains.
func Categorize(skill string) Category {
	lower := strings.ToLower(skill)
	for _, group := range categoryGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.category
			}
		}
	}
	return CategoryGeneral
}

// Resource returns the learning resource suggested for a category.
func Resource(c Category) string {
	if resource, ok := learningResources[c]; ok {
		return resource
	}
	return generalResource
}

// Categories lists every category in evaluation order, general last.
func Categories() []Category {
	out := make([]Category, 0, len(categoryGroups)+1)
	for _, group := range categoryGroups {
		out = append(out, group.category)
	}
	return append(out, CategoryGeneral)
}
