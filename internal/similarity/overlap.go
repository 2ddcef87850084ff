package similarity

import "strings"

// Overlap is the share of distinct job description words that also appear
// in the resume. It never fails.
type Overlap struct{}

func (Overlap) Name() string { return MethodOverlap }

func (Overlap) Similarity(resume, job string) (float64, error) {
	jobWords := wordSet(job)
	if len(jobWords) == 0 {
		return 0, nil
	}

	resumeWords := wordSet(resume)
	shared := 0
	for word := range jobWords {
		if _, ok := resumeWords[word]; ok {
			shared++
		}
	}

	return float64(shared) / float64(len(jobWords)), nil
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
