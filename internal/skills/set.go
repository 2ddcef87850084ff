package skills

import "sort"

// Set is an unordered collection of canonical skill names.
type Set map[string]struct{}

func NewSet(skills ...string) Set {
	s := make(Set, len(skills))
	for _, skill := range skills {
		s.Add(skill)
	}
	return s
}

func (s Set) Add(skill string) {
	s[skill] = struct{}{}
}

func (s Set) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in alphabetical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// Intersect returns the members present in both s and other.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for skill := range s {
		if other.Has(skill) {
			out.Add(skill)
		}
	}
	return out
}

// Difference returns the members of s missing from other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for skill := range s {
		if !other.Has(skill) {
			out.Add(skill)
		}
	}
	return out
}

func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for skill := range s {
		out.Add(skill)
	}
	for skill := range other {
		out.Add(skill)
	}
	return out
}
