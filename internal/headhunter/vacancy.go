package headhunter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrInvalidVacancyID = errors.New("invalid vacancy id")

var (
	vacancyIDPattern  = regexp.MustCompile(`^\d+$`)
	vacancyURLPattern = regexp.MustCompile(`hh\.[a-z]+/vacancy/(\d+)`)
)

type Vacancy struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	AlternateURL string `json:"alternate_url,omitempty"`
	Employer     struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"employer,omitempty"`
	Experience struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"experience,omitempty"`
	Description string `json:"description,omitempty"`
	KeySkills   []struct {
		Name string `json:"name,omitempty"`
	} `json:"key_skills,omitempty"`
	Archived bool `json:"archived,omitempty"`
}

// ParseVacancyRef extracts a vacancy id from "hh:<id>", a bare numeric id or
// a vacancy URL such as https://hh.ru/vacancy/123.
func ParseVacancyRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "hh:")

	if vacancyIDPattern.MatchString(ref) {
		return ref, nil
	}

	if m := vacancyURLPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidVacancyID, ref)
}

func (c *Client) getVacancy(ctx context.Context, id string) (*Vacancy, error) {
	if !vacancyIDPattern.MatchString(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVacancyID, id)
	}

	var vacancy Vacancy
	if err := c.getJSON(ctx, fmt.Sprintf("%s/vacancies/%s", c.APIURL, url.PathEscape(id)), nil, &vacancy); err != nil {
		return nil, fmt.Errorf("get vacancy %s: %w", id, err)
	}

	return &vacancy, nil
}

// SkillNames returns the key skills listed by the employer.
func (va *Vacancy) SkillNames() []string {
	names := make([]string, 0, len(va.KeySkills))
	for _, s := range va.KeySkills {
		if name := strings.TrimSpace(s.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Text renders the vacancy as plain text suitable for analysis: the title,
// the key skills and the description without markup.
func (va *Vacancy) Text() (string, error) {
	var b strings.Builder

	if name := strings.TrimSpace(va.Name); name != "" {
		b.WriteString(name)
		b.WriteString("\n")
	}

	if skills := va.SkillNames(); len(skills) > 0 {
		b.WriteString("Key skills: ")
		b.WriteString(strings.Join(skills, ", "))
		b.WriteString("\n")
	}

	description, err := HTMLToText(va.Description)
	if err != nil {
		return "", fmt.Errorf("vacancy %s description: %w", va.ID, err)
	}
	b.WriteString(description)

	return strings.TrimSpace(b.String()), nil
}

// HTMLToText strips markup and keeps block elements on separate lines.
func HTMLToText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, div, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n"), nil
}
