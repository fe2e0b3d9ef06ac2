package store

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// Substring match weights for Search. A title hit outweighs a description
// hit, which outweighs a technology or methods hit.
const (
	weightTitle       = 3
	weightDescription = 2
	weightTechnology  = 1
	weightMethods     = 1
)

// ByTitle returns the project whose title matches exactly,
// case-insensitively, or nil when none does.
func (s *Store) ByTitle(title string) (*types.Project, error) {
	projects, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	want := strings.ToLower(strings.TrimSpace(title))
	for i := range projects {
		if strings.ToLower(projects[i].Title) == want {
			return &projects[i], nil
		}
	}
	return nil, nil
}

// Search scores every project by substring presence of query in its title,
// description, technologies, and methods, keeps records with score > 0, and
// returns up to limit results sorted by descending score. The sort is stable
// so ties preserve load order.
func (s *Store) Search(query string, limit int) ([]types.Project, error) {
	projects, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	type scored struct {
		project types.Project
		score   int
	}
	matches := make([]scored, 0, len(projects))
	for _, p := range projects {
		score := 0
		if strings.Contains(strings.ToLower(p.Title), q) {
			score += weightTitle
		}
		if strings.Contains(strings.ToLower(p.Description), q) {
			score += weightDescription
		}
		for _, tech := range p.Technologies {
			if strings.Contains(strings.ToLower(tech), q) {
				score += weightTechnology
			}
		}
		if strings.Contains(strings.ToLower(p.Methods), q) {
			score += weightMethods
		}
		if score > 0 {
			matches = append(matches, scored{project: p, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]types.Project, len(matches))
	for i, m := range matches {
		out[i] = m.project
	}
	return out, nil
}

// ByTechnology returns every project whose technology list contains tech as
// a case-insensitive substring.
func (s *Store) ByTechnology(tech string) ([]types.Project, error) {
	projects, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	want := strings.ToLower(strings.TrimSpace(tech))
	var out []types.Project
	for _, p := range projects {
		for _, t := range p.Technologies {
			if strings.Contains(strings.ToLower(t), want) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

// AllSkills returns the sorted set of unique technologies across all projects.
func (s *Store) AllSkills() ([]string, error) {
	projects, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, p := range projects {
		for _, t := range p.Technologies {
			seen[strings.TrimSpace(t)] = struct{}{}
		}
	}
	skills := make([]string, 0, len(seen))
	for skill := range seen {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills, nil
}
