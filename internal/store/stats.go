package store

import (
	"sort"
	"strconv"
	"strings"
)

// Statistics summarizes the stored project pool.
type Statistics struct {
	TotalProjects    int            `json:"total_projects"`
	TechnologyCounts map[string]int `json:"technologies"`
	RoleCounts       map[string]int `json:"roles"`
	AvgTeamSize      float64        `json:"avg_team_size"`
	TopTechnologies  []string       `json:"most_common_technologies"`
	TopRoles         []string       `json:"most_common_roles"`
}

const topN = 5

// Stats computes aggregate statistics over all valid projects. Only numeric
// team_size values contribute to the average; it is 0 when none exist.
// Repeated calls without store mutation yield identical results.
func (s *Store) Stats() (*Statistics, error) {
	projects, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		TechnologyCounts: make(map[string]int),
		RoleCounts:       make(map[string]int),
	}
	if len(projects) == 0 {
		return stats, nil
	}

	stats.TotalProjects = len(projects)
	var teamSizes []int
	for _, p := range projects {
		for _, tech := range p.Technologies {
			stats.TechnologyCounts[tech]++
		}
		if role := strings.TrimSpace(p.Role); role != "" {
			stats.RoleCounts[role]++
		}
		if n, err := strconv.Atoi(strings.TrimSpace(p.TeamSize.String())); err == nil {
			teamSizes = append(teamSizes, n)
		}
	}

	if len(teamSizes) > 0 {
		sum := 0
		for _, n := range teamSizes {
			sum += n
		}
		stats.AvgTeamSize = float64(sum) / float64(len(teamSizes))
	}

	stats.TopTechnologies = topKeys(stats.TechnologyCounts, topN)
	stats.TopRoles = topKeys(stats.RoleCounts, topN)
	return stats, nil
}

// topKeys returns up to n map keys sorted by descending count, with ties
// broken alphabetically for deterministic output.
func topKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
