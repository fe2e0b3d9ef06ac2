package selection

import (
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// UsedSet tracks which project slugs have already been claimed by a
// section during one generation run.
type UsedSet struct {
	slugs map[string]struct{}
}

// NewUsedSet returns an empty used-slug pool.
func NewUsedSet() *UsedSet {
	return &UsedSet{slugs: make(map[string]struct{})}
}

// Contains reports whether slug has been claimed.
func (u *UsedSet) Contains(slug string) bool {
	_, ok := u.slugs[slug]
	return ok
}

// Mark claims a slug.
func (u *UsedSet) Mark(slug string) {
	u.slugs[slug] = struct{}{}
}

// Len returns the number of claimed slugs.
func (u *UsedSet) Len() int {
	return len(u.slugs)
}

// Slugs returns the claimed slugs in unspecified order.
func (u *UsedSet) Slugs() []string {
	out := make([]string, 0, len(u.slugs))
	for s := range u.slugs {
		out = append(out, s)
	}
	return out
}

// Select picks at most maxCount projects for one resume section and marks
// the winners in used. The pipeline, in order:
//
//  1. drop projects whose slug is already in used
//  2. keep projects whose sections list contains the section's membership
//     value, compared exactly
//  3. keep projects sharing at least one relevance tag with jobTags; this
//     gate holds even when it empties the result
//  4. partition featured projects ahead of non-featured, each side keeping
//     its incoming relative order
//  5. truncate to maxCount
//  6. mark every selected slug in used
//
// Input order is the ranker's relevance order, so the stable partition
// yields featured-by-relevance followed by non-featured-by-relevance.
// maxCount <= 0 selects nothing and marks nothing.
func Select(projects []types.Project, jobTags []string, section Section, used *UsedSet, maxCount int) []types.Project {
	if maxCount <= 0 {
		return []types.Project{}
	}

	membership := section.membershipValue()
	tagSet := make(map[string]struct{}, len(jobTags))
	for _, t := range jobTags {
		tagSet[strings.ToLower(t)] = struct{}{}
	}

	eligible := make([]types.Project, 0, len(projects))
	for _, p := range projects {
		if used.Contains(p.Slug) {
			continue
		}
		if !p.HasSection(membership) {
			continue
		}
		if !p.MatchesAnyTag(tagSet) {
			continue
		}
		eligible = append(eligible, p)
	}

	ordered := make([]types.Project, 0, len(eligible))
	for _, p := range eligible {
		if p.Featured {
			ordered = append(ordered, p)
		}
	}
	for _, p := range eligible {
		if !p.Featured {
			ordered = append(ordered, p)
		}
	}

	if len(ordered) > maxCount {
		ordered = ordered[:maxCount]
	}

	for _, p := range ordered {
		used.Mark(p.Slug)
	}
	return ordered
}
