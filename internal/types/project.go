// Package types provides type definitions for structured data used throughout the resume-pilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Project represents one candidate project or experience record persisted in the store.
type Project struct {
	Title         string     `yaml:"title" json:"title"`
	Slug          string     `yaml:"slug,omitempty" json:"slug"`
	Description   string     `yaml:"description,omitempty" json:"description"`
	Role          string     `yaml:"role,omitempty" json:"role"`
	Technologies  StringList `yaml:"technologies,omitempty" json:"technologies"`
	Methods       string     `yaml:"methods,omitempty" json:"methods"`
	Results       string     `yaml:"results,omitempty" json:"results"`
	Impact        string     `yaml:"impact,omitempty" json:"impact"`
	Duration      string     `yaml:"duration,omitempty" json:"duration"`
	TeamSize      FlexScalar `yaml:"team_size,omitempty" json:"team_size"`
	Challenges    string     `yaml:"challenges,omitempty" json:"challenges"`
	Sections      StringList `yaml:"sections,omitempty" json:"sections"`
	RelevanceTags StringList `yaml:"relevance_tags,omitempty" json:"relevance_tags"`
	Featured      bool       `yaml:"featured,omitempty" json:"featured"`
	CreatedAt     string     `yaml:"created_at,omitempty" json:"created_at"`

	// RelevanceScore is attached by the ranker; it is never persisted.
	RelevanceScore float64 `yaml:"-" json:"relevance_score,omitempty"`
}

// StringList is a []string that tolerates YAML scalars: a single string value
// is split on commas and semicolons. Project dumps often carry
// "technologies: PyTorch, CUDA" instead of a proper sequence.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*s = items
		return nil
	case yaml.ScalarNode:
		*s = SplitList(value.Value)
		return nil
	default:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*s = items
		return nil
	}
}

// FlexScalar holds a YAML scalar that may be numeric or free text, such as
// team_size. The raw text is preserved; numeric interpretation happens at
// aggregation time.
type FlexScalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FlexScalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return value.Decode((*string)(f))
	}
	*f = FlexScalar(value.Value)
	return nil
}

// String returns the raw scalar text.
func (f FlexScalar) String() string { return string(f) }

// SplitList splits a free-text enumeration on commas and semicolons,
// trimming whitespace and dropping empty entries.
func SplitList(text string) []string {
	replaced := strings.ReplaceAll(text, ",", ";")
	parts := strings.Split(replaced, ";")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9_]+`)

// Slugify derives the stable deduplication identifier from a project title:
// lowercase, whitespace collapsed to underscores, everything else stripped.
// The same title always produces the same slug across processes.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Join(strings.Fields(slug), "_")
	return slugStripPattern.ReplaceAllString(slug, "")
}

// Normalize fills derived and defaulted fields after construction so call
// sites never need per-field defaulting. Technologies are deduplicated
// preserving first occurrence; relevance tags are lowercased and deduplicated.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	p.Technologies = dedupe(p.Technologies, false)
	p.RelevanceTags = dedupe(p.RelevanceTags, true)
	p.Sections = dedupe(p.Sections, true)
	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().Format(time.RFC3339)
	}
}

// HasSection reports whether the project is eligible for the given section
// name. Exact membership, not substring.
func (p *Project) HasSection(name string) bool {
	for _, s := range p.Sections {
		if s == name {
			return true
		}
	}
	return false
}

// MatchesAnyTag reports whether the project shares at least one relevance tag
// with the given tag set.
func (p *Project) MatchesAnyTag(tags map[string]struct{}) bool {
	for _, t := range p.RelevanceTags {
		if _, ok := tags[strings.ToLower(t)]; ok {
			return true
		}
	}
	return false
}

func dedupe(items []string, lower bool) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		v := strings.TrimSpace(item)
		if lower {
			v = strings.ToLower(v)
		}
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
