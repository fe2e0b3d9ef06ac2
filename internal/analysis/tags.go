package analysis

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// skillTagTable maps lowercase skill substrings to relevance tags. A skill
// string containing a key as a substring pulls in that key's tag list.
var skillTagTable = map[string][]string{
	"python":           {"python", "ml"},
	"pytorch":          {"pytorch", "ml", "deep-learning"},
	"tensorflow":       {"tensorflow", "ml", "deep-learning"},
	"onnx":             {"onnx", "edge-ai", "optimization"},
	"cuda":             {"cuda", "gpu", "optimization"},
	"gpu":              {"gpu", "optimization"},
	"machine learning": {"ml", "ai"},
	"deep learning":    {"deep-learning", "ml", "ai"},
	"neural network":   {"deep-learning", "ml"},
	"computer vision":  {"computer-vision", "image-processing"},
	"opencv":           {"computer-vision", "image-processing"},
	"nlp":              {"nlp", "text-processing"},
	"natural language": {"nlp", "text-processing"},
	"llm":              {"llm", "genai", "nlp"},
	"rag":              {"rag", "llm", "genai"},
	"reinforcement":    {"reinforcement-learning", "ml"},
	"quantization":     {"optimization", "edge-ai"},
	"pruning":          {"optimization", "edge-ai"},
	"edge":             {"edge-ai", "embedded", "iot"},
	"embedded":         {"embedded", "iot", "edge-ai"},
	"iot":              {"iot", "embedded"},
	"fpga":             {"fpga", "embedded", "hardware"},
	"verilog":          {"fpga", "hardware"},
	"docker":           {"docker", "deployment"},
	"kubernetes":       {"kubernetes", "deployment"},
	"aws":              {"aws", "cloud"},
	"gcp":              {"gcp", "cloud"},
	"sql":              {"sql", "data"},
	"spark":            {"spark", "data"},
	"c++":              {"cpp", "systems"},
	"golang":           {"golang", "backend"},
	"rust":             {"rust", "systems"},
	"research":         {"research"},
}

// industryTagRules adds heuristic tags from industry focus keywords.
var industryTagRules = []struct {
	keywords []string
	tags     []string
}{
	{[]string{"machine learning", "ml", "ai"}, []string{"ml", "ai", "deep-learning"}},
	{[]string{"edge", "embedded"}, []string{"edge-ai", "embedded", "iot"}},
	{[]string{"computer vision"}, []string{"computer-vision", "image-processing"}},
	{[]string{"nlp", "natural language"}, []string{"nlp", "text-processing"}},
}

// DeriveTags computes the normalized lowercase job tag set for an analysis:
// every extracted skill and tool is matched through the skill→tag table by
// substring, then industry focus keywords contribute heuristic additions.
// The result is deduplicated, lowercased, and sorted for determinism.
func DeriveTags(a *types.JobAnalysis) []string {
	set := make(map[string]struct{})

	for _, skill := range a.AllSkills() {
		skillLower := strings.ToLower(skill)
		for key, tags := range skillTagTable {
			if strings.Contains(skillLower, key) {
				for _, t := range tags {
					set[t] = struct{}{}
				}
			}
		}
	}

	industry := strings.ToLower(a.IndustryFocus)
	for _, rule := range industryTagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(industry, kw) {
				for _, t := range rule.tags {
					set[t] = struct{}{}
				}
				break
			}
		}
	}

	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, strings.ToLower(t))
	}
	sort.Strings(tags)
	return tags
}

// TagsForSkill returns the tags a single skill string maps to, for
// diagnostics and tests.
func TagsForSkill(skill string) []string {
	set := make(map[string]struct{})
	skillLower := strings.ToLower(skill)
	for key, tags := range skillTagTable {
		if strings.Contains(skillLower, key) {
			for _, t := range tags {
				set[t] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
