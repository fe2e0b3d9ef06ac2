package types

import (
	"encoding/json"
	"strings"
)

// JobAnalysis represents the structured extraction from one job description.
// It is transient: created per request, never persisted.
type JobAnalysis struct {
	JobTitle          string      `json:"job_title,omitempty"`
	Company           string      `json:"company,omitempty"`
	IndustryFocus     string      `json:"industry_focus,omitempty"`
	ExperienceLevel   string      `json:"experience_level,omitempty"`
	Location          string      `json:"location,omitempty"`
	SalaryRange       string      `json:"salary_range,omitempty"`
	RequiredSkills    FlexStrings `json:"required_skills"`
	PreferredSkills   FlexStrings `json:"preferred_skills"`
	ToolsTechnologies FlexStrings `json:"tools_technologies"`
	Responsibilities  FlexStrings `json:"responsibilities,omitempty"`
	Qualifications    FlexStrings `json:"qualifications,omitempty"`
	Keywords          FlexStrings `json:"keywords"`
}

// AllSkills returns required skills, preferred skills, and tools as one
// deduplicated list, preserving first occurrence order.
func (a *JobAnalysis) AllSkills() []string {
	combined := make([]string, 0, len(a.RequiredSkills)+len(a.PreferredSkills)+len(a.ToolsTechnologies))
	combined = append(combined, a.RequiredSkills...)
	combined = append(combined, a.PreferredSkills...)
	combined = append(combined, a.ToolsTechnologies...)
	seen := make(map[string]struct{}, len(combined))
	out := make([]string, 0, len(combined))
	for _, s := range combined {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// FlexStrings is a []string that tolerates LLM output quirks: a JSON string
// where a list was expected is split on commas, null becomes empty.
type FlexStrings []string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			// Mixed-type arrays show up occasionally; keep the strings.
			items = nil
			var raw []json.RawMessage
			if err2 := json.Unmarshal(data, &raw); err2 != nil {
				return err
			}
			for _, r := range raw {
				var s string
				if json.Unmarshal(r, &s) == nil {
					items = append(items, s)
				}
			}
		}
		*f = items
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			items = append(items, t)
		}
	}
	*f = items
	return nil
}
