package writer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/prompts"
	"github.com/jonathan/resume-pilot/internal/types"
)

var (
	companyAtPattern   = regexp.MustCompile(`(?i)\b(?:at|join|with)\s+([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*){0,3})`)
	companyLinePattern = regexp.MustCompile(`(?im)^company\s*[:\-]\s*(.+)$`)
	titleLinePattern   = regexp.MustCompile(`(?im)^(?:job\s+title|position|role)\s*[:\-]\s*(.+)$`)
)

// ExtractCompanyInfo pulls a likely company name and job title out of raw
// job description text. Labeled lines ("Company: X") win over the "at X"
// phrasing heuristic. Either value may come back empty.
func ExtractCompanyInfo(jobDescription string) (company, title string) {
	if m := companyLinePattern.FindStringSubmatch(jobDescription); m != nil {
		company = strings.TrimSpace(m[1])
	} else if m := companyAtPattern.FindStringSubmatch(jobDescription); m != nil {
		company = strings.TrimSpace(m[1])
	}
	if m := titleLinePattern.FindStringSubmatch(jobDescription); m != nil {
		title = strings.TrimSpace(m[1])
	}
	return company, title
}

// CoverLetter generates a full cover letter for the request. The job
// description is analyzed first; company and title fall back from the
// request to labeled-line heuristics to the analysis. Oracle failure on the
// letter itself yields a deterministic template letter, not an error.
func (g *Generator) CoverLetter(ctx context.Context, req *types.CoverLetterRequest) (string, error) {
	jobAnalysis, err := g.analyzer.Analyze(ctx, req.JobDescription)
	if err != nil {
		return "", err
	}

	company, title := req.CompanyName, req.JobTitle
	heuristicCompany, heuristicTitle := ExtractCompanyInfo(req.JobDescription)
	if company == "" {
		company = heuristicCompany
	}
	if company == "" {
		company = jobAnalysis.Company
	}
	if company == "" {
		company = "your company"
	}
	if title == "" {
		title = heuristicTitle
	}
	if title == "" {
		title = jobAnalysis.JobTitle
	}
	if title == "" {
		title = "the open position"
	}

	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	template := prompts.MustGet("coverletter.json", "cover-letter")
	prompt := prompts.Format(template, map[string]string{
		"Tone":           tone,
		"CandidateName":  req.CandidateName,
		"JobTitle":       title,
		"CompanyName":    company,
		"Summary":        req.ResumeSections["summary"],
		"Skills":         req.ResumeSections["skills"],
		"Projects":       resumeProjectsText(req.ResumeSections),
		"JobDescription": req.JobDescription,
	})

	raw, err := g.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		g.logger.Warn("cover letter generation failed, using fallback", zap.Error(err))
		return fallbackCoverLetter(req.CandidateName, title, company, jobAnalysis), nil
	}
	return llm.TrimQuotes(strings.TrimSpace(raw)), nil
}

// CoverLetterIntro generates only the opening paragraph, for callers that
// compose their own letter body.
func (g *Generator) CoverLetterIntro(ctx context.Context, req *types.CoverLetterRequest) (string, error) {
	jobAnalysis, err := g.analyzer.Analyze(ctx, req.JobDescription)
	if err != nil {
		return "", err
	}

	company, title := req.CompanyName, req.JobTitle
	if company == "" || title == "" {
		heuristicCompany, heuristicTitle := ExtractCompanyInfo(req.JobDescription)
		if company == "" {
			company = heuristicCompany
		}
		if title == "" {
			title = heuristicTitle
		}
	}
	if title == "" {
		title = jobAnalysis.JobTitle
	}

	skills := jobAnalysis.RequiredSkills
	if len(skills) > 5 {
		skills = skills[:5]
	}

	template := prompts.MustGet("coverletter.json", "cover-letter-intro")
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":      title,
		"CompanyName":   company,
		"IndustryFocus": jobAnalysis.IndustryFocus,
		"TopProject":    req.ResumeSections["projects"],
		"KeySkills":     strings.Join(skills, ", "),
	})

	raw, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		g.logger.Warn("cover letter intro generation failed, using fallback", zap.Error(err))
		return fmt.Sprintf("I am writing to express my strong interest in the %s role at %s.", title, company), nil
	}
	return llm.TrimQuotes(strings.TrimSpace(raw)), nil
}

// resumeProjectsText prefers the projects section of the supplied resume,
// falling back to experience material.
func resumeProjectsText(sections map[string]string) string {
	if text := sections["projects"]; text != "" {
		return text
	}
	return sections["experience"]
}

func fallbackCoverLetter(candidate, title, company string, jobAnalysis *types.JobAnalysis) string {
	skills := jobAnalysis.RequiredSkills
	if len(skills) > 3 {
		skills = skills[:3]
	}
	skillPhrase := "relevant technical areas"
	if len(skills) > 0 {
		skillPhrase = strings.Join(skills, ", ")
	}
	return fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my strong interest in the %s role at %s. My background in %s aligns closely with the requirements described in the posting, and I have a consistent record of delivering technical projects end to end.

I would welcome the opportunity to discuss how my experience can contribute to your team.

Sincerely,
%s`, title, company, skillPhrase, candidate)
}
