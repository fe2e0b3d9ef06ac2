// Package export writes generated resume content to timestamped Markdown
// and JSON files in the exports directory.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/types"
	"github.com/jonathan/resume-pilot/internal/writer"
)

// sectionHeadings drives Markdown rendering order and titles.
var sectionHeadings = []struct {
	key     string
	heading string
}{
	{"summary", "Summary"},
	{"research", "Research Experience"},
	{"experience", "Experience"},
	{"projects", "Projects"},
	{"skills", "Skills"},
}

// Exporter writes export files into a directory.
type Exporter struct {
	dir    string
	logger *zap.Logger
}

// New creates an Exporter rooted at dir, creating the directory if needed.
func New(dir string, logger *zap.Logger) (*Exporter, error) {
	if dir == "" {
		return nil, fmt.Errorf("exports directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create exports directory: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{dir: dir, logger: logger}, nil
}

// Markdown renders the result as a Markdown resume and writes it to a
// timestamped file. The path of the written file is returned.
func (e *Exporter) Markdown(result *writer.ResumeResult) (string, error) {
	path := filepath.Join(e.dir, e.filename(result, "md"))
	if err := os.WriteFile(path, []byte(RenderMarkdown(result)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write markdown export: %w", err)
	}
	e.logger.Info("wrote markdown export", zap.String("path", path))
	return path, nil
}

// JSON writes the full result, sections and metadata included, to a
// timestamped JSON file and returns its path.
func (e *Exporter) JSON(result *writer.ResumeResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	path := filepath.Join(e.dir, e.filename(result, "json"))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write JSON export: %w", err)
	}
	e.logger.Info("wrote JSON export", zap.String("path", path))
	return path, nil
}

func (e *Exporter) filename(result *writer.ResumeResult, ext string) string {
	base := "resume"
	if result.JobAnalysis != nil && result.JobAnalysis.JobTitle != "" {
		base = "resume_" + types.Slugify(result.JobAnalysis.JobTitle)
	}
	return fmt.Sprintf("%s_%s.%s", base, time.Now().Format("20060102_150405"), ext)
}

// RenderMarkdown assembles the generated sections into one Markdown
// document in canonical section order. Sections absent from the result are
// skipped.
func RenderMarkdown(result *writer.ResumeResult) string {
	var sb strings.Builder
	title := "Resume"
	if result.JobAnalysis != nil && result.JobAnalysis.JobTitle != "" {
		title = "Resume: " + result.JobAnalysis.JobTitle
	}
	fmt.Fprintf(&sb, "# %s\n", title)

	for _, s := range sectionHeadings {
		text, ok := result.Sections[s.key]
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n## %s\n\n%s\n", s.heading, strings.TrimSpace(text))
	}
	return sb.String()
}
