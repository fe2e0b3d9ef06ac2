package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pilot/internal/export"
	"github.com/jonathan/resume-pilot/internal/observability"
	"github.com/jonathan/resume-pilot/internal/types"
)

var (
	generateJobFile    string
	generateJobURL     string
	generateSections   []string
	generateMaxPer     int
	generateSharedPool bool
	generateExport     string
)

var generateCmd = &cobra.Command{
	Use:   "generate [job description text]",
	Short: "Generate a tailored resume",
	Long:  `Analyze a job description, rank and select matching projects, and generate the requested resume sections.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateJobFile, "job", "", "Path to a job description text file")
	generateCmd.Flags().StringVar(&generateJobURL, "job-url", "", "URL to fetch the job posting from")
	generateCmd.Flags().StringSliceVar(&generateSections, "sections", []string{"summary", "experience", "projects", "skills"}, "Resume sections to generate")
	generateCmd.Flags().IntVar(&generateMaxPer, "max-per-section", 0, "Maximum projects per section (overrides config)")
	generateCmd.Flags().BoolVar(&generateSharedPool, "shared-pool", false, "Make the projects section share the dedup pool with research and experience")
	generateCmd.Flags().StringVar(&generateExport, "export", "", "Export format: md, json, or both")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newAppWithOracles(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	jobText := ""
	if len(args) == 1 {
		jobText = args[0]
	}
	jobDescription, err := a.readJobDescription(ctx, generateJobFile, generateJobURL, jobText)
	if err != nil {
		return err
	}

	req := &types.GenerateResumeRequest{
		JobDescription:  jobDescription,
		IncludeSections: generateSections,
		MaxPerSection:   generateMaxPer,
	}
	if generateSharedPool {
		separate := false
		req.SeparateProjects = &separate
	}
	if err := req.Validate(); err != nil {
		return err
	}

	result, err := a.writer.GenerateResume(ctx, req)
	if err != nil {
		return err
	}

	if a.cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobAnalysis(result.JobAnalysis, result.JobTags)
		printer.PrintSelection(result.SectionProjects)
	}

	fmt.Println(export.RenderMarkdown(result))

	if generateExport != "" {
		exporter, err := export.New(a.cfg.ExportsDir, a.logger)
		if err != nil {
			return err
		}
		format := strings.ToLower(generateExport)
		if format == "md" || format == "both" {
			path, err := exporter.Markdown(result)
			if err != nil {
				return err
			}
			fmt.Printf("Markdown export: %s\n", path)
		}
		if format == "json" || format == "both" {
			path, err := exporter.JSON(result)
			if err != nil {
				return err
			}
			fmt.Printf("JSON export: %s\n", path)
		}
	}
	return nil
}
