package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pilot/internal/analysis"
	"github.com/jonathan/resume-pilot/internal/observability"
)

var (
	analyzeJobFile string
	analyzeJobURL  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [job description text]",
	Short: "Analyze a job description",
	Long:  `Extract structured fields (title, skills, keywords) and relevance tags from a job description.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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
	jobDescription, err := a.readJobDescription(ctx, analyzeJobFile, analyzeJobURL, jobText)
	if err != nil {
		return err
	}

	result, err := a.analyzer.Analyze(ctx, jobDescription)
	if err != nil {
		return err
	}
	jobTags := analysis.DeriveTags(result)

	if a.cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJobAnalysis(result, jobTags)
		return nil
	}

	out, err := json.MarshalIndent(map[string]any{
		"analysis": result,
		"job_tags": jobTags,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
