package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pilot/internal/observability"
)

var (
	rankJobFile string
	rankJobURL  string
)

var rankCmd = &cobra.Command{
	Use:   "rank [job description text]",
	Short: "Rank projects against a job description",
	Long:  `Score every project in the pool by embedding similarity to a job description and print the ranked recommendations.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankJobFile, "job", "", "Path to a job description text file")
	rankCmd.Flags().StringVar(&rankJobURL, "job-url", "", "URL to fetch the job posting from")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
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
	jobDescription, err := a.readJobDescription(ctx, rankJobFile, rankJobURL, jobText)
	if err != nil {
		return err
	}

	recs, err := a.ranker.Recommendations(ctx, jobDescription)
	if err != nil {
		return err
	}

	if a.cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobAnalysis(recs.JobAnalysis, recs.JobTags)
		printer.PrintRankedProjects(recs.RankedProjects)
		return nil
	}

	out, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
