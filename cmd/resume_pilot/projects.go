package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var projectsSearchLimit int

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Inspect the project pool",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE:  runProjectsList,
}

var projectsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate project statistics",
	RunE:  runProjectsStats,
}

var projectsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search projects by title, description, technology, or methods",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsSearch,
}

func init() {
	projectsSearchCmd.Flags().IntVar(&projectsSearchLimit, "limit", 0, "Maximum results to return (0 for all)")
	projectsCmd.AddCommand(projectsListCmd, projectsStatsCmd, projectsSearchCmd)
	rootCmd.AddCommand(projectsCmd)
}

func runProjectsList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	projects, err := a.store.LoadAll()
	if err != nil {
		return err
	}
	for _, p := range projects {
		line := fmt.Sprintf("%-30s", p.Title)
		if p.Featured {
			line += " ★"
		}
		if len(p.Sections) > 0 {
			line += fmt.Sprintf("  [%s]", strings.Join(p.Sections, ", "))
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d projects\n", len(projects))
	return nil
}

func runProjectsStats(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	stats, err := a.store.Stats()
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runProjectsSearch(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	results, err := a.store.Search(args[0], projectsSearchLimit)
	if err != nil {
		return err
	}
	for _, p := range results {
		fmt.Printf("%s\n", p.Title)
		if p.Description != "" {
			fmt.Printf("  %s\n", p.Description)
		}
	}
	fmt.Printf("\n%d matches\n", len(results))
	return nil
}
