package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pilot/internal/db"
	"github.com/jonathan/resume-pilot/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for job analysis, project ranking, and resume generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newAppWithOracles(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	port := a.cfg.Port
	if servePort != 0 {
		port = servePort
	}

	var archive *db.DB
	if a.cfg.DatabaseURL != "" {
		archive, err = db.Connect(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to run archive: %w", err)
		}
		if err := archive.Migrate(ctx); err != nil {
			return err
		}
	}

	srv := server.New(server.Config{Port: port, JWTSecret: a.cfg.JWTSecret}, server.Deps{
		Store:    a.store,
		Analyzer: a.analyzer,
		Ranker:   a.ranker,
		Writer:   a.writer,
		Scorer:   a.scorer,
		Fetcher:  a.fetcher,
		Archive:  archive,
		Logger:   a.logger,
	})
	return srv.Start()
}
