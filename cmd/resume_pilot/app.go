package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/analysis"
	"github.com/jonathan/resume-pilot/internal/config"
	"github.com/jonathan/resume-pilot/internal/embedding"
	"github.com/jonathan/resume-pilot/internal/ingestion"
	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/ranking"
	"github.com/jonathan/resume-pilot/internal/scorer"
	"github.com/jonathan/resume-pilot/internal/selection"
	"github.com/jonathan/resume-pilot/internal/store"
	"github.com/jonathan/resume-pilot/internal/writer"
)

// app bundles the configured services a command needs. Oracle-backed
// services are only initialized by newAppWithOracles; store-only commands
// work without an API key.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	store  *store.Store

	client   llm.Client
	embedder embedding.Generator
	analyzer *analysis.Analyzer
	ranker   *ranking.Ranker
	writer   *writer.Generator
	scorer   *scorer.Scorer
	fetcher  *ingestion.Fetcher
}

// loadConfig assembles the effective configuration: defaults, then the
// config file, then environment variables.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())
	cfg.ApplyEnv()
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newApp initializes configuration, logging, and the project store.
func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	projects, err := store.New(cfg.ProjectsDir, logger)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, store: projects}, nil
}

// newAppWithOracles additionally wires the LLM and embedding clients and
// every service built on them. Requires an API key.
func newAppWithOracles(ctx context.Context) (*app, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}

	if a.cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), a.cfg.APIKey)
	if err != nil {
		return nil, err
	}
	embedder, err := embedding.NewGeminiGenerator(ctx, a.cfg.APIKey, a.cfg.EmbeddingModel)
	if err != nil {
		return nil, err
	}

	a.client = client
	a.embedder = embedder
	a.analyzer = analysis.NewAnalyzer(client, a.logger)
	a.ranker = ranking.New(embedder, a.analyzer, a.store, ranking.Options{
		Threshold:          a.cfg.RelevanceThreshold,
		MaxRecommendations: a.cfg.MaxRecommendations,
	}, a.logger)
	a.writer = writer.New(client, a.analyzer, a.ranker, a.store, a.policy(), a.logger)
	a.scorer = scorer.New(client, a.analyzer, a.logger)
	a.fetcher = ingestion.NewFetcher(0)
	return a, nil
}

func (a *app) policy() selection.Policy {
	policy := selection.DefaultPolicy()
	policy.MaxPerSection = a.cfg.MaxPerSection
	policy.SeparateProjectsPool = !a.cfg.SharedProjectsPool
	return policy
}

// close releases oracle clients and flushes logs.
func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.embedder != nil {
		_ = a.embedder.Close()
	}
	_ = a.logger.Sync()
}

// readJobDescription resolves the job description from a file path, a URL,
// or literal text, in that precedence order.
func (a *app) readJobDescription(ctx context.Context, jobFile, jobURL, jobText string) (string, error) {
	switch {
	case jobFile != "":
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	case jobURL != "":
		if a.fetcher == nil {
			a.fetcher = ingestion.NewFetcher(0)
		}
		return a.fetcher.FetchJobPosting(ctx, jobURL)
	case jobText != "":
		return jobText, nil
	default:
		return "", fmt.Errorf("a job description is required: use --job, --job-url, or pass text as an argument")
	}
}
