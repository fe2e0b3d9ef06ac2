// Package store loads, validates, and persists project records kept as flat
// YAML files, one file per project. Loading is tolerant: a corrupt or invalid
// file is skipped with a warning, never fatal for the whole load.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-pilot/internal/types"
)

// Store provides access to the project records directory.
type Store struct {
	dir    string
	logger *zap.Logger

	mu       sync.Mutex
	snapshot []types.Project
	loadedAt time.Time
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("projects directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create projects directory: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}, nil
}

// LoadAll returns every valid project record. An in-memory snapshot is served
// as long as no underlying file's modification time exceeds the snapshot's
// load time. The cache is best effort: concurrent writers during a read may
// race, which is accepted for a flat-file store.
func (s *Store) LoadAll() ([]types.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil && s.cacheValidLocked() {
		out := make([]types.Project, len(s.snapshot))
		copy(out, s.snapshot)
		return out, nil
	}

	projects, err := s.loadFromDisk()
	if err != nil {
		return nil, err
	}
	s.snapshot = projects
	s.loadedAt = time.Now()

	out := make([]types.Project, len(projects))
	copy(out, projects)
	return out, nil
}

func (s *Store) loadFromDisk() ([]types.Project, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &LoadError{File: s.dir, Message: "failed to read projects directory", Cause: err}
	}

	projects := make([]types.Project, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isProjectFile(entry.Name()) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		project, err := loadProjectFile(path)
		if err != nil {
			s.logger.Warn("skipping project file", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		projects = append(projects, *project)
	}
	return projects, nil
}

func loadProjectFile(path string) (*types.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	var project types.Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, &LoadError{File: path, Message: "failed to parse YAML", Cause: err}
	}

	if strings.TrimSpace(project.Title) == "" {
		return nil, &ValidationError{File: filepath.Base(path), Message: "missing required field: title"}
	}

	project.Normalize()
	return &project, nil
}

// cacheValidLocked reports whether the snapshot is still current by comparing
// file modification times against the snapshot load time.
func (s *Store) cacheValidLocked() bool {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() || !isProjectFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return false
		}
		if info.ModTime().After(s.loadedAt) {
			return false
		}
	}
	return true
}

// Save persists a project to a YAML file named after its slug.
// Last write wins; there are no transactional guarantees.
func (s *Store) Save(project *types.Project) error {
	if strings.TrimSpace(project.Title) == "" {
		return &ValidationError{Message: "missing required field: title"}
	}
	project.Normalize()

	data, err := yaml.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project %q: %w", project.Title, err)
	}

	path := filepath.Join(s.dir, project.Slug+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	s.mu.Lock()
	s.snapshot = nil // force reload on next read
	s.mu.Unlock()
	return nil
}

// AsText returns all projects as an indented JSON dump, used as prompt
// context for whole-pool sections like summary and skills.
func (s *Store) AsText() (string, error) {
	projects, err := s.LoadAll()
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal projects: %w", err)
	}
	return string(data), nil
}

func isProjectFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
