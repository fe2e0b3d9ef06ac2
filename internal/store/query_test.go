package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pilot/internal/types"
)

func seedStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	seed := []types.Project{
		{
			Title:        "Vision Pipeline",
			Description:  "Realtime vision detection system",
			Technologies: types.StringList{"PyTorch", "OpenCV"},
			Methods:      "transfer learning",
			Role:         "Lead Engineer",
			TeamSize:     "4",
		},
		{
			Title:        "Data Platform",
			Description:  "Batch processing with vision dataset support",
			Technologies: types.StringList{"Spark", "Python"},
			Role:         "Engineer",
			TeamSize:     "varies",
		},
		{
			Title:        "Edge Deploy",
			Description:  "On-device inference",
			Technologies: types.StringList{"ONNX", "PyTorch"},
			Methods:      "realtime quantization",
			Role:         "Lead Engineer",
			TeamSize:     "2",
		},
	}
	for i := range seed {
		require.NoError(t, s.Save(&seed[i]))
	}
	return s
}

func TestSearchWeightsTitleOverDescription(t *testing.T) {
	s := seedStore(t)

	// "vision" hits the first project's title (3) and description (2), and
	// only the second project's description (2).
	results, err := s.Search("vision", 0)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Vision Pipeline", results[0].Title)
	assert.Equal(t, "Data Platform", results[1].Title)
}

func TestSearchMethodsMatchRanksBelowDescription(t *testing.T) {
	s := seedStore(t)

	// "realtime" hits the first project's description (2) and only the third
	// project's methods (1).
	results, err := s.Search("realtime", 0)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Vision Pipeline", results[0].Title)
	assert.Equal(t, "Edge Deploy", results[1].Title)
}

func TestSearchLimitAndNoMatch(t *testing.T) {
	s := seedStore(t)

	results, err := s.Search("pytorch", 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = s.Search("cobol", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestByTitleCaseInsensitive(t *testing.T) {
	s := seedStore(t)

	p, err := s.ByTitle("vision pipeline")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Vision Pipeline", p.Title)

	p, err = s.ByTitle("Vision")
	require.NoError(t, err)
	assert.Nil(t, p, "exact match only, no substring")
}

func TestByTechnologySubstring(t *testing.T) {
	s := seedStore(t)

	results, err := s.ByTechnology("torch")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestAllSkillsSortedUnique(t *testing.T) {
	s := seedStore(t)

	skills, err := s.AllSkills()
	require.NoError(t, err)
	assert.Equal(t, []string{"ONNX", "OpenCV", "PyTorch", "Python", "Spark"}, skills)
}

func TestStats(t *testing.T) {
	s := seedStore(t)

	stats, err := s.Stats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 2, stats.TechnologyCounts["PyTorch"])
	assert.Equal(t, 2, stats.RoleCounts["Lead Engineer"])
	// Only the numeric team sizes (4 and 2) contribute.
	assert.Equal(t, 3.0, stats.AvgTeamSize)
	assert.Equal(t, "PyTorch", stats.TopTechnologies[0])

	again, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, stats, again, "stats are idempotent without mutation")
}

func TestStatsEmptyStore(t *testing.T) {
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)

	assert.Zero(t, stats.TotalProjects)
	assert.Zero(t, stats.AvgTeamSize)
	assert.Empty(t, stats.TopTechnologies)
}
