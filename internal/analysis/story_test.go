package analysis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mypham14/hacker-news-pipeline/internal/analysis"
)

func writeDump(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stories.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadStories(t *testing.T) {
	t.Parallel()

	path := writeDump(t, `{
		"stories": [
			{
				"objectID": "1",
				"created_at": "2024-05-01T10:00:00Z",
				"created_at_i": 1714557600,
				"author": "alice",
				"url": "https://example.com",
				"points": 60,
				"title": "New Tool",
				"num_comments": 3,
				"ignored_field": true
			}
		]
	}`)

	stories, err := analysis.LoadStories(path)
	require.NoError(t, err)
	require.Len(t, stories, 1)

	story := stories[0]
	assert.Equal(t, "1", story.ObjectID)
	assert.Equal(t, "2024-05-01T10:00:00Z", story.CreatedAt)
	assert.Equal(t, int64(1714557600), story.CreatedAtI)
	assert.Equal(t, "alice", story.Author)
	assert.Equal(t, 60, story.Points)
	assert.Equal(t, "New Tool", story.Title)
	assert.Equal(t, 3, story.NumComments)
}

func TestLoadStoriesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := analysis.LoadStories(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadStoriesMalformed(t *testing.T) {
	t.Parallel()

	path := writeDump(t, `{"stories": [`)

	_, err := analysis.LoadStories(path)
	assert.Error(t, err)
}
