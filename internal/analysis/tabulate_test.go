package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mypham14/hacker-news-pipeline/internal/analysis"
)

func TestWriteTable(t *testing.T) {
	t.Parallel()

	stories := []analysis.Story{
		{
			ObjectID:  "1",
			CreatedAt: "2024-05-01T10:00:00Z",
			URL:       "https://example.com",
			Points:    60,
			Title:     "New Tool",
		},
	}

	table, err := analysis.WriteTable(stories)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(table)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "objectID,created_at,url,points,title", lines[0])
	assert.Equal(t, "1,2024-05-01T10:00:00Z,https://example.com,60,New Tool", lines[1])
}

func TestWriteTableBadTimestamp(t *testing.T) {
	t.Parallel()

	stories := []analysis.Story{
		{ObjectID: "1", CreatedAt: "yesterday", Title: "New Tool"},
	}

	_, err := analysis.WriteTable(stories)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at")
}

func TestTitleColumnRoundTrip(t *testing.T) {
	t.Parallel()

	stories := []analysis.Story{
		{ObjectID: "1", CreatedAt: "2024-05-01T10:00:00Z", Title: "New Tool, Improved"},
		{ObjectID: "2", CreatedAt: "2024-05-02T11:30:00Z", Title: "Another Story"},
	}

	table, err := analysis.WriteTable(stories)
	require.NoError(t, err)

	titles, err := analysis.TitleColumn(table)
	require.NoError(t, err)
	assert.Equal(t, []string{"New Tool, Improved", "Another Story"}, titles)
}

func TestTitleColumnEmptyTable(t *testing.T) {
	t.Parallel()

	_, err := analysis.TitleColumn(nil)
	assert.Error(t, err)
}

func TestTitleColumnMissingColumn(t *testing.T) {
	t.Parallel()

	_, err := analysis.TitleColumn([]byte("objectID,points\n1,60\n"))
	assert.Error(t, err)
}
