package analysis

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// timeLayout is the timestamp format of the created_at field.
const timeLayout = "2006-01-02T15:04:05Z"

var tableHeader = []string{"objectID", "created_at", "url", "points", "title"}

// WriteTable renders the stories to an in-memory CSV table with one data row
// per story. The created_at timestamp is parsed and fails the table on
// malformed input.
func WriteTable(stories []Story) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	err := writer.Write(tableHeader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to write table header")
	}

	for _, story := range stories {
		createdAt, err := time.Parse(timeLayout, story.CreatedAt)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse created_at of story %s", story.ObjectID)
		}

		row := []string{
			story.ObjectID,
			createdAt.Format(timeLayout),
			story.URL,
			strconv.Itoa(story.Points),
			story.Title,
		}
		err = writer.Write(row)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to write row for story %s", story.ObjectID)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "unable to flush table")
	}

	return buf.Bytes(), nil
}

// TitleColumn re-reads a table produced by WriteTable and projects its title
// column, in row order.
func TitleColumn(table []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(table))

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read table")
	}
	if len(rows) == 0 {
		return nil, errors.New("table has no header row")
	}

	header := rows[0]
	titleIdx := -1
	for idx, column := range header {
		if column == "title" {
			titleIdx = idx

			break
		}
	}
	if titleIdx < 0 {
		return nil, errors.New("table has no title column")
	}

	titles := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		titles = append(titles, row[titleIdx])
	}

	return titles, nil
}
