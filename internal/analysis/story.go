package analysis

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Story is one Hacker News post from the input dump. Fields beyond these are
// ignored.
type Story struct {
	ObjectID    string `json:"objectID"`
	CreatedAt   string `json:"created_at"`
	CreatedAtI  int64  `json:"created_at_i"`
	Author      string `json:"author"`
	URL         string `json:"url"`
	Points      int    `json:"points"`
	Title       string `json:"title"`
	NumComments int    `json:"num_comments"`
}

type dataset struct {
	Stories []Story `json:"stories"`
}

// LoadStories reads a JSON dump holding a single object with a "stories"
// key and returns its posts.
func LoadStories(path string) ([]Story, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer file.Close()

	var data dataset
	err = json.NewDecoder(file).Decode(&data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", path)
	}

	return data.Stories, nil
}
