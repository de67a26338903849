package analysis

import "strings"

// Popularity holds the thresholds a story must clear to count as popular.
type Popularity struct {
	// MinPoints and MinComments are exclusive lower bounds.
	MinPoints   int
	MinComments int
	// ExcludePrefix drops stories whose title starts with it. Empty
	// disables the check.
	ExcludePrefix string
}

// DefaultPopularity returns the thresholds of the original analysis: more
// than 50 points, more than one comment, and not an "Ask HN" post.
func DefaultPopularity() Popularity {
	return Popularity{
		MinPoints:     50,
		MinComments:   1,
		ExcludePrefix: "Ask HN",
	}
}

// Match reports whether the story clears every threshold.
func (p Popularity) Match(story Story) bool {
	if story.Points <= p.MinPoints {
		return false
	}
	if story.NumComments <= p.MinComments {
		return false
	}
	if p.ExcludePrefix != "" && strings.HasPrefix(story.Title, p.ExcludePrefix) {
		return false
	}

	return true
}

// FilterPopular returns the stories clearing the popularity thresholds, in
// input order.
func FilterPopular(stories []Story, pop Popularity) []Story {
	popular := make([]Story, 0, len(stories))
	for _, story := range stories {
		if pop.Match(story) {
			popular = append(popular, story)
		}
	}

	return popular
}
