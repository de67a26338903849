package analysis

// StopWords is a set of words excluded from keyword counting.
type StopWords map[string]struct{}

// NewStopWords builds a set from the given words.
func NewStopWords(words ...string) StopWords {
	set := make(StopWords, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}

	return set
}

// Contains reports whether the word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]

	return ok
}

// With returns a new set extended with the given words.
func (s StopWords) With(words ...string) StopWords {
	extended := make(StopWords, len(s)+len(words))
	for word := range s {
		extended[word] = struct{}{}
	}
	for _, word := range words {
		extended[word] = struct{}{}
	}

	return extended
}

// DefaultStopWords returns the standard English stop word set used by the
// keyword ranking.
func DefaultStopWords() StopWords {
	return NewStopWords(defaultStopWords...)
}

var defaultStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "s", "t", "can", "will", "just", "don", "should",
	"now",
}
