package analysis

import "strings"

// punctuation mirrors the ASCII punctuation set stripped from titles.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// CleanTitle lowercases the title and strips ASCII punctuation.
func CleanTitle(title string) string {
	lowered := strings.ToLower(title)

	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}

		return r
	}, lowered)
}

// CleanTitles cleans every title, preserving order.
func CleanTitles(titles []string) []string {
	cleaned := make([]string, 0, len(titles))
	for _, title := range titles {
		cleaned = append(cleaned, CleanTitle(title))
	}

	return cleaned
}
