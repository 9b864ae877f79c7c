package reply

import (
	"regexp"
	"strings"
)

var latinOnlyRe = regexp.MustCompile(`^[a-zA-Z\s\?\,\.\!]+$`)

// Common English function words; a low ratio of these in an all-Latin message
// suggests romanized Urdu rather than English.
var commonEnglishWords = map[string]struct{}{
	"the": {}, "is": {}, "am": {}, "are": {}, "this": {}, "that": {},
	"was": {}, "were": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "a": {}, "an": {}, "in": {},
	"on": {}, "for": {}, "and": {}, "but": {},
}

// IsRomanUrdu applies a cheap heuristic: at least three words, Latin letters
// only, and fewer than 40% common English words.
func IsRomanUrdu(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))

	words := strings.Fields(text)
	if len(words) < 3 {
		return false
	}
	if !latinOnlyRe.MatchString(text) {
		return false
	}

	englishCount := 0
	for _, word := range words {
		if _, ok := commonEnglishWords[word]; ok {
			englishCount++
		}
	}
	return float64(englishCount)/float64(len(words)) < 0.4
}
