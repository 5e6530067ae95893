package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
)

// Mission designators such as "CRS-20" or "Starlink-4-7" are kept whole in
// addition to being split into their parts.
var wordPattern = regexp.MustCompile(`[a-z0-9]+(?:-[a-z0-9]+)*`)

type Tokenizer struct {
	StopWords map[string]bool
	minLength int
	maxLength int
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		StopWords: defaultStopWords(),
		minLength: 2,
		maxLength: 40,
	}
}

func (t *Tokenizer) Tokenize(text string) []string {
	normalized := t.normalize(text)

	tokens := make([]string, 0)
	for _, word := range wordPattern.FindAllString(normalized, -1) {
		if strings.Contains(word, "-") {
			if t.keep(word) {
				tokens = append(tokens, word)
			}
			for _, part := range strings.Split(word, "-") {
				if t.keep(part) {
					tokens = append(tokens, part)
				}
			}
			continue
		}

		if t.keep(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func (t *Tokenizer) keep(word string) bool {
	if word == "" || t.StopWords[word] {
		return false
	}
	if len(word) < t.minLength || len(word) > t.maxLength {
		return false
	}
	return t.IsValidToken(word)
}

func (t *Tokenizer) normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "&", " and ")
	text = strings.ReplaceAll(text, "_", " ")
	return text
}

// IsValidToken rejects tokens with no letters, such as bare flight numbers.
func (t *Tokenizer) IsValidToken(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func defaultStopWords() map[string]bool {
	words := []string{
		"a", "an", "the",

		"it", "its", "they", "them", "their", "this", "that", "these", "those",
		"he", "she", "his", "her", "we", "our",

		"of", "at", "by", "for", "with", "about", "into", "during", "before",
		"after", "to", "from", "up", "down", "in", "out", "on", "off", "over",

		"and", "or", "but", "if", "as", "than", "so",

		"is", "am", "are", "was", "were", "be", "been", "being",
		"has", "have", "had", "will", "would", "could", "can",

		"also", "which", "who", "when", "where", "all", "some", "no", "not",
	}

	stopWords := make(map[string]bool, len(words))
	for _, word := range words {
		stopWords[word] = true
	}
	return stopWords
}
