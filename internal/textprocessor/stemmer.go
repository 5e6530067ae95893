package textprocessor

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

type Stemmer struct {
	language string
}

func NewStemmer() *Stemmer {
	return &Stemmer{language: "english"}
}

// Stem leaves designators and tokens containing digits untouched so that
// "starlink-15" and "v1" survive intact.
func (s *Stemmer) Stem(word string) string {
	if strings.ContainsFunc(word, func(r rune) bool { return r == '-' || unicode.IsDigit(r) }) {
		return word
	}
	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil {
		return word
	}
	return stemmed
}
