package textprocessor

import (
	"github.com/deidaraiorek/launchboard/internal/tokenizer"
)

type TextProcessor struct {
	tokenizer *tokenizer.Tokenizer
	stemmer   *Stemmer
}

func NewTextProcessor() *TextProcessor {
	return &TextProcessor{
		tokenizer: tokenizer.NewTokenizer(),
		stemmer:   NewStemmer(),
	}
}

func (tp *TextProcessor) Process(text string) []string {
	tokens := tp.tokenizer.Tokenize(text)

	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed[i] = tp.stemmer.Stem(token)
	}
	return stemmed
}

func (tp *TextProcessor) ProcessToFrequency(text string) map[string]int {
	freq := make(map[string]int)
	for _, token := range tp.Process(text) {
		freq[token]++
	}
	return freq
}

// LaunchFields is the searchable text of one launch card.
type LaunchFields struct {
	Mission string
	Rocket  string
	Details string
}

type Weights struct {
	Mission int
	Rocket  int
	Details int
}

func DefaultWeights() Weights {
	return Weights{Mission: 3, Rocket: 2, Details: 1}
}

type ProcessedDocument struct {
	TermFrequencies map[string]int
	TotalTerms      int
	UniqueTerms     int
}

func (tp *TextProcessor) ProcessLaunch(doc LaunchFields, w Weights) ProcessedDocument {
	termFreq := make(map[string]int)

	tp.addWeighted(termFreq, doc.Mission, w.Mission)
	tp.addWeighted(termFreq, doc.Rocket, w.Rocket)
	tp.addWeighted(termFreq, doc.Details, w.Details)

	totalTerms := 0
	for _, freq := range termFreq {
		totalTerms += freq
	}

	return ProcessedDocument{
		TermFrequencies: termFreq,
		TotalTerms:      totalTerms,
		UniqueTerms:     len(termFreq),
	}
}

func (tp *TextProcessor) addWeighted(termFreq map[string]int, text string, weight int) {
	if text == "" || weight <= 0 {
		return
	}
	for term, freq := range tp.ProcessToFrequency(text) {
		termFreq[term] += freq * weight
	}
}
