package analyzer

import (
	"strings"

	"github.com/geosearch/backend/snapshot"
)

const complexWordSyllables = 3

// TextReadabilityAnalyzer computes plain-text readability statistics from
// the pre-tokenized sentence and word lists: Flesch Reading Ease, average
// sentence length, and lexical complexity.
type TextReadabilityAnalyzer struct{}

// Analyze fails with InsufficientTextError when there are no sentences or
// words rather than dividing by zero.
func (a *TextReadabilityAnalyzer) Analyze(snap *snapshot.PageSnapshot) (Result, error) {
	if snap == nil || len(snap.Sentences) == 0 {
		return Result{}, InsufficientTextError{Reason: "no sentences in extracted text"}
	}
	if len(snap.Words) == 0 {
		return Result{}, InsufficientTextError{Reason: "no words in extracted text"}
	}

	totalSentences := float64(len(snap.Sentences))
	totalWords := float64(len(snap.Words))

	totalSyllables := 0
	complexWords := 0
	for _, word := range snap.Words {
		n := CountSyllables(word)
		totalSyllables += n
		if n >= complexWordSyllables {
			complexWords++
		}
	}

	// RE = 206.835 - 1.015*(words/sentence) - 84.6*(syllables/word).
	// The raw value is preserved on the metric; clamping happens at
	// normalization.
	flesch := 206.835 - 1.015*(totalWords/totalSentences) - 84.6*(float64(totalSyllables)/totalWords)
	avgSentenceLen := totalWords / totalSentences
	lexicalComplexity := float64(complexWords) / totalWords

	res := Result{
		Metrics: []RawMetric{
			OrdinalMetric(MetricFleschReadingEase, flesch),
			OrdinalMetric(MetricAvgSentenceLength, avgSentenceLen),
			RatioMetric(MetricLexicalComplexity, lexicalComplexity),
		},
	}
	if flesch < 30 {
		res.Findings = append(res.Findings, "text is very difficult to read (Flesch below 30)")
	}
	return res, nil
}

// CountSyllables estimates syllables by counting consecutive vowel groups,
// with the usual silent trailing-e adjustment and a minimum of one syllable
// per word.
func CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 1
	}

	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
