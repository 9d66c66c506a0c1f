// Package tokenizer splits visible text into sentences and words using
// Unicode UAX #29 segmentation.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// Sentences returns the trimmed, non-empty sentences of text in order.
func Sentences(text string) []string {
	var out []string
	segs := sentences.FromString(text)
	for segs.Next() {
		s := strings.TrimSpace(segs.Value())
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Words returns the word tokens of text in order. UAX #29 emits whitespace
// and punctuation as their own segments; only tokens containing a letter or
// digit count as words.
func Words(text string) []string {
	var out []string
	segs := words.FromString(text)
	for segs.Next() {
		w := segs.Value()
		if isWord(w) {
			out = append(out, w)
		}
	}
	return out
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
