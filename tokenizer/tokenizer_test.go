package tokenizer

import (
	"reflect"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"two sentences",
			"The dog sat. The cat slept.",
			[]string{"The dog sat.", "The cat slept."},
		},
		{
			"abbreviation not a boundary",
			"Dr. Smith arrived early.",
			[]string{"Dr. Smith arrived early."},
		},
		{
			"question and exclamation",
			"Really? Yes!",
			[]string{"Really?", "Yes!"},
		},
		{"empty", "", nil},
		{"whitespace only", "   \n\t  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sentences(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"punctuation dropped",
			"Hello, world!",
			[]string{"Hello", "world"},
		},
		{
			"contraction stays whole",
			"don't stop",
			[]string{"don't", "stop"},
		},
		{
			"digits count",
			"version 2 shipped",
			[]string{"version", "2", "shipped"},
		},
		{"empty", "", nil},
		{"only punctuation", "... !!! ---", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Words(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
