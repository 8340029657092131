package language

import (
	"fmt"
	"regexp"
	"strings"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// jargonIndicators are business buzzwords that hurt readability when stacked.
var jargonIndicators = []string{
	"synergy", "leverage", "paradigm", "holistic", "ecosystem", "scalable", "robust",
}

// Readability scores a text from 0 to 100 and returns notes explaining each
// deduction. Long sentences, long paragraphs and jargon density all cost
// points; an empty text scores 100.
func Readability(text string) (int, []string) {
	score := 100
	var notes []string
	if text == "" {
		return score, notes
	}

	var longSentences int
	for _, s := range sentenceSplit.Split(text, -1) {
		if len(strings.Fields(s)) > 25 {
			longSentences++
		}
	}
	if longSentences > 0 {
		penalty := longSentences * 5
		if penalty > 20 {
			penalty = 20
		}
		score -= penalty
		notes = append(notes, fmt.Sprintf(
			"Found %d sentences with more than 25 words. Consider breaking them up.", longSentences))
	}

	var longParagraphs int
	for _, p := range strings.Split(text, "\n\n") {
		if len(strings.Fields(p)) > 100 {
			longParagraphs++
		}
	}
	if longParagraphs > 0 {
		penalty := longParagraphs * 5
		if penalty > 15 {
			penalty = 15
		}
		score -= penalty
		notes = append(notes, fmt.Sprintf(
			"Found %d paragraphs with more than 100 words. Consider adding more structure.", longParagraphs))
	}

	lower := strings.ToLower(text)
	var jargon int
	for _, j := range jargonIndicators {
		if strings.Contains(lower, j) {
			jargon++
		}
	}
	if jargon > 2 {
		score -= 10
		notes = append(notes, "High density of business jargon detected. Consider using simpler language.")
	}

	if score < 0 {
		score = 0
	}
	return score, notes
}
