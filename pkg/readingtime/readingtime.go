// Package readingtime estimates how long an article takes to read.
package readingtime

import (
	"math"
	"regexp"
)

// WordsPerMinute is the assumed average reading speed.
const WordsPerMinute = 250

// wordRegex matches maximal runs of Unicode word characters.
var wordRegex = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Estimate returns the reading time of text in whole minutes, rounded to
// the nearest minute and never below 1. Exact half minutes round up
// (625 words is 3 min, not 2). Pure function, no I/O.
func Estimate(text string) int {
	words := wordRegex.FindAllString(text, -1)
	minutes := int(math.Round(float64(len(words)) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
