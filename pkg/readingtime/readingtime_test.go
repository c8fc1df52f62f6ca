package readingtime

import (
	"strings"
	"testing"
)

func TestEstimate_ExactlyOneMinute(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 250))

	if got := Estimate(text); got != 1 {
		t.Errorf("Estimate() = %d, want 1", got)
	}
}

func TestEstimate_EmptyTextFloorsAtOne(t *testing.T) {
	if got := Estimate(""); got != 1 {
		t.Errorf("Estimate(\"\") = %d, want 1", got)
	}
}

func TestEstimate_RoundsToNearest(t *testing.T) {
	// 751 words / 250 wpm = 3.004 -> 3
	text := strings.Repeat("word ", 751)

	if got := Estimate(text); got != 3 {
		t.Errorf("Estimate() = %d, want 3", got)
	}
}

func TestEstimate_HalfMinuteRoundsUp(t *testing.T) {
	// 625 words / 250 wpm = 2.5 -> 3
	text := strings.Repeat("word ", 625)

	if got := Estimate(text); got != 3 {
		t.Errorf("Estimate() = %d, want 3", got)
	}
}

func TestEstimate_PunctuationIsNotAWord(t *testing.T) {
	if got := Estimate("... --- !!!"); got != 1 {
		t.Errorf("Estimate() = %d, want 1", got)
	}
}

func TestEstimate_UnicodeWords(t *testing.T) {
	// Non-ASCII letters still count as word tokens.
	text := strings.Repeat("tennis señor 錦織 ", 100) // 300 tokens -> round(1.2) = 1
	if got := Estimate(text); got != 1 {
		t.Errorf("Estimate() = %d, want 1", got)
	}
}
