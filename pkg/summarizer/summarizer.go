// Package summarizer produces newsletter summaries of article text through
// an external text-generation service.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/courtwire/newsdigest/models"
)

// maxPromptChars bounds how much article text goes into the prompt. This
// is a hard character cut, not token-aware.
const maxPromptChars = 10000

// exampleSummary is the worked example included in every prompt to pin
// down length and register.
const exampleSummary = "British number one Katie Boulter will climb into the world's top 25 for the first time after reaching the final of the Hong Kong Open. She eventually lost in the final to Russian top seed Diana Shnaider 6-2 6-1 and missed out on a third WTA title of the year. Boulter is next set to represent Great Britain at the Billie Jean King Cup Finals on 15 November."

// Generator is the text-generation collaborator: one prompt in, one
// completion out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service wraps a Generator with the newsletter prompt. Summarization
// failure is always recoverable: callers get the sentinel, never an error.
type Service struct {
	gen    Generator
	logger *slog.Logger
}

// NewService builds a summarization service. A nil logger discards logs.
func NewService(gen Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{gen: gen, logger: logger}
}

// Summarize produces a short summary of text, optionally anchored to a
// custom title. On any generator failure it returns
// models.SummaryUnavailable instead of propagating the error.
func (s *Service) Summarize(ctx context.Context, text, customTitle string) string {
	prompt := buildPrompt(text, customTitle)

	summary, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("summarization failed", "error", err)
		return models.SummaryUnavailable
	}
	return strings.TrimSpace(summary)
}

// buildPrompt assembles the fixed instruction template around the first
// maxPromptChars characters of text.
func buildPrompt(text, customTitle string) string {
	truncated := truncateChars(text, maxPromptChars)

	var sb strings.Builder
	if customTitle != "" {
		sb.WriteString(fmt.Sprintf("Article Title: %s\n", customTitle))
	}
	sb.WriteString("Please provide a summary of the following article text for my tennis newsletter.\n")
	sb.WriteString("The summary should be no more than 1 paragraph and around 3-4 sentences, capturing the key points and main message. Here is an example summary:\n\n")
	sb.WriteString(exampleSummary)
	sb.WriteString("\n\nArticle text:\n")
	sb.WriteString(truncated)
	return sb.String()
}

// truncateChars cuts s to at most n characters (runes, not bytes).
func truncateChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
