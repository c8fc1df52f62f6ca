// Package pipeline drives URL lists through extraction and summarization.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/courtwire/newsdigest/models"
)

// ArticleExtractor derives a record from an article URL.
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (*models.Article, error)
}

// Summarizer produces a summary string for body text. Implementations
// never fail; they return the summary sentinel instead.
type Summarizer interface {
	Summarize(ctx context.Context, text, customTitle string) string
}

// Pipeline is the batch orchestrator. Processing is deliberately
// sequential and synchronous: URL counts are low and ordering matters.
type Pipeline struct {
	extractor  ArticleExtractor
	summarizer Summarizer
	logger     *slog.Logger
}

// New wires the orchestrator. A nil logger discards logs.
func New(e ArticleExtractor, s Summarizer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{extractor: e, summarizer: s, logger: logger}
}

// Run processes urls in order. Extraction failures are logged and skipped;
// summarization failures keep the record with a sentinel summary. The
// result preserves input order among successes. customTitles pairs by
// index; a missing or empty entry means no custom title for that URL.
func (p *Pipeline) Run(ctx context.Context, urls []string, customTitles []string) []models.Article {
	var articles []models.Article

	for i, url := range urls {
		article, err := p.extractor.Extract(ctx, url)
		if err != nil {
			p.logger.Error("skipping URL", "url", url, "error", err)
			continue
		}

		var customTitle string
		if i < len(customTitles) {
			customTitle = customTitles[i]
		}

		article.Summary = p.summarizer.Summarize(ctx, article.Text, customTitle)
		articles = append(articles, *article)
		p.logger.Info("processed article", "url", url, "title", article.Title, "reading_time", article.ReadingTime)
	}

	return articles
}
