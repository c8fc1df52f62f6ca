// Package listing discovers article links on configured listing pages and
// parses the linked articles through go-readability. It fills the
// extractor/summarizer role for the newsletter draft workflow, where no
// text-generation call is made.
package listing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/courtwire/newsdigest/models"
	"github.com/courtwire/newsdigest/pkg/extractor"
	"github.com/courtwire/newsdigest/pkg/fetcher"
	"github.com/courtwire/newsdigest/pkg/readingtime"
	readability "github.com/go-shiori/go-readability"
)

// ErrNoLinks indicates a listing page where the configured selector
// matched nothing. Usually a sign the selector needs a config update.
var ErrNoLinks = errors.New("no article links found")

// Scraper walks listing pages and their linked articles.
type Scraper struct {
	fetcher *fetcher.Fetcher
}

func NewScraper(f *fetcher.Fetcher) *Scraper {
	return &Scraper{fetcher: f}
}

// Links fetches a listing page and returns the article URLs it links to,
// resolved against the listing URL, deduplicated within the page, and
// capped at the source's max.
func (s *Scraper) Links(ctx context.Context, source models.SourceConfig) ([]string, error) {
	doc, err := s.fetcher.GetDocument(ctx, source.URL)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(source.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid listing URL %q: %w", source.URL, err)
	}

	var links []string
	seen := make(map[string]struct{})
	doc.Find(source.LinkSelector).Each(func(i int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref).String()
		if _, dup := seen[resolved]; dup {
			return
		}
		seen[resolved] = struct{}{}
		links = append(links, resolved)
	})

	if len(links) == 0 {
		return nil, fmt.Errorf("%w on %s with selector %q", ErrNoLinks, source.URL, source.LinkSelector)
	}
	if source.MaxArticles > 0 && len(links) > source.MaxArticles {
		links = links[:source.MaxArticles]
	}
	return links, nil
}

// ParseArticle fetches an article URL and derives a record through the
// readability parser. The excerpt stands in for the summary; when the
// parser yields none, the record carries the summary sentinel.
func (s *Scraper) ParseArticle(ctx context.Context, rawURL string) (*models.Article, error) {
	body, err := s.fetcher.GetBytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid article URL %q: %w", rawURL, err)
	}

	parsed, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, fmt.Errorf("readability parse failed for %s: %w", rawURL, err)
	}
	if parsed.TextContent == "" {
		return nil, fmt.Errorf("%w from %s", extractor.ErrNoContent, rawURL)
	}

	source, err := extractor.SourceFromURL(rawURL)
	if err != nil {
		return nil, err
	}

	title := parsed.Title
	if title == "" {
		title = models.NoTitle
	}
	summary := parsed.Excerpt
	if summary == "" {
		summary = models.SummaryUnavailable
	}

	return &models.Article{
		URL:         rawURL,
		Title:       title,
		Text:        parsed.TextContent,
		ReadingTime: readingtime.Estimate(parsed.TextContent),
		Source:      source,
		Summary:     summary,
	}, nil
}
