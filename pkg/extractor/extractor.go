// Package extractor turns article pages into structured records.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/courtwire/newsdigest/models"
	"github.com/courtwire/newsdigest/pkg/fetcher"
	"github.com/courtwire/newsdigest/pkg/readingtime"
)

// ErrNoContent indicates a page that yielded no body text. The caller
// drops the record instead of keeping it in an invalid state.
var ErrNoContent = errors.New("no text extracted")

// LanguageDetector classifies the language of extracted body text.
type LanguageDetector interface {
	Detect(text string) string
}

// Extractor fetches article pages and derives Article records from them.
type Extractor struct {
	fetcher  *fetcher.Fetcher
	detector LanguageDetector
}

// New builds an Extractor around the given fetcher. The detector may be
// nil, in which case records carry no language annotation.
func New(f *fetcher.Fetcher, d LanguageDetector) *Extractor {
	return &Extractor{fetcher: f, detector: d}
}

// Extract performs a single GET against url and derives a record from the
// response. Any failure (status, transport, empty body text) returns an
// error and no record; the batch is expected to continue with the next URL.
func (e *Extractor) Extract(ctx context.Context, url string) (*models.Article, error) {
	doc, err := e.fetcher.GetDocument(ctx, url)
	if err != nil {
		return nil, err
	}
	return e.FromDocument(doc, url)
}

// FromDocument derives a record from an already-parsed document.
func (e *Extractor) FromDocument(doc *goquery.Document, url string) (*models.Article, error) {
	title := models.NoTitle
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		if t := normalizeText(h1.Text()); t != "" {
			title = t
		}
	}

	// Concatenate visible text of paragraph- and article-level elements,
	// one space between non-empty fragments.
	var fragments []string
	doc.Find("p,article").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			fragments = append(fragments, text)
		}
	})
	text := strings.Join(fragments, " ")
	if text == "" {
		return nil, fmt.Errorf("%w from %s", ErrNoContent, url)
	}

	source, err := SourceFromURL(url)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		URL:         url,
		Title:       title,
		Text:        text,
		ReadingTime: readingtime.Estimate(text),
		Source:      source,
	}
	if e.detector != nil {
		article.Language = e.detector.Detect(text)
	}
	return article, nil
}

// SourceFromURL returns the host component of url. The direct slash-split
// at index 2 is part of the observed contract, not a shortcut to replace
// with url.Parse.
func SourceFromURL(url string) (string, error) {
	parts := strings.Split(url, "/")
	if len(parts) < 3 {
		return "", fmt.Errorf("cannot derive source from %q", url)
	}
	return parts[2], nil
}

// normalizeText cleans up a string by trimming space and removing excess
// newlines. Lines are split directly so arbitrarily long single-line pages
// are kept whole.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
