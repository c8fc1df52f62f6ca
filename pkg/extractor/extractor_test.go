package extractor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/courtwire/newsdigest/models"
	"github.com/courtwire/newsdigest/pkg/fetcher"
)

func newTestExtractor(t *testing.T, handler http.HandlerFunc) (*Extractor, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(fetcher.NewFetcher(server.Client()), nil), server
}

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func TestExtract_NotFoundProducesNoRecord(t *testing.T) {
	e, server := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	article, err := e.Extract(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Extract() error = nil, want fetch failure")
	}
	if article != nil {
		t.Errorf("Extract() article = %+v, want nil", article)
	}
}

func TestExtract_TitleAndBody(t *testing.T) {
	const page = `<html><body>
		<h1> Boulter reaches final </h1>
		<p>First paragraph.</p>
		<p>   </p>
		<p>Second paragraph.</p>
	</body></html>`
	e, server := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	})

	article, err := e.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if article.Title != "Boulter reaches final" {
		t.Errorf("Title = %q, want %q", article.Title, "Boulter reaches final")
	}
	if article.Text != "First paragraph. Second paragraph." {
		t.Errorf("Text = %q, want joined paragraphs", article.Text)
	}
	if article.ReadingTime != 1 {
		t.Errorf("ReadingTime = %d, want 1", article.ReadingTime)
	}
}

func TestFromDocument_MissingHeadingUsesSentinel(t *testing.T) {
	doc := docFromHTML(t, "<html><body><p>Body only.</p></body></html>")
	e := New(nil, nil)

	article, err := e.FromDocument(doc, "https://example.com/a/b")
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	if article.Title != models.NoTitle {
		t.Errorf("Title = %q, want %q", article.Title, models.NoTitle)
	}
}

func TestFromDocument_EmptyBodyIsNoContent(t *testing.T) {
	doc := docFromHTML(t, "<html><body><h1>Only a heading</h1></body></html>")
	e := New(nil, nil)

	_, err := e.FromDocument(doc, "https://example.com/a/b")
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("FromDocument() error = %v, want ErrNoContent", err)
	}
}

func TestNormalizeText_LongSingleLine(t *testing.T) {
	// A single line well past 64KiB must come through whole.
	line := strings.Repeat("a", 80*1024)

	if got := normalizeText(line + "\n"); got != line {
		t.Errorf("normalizeText() length = %d, want %d", len(got), len(line))
	}
}

func TestNormalizeText_JoinsTrimmedLines(t *testing.T) {
	got := normalizeText("  first \n\n  second  \n")

	if got != "first second" {
		t.Errorf("normalizeText() = %q, want %q", got, "first second")
	}
}

func TestSourceFromURL(t *testing.T) {
	got, err := SourceFromURL("https://example.com/a/b")
	if err != nil {
		t.Fatalf("SourceFromURL() error = %v", err)
	}
	if got != "example.com" {
		t.Errorf("SourceFromURL() = %q, want %q", got, "example.com")
	}
}

func TestSourceFromURL_TooFewSegments(t *testing.T) {
	if _, err := SourceFromURL("example.com"); err == nil {
		t.Error("SourceFromURL() error = nil, want error for short URL")
	}
}
