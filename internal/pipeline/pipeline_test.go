package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/courtwire/newsdigest/models"
)

type fakeExtractor struct {
	failing map[string]bool
}

func (f *fakeExtractor) Extract(ctx context.Context, url string) (*models.Article, error) {
	if f.failing[url] {
		return nil, errors.New("fetch failed")
	}
	return &models.Article{
		URL:         url,
		Title:       "title for " + url,
		Text:        "body for " + url,
		ReadingTime: 1,
		Source:      "example.com",
	}, nil
}

type fakeSummarizer struct {
	titles []string
	fail   bool
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text, customTitle string) string {
	f.titles = append(f.titles, customTitle)
	if f.fail {
		return models.SummaryUnavailable
	}
	return "summary of " + text
}

func TestRun_SkipsFailedURLPreservesOrder(t *testing.T) {
	e := &fakeExtractor{failing: map[string]bool{"B": true}}
	p := New(e, &fakeSummarizer{}, nil)

	got := p.Run(context.Background(), []string{"A", "B", "C"}, nil)

	if len(got) != 2 {
		t.Fatalf("Run() returned %d records, want 2", len(got))
	}
	if got[0].URL != "A" || got[1].URL != "C" {
		t.Errorf("Run() order = [%s, %s], want [A, C]", got[0].URL, got[1].URL)
	}
}

func TestRun_SummarizationFailureKeepsRecord(t *testing.T) {
	p := New(&fakeExtractor{}, &fakeSummarizer{fail: true}, nil)

	got := p.Run(context.Background(), []string{"A"}, nil)

	if len(got) != 1 {
		t.Fatalf("Run() returned %d records, want 1", len(got))
	}
	if got[0].Summary != models.SummaryUnavailable {
		t.Errorf("Summary = %q, want sentinel", got[0].Summary)
	}
}

func TestRun_PairsCustomTitlesByIndex(t *testing.T) {
	s := &fakeSummarizer{}
	p := New(&fakeExtractor{}, s, nil)

	p.Run(context.Background(), []string{"A", "B"}, []string{"Custom A"})

	want := []string{"Custom A", ""}
	if len(s.titles) != len(want) {
		t.Fatalf("summarizer called %d times, want %d", len(s.titles), len(want))
	}
	for i := range want {
		if s.titles[i] != want[i] {
			t.Errorf("custom title[%d] = %q, want %q", i, s.titles[i], want[i])
		}
	}
}

func TestRun_EmptyURLList(t *testing.T) {
	p := New(&fakeExtractor{}, &fakeSummarizer{}, nil)

	if got := p.Run(context.Background(), nil, nil); len(got) != 0 {
		t.Errorf("Run() returned %d records, want 0", len(got))
	}
}

func TestRun_AttachesSummary(t *testing.T) {
	p := New(&fakeExtractor{}, &fakeSummarizer{}, nil)

	got := p.Run(context.Background(), []string{"A"}, nil)
	if got[0].Summary != "summary of body for A" {
		t.Errorf("Summary = %q, want enriched summary", got[0].Summary)
	}
}
