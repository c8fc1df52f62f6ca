// Package formatter renders collected article records into the run's
// output artifacts: a copy-paste friendly plain-text block and an HTML
// newsletter draft.
package formatter

import (
	"fmt"
	"strings"

	"github.com/courtwire/newsdigest/models"
	"github.com/courtwire/newsdigest/pkg/storage"
)

// Formatter renders article records and persists the result.
type Formatter struct {
	store *storage.Storage
}

func New(store *storage.Storage) *Formatter {
	return &Formatter{store: store}
}

// Text renders one stanza per record, in sequence order, ready to paste
// into a campaign editor.
func (f *Formatter) Text(articles []models.Article) string {
	var sb strings.Builder
	for _, a := range articles {
		sb.WriteString(fmt.Sprintf("Title: %s\n", a.Title))
		sb.WriteString(fmt.Sprintf("Summary: %s\n", a.Summary))
		sb.WriteString(fmt.Sprintf("Reading Time: %d min\n", a.ReadingTime))
		sb.WriteString(fmt.Sprintf("Full Article: %s\n\n", a.URL))
	}
	return sb.String()
}

// WriteText persists the plain-text block to path and returns the
// rendered content so the caller can surface it for review.
func (f *Formatter) WriteText(articles []models.Article, path string) (string, error) {
	content := f.Text(articles)
	if err := f.store.SaveFile(path, []byte(content)); err != nil {
		return "", err
	}
	return content, nil
}
