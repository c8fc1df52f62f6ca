package formatter

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/courtwire/newsdigest/models"
)

// newsletterTemplate is a fixed document: one block per record with a
// linked title, a source line, and the summary text.
var newsletterTemplate = template.Must(template.New("newsletter").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Tennis Newsletter Draft</title>
</head>
<body>
<h1>Tennis Newsletter Draft</h1>
{{range .}}<div class="article">
<h2><a href="{{.URL}}">{{.Title}}</a></h2>
<p class="source">{{.Source}} &middot; {{.ReadingTime}} min read</p>
<p>{{.Summary}}</p>
</div>
{{end}}</body>
</html>
`))

// HTML renders the newsletter draft document for the given records.
func (f *Formatter) HTML(articles []models.Article) ([]byte, error) {
	var buf bytes.Buffer
	if err := newsletterTemplate.Execute(&buf, articles); err != nil {
		return nil, fmt.Errorf("failed to render newsletter: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteHTML persists the rendered newsletter draft to path.
func (f *Formatter) WriteHTML(articles []models.Article, path string) error {
	content, err := f.HTML(articles)
	if err != nil {
		return err
	}
	return f.store.SaveFile(path, content)
}
