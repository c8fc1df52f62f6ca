// Package newsletter implements the newsletter command: configured listing
// pages are scraped for article links, the articles are parsed through
// readability, and the result is rendered as an HTML draft.
package newsletter

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/courtwire/newsdigest/models"
	"github.com/courtwire/newsdigest/pkg/detector"
	"github.com/courtwire/newsdigest/pkg/fetcher"
	"github.com/courtwire/newsdigest/pkg/formatter"
	"github.com/courtwire/newsdigest/pkg/listing"
	"github.com/courtwire/newsdigest/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Action runs the newsletter draft workflow.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if len(cfg.Sources) == 0 {
		return cli.Exit("config: no listing sources configured", 1)
	}

	scraper := listing.NewScraper(fetcher.NewFetcher(&http.Client{}))
	var langDetector *detector.Detector
	if cfg.Language != "" {
		langDetector = detector.New()
	}

	var articles []models.Article
	for _, source := range cfg.Sources {
		links, err := scraper.Links(c.Context, source)
		if err != nil {
			logger.Error("skipping source", "source", source.Name, "error", err)
			continue
		}
		logger.Info("scraped listing", "source", source.Name, "links", len(links))

		for _, link := range links {
			article, err := scraper.ParseArticle(c.Context, link)
			if err != nil {
				logger.Error("skipping article", "url", link, "error", err)
				continue
			}
			if langDetector != nil {
				article.Language = langDetector.Detect(article.Text)
				if article.Language != cfg.Language {
					logger.Info("skipping article in other language", "url", link, "language", article.Language)
					continue
				}
			}
			articles = append(articles, *article)
		}
	}

	if len(articles) == 0 {
		fmt.Println("No articles were successfully processed.")
		return nil
	}

	outPath := cfg.Output.NewsletterFile
	if c.IsSet("output") {
		outPath = c.String("output")
	}

	f := formatter.New(&storage.Storage{})
	if err := f.WriteHTML(articles, outPath); err != nil {
		logger.Error("failed to write newsletter draft", "path", outPath, "error", err)
		return cli.Exit(err.Error(), 2)
	}

	fmt.Printf("Saved %d articles to %s\n", len(articles), outPath)
	return nil
}
