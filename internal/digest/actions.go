// Package digest implements the digest command: a user-supplied URL list
// is extracted, summarized, and written out as a copy-paste text block.
package digest

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/courtwire/newsdigest/internal/pipeline"
	"github.com/courtwire/newsdigest/models"
	"github.com/courtwire/newsdigest/pkg/detector"
	"github.com/courtwire/newsdigest/pkg/extractor"
	"github.com/courtwire/newsdigest/pkg/fetcher"
	"github.com/courtwire/newsdigest/pkg/formatter"
	"github.com/courtwire/newsdigest/pkg/storage"
	"github.com/courtwire/newsdigest/pkg/summarizer"
	"github.com/urfave/cli/v2"
)

// Action runs the digest pipeline.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	store := &storage.Storage{}

	cfg, err := loadConfig(store, c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	var urls, titles []string
	if c.IsSet("urls") {
		urls = splitList(c.String("urls"))
		titles = splitList(c.String("titles"))
	} else {
		urls, titles = PromptURLs(os.Stdin, os.Stdout)
	}
	if len(urls) == 0 {
		return cli.Exit("no URLs to process", 1)
	}

	// Handles are constructed once here and passed down; no package-level
	// client state.
	httpClient := &http.Client{}
	ext := extractor.New(fetcher.NewFetcher(httpClient), detector.New())
	gen := summarizer.NewGeminiClient(cfg.Summarizer.APIKey, cfg.Summarizer.Model, cfg.Summarizer.Endpoint, httpClient)
	svc := summarizer.NewService(gen, logger)

	articles := pipeline.New(ext, svc, logger).Run(c.Context, urls, titles)
	if len(articles) == 0 {
		fmt.Println("No articles were successfully processed.")
		return nil
	}

	outPath := cfg.Output.DigestFile
	if c.IsSet("output") {
		outPath = c.String("output")
	}

	f := formatter.New(store)
	content, err := f.WriteText(articles, outPath)
	if err != nil {
		logger.Error("failed to write digest artifact", "path", outPath, "error", err)
		return cli.Exit(err.Error(), 2)
	}

	// Surface the saved block for immediate review, re-read from disk so
	// what is shown is what the artifact actually holds.
	if saved, err := store.ReadFile(outPath); err == nil {
		content = string(saved)
	}
	fmt.Print(content)
	fmt.Printf("Saved %d articles to %s\n", len(articles), outPath)
	return nil
}

// loadConfig reads the config file when present; otherwise it falls back
// to defaults with the API key taken from the environment. Either way a
// missing key is a startup error, never a baked-in default.
func loadConfig(store *storage.Storage, path string) (*models.Config, error) {
	if store.HasFile(path) {
		return models.LoadConfig(path)
	}
	return models.FromEnv()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
