package main

import (
	"log"
	"os"

	"github.com/courtwire/newsdigest/internal/digest"
	"github.com/courtwire/newsdigest/internal/newsletter"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "newsdigest",
		Usage: "fetch, summarize, and format tennis news for a newsletter",
		Commands: []*cli.Command{
			{
				Name:  "digest",
				Usage: "summarize a list of article URLs into a copy-paste text block",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "comma-separated article URLs (omit to be prompted)",
					},
					&cli.StringFlag{
						Name:  "titles",
						Usage: "comma-separated custom titles, paired with --urls by position",
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yaml",
						Usage: "path to config file",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "override the output artifact path",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: digest.Action,
			},
			{
				Name:  "newsletter",
				Usage: "scrape configured listing pages into an HTML newsletter draft",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yaml",
						Usage: "path to config file",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "override the output artifact path",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: newsletter.Action,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
