package digest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptURLs collects URLs and optional per-URL custom titles from r,
// prompting on w. An empty URL line ends the list.
func PromptURLs(r io.Reader, w io.Writer) (urls, titles []string) {
	scanner := bufio.NewScanner(r)
	fmt.Fprintln(w, "Enter article URLs (press Enter without typing to finish):")

	for {
		fmt.Fprint(w, "URL: ")
		if !scanner.Scan() {
			break
		}
		url := strings.TrimSpace(scanner.Text())
		if url == "" {
			break
		}

		fmt.Fprint(w, "Custom Title (optional, press Enter to skip): ")
		var title string
		if scanner.Scan() {
			title = strings.TrimSpace(scanner.Text())
		}

		urls = append(urls, url)
		titles = append(titles, title)
	}
	return urls, titles
}
