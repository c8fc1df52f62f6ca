// Package models defines the shared data structures of the digest pipeline.
package models

// Sentinel values used in place of absent or failed derivations.
const (
	// NoTitle is used when a page carries no top-level heading.
	NoTitle = "No Title"
	// SummaryUnavailable replaces the summary when the text-generation
	// call fails. The record is still kept.
	SummaryUnavailable = "Unable to generate summary"
)

// Article is the single record flowing through the pipeline. It is created
// by the extractor, enriched in place by the summarizer, and consumed
// read-only by the formatters. It lives only for the duration of one run.
type Article struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	ReadingTime int    `json:"reading_time"` // minutes, always >= 1
	Source      string `json:"source"`       // host component of URL
	Language    string `json:"language,omitempty"`
	Summary     string `json:"summary,omitempty"`
}
