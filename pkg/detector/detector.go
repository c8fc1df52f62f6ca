// Package detector classifies the language of extracted article text.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// candidateLanguages keeps the lingua model set small; these cover the
// tennis press the pipeline is pointed at.
var candidateLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.Spanish,
	lingua.Italian,
	lingua.German,
}

// Detector wraps a lingua language detector.
type Detector struct {
	inner lingua.LanguageDetector
}

// New builds a detector over the candidate language set.
func New() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidateLanguages...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the most likely language of text,
// or empty string when no language can be determined.
func (d *Detector) Detect(text string) string {
	if text == "" {
		return ""
	}
	language, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
