package models

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration for both pipeline variants.
type Config struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Output     OutputConfig     `yaml:"output"`
	Sources    []SourceConfig   `yaml:"sources"`
	// Language restricts the newsletter variant to articles detected in
	// the given ISO 639-1 language. Empty means no filter.
	Language string `yaml:"language"`
}

// SummarizerConfig configures the text-generation collaborator.
type SummarizerConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
	// Endpoint overrides the API base URL, mainly for tests.
	Endpoint string `yaml:"endpoint"`
}

// OutputConfig names the artifacts written by the formatters.
type OutputConfig struct {
	DigestFile     string `yaml:"digest_file"`
	NewsletterFile string `yaml:"newsletter_file"`
}

// SourceConfig describes one listing page for the newsletter variant.
// Selectors are per-source configuration, not hardcoded constants, so a
// site redesign is a config edit rather than a rebuild.
type SourceConfig struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	LinkSelector string `yaml:"link_selector"`
	MaxArticles  int    `yaml:"max_articles"`
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

// LoadConfig reads, expands, defaults, and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	setDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a defaulted config with the API key taken from the
// GEMINI_API_KEY environment variable, for runs without a config file.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	cfg.Summarizer.APIKey = os.Getenv("GEMINI_API_KEY")
	setDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Summarizer.Model == "" {
		cfg.Summarizer.Model = "gemini-1.5-flash"
	}
	if cfg.Output.DigestFile == "" {
		cfg.Output.DigestFile = "mailchimp_article_summaries.txt"
	}
	if cfg.Output.NewsletterFile == "" {
		cfg.Output.NewsletterFile = "newsletter_draft.html"
	}
	for i := range cfg.Sources {
		if cfg.Sources[i].MaxArticles == 0 {
			cfg.Sources[i].MaxArticles = 5
		}
		if cfg.Sources[i].LinkSelector == "" {
			cfg.Sources[i].LinkSelector = "a.article-item, a.article-link"
		}
	}
}

func validate(cfg *Config) error {
	// Fail closed: a missing API key is a startup error, never a
	// fallback to a baked-in credential.
	if cfg.Summarizer.APIKey == "" || envVarRegex.MatchString(cfg.Summarizer.APIKey) {
		return fmt.Errorf("config: summarizer.api_key is required (set GEMINI_API_KEY env var)")
	}
	for _, s := range cfg.Sources {
		if s.URL == "" {
			return fmt.Errorf("config: source %q has no url", s.Name)
		}
	}
	return nil
}
