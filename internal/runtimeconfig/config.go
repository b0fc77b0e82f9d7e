package runtimeconfig

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config aggregates runtime settings for the blog module. Fields intentionally
// use simple types so host applications can unmarshal them from flags, env
// vars, or config files without adapters.
type Config struct {
	Site     SiteConfig
	Content  ContentConfig
	Markdown MarkdownConfig
	Server   ServerConfig
	Logging  LoggingConfig
}

// SiteConfig captures site-wide presentation metadata surfaced on pages and feeds.
type SiteConfig struct {
	Title       string
	Description string
	Author      string
	BaseURL     string
}

// ContentConfig selects the Markdown sources the post collection is built from.
type ContentConfig struct {
	// Dir is the directory holding post source files.
	Dir string
	// Pattern is the glob applied when discovering sources within Dir.
	Pattern string
}

// MarkdownConfig captures parser behaviour for Markdown rendering. The values
// are passed through to the parser unchanged; they are presentation options,
// not ingestion semantics.
type MarkdownConfig struct {
	Extensions     []string
	HighlightTheme string
	HardWraps      bool
	SafeMode       bool
}

// ServerConfig captures HTTP serving options.
type ServerConfig struct {
	Address string
	// HomePostCount bounds how many recent posts the root page shows.
	HomePostCount int
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the baseline configuration: autolink and table
// extensions with a fixed highlight theme, content sourced from ./posts.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Title:   "Blog",
			BaseURL: "http://localhost:4000",
		},
		Content: ContentConfig{
			Dir:     "posts",
			Pattern: "*.md",
		},
		Markdown: MarkdownConfig{
			Extensions:     []string{"autolink", "table"},
			HighlightTheme: "monokai",
		},
		Server: ServerConfig{
			Address:       ":4000",
			HomePostCount: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration before the module boots. Build-time
// configuration problems are fatal, matching the fail-fast ingestion policy.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c.Site,
		validation.Field(&c.Site.Title, validation.Required),
		validation.Field(&c.Site.BaseURL, validation.Required, is.URL),
	); err != nil {
		return err
	}

	if err := validation.ValidateStruct(&c.Content,
		validation.Field(&c.Content.Dir, validation.Required),
	); err != nil {
		return err
	}

	return validation.ValidateStruct(&c.Server,
		validation.Field(&c.Server.Address, validation.Required),
		validation.Field(&c.Server.HomePostCount, validation.Min(0)),
	)
}
