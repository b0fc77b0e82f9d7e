package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations must be safe for concurrent use so a single instance can be
// shared between the collection build and ad-hoc rendering.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	// Extensions lists named Goldmark extensions to enable (e.g. "autolink", "table").
	Extensions []string
	// HighlightTheme selects the chroma style applied to fenced code blocks.
	// Empty disables syntax highlighting.
	HighlightTheme string
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// SafeMode suppresses raw HTML passthrough in the rendered output.
	SafeMode bool
}

// FrontMatter models the metadata block accompanying each Markdown source
// file. Only the recognised keys are promoted to fields; everything else is
// preserved in Custom so callers can inspect it without the parser taking a
// position on its meaning.
type FrontMatter struct {
	Author  string         `yaml:"author" json:"author"`
	Title   string         `yaml:"title" json:"title"`
	Summary string         `yaml:"summary" json:"summary"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
}
