package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

// Config aliases re-export the runtime configuration types so callers only
// import the root package.
type (
	Config         = runtimeconfig.Config
	SiteConfig     = runtimeconfig.SiteConfig
	ContentConfig  = runtimeconfig.ContentConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	ServerConfig   = runtimeconfig.ServerConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the baseline configuration: Markdown sources under
// ./posts, autolink and table extensions enabled, and the server bound to
// :4000.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
