// Package blog assembles the content pipeline: it validates configuration,
// builds the immutable post collection from a directory of Markdown sources,
// and exposes the collection for the web layer to serve. The build happens
// exactly once, at construction; everything afterwards is read-only.
package blog

import (
	"context"
	"io/fs"
	"os"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Module holds the built post collection and the configuration it was built
// from. A Module is immutable after New returns.
type Module struct {
	cfg        runtimeconfig.Config
	collection *posts.Collection
	logger     interfaces.Logger
}

type options struct {
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser
	fsys     fs.FS
}

// Option customises module construction.
type Option func(*options)

// WithLoggerProvider supplies the logger provider used for build and serve
// logging. Without it the module stays silent.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithParser overrides the Markdown parser used during the build. Useful for
// tests that want deterministic rendering.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(o *options) {
		o.parser = parser
	}
}

// WithFilesystem overrides the source filesystem. Defaults to os.DirFS rooted
// at the configured content directory.
func WithFilesystem(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// New validates the configuration, builds the post collection through the
// build command, and returns the assembled module. Any malformed source fails
// the whole build; a blog that silently drops posts is worse than one that
// refuses to boot.
func New(ctx context.Context, cfg runtimeconfig.Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := logging.NoOp()
	if o.provider != nil {
		logger = logging.PostsLogger(o.provider)
	}

	fsys := o.fsys
	if fsys == nil {
		fsys = os.DirFS(cfg.Content.Dir)
	}

	parseOpts := interfaces.ParseOptions{
		Extensions:     cfg.Markdown.Extensions,
		HighlightTheme: cfg.Markdown.HighlightTheme,
		HardWraps:      cfg.Markdown.HardWraps,
		SafeMode:       cfg.Markdown.SafeMode,
	}

	var collection *posts.Collection
	handler := commands.NewBuildHandler(func(ctx context.Context, msg commands.BuildPostsCommand) error {
		built, err := posts.Build(ctx, posts.BuildConfig{
			FS:           fsys,
			Pattern:      msg.Pattern,
			Parser:       o.parser,
			ParseOptions: parseOpts,
			Logger:       logger,
		})
		if err != nil {
			return err
		}
		collection = built
		return nil
	}, commands.WithLogger(logger))

	msg := commands.BuildPostsCommand{
		Directory: cfg.Content.Dir,
		Pattern:   cfg.Content.Pattern,
	}
	if err := handler.Execute(ctx, msg); err != nil {
		return nil, err
	}

	return &Module{
		cfg:        cfg,
		collection: collection,
		logger:     logger,
	}, nil
}

// Posts returns the built collection.
func (m *Module) Posts() *posts.Collection {
	return m.collection
}

// Config returns the configuration the module was built with.
func (m *Module) Config() runtimeconfig.Config {
	return m.cfg
}
