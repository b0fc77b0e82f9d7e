package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blog: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := blog.DefaultConfig()

	flag.StringVar(&cfg.Server.Address, "addr", cfg.Server.Address, "HTTP listen address")
	flag.StringVar(&cfg.Content.Dir, "content-dir", cfg.Content.Dir, "directory holding Markdown post sources")
	flag.StringVar(&cfg.Content.Pattern, "pattern", cfg.Content.Pattern, "glob applied when discovering post sources")
	flag.StringVar(&cfg.Site.BaseURL, "base-url", cfg.Site.BaseURL, "absolute base URL used in permalinks and feeds")
	flag.StringVar(&cfg.Site.Title, "site-title", cfg.Site.Title, "site title shown in templates and feeds")
	flag.StringVar(&cfg.Site.Description, "site-description", cfg.Site.Description, "site description shown in templates and feeds")
	flag.StringVar(&cfg.Site.Author, "site-author", cfg.Site.Author, "default feed author")
	flag.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: trace, debug, info, warn, error")
	flag.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format: json, console, pretty")
	flag.IntVar(&cfg.Server.HomePostCount, "home-posts", cfg.Server.HomePostCount, "number of recent posts shown on the home page")
	flag.Parse()

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return err
	}
	logger := provider.GetLogger("blog")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	module, err := blog.New(ctx, cfg, blog.WithLoggerProvider(provider))
	if err != nil {
		return err
	}
	logger.Info("post collection ready", "posts", module.Posts().Len())

	server, err := web.New(web.Config{
		Site:   cfg.Site,
		Server: cfg.Server,
		Posts:  module.Posts(),
		Logger: logging.WebLogger(provider),
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Listen(cfg.Server.Address)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
