// Package commands runs the blog's boot-time operations through go-command so
// they pick up message validation, timeout enforcement, structured logging,
// and error categorisation. The blog has exactly one such operation: building
// the post collection.
package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const defaultBuildTimeout = 30 * time.Second

// BuildOption configures a BuildHandler.
type BuildOption func(*BuildHandler)

// BuildHandler executes the post collection build. It satisfies go-command's
// Commander interface for BuildPostsCommand; the process runs it once, at
// boot, before any read traffic is served.
type BuildHandler struct {
	exec    command.CommandFunc[BuildPostsCommand]
	logger  interfaces.Logger
	timeout time.Duration
}

// NewBuildHandler wraps the build function with validation, timeout, and
// logging concerns.
func NewBuildHandler(fn command.CommandFunc[BuildPostsCommand], opts ...BuildOption) *BuildHandler {
	if fn == nil {
		panic("commands: build function cannot be nil")
	}
	h := &BuildHandler{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: defaultBuildTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute conforms to command.Commander[BuildPostsCommand]. Validation
// failures never reach the build function; build failures come back
// categorised with blog build codes.
func (h *BuildHandler) Execute(ctx context.Context, msg BuildPostsCommand) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return wrapBuildError(err)
	}

	logger := logging.WithFields(h.logger, map[string]any{
		"command":   command.GetMessageType(msg),
		"directory": msg.Directory,
	})
	logger.Debug("posts.build.start")

	if err := h.exec(ctx, msg); err != nil {
		logger.Error("posts.build.failed", "error", err)
		return wrapBuildError(err)
	}

	logger.Info("posts.build.success")
	return nil
}

// WithTimeout overrides the default build timeout. Zero or negative disables
// the deadline; a blog with a very large archive may legitimately need that.
func WithTimeout(timeout time.Duration) BuildOption {
	return func(h *BuildHandler) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) BuildOption {
	return func(h *BuildHandler) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}
