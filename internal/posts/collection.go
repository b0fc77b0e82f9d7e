package posts

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

const defaultPattern = "*.md"

// BuildConfig describes how the collection discovers and parses sources.
type BuildConfig struct {
	// FS is the filesystem holding post sources.
	FS fs.FS
	// Pattern is the glob applied during discovery (defaults to "*.md").
	Pattern string
	// Parser renders Markdown bodies. When nil a Goldmark parser configured
	// with ParseOptions is created.
	Parser interfaces.MarkdownParser
	// ParseOptions are passed through to the parser unchanged.
	ParseOptions interfaces.ParseOptions
	// Logger receives build progress. Defaults to a no-op logger.
	Logger interfaces.Logger
}

// Collection is the full, sorted, immutable set of posts. It has exactly two
// states, unbuilt and built, with Build as the only transition; once built it
// never changes, so readers need no synchronisation.
type Collection struct {
	posts   []*Post
	byID    map[string]*Post
	updated time.Time
}

// Build discovers every source matching the glob, parses each one, and
// returns the collection sorted by date descending. Discovery order is the
// glob's lexical order; posts sharing a date keep that order (stable sort),
// which keeps feed output deterministic. Any single failure aborts the whole
// build: a malformed post must never silently vanish from the blog.
func Build(ctx context.Context, cfg BuildConfig) (*Collection, error) {
	if cfg.FS == nil {
		return nil, ErrFilesystemMissing
	}

	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = defaultPattern
	}

	parser := cfg.Parser
	if parser == nil {
		parser = markdown.NewGoldmarkParser(cfg.ParseOptions)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	matches, err := fs.Glob(cfg.FS, pattern)
	if err != nil {
		return nil, fmt.Errorf("posts: glob %q: %w", pattern, err)
	}

	collection := &Collection{
		byID: make(map[string]*Post, len(matches)),
	}

	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(cfg.FS, name)
		if err != nil {
			return nil, fmt.Errorf("posts: read %s: %w", name, err)
		}

		meta, body, err := markdown.ParseFrontMatter(data)
		if err != nil {
			return nil, fmt.Errorf("posts: front matter %s: %w", name, err)
		}

		post, err := ParseSource(Source{Path: name, Meta: meta, Body: body}, parser, cfg.ParseOptions)
		if err != nil {
			return nil, err
		}

		if existing, ok := collection.byID[post.ID]; ok {
			return nil, &DuplicateIDError{
				ID:           post.ID,
				Path:         post.SourcePath,
				ExistingPath: existing.SourcePath,
			}
		}

		collection.byID[post.ID] = post
		collection.posts = append(collection.posts, post)
		logger.Debug("post parsed", "id", post.ID, "date", post.Date.Format("2006-01-02"))
	}

	sort.SliceStable(collection.posts, func(i, j int) bool {
		return collection.posts[i].Date.After(collection.posts[j].Date)
	})

	if len(collection.posts) > 0 {
		collection.updated = collection.posts[0].Date
	}

	logger.Info("post collection built", "posts", len(collection.posts))
	return collection, nil
}

// All returns every post in date-descending order. The slice is a copy;
// callers may range or re-slice freely but can never disturb the collection.
func (c *Collection) All() []*Post {
	out := make([]*Post, len(c.posts))
	copy(out, c.posts)
	return out
}

// Get returns the post with the given id. A miss yields a NotFoundError
// wrapping ErrPostNotFound; callers treat it as a navigation decision, not a
// failure.
func (c *Collection) Get(id string) (*Post, error) {
	if post, ok := c.byID[id]; ok {
		return post, nil
	}
	return nil, &NotFoundError{ID: id}
}

// Len reports how many posts the collection holds.
func (c *Collection) Len() int {
	return len(c.posts)
}

// UpdatedAt returns the most recent publication date across all posts — the
// value feeds use as their updated timestamp. Zero when the collection is
// empty.
func (c *Collection) UpdatedAt() time.Time {
	return c.updated
}
