package posts

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// sourceNamePattern is the explicit grammar for post source basenames:
// four-digit year, two-digit month, two-digit day, then the identifier. The
// identifier may itself contain hyphens, so only the first three separators
// participate in the date prefix.
var sourceNamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// Post is a single rendered article. Posts are created once during the
// collection build and never mutated afterwards.
type Post struct {
	// ID is the filename segment following the date prefix, used for URL
	// addressing and lookup.
	ID string
	// Date is the publication date taken from the filename. No time of day.
	Date    time.Time
	Author  string
	Title   string
	Summary string
	// Body holds the rendered HTML, never the raw Markdown.
	Body string
	// SourcePath records which file produced the post.
	SourcePath string
}

// Permalink returns the dated URL form /YYYY/MM/DD/id with zero-padded month
// and day. It resolves to the same post as the flat /blog/id form.
func (p *Post) Permalink() string {
	return fmt.Sprintf("/%04d/%02d/%02d/%s", p.Date.Year(), p.Date.Month(), p.Date.Day(), p.ID)
}

// Source is one raw ingestion unit: the file path, its parsed front matter,
// and the Markdown body with the metadata block already stripped.
type Source struct {
	Path string
	Meta interfaces.FrontMatter
	Body []byte
}

// ParseSourceName derives the publication date and identifier from a source
// path. The basename (extension removed) must match YYYY-MM-DD-<id>; a
// structural mismatch yields a MalformedFilenameError and an impossible
// calendar date yields an InvalidDateError.
func ParseSourceName(sourcePath string) (time.Time, string, error) {
	base := path.Base(strings.TrimSpace(sourcePath))
	base = strings.TrimSuffix(base, path.Ext(base))

	match := sourceNamePattern.FindStringSubmatch(base)
	if match == nil {
		return time.Time{}, "", &MalformedFilenameError{Path: sourcePath}
	}

	date, err := time.Parse("2006-01-02", match[1])
	if err != nil {
		return time.Time{}, "", &InvalidDateError{Path: sourcePath, Value: match[1]}
	}

	return date, match[2], nil
}

// ParseSource converts one raw source unit into a Post, rendering the body
// through the supplied Markdown parser. Metadata keys absent from the front
// matter default to empty strings; a malformed filename is fatal.
func ParseSource(src Source, parser interfaces.MarkdownParser, opts interfaces.ParseOptions) (*Post, error) {
	if parser == nil {
		return nil, ErrParserRequired
	}

	date, id, err := ParseSourceName(src.Path)
	if err != nil {
		return nil, err
	}

	body, err := parser.ParseWithOptions(src.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("posts: render %s: %w", src.Path, err)
	}

	return &Post{
		ID:         id,
		Date:       date,
		Author:     src.Meta.Author,
		Title:      src.Meta.Title,
		Summary:    src.Meta.Summary,
		Body:       string(body),
		SourcePath: src.Path,
	}, nil
}
