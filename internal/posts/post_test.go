package posts

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestParseSourceName(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		wantDate string
		wantID   string
	}{
		{
			name:     "simple id",
			path:     "2023-05-01-hello-world.md",
			wantDate: "2023-05-01",
			wantID:   "hello-world",
		},
		{
			name:     "hyphen heavy id keeps everything after the date",
			path:     "2019-07-18-oban-recipes-part-1-unique-jobs.md",
			wantDate: "2019-07-18",
			wantID:   "oban-recipes-part-1-unique-jobs",
		},
		{
			name:     "nested path uses the basename",
			path:     "posts/archive/2021-12-31-year-in-review.markdown",
			wantDate: "2021-12-31",
			wantID:   "year-in-review",
		},
		{
			name:     "id containing digits",
			path:     "2020-02-29-go-1-14-released.md",
			wantDate: "2020-02-29",
			wantID:   "go-1-14-released",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			date, id, err := ParseSourceName(tc.path)
			if err != nil {
				t.Fatalf("ParseSourceName(%q) returned error: %v", tc.path, err)
			}
			if got := date.Format("2006-01-02"); got != tc.wantDate {
				t.Fatalf("date = %s, want %s", got, tc.wantDate)
			}
			if id != tc.wantID {
				t.Fatalf("id = %q, want %q", id, tc.wantID)
			}
		})
	}
}

func TestParseSourceNameMalformed(t *testing.T) {
	cases := []string{
		"hello-world.md",
		"2023-05-hello.md",
		"23-05-01-short-year.md",
		"2023_05_01-underscores.md",
		"2023-05-01.md",
		"notes.txt",
	}

	for _, path := range cases {
		t.Run(path, func(t *testing.T) {
			_, _, err := ParseSourceName(path)
			if err == nil {
				t.Fatalf("ParseSourceName(%q) succeeded, want malformed filename error", path)
			}
			if !errors.Is(err, ErrMalformedFilename) {
				t.Fatalf("error = %v, want ErrMalformedFilename", err)
			}
			var malformed *MalformedFilenameError
			if !errors.As(err, &malformed) {
				t.Fatalf("error = %T, want *MalformedFilenameError", err)
			}
			if malformed.Path != path {
				t.Fatalf("Path = %q, want %q", malformed.Path, path)
			}
		})
	}
}

func TestParseSourceNameInvalidDate(t *testing.T) {
	cases := []struct {
		path  string
		value string
	}{
		{"2023-02-30-impossible-day.md", "2023-02-30"},
		{"2023-13-01-impossible-month.md", "2023-13-01"},
		{"2021-02-29-not-a-leap-year.md", "2021-02-29"},
		{"2023-00-10-zero-month.md", "2023-00-10"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			_, _, err := ParseSourceName(tc.path)
			if err == nil {
				t.Fatalf("ParseSourceName(%q) succeeded, want invalid date error", tc.path)
			}
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("error = %v, want ErrInvalidDate", err)
			}
			var invalid *InvalidDateError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %T, want *InvalidDateError", err)
			}
			if invalid.Value != tc.value {
				t.Fatalf("Value = %q, want %q", invalid.Value, tc.value)
			}
		})
	}
}

func TestPermalink(t *testing.T) {
	p := &Post{
		ID:   "hello-world",
		Date: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
	if got, want := p.Permalink(), "/2023/05/01/hello-world"; got != want {
		t.Fatalf("Permalink() = %q, want %q", got, want)
	}

	padded := &Post{
		ID:   "new-year",
		Date: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
	if got, want := padded.Permalink(), "/2024/01/02/new-year"; got != want {
		t.Fatalf("Permalink() = %q, want %q", got, want)
	}
}

func TestParseSource(t *testing.T) {
	src := Source{
		Path: "2023-05-01-hello-world.md",
		Meta: interfaces.FrontMatter{
			Author:  "Parker Selbert",
			Title:   "Hello World",
			Summary: "The first post.",
		},
		Body: []byte("# Hello\n"),
	}

	post, err := ParseSource(src, staticParser{output: "<h1>Hello</h1>\n"}, interfaces.ParseOptions{})
	if err != nil {
		t.Fatalf("ParseSource returned error: %v", err)
	}

	if post.ID != "hello-world" {
		t.Fatalf("ID = %q, want hello-world", post.ID)
	}
	if post.Author != "Parker Selbert" || post.Title != "Hello World" || post.Summary != "The first post." {
		t.Fatalf("metadata not carried over: %+v", post)
	}
	if post.Body != "<h1>Hello</h1>\n" {
		t.Fatalf("Body = %q, want rendered HTML", post.Body)
	}
	if post.SourcePath != src.Path {
		t.Fatalf("SourcePath = %q, want %q", post.SourcePath, src.Path)
	}
}

func TestParseSourceSparseMetadata(t *testing.T) {
	src := Source{
		Path: "2023-05-01-hello-world.md",
		Body: []byte("plain"),
	}

	post, err := ParseSource(src, staticParser{output: "<p>plain</p>"}, interfaces.ParseOptions{})
	if err != nil {
		t.Fatalf("ParseSource returned error: %v", err)
	}
	if post.Author != "" || post.Title != "" || post.Summary != "" {
		t.Fatalf("missing metadata should default to empty strings: %+v", post)
	}
}

func TestParseSourceRequiresParser(t *testing.T) {
	_, err := ParseSource(Source{Path: "2023-05-01-x.md"}, nil, interfaces.ParseOptions{})
	if !errors.Is(err, ErrParserRequired) {
		t.Fatalf("error = %v, want ErrParserRequired", err)
	}
}

// staticParser renders every input to a fixed string so tests can assert
// plumbing without depending on Markdown output details.
type staticParser struct {
	output string
	err    error
}

func (p staticParser) Parse(source []byte) ([]byte, error) {
	return p.ParseWithOptions(source, interfaces.ParseOptions{})
}

func (p staticParser) ParseWithOptions(source []byte, _ interfaces.ParseOptions) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.output != "" {
		return []byte(p.output), nil
	}
	return source, nil
}
