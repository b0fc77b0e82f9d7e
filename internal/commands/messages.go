package commands

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const buildPostsMessageType = "blog.posts.build"

// BuildPostsCommand triggers the one-time post collection build from the
// configured content directory. It runs exactly once per process lifetime,
// before any read traffic is served.
type BuildPostsCommand struct {
	// Directory is the content root holding Markdown post sources.
	Directory string `json:"directory"`
	// Pattern is the discovery glob applied within Directory.
	Pattern string `json:"pattern,omitempty"`
}

// Type implements command.Message.
func (BuildPostsCommand) Type() string { return buildPostsMessageType }

// Validate ensures the content directory is present before handlers execute.
func (cmd BuildPostsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.posts.build.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
