package posts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedFilename = errors.New("posts: source filename does not match the YYYY-MM-DD-id pattern")
	ErrInvalidDate       = errors.New("posts: source filename date is not a valid calendar date")
	ErrDuplicateID       = errors.New("posts: duplicate post id")
	ErrPostNotFound      = errors.New("posts: post not found")
	ErrParserRequired    = errors.New("posts: markdown parser is required")
	ErrFilesystemMissing = errors.New("posts: source filesystem is required")
)

// MalformedFilenameError captures source files whose names cannot be split
// into the date prefix plus identifier.
type MalformedFilenameError struct {
	Path string
}

func (e *MalformedFilenameError) Error() string {
	if e == nil || strings.TrimSpace(e.Path) == "" {
		return ErrMalformedFilename.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMalformedFilename.Error(), e.Path)
}

func (e *MalformedFilenameError) Unwrap() error {
	return ErrMalformedFilename
}

// InvalidDateError captures date prefixes that parse structurally but do not
// form a real calendar date (e.g. 2023-02-30).
type InvalidDateError struct {
	Path  string
	Value string
}

func (e *InvalidDateError) Error() string {
	if e == nil {
		return ErrInvalidDate.Error()
	}
	value := strings.TrimSpace(e.Value)
	if value != "" {
		return fmt.Sprintf("%s: %s in %s", ErrInvalidDate.Error(), value, e.Path)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidDate.Error(), e.Path)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

// DuplicateIDError captures two source files deriving the same identifier.
// Duplicate ids are a build-time fatal so a post can never silently shadow
// another.
type DuplicateIDError struct {
	ID           string
	Path         string
	ExistingPath string
}

func (e *DuplicateIDError) Error() string {
	if e == nil {
		return ErrDuplicateID.Error()
	}
	return fmt.Sprintf("%s: %q declared by both %s and %s", ErrDuplicateID.Error(), e.ID, e.ExistingPath, e.Path)
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}

// NotFoundError reports a lookup miss. Callers are expected to branch on it
// (typically redirecting to the index) rather than surface an error page.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e == nil || strings.TrimSpace(e.ID) == "" {
		return ErrPostNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrPostNotFound.Error(), e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrPostNotFound
}
