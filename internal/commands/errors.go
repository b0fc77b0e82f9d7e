package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	buildValidationCode = "BLOG_BUILD_VALIDATION_FAILED"
	buildCanceledCode   = "BLOG_BUILD_CANCELED"
	buildTimeoutCode    = "BLOG_BUILD_TIMEOUT"
	buildFailedCode     = "BLOG_BUILD_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "build command rejected").
		WithTextCode(buildValidationCode)
}

// wrapBuildError categorises a failed collection build. The build runs once
// at boot, so the only context outcomes that matter are cancellation (the
// process was told to stop) and the deadline; everything else is a build
// failure proper, typically a malformed source.
func wrapBuildError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "post collection build cancelled").
			WithTextCode(buildCanceledCode)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "post collection build timed out").
			WithTextCode(buildTimeoutCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "post collection build failed").
			WithTextCode(buildFailedCode)
	}
}
