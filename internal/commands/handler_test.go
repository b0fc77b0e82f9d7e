package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

func TestBuildHandlerExecutesWrappedFunction(t *testing.T) {
	var got BuildPostsCommand
	handler := NewBuildHandler(func(_ context.Context, msg BuildPostsCommand) error {
		got = msg
		return nil
	})

	msg := BuildPostsCommand{Directory: "posts", Pattern: "*.md"}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got.Directory != "posts" || got.Pattern != "*.md" {
		t.Fatalf("handler saw %+v, want %+v", got, msg)
	}
}

func TestBuildHandlerValidatesMessage(t *testing.T) {
	called := false
	handler := NewBuildHandler(func(context.Context, BuildPostsCommand) error {
		called = true
		return nil
	})

	err := handler.Execute(context.Background(), BuildPostsCommand{})
	if err == nil {
		t.Fatal("Execute accepted an empty directory")
	}
	if called {
		t.Fatal("build ran despite failed validation")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("error category = %v, want validation", err)
	}
}

func TestBuildHandlerWrapsBuildFailure(t *testing.T) {
	boom := errors.New("build exploded")
	handler := NewBuildHandler(func(context.Context, BuildPostsCommand) error {
		return boom
	})

	err := handler.Execute(context.Background(), BuildPostsCommand{Directory: "posts"})
	if err == nil {
		t.Fatal("Execute swallowed the failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("error category = %v, want command", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("wrapped error lost the cause: %v", err)
	}
}

func TestBuildHandlerHonorsCanceledContext(t *testing.T) {
	handler := NewBuildHandler(func(context.Context, BuildPostsCommand) error {
		t.Fatal("build ran with a dead context")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, BuildPostsCommand{Directory: "posts"})
	if err == nil {
		t.Fatal("Execute ignored the canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("error category = %v, want command", err)
	}
}

func TestBuildHandlerTimeout(t *testing.T) {
	handler := NewBuildHandler(func(ctx context.Context, _ BuildPostsCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, WithTimeout(10*time.Millisecond))

	err := handler.Execute(context.Background(), BuildPostsCommand{Directory: "posts"})
	if err == nil {
		t.Fatal("Execute ignored the timeout")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context.DeadlineExceeded", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("error category = %v, want command", err)
	}
}

func TestBuildHandlerDisabledTimeout(t *testing.T) {
	handler := NewBuildHandler(func(ctx context.Context, _ BuildPostsCommand) error {
		if _, ok := ctx.Deadline(); ok {
			t.Fatal("deadline set despite disabled timeout")
		}
		return nil
	}, WithTimeout(0))

	if err := handler.Execute(context.Background(), BuildPostsCommand{Directory: "posts"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

func TestBuildHandlerPreservesWrappedErrors(t *testing.T) {
	wrapped := goerrors.Wrap(errors.New("inner"), goerrors.CategoryCommand, "already categorised")
	handler := NewBuildHandler(func(context.Context, BuildPostsCommand) error {
		return wrapped
	})

	err := handler.Execute(context.Background(), BuildPostsCommand{Directory: "posts"})
	if !errors.Is(err, wrapped) {
		t.Fatalf("pre-wrapped error was re-wrapped: %v", err)
	}
}

func TestBuildPostsCommandType(t *testing.T) {
	if got := (BuildPostsCommand{}).Type(); got != "blog.posts.build" {
		t.Fatalf("Type() = %q", got)
	}
}

func TestBuildPostsCommandValidate(t *testing.T) {
	if err := (BuildPostsCommand{Directory: "posts"}).Validate(); err != nil {
		t.Fatalf("valid command rejected: %v", err)
	}
	if err := (BuildPostsCommand{}).Validate(); err == nil {
		t.Fatal("empty directory accepted")
	}
	if err := (BuildPostsCommand{Directory: "   "}).Validate(); err == nil {
		t.Fatal("blank directory accepted")
	}
}
