package scanerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/payload.json",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/payload.json at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &ParseError{Path: "payload.yaml"}
		if err.Error() != "parse error in payload.yaml" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ParseError{}
		if errors.Is(err, ErrResourceLimit) {
			t.Error("ParseError should not match ErrResourceLimit")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match ErrConfig")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		var err error = fmt.Errorf("wrapped: %w", &ParseError{Path: "payload.json"})
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatal("As should extract ParseError")
		}
		if parseErr.Path != "payload.json" {
			t.Errorf("unexpected path: %s", parseErr.Path)
		}
	})
}

func TestResourceLimitError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ResourceLimitError{
			ResourceType: "node_count",
			Limit:        1000,
			Actual:       1001,
			Path:         "user.friends[999]",
			Message:      "traversal aborted",
		}

		msg := err.Error()
		want := "resource limit exceeded: node_count (limit: 1000, actual: 1001) at user.friends[999]: traversal aborted"
		if msg != want {
			t.Errorf("unexpected error message:\n got: %s\nwant: %s", msg, want)
		}
	})

	t.Run("Error message with limit only", func(t *testing.T) {
		err := &ResourceLimitError{ResourceType: "nesting_depth", Limit: 100}
		if err.Error() != "resource limit exceeded: nesting_depth (limit: 100)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &ResourceLimitError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrResourceLimit", func(t *testing.T) {
		err := &ResourceLimitError{ResourceType: "file_size"}
		if !errors.Is(err, ErrResourceLimit) {
			t.Error("ResourceLimitError should match ErrResourceLimit")
		}
		if errors.Is(err, ErrParse) {
			t.Error("ResourceLimitError should not match ErrParse")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("boom")
		err := &ConfigError{
			Option:  "max-nodes",
			Value:   -1,
			Message: "must be positive",
			Cause:   cause,
		}

		msg := err.Error()
		want := "configuration error for max-nodes (value: -1): must be positive: boom"
		if msg != want {
			t.Errorf("unexpected error message:\n got: %s\nwant: %s", msg, want)
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "format"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}
