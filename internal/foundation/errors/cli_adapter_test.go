package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("root is not a directory").Build(), expected: 2},
		{name: "not found", err: NotFoundError("root missing").Build(), expected: 3},
		{name: "config", err: ConfigError("bad config").Build(), expected: 7},
		{name: "filesystem", err: FileSystemError("write failed").Build(), expected: 11},
		{name: "drift", err: NewError(CategoryDrift, "README.md is stale").Build(), expected: 1},
		{name: "internal", err: InternalError("boom").Build(), expected: 10},
		{name: "unclassified", err: errors.New("unknown"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())
	internal := WrapError(errors.New("nil map"), CategoryInternal, "compose failed").Build()

	if got := quiet.FormatError(internal); !strings.Contains(got, "use -v") {
		t.Errorf("expected internal error to be hidden in quiet mode, got %q", got)
	}
	if got := verbose.FormatError(internal); !strings.Contains(got, "nil map") {
		t.Errorf("expected cause in verbose mode, got %q", got)
	}
	if got := quiet.FormatError(NotFoundError("project root does not exist").Build()); got != "Error: project root does not exist" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	adapter := NewCLIErrorAdapter(false, logger)

	code := adapter.Report(&out, ConfigError("invalid feature_scan").WithContext("path", ".readmegen.yaml").Build())
	if code != 7 {
		t.Fatalf("expected exit code 7, got %d", code)
	}
	if !strings.Contains(out.String(), "invalid feature_scan") {
		t.Errorf("expected message on writer, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "category=config") {
		t.Errorf("expected category in logs, got %q", logs.String())
	}
}
