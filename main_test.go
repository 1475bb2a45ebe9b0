package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/badele/mdlex/internal/source"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func parseCLI(t *testing.T, args ...string) *CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("mdlex"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return &cli
}

func TestCLIDefaults(t *testing.T) {
	cli := parseCLI(t)

	if cli.Format != "list" || cli.Encoding != "utf8" || cli.Workers != 1 || cli.Color != "auto" || cli.LogLevel != "warn" {
		t.Errorf("unexpected defaults: %+v", cli)
	}
}

func TestCLIEnv(t *testing.T) {
	t.Setenv("MDLEX_FORMAT", "json")
	cli := parseCLI(t, "-f", "doc.md")

	if cli.Format != "json" {
		t.Errorf("expected format from env, got %q", cli.Format)
	}
	if cli.File != "doc.md" {
		t.Errorf("expected file doc.md, got %q", cli.File)
	}
}

func TestRunList(t *testing.T) {
	path := writeDoc(t, "doc.md", "# Title\n\n## Section\n\nBody text")
	cli := parseCLI(t, "--file", path, "--color", "never")

	var out bytes.Buffer
	if err := run(context.Background(), cli, strings.NewReader(""), &out, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Token: H1  Value: Title\n" +
		"Token: NewLine  Value: \n" +
		"Token: H2  Value: Section\n" +
		"Token: NewLine  Value: \n" +
		"Token: Paragraph  Value: Body text\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestRunStdinParallel(t *testing.T) {
	cli := parseCLI(t, "--format", "json", "--workers", "4")

	var out bytes.Buffer
	if err := run(context.Background(), cli, strings.NewReader("Hello \nWorld \n"), &out, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{`"text": "Hello "`, `"text": "World "`, `"total_lines": 2`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %s in output:\n%s", want, out.String())
		}
	}
}

func TestRunRejectsNonMarkdown(t *testing.T) {
	path := writeDoc(t, "doc.txt", "# Title")
	cli := parseCLI(t, "--file", path)

	err := run(context.Background(), cli, strings.NewReader(""), &bytes.Buffer{}, testLogger())
	if !errors.Is(err, source.ErrNotMarkdown) {
		t.Fatalf("expected ErrNotMarkdown, got %v", err)
	}

	cli = parseCLI(t, "--file", path, "--skip-ext-check", "--format", "stats")
	var out bytes.Buffer
	if err := run(context.Background(), cli, strings.NewReader(""), &out, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Total tokens: 1") {
		t.Errorf("expected stats output, got %q", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	cli := parseCLI(t, "--file", filepath.Join(t.TempDir(), "missing.md"))

	err := run(context.Background(), cli, strings.NewReader(""), &bytes.Buffer{}, testLogger())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestRunPreviewWithEncoding(t *testing.T) {
	path := writeDoc(t, "latin.md", "# Caf\xe9\n")
	cli := parseCLI(t, "--file", path, "--encoding", "iso-8859-1", "--format", "preview")

	var out bytes.Buffer
	if err := run(context.Background(), cli, strings.NewReader(""), &out, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "Café\n" {
		t.Errorf("expected %q, got %q", "Café\n", out.String())
	}
}

func TestRunTable(t *testing.T) {
	cli := parseCLI(t, "--format", "table")

	var out bytes.Buffer
	if err := run(context.Background(), cli, strings.NewReader("<code>Hello World</code>"), &out, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"CodeBlockOpen", "CodeBlockClose", "Paragraph"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %s in table:\n%s", want, out.String())
		}
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	if !useColor("always", &buf) {
		t.Errorf("expected always to enable color")
	}
	if useColor("never", &buf) {
		t.Errorf("expected never to disable color")
	}
	if useColor("auto", &buf) {
		t.Errorf("expected auto to disable color for a buffer")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("error", &buf)
	logger.Warn("hidden")
	logger.Error("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}
