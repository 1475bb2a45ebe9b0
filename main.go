package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/badele/mdlex/internal/exporter"
	"github.com/badele/mdlex/internal/importer/markdown"
	"github.com/badele/mdlex/internal/source"
	"github.com/badele/mdlex/internal/types"
)

type CLI struct {
	File         string `short:"f" help:"Path to the markdown file to parse. Reads stdin when omitted." env:"MDLEX_FILE"`
	Format       string `short:"o" enum:"list,table,json,stats,preview" default:"list" help:"Output format (${enum})." env:"MDLEX_FORMAT"`
	Encoding     string `short:"e" enum:"utf8,cp437,cp850,iso-8859-1" default:"utf8" help:"Source encoding (${enum})." env:"MDLEX_ENCODING"`
	Workers      int    `short:"w" default:"1" help:"Worker goroutines. 1 tokenizes sequentially, 0 uses every CPU." env:"MDLEX_WORKERS"`
	Width        int    `default:"80" help:"Preview width in columns." env:"MDLEX_WIDTH"`
	Color        string `enum:"auto,always,never" default:"auto" help:"Colorize the list output (${enum})." env:"MDLEX_COLOR"`
	LogLevel     string `enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})." env:"MDLEX_LOG_LEVEL"`
	SkipExtCheck bool   `help:"Accept files without the .md extension." env:"MDLEX_SKIP_EXT_CHECK"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("mdlex"),
		kong.Description("Split a markdown document into typed tokens."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.LogLevel, os.Stderr)

	// Read from stdin only when it is a pipe
	if cli.File == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		_ = kctx.PrintUsage(false)
		os.Exit(1)
	}

	if err := run(context.Background(), &cli, os.Stdin, os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *CLI, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	document, name, err := load(cli, stdin)
	if err != nil {
		return err
	}
	logger.Info("document loaded", "source", name, "bytes", len(document), "encoding", cli.Encoding)

	tok := markdown.NewTokenizer(document, markdown.WithLogger(logger))

	var tokens []types.Token
	if cli.Workers == 1 {
		tokens = tok.Tokenize()
		err = tok.Err()
	} else {
		tokens, err = tok.TokenizeParallel(ctx, cli.Workers)
	}
	if err != nil {
		return fmt.Errorf("error tokenizing %s: %w", name, err)
	}
	logger.Info("document tokenized", "tokens", len(tokens), "lines", tok.Stats.TotalLines)

	switch cli.Format {
	case "table":
		return exporter.ExportTokensToTable(tokens, stdout)
	case "json":
		return exporter.ExportTokensJSON(tokens, tok.GetStats(), stdout)
	case "stats":
		return exporter.ExportStats(tok.GetStats(), stdout)
	case "preview":
		return exporter.ExportPreview(tokens, stdout, cli.Width)
	default:
		return exporter.ExportTokensToText(tokens, stdout, useColor(cli.Color, stdout))
	}
}

func load(cli *CLI, stdin io.Reader) (document, name string, err error) {
	if cli.File == "" {
		document, err = source.Read(stdin, cli.Encoding)
		return document, "stdin", err
	}

	if !cli.SkipExtCheck {
		if err := source.ValidatePath(cli.File); err != nil {
			return "", cli.File, err
		}
	}

	document, err = source.ReadFile(cli.File, cli.Encoding)
	return document, cli.File, err
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
