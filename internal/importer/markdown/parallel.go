package markdown

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/badele/mdlex/internal/types"
)

// ParseParallel classifies lines on up to workers goroutines and
// reassembles the tokens in line order. The result equals Parse(document).
// A workers value <= 0 uses GOMAXPROCS.
func ParseParallel(ctx context.Context, document string, workers int) ([]types.Token, error) {
	return NewTokenizer(document).TokenizeParallel(ctx, workers)
}

type lineResult struct {
	matcher types.Matcher
	tokens  []types.Token
	ok      bool
}

// TokenizeParallel is Tokenize on a bounded worker pool. Tokens, stats,
// logs and the interruption at the first unmatched line are the same as
// Tokenize; the returned error is Err(). A cancelled context fails the
// whole call with no tokens.
func (t *Tokenizer) TokenizeParallel(ctx context.Context, workers int) ([]types.Token, error) {
	lines := t.reset()

	results, err := matchLines(ctx, lines, workers, t.matchers)
	if err != nil {
		t.err = err
		t.logger.Warn("parallel tokenizing cancelled", "error", err)
		return nil, err
	}

	for i, line := range lines {
		r := results[i]
		if !t.accept(i, line, len(lines), r.matcher, r.tokens, r.ok) {
			return t.Tokens, t.err
		}
	}

	t.finish()
	return t.Tokens, nil
}

// matchLines runs the registry on every line. Unmatched lines are
// reported through lineResult.ok, never as an error.
func matchLines(ctx context.Context, lines []string, workers int, matchers []types.Matcher) ([]lineResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]lineResult, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			matcher, tokens, ok := match(matchers, line)
			results[i] = lineResult{matcher: matcher, tokens: tokens, ok: ok}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
