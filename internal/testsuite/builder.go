// Package testsuite rebuilds the test registry from kaikki.org and
// regenerates the test fixtures from the registry.
package testsuite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/ktytools/internal/kaikki"
	"github.com/at-ishikawa/ktytools/internal/lang"
	"github.com/at-ishikawa/ktytools/internal/registry"
	"github.com/at-ishikawa/ktytools/internal/similarity"
)

//go:generate mockgen -source=builder.go -destination=../mocks/testsuite/mock_fetcher.go -package=mock_testsuite

// Fetcher downloads the candidate records of a word.
type Fetcher interface {
	FetchCandidates(ctx context.Context, word string, target lang.Code) (kaikki.Lookup, []json.RawMessage, error)
}

// EmptyCandidatesError is returned when kaikki.org answers successfully
// without any record, so there is nothing to choose from.
type EmptyCandidatesError struct {
	Word string
	URL  string
}

func (e *EmptyCandidatesError) Error() string {
	return fmt.Sprintf("no candidate for %q in %s", e.Word, e.URL)
}

type testCase struct {
	Word *string `json:"word"`
}

type Builder struct {
	fetcher  Fetcher
	fixtures *Fixtures
	logger   *slog.Logger
}

func NewBuilder(fetcher Fetcher, fixtures *Fixtures, logger *slog.Logger) *Builder {
	return &Builder{
		fetcher:  fetcher,
		fixtures: fixtures,
		logger:   logger,
	}
}

// Build rebuilds the entries of every pair from scratch.
func (b *Builder) Build(ctx context.Context, pairs lang.Pairs) (registry.Registry, error) {
	result := make(registry.Registry)
	for _, pair := range pairs.List() {
		entries, err := b.BuildPair(ctx, pair)
		if err != nil {
			return nil, fmt.Errorf("BuildPair(%s) > %w", pair, err)
		}
		result.Set(pair, entries)
	}
	return result, nil
}

// BuildPair returns one entry per test case of the pair's fixture, in order.
// Test cases that kaikki.org cannot serve are kept as they are.
func (b *Builder) BuildPair(ctx context.Context, pair lang.Pair) ([]registry.Entry, error) {
	b.logger.InfoContext(ctx, "Updating registry", "pair", pair.String())

	tests, err := b.fixtures.Read(pair)
	if err != nil {
		return nil, fmt.Errorf("fixtures.Read > %w", err)
	}

	entries := make([]registry.Entry, 0, len(tests))
	for i, test := range tests {
		var tc testCase
		if err := json.Unmarshal(test, &tc); err != nil || tc.Word == nil || *tc.Word == "" {
			return nil, fmt.Errorf("%s:%d has no word", b.fixtures.Path(pair), i+1)
		}
		word := *tc.Word

		lookup, candidates, err := b.fetcher.FetchCandidates(ctx, word, pair.Target)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			b.warnFetchFailure(ctx, word, lookup, err)
			entries = append(entries, registry.Unmatched(test))
			continue
		}
		if len(candidates) == 0 {
			return nil, &EmptyCandidatesError{Word: word, URL: lookup.URL()}
		}

		best, err := bestCandidate(test, candidates)
		if err != nil {
			return nil, fmt.Errorf("word %q > %w", word, err)
		}
		entries = append(entries, registry.Matched(registry.Source{
			URL:         lookup.HTMLURL(),
			DownloadURL: lookup.URL(),
		}, best))
	}
	return entries, nil
}

func (b *Builder) warnFetchFailure(ctx context.Context, word string, lookup kaikki.Lookup, err error) {
	attrs := []any{"word", word, "error", err}
	var fetchErr *kaikki.FetchError
	if errors.As(err, &fetchErr) {
		attrs = append(attrs, "status", fetchErr.StatusCode, "url", fetchErr.URL)
	} else if lookup.Word != "" {
		attrs = append(attrs, "url", lookup.URL())
	}
	b.logger.WarnContext(ctx, "Failed to fetch a word. Ignore this if it is a custom test case not in kaikki", attrs...)
}

// bestCandidate returns the candidate most similar to test.
// The first one wins a tie.
func bestCandidate(test json.RawMessage, candidates []json.RawMessage) (json.RawMessage, error) {
	testValue, err := similarity.Decode(test)
	if err != nil {
		return nil, fmt.Errorf("similarity.Decode(test) > %w", err)
	}

	bestIndex := -1
	bestScore := 0.0
	for i, candidate := range candidates {
		candidateValue, err := similarity.Decode(candidate)
		if err != nil {
			return nil, fmt.Errorf("similarity.Decode(candidate %d) > %w", i, err)
		}
		score := similarity.Similarity(testValue, candidateValue)
		if bestIndex < 0 || score > bestScore {
			bestIndex = i
			bestScore = score
		}
	}
	return candidates[bestIndex], nil
}
