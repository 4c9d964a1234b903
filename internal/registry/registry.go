// Package registry keeps the kaikki.org records behind every test fixture.
//
// The registry holds whole remote records, including attributes the fixtures
// do not use yet, so it is the source the fixtures are generated from and
// never the other way around.
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/at-ishikawa/ktytools/internal/lang"
)

// Registry maps source language, then target language, to the entries of
// the fixture file of that pair in line order.
type Registry map[lang.Code]map[lang.Code][]Entry

func (r Registry) Set(pair lang.Pair, entries []Entry) {
	if _, ok := r[pair.Source]; !ok {
		r[pair.Source] = make(map[lang.Code][]Entry)
	}
	r[pair.Source][pair.Target] = entries
}

func (r Registry) Get(pair lang.Pair) ([]Entry, bool) {
	entries, ok := r[pair.Source][pair.Target]
	return entries, ok
}

// Pairs returns every pair in the registry sorted by source then target.
func (r Registry) Pairs() []lang.Pair {
	pairs := make([]lang.Pair, 0)
	for source, targets := range r {
		for target := range targets {
			pairs = append(pairs, lang.Pair{Source: source, Target: target})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Source != pairs[j].Source {
			return pairs[i].Source < pairs[j].Source
		}
		return pairs[i].Target < pairs[j].Target
	})
	return pairs
}

// MissingRegistryError means the registry has not been built yet.
type MissingRegistryError struct {
	Path string
}

func (e *MissingRegistryError) Error() string {
	return fmt.Sprintf("%s not found. Run with flag '--update-registry' first", e.Path)
}

// Save writes the whole registry to path as indented JSON.
func Save(path string, registry Registry) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(registry); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

// Load reads the registry written by Save.
// It returns *MissingRegistryError when there is no file at path.
func Load(path string) (Registry, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingRegistryError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var registry Registry
	if err := json.Unmarshal(contents, &registry); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", path, err)
	}
	if registry == nil {
		registry = make(Registry)
	}
	return registry, nil
}
