package testsuite

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/ktytools/internal/registry"
)

// Regenerator rewrites fixture files from a registry. It works offline.
type Regenerator struct {
	fixtures *Fixtures
	logger   *slog.Logger
}

func NewRegenerator(fixtures *Fixtures, logger *slog.Logger) *Regenerator {
	return &Regenerator{
		fixtures: fixtures,
		logger:   logger,
	}
}

func (r *Regenerator) Regenerate(reg registry.Registry) error {
	for _, pair := range reg.Pairs() {
		entries, _ := reg.Get(pair)
		records := make([]json.RawMessage, 0, len(entries))
		for _, entry := range entries {
			records = append(records, entry.Record)
		}

		r.logger.Info("Updating tests", "pair", pair.String(), "path", r.fixtures.Path(pair), "records", len(records))
		if err := r.fixtures.Write(pair, records); err != nil {
			return fmt.Errorf("fixtures.Write(%s) > %w", pair, err)
		}
	}
	return nil
}
