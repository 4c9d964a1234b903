package testsuite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/at-ishikawa/ktytools/internal/jsonl"
	"github.com/at-ishikawa/ktytools/internal/lang"
)

// Fixtures is the directory of <source>-<target>-extract.jsonl test files.
type Fixtures struct {
	Directory string
}

func NewFixtures(directory string) *Fixtures {
	return &Fixtures{Directory: directory}
}

func (f *Fixtures) Path(pair lang.Pair) string {
	return filepath.Join(f.Directory, pair.String()+"-extract.jsonl")
}

func (f *Fixtures) Read(pair lang.Pair) ([]json.RawMessage, error) {
	return jsonl.Read(f.Path(pair))
}

func (f *Fixtures) Write(pair lang.Pair, records []json.RawMessage) error {
	if err := os.MkdirAll(f.Directory, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	return jsonl.Write(f.Path(pair), records)
}
