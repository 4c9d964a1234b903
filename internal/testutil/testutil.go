// Package testutil provides shared test helpers for creating config files and fixture files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file whose fixtures and registry live under tmpDir
// and whose kaikki.org requests go to baseURL. Only the en-es pair is configured.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	fixturesDir := filepath.Join(tmpDir, "kaikki")
	require.NoError(t, os.MkdirAll(fixturesDir, 0755))

	configContent := fmt.Sprintf(`tests:
  fixtures_directory: %s
  registry_path: %s
kaikki:
  base_url: %s
  timeout: 5s
pairs:
  en: [es]
`,
		fixturesDir,
		filepath.Join(tmpDir, "registry.json"),
		baseURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteFixture writes one JSON-Lines fixture file with the given records.
func WriteFixture(t *testing.T, fixturesDir, name string, records ...string) string {
	t.Helper()

	path := filepath.Join(fixturesDir, name+"-extract.jsonl")
	var content strings.Builder
	for _, record := range records {
		content.WriteString(record)
		content.WriteString("\n")
	}
	require.NoError(t, os.MkdirAll(fixturesDir, 0755))
	require.NoError(t, os.WriteFile(path, []byte(content.String()), 0644))
	return path
}
