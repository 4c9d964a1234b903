package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]int
		useFile bool
		want    []string
		wantErr bool
	}{
		{
			name: "buckets zip files recursively",
			files: map[string]int{
				"en/small.zip":     2048,
				"en/es/nested.zip": 20 * 1024,
				"readme.txt":       100,
			},
			want: []string{
				"0-10 KB:\t1 files\t2.00 KB\n",
				"10-50 KB:\t1 files\t20.00 KB\n",
				"10000+ KB:\t0 files\t0.00 B\n",
				"\n2 zip files (22.00 KB)\n",
			},
		},
		{
			name:    "not a directory",
			useFile: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder := t.TempDir()
			for name, size := range tt.files {
				path := filepath.Join(folder, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
			}
			if tt.useFile {
				folder = filepath.Join(folder, "file.zip")
				require.NoError(t, os.WriteFile(folder, nil, 0644))
			}

			output, err := executeCommand(t, "scan", folder)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "is not a directory")
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
		})
	}
}
