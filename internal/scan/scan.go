// Package scan reports the size distribution of the .zip dictionaries under
// a directory, to decide which ones are too small to ship.
package scan

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
)

// boundsKB are the bucket bounds in KB. The last bucket has no upper bound.
var boundsKB = []int64{0, 10, 50, 100, 500, 1000, 5000, 10000}

const kilobyte = 1024

type Bucket struct {
	Label string
	// MinBytes is inclusive, MaxBytes is exclusive. MaxBytes is 0 for the last bucket.
	MinBytes int64
	MaxBytes int64
	Files    int
	Bytes    int64
}

func (b Bucket) contains(size int64) bool {
	return size >= b.MinBytes && (b.MaxBytes == 0 || size < b.MaxBytes)
}

type Report struct {
	Buckets []Bucket
	Files   int
	Bytes   int64
}

func newReport() Report {
	buckets := make([]Bucket, 0, len(boundsKB))
	for i := 0; i < len(boundsKB)-1; i++ {
		buckets = append(buckets, Bucket{
			Label:    fmt.Sprintf("%d-%d KB", boundsKB[i], boundsKB[i+1]),
			MinBytes: boundsKB[i] * kilobyte,
			MaxBytes: boundsKB[i+1] * kilobyte,
		})
	}
	last := boundsKB[len(boundsKB)-1]
	buckets = append(buckets, Bucket{
		Label:    fmt.Sprintf("%d+ KB", last),
		MinBytes: last * kilobyte,
	})
	return Report{Buckets: buckets}
}

func (r *Report) add(size int64) {
	r.Files++
	r.Bytes += size
	for i := range r.Buckets {
		if r.Buckets[i].contains(size) {
			r.Buckets[i].Files++
			r.Buckets[i].Bytes += size
			return
		}
	}
}

// Scan walks fsys recursively and buckets every .zip file by size.
func Scan(fsys fs.FS) (Report, error) {
	report := newReport()
	paths, err := doublestar.Glob(fsys, "**/*.zip", doublestar.WithFilesOnly())
	if err != nil {
		return report, fmt.Errorf("doublestar.Glob > %w", err)
	}
	for _, path := range paths {
		info, err := fs.Stat(fsys, path)
		if err != nil {
			return report, fmt.Errorf("fs.Stat(%s) > %w", path, err)
		}
		report.add(info.Size())
	}
	return report, nil
}

// Print writes one line per bucket followed by the total.
func (r Report) Print(w io.Writer) error {
	for _, bucket := range r.Buckets {
		if _, err := fmt.Fprintf(w, "%s:\t%d files\t%s\n", bucket.Label, bucket.Files, FormatSize(bucket.Bytes)); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "\n%d zip files (%s)\n", r.Files, FormatSize(r.Bytes)); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	return nil
}

var units = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with two decimals in powers of 1024.
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range units {
		if size < kilobyte {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= kilobyte
	}
	return fmt.Sprintf("%.2f PB", size)
}
