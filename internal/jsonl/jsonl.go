// Package jsonl reads and writes JSON Lines files, one JSON value per line.
//
// Records are kept as raw JSON so that key order and characters survive a
// read-write cycle unchanged.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ParseError reports a line that is not valid JSON.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d is not valid JSON: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d is not valid JSON: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read parses every non-empty line of the file at path.
func Read(path string) ([]json.RawMessage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	records, err := Decode(file)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return nil, parseErr
		}
		return nil, fmt.Errorf("Decode(%s) > %w", path, err)
	}
	return records, nil
}

// Decode parses one JSON value per non-empty line. Lines may be of any length.
func Decode(r io.Reader) ([]json.RawMessage, error) {
	reader := bufio.NewReader(r)
	records := make([]json.RawMessage, 0)
	for lineNumber := 1; ; lineNumber++ {
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("reader.ReadBytes > %w", readErr)
		}

		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var record json.RawMessage
			if err := json.Unmarshal(line, &record); err != nil {
				return nil, &ParseError{Line: lineNumber, Err: err}
			}
			records = append(records, record)
		}

		if errors.Is(readErr, io.EOF) {
			return records, nil
		}
	}
}

// Write overwrites the file at path with one record per line.
func Write(path string, records []json.RawMessage) error {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

// Encode writes one record per line in the fixture layout: a single line per
// record with ", " and ": " separators, key order kept, and non-ASCII or HTML
// characters written as is.
func Encode(w io.Writer, records []json.RawMessage) error {
	var buf bytes.Buffer
	for i, record := range records {
		buf.Reset()
		if err := appendRecord(&buf, record); err != nil {
			return fmt.Errorf("appendRecord(record %d) > %w", i, err)
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("w.Write(record %d) > %w", i, err)
		}
	}
	return nil
}
