package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// None is written in place of URLs for entries that are not backed by kaikki.org.
const None = "none"

// Source tells where a matched record was downloaded from.
type Source struct {
	URL         string
	DownloadURL string
}

// Entry is one test case of a fixture file. A nil Source means the test case
// had no match on kaikki.org and Record is the original test case.
type Entry struct {
	Source *Source
	Record json.RawMessage
}

func Matched(source Source, record json.RawMessage) Entry {
	return Entry{Source: &source, Record: record}
}

func Unmatched(testCase json.RawMessage) Entry {
	return Entry{Record: testCase}
}

func (e Entry) IsMatched() bool {
	return e.Source != nil
}

type entryJSON struct {
	URL         string          `json:"url"`
	DownloadURL string          `json:"download_url"`
	JSON        json.RawMessage `json:"json"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	value := entryJSON{
		URL:         None,
		DownloadURL: None,
		JSON:        e.Record,
	}
	if e.Source != nil {
		value.URL = e.Source.URL
		value.DownloadURL = e.Source.DownloadURL
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var value entryJSON
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	if len(value.JSON) == 0 {
		return errors.New("entry has no json record")
	}

	*e = Entry{Record: value.JSON}
	if value.DownloadURL != "" && value.DownloadURL != None {
		e.Source = &Source{
			URL:         value.URL,
			DownloadURL: value.DownloadURL,
		}
	}
	return nil
}
