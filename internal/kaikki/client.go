// Package kaikki looks up dictionary entries on kaikki.org, the machine
// readable Wiktionary extraction.
package kaikki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/ktytools/internal/jsonl"
	"github.com/at-ishikawa/ktytools/internal/lang"
	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultTimeout = 30 * time.Second

// FetchError is returned when kaikki.org answers with a non-2xx status,
// typically because the word has no entry.
type FetchError struct {
	StatusCode int
	URL        string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("status code %d from %s", e.StatusCode, e.URL)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// CacheSize is the number of responses kept in memory. 0 disables it.
	CacheSize int
}

type Client struct {
	httpClient *resty.Client
	baseURL    string
	cache      *lru.Cache[string, []json.RawMessage]
	logger     *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var cache *lru.Cache[string, []json.RawMessage]
	if config.CacheSize > 0 {
		var err error
		cache, err = lru.New[string, []json.RawMessage](config.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("lru.New > %w", err)
		}
	}

	return &Client{
		httpClient: resty.New().SetTimeout(timeout),
		baseURL:    baseURL,
		cache:      cache,
		logger:     logger.With("component", "kaikki"),
	}, nil
}

func (client *Client) Lookup(word string, target lang.Code) (Lookup, error) {
	return NewLookup(client.baseURL, word, target)
}

// FetchCandidates downloads every entry spelled as word in the target edition.
// A non-2xx answer is reported as *FetchError.
func (client *Client) FetchCandidates(ctx context.Context, word string, target lang.Code) (Lookup, []json.RawMessage, error) {
	lookup, err := client.Lookup(word, target)
	if err != nil {
		return lookup, nil, err
	}

	requestURL := lookup.requestURL()
	if client.cache != nil {
		if records, ok := client.cache.Get(requestURL); ok {
			client.logger.DebugContext(ctx, "cache hit", "url", requestURL)
			return lookup, records, nil
		}
	}

	client.logger.DebugContext(ctx, "request", "word", word, "target", target, "url", requestURL)
	res, err := client.httpClient.R().
		SetContext(ctx).
		Get(requestURL)
	if err != nil {
		return lookup, nil, fmt.Errorf("client.R.Get(%s) > %w", requestURL, err)
	}
	if !res.IsSuccess() {
		return lookup, nil, &FetchError{
			StatusCode: res.StatusCode(),
			URL:        lookup.URL(),
		}
	}

	records, err := jsonl.Decode(bytes.NewReader(res.Body()))
	if err != nil {
		return lookup, nil, fmt.Errorf("jsonl.Decode(%s) > %w", requestURL, err)
	}
	if client.cache != nil {
		client.cache.Add(requestURL, records)
	}
	return lookup, records, nil
}
