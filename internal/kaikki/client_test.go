package kaikki

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/at-ishikawa/ktytools/internal/jsonl"
	"github.com/at-ishikawa/ktytools/internal/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, server *httptest.Server, cacheSize int) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:   server.URL,
		Timeout:   5 * time.Second,
		CacheSize: cacheSize,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return client
}

func TestClient_FetchCandidates(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		target     lang.Code
		status     int
		body       string
		wantPath   string
		want       []json.RawMessage
		wantStatus int
		wantParse  bool
	}{
		{
			name:     "english edition",
			word:     "casa",
			target:   lang.English,
			status:   http.StatusOK,
			body:     "{\"word\":\"casa\",\"lang\":\"Spanish\"}\n{\"word\":\"casa\",\"lang\":\"Portuguese\"}\n",
			wantPath: "/dictionary/All languages combined/meaning/c/ca/casa.jsonl",
			want: []json.RawMessage{
				json.RawMessage(`{"word":"casa","lang":"Spanish"}`),
				json.RawMessage(`{"word":"casa","lang":"Portuguese"}`),
			},
		},
		{
			name:     "other edition with non ascii word",
			word:     "été",
			target:   lang.French,
			status:   http.StatusOK,
			body:     "{\"word\":\"été\"}\n",
			wantPath: "/frwiktionary/All languages combined/meaning/é/ét/été.jsonl",
			want:     []json.RawMessage{json.RawMessage(`{"word":"été"}`)},
		},
		{
			name:       "not found",
			word:       "xyzzycustom",
			target:     lang.English,
			status:     http.StatusNotFound,
			body:       "not found",
			wantPath:   "/dictionary/All languages combined/meaning/x/xy/xyzzycustom.jsonl",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "server error",
			word:       "casa",
			target:     lang.Spanish,
			status:     http.StatusInternalServerError,
			wantPath:   "/eswiktionary/All languages combined/meaning/c/ca/casa.jsonl",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:      "malformed body",
			word:      "casa",
			target:    lang.English,
			status:    http.StatusOK,
			body:      "<html>maintenance</html>\n",
			wantPath:  "/dictionary/All languages combined/meaning/c/ca/casa.jsonl",
			wantParse: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := make(chan string, 1)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				paths <- r.URL.Path
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := newTestClient(t, server, 0)
			lookup, got, err := client.FetchCandidates(context.Background(), tt.word, tt.target)
			assert.Equal(t, tt.wantPath, <-paths)
			assert.Equal(t, tt.word, lookup.Word)

			switch {
			case tt.wantStatus != 0:
				var fetchErr *FetchError
				require.ErrorAs(t, err, &fetchErr)
				assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
				assert.Equal(t, lookup.URL(), fetchErr.URL)
			case tt.wantParse:
				var parseErr *jsonl.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 1, parseErr.Line)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClient_FetchCandidates_Cache(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = io.WriteString(w, "{\"word\":\"casa\"}\n")
	}))
	defer server.Close()

	t.Run("same lookup is served from memory", func(t *testing.T) {
		requests.Store(0)
		client := newTestClient(t, server, 8)
		for i := 0; i < 3; i++ {
			_, got, err := client.FetchCandidates(context.Background(), "casa", lang.English)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		}
		assert.Equal(t, int32(1), requests.Load())

		_, _, err := client.FetchCandidates(context.Background(), "casa", lang.Spanish)
		require.NoError(t, err)
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("disabled cache", func(t *testing.T) {
		requests.Store(0)
		client := newTestClient(t, server, 0)
		for i := 0; i < 2; i++ {
			_, _, err := client.FetchCandidates(context.Background(), "casa", lang.English)
			require.NoError(t, err)
		}
		assert.Equal(t, int32(2), requests.Load())
	})
}

func TestClient_FetchCandidates_Failures(t *testing.T) {
	t.Run("failed responses are not cached", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(t, server, 8)
		for i := 0; i < 2; i++ {
			_, _, err := client.FetchCandidates(context.Background(), "nope", lang.English)
			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
		}
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()

		client, err := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, err)
		_, _, err = client.FetchCandidates(context.Background(), "casa", lang.English)
		require.Error(t, err)
		var fetchErr *FetchError
		assert.False(t, errors.As(err, &fetchErr))
	})

	t.Run("empty word", func(t *testing.T) {
		client, err := NewClient(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, err)
		_, _, err = client.FetchCandidates(context.Background(), "", lang.English)
		assert.Error(t, err)
	})
}
