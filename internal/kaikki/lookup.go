package kaikki

import (
	"errors"
	"net/url"
	"strings"

	"github.com/at-ishikawa/ktytools/internal/lang"
)

const (
	DefaultBaseURL = "https://kaikki.org"

	allLanguagesPath = "All%20languages%20combined/meaning"
	jsonlSuffix      = ".jsonl"
	htmlSuffix       = ".html"
)

// Lookup locates the kaikki.org page listing every entry spelled as Word in
// the Wiktionary edition written in Target.
type Lookup struct {
	Word    string
	Target  lang.Code
	baseURL string
}

func NewLookup(baseURL, word string, target lang.Code) (Lookup, error) {
	if word == "" {
		return Lookup{}, errors.New("cannot look up an empty word")
	}
	return Lookup{
		Word:    word,
		Target:  target,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// The English edition lives under /dictionary, the others under /<code>wiktionary.
func (l Lookup) prefix() string {
	if l.Target == lang.English {
		return l.baseURL + "/dictionary/" + allLanguagesPath
	}
	return l.baseURL + "/" + string(l.Target) + "wiktionary/" + allLanguagesPath
}

// segments are the first letter, the first two letters and the word itself.
func (l Lookup) segments() []string {
	runes := []rune(l.Word)
	return []string{
		string(runes[:1]),
		string(runes[:min(2, len(runes))]),
		l.Word + jsonlSuffix,
	}
}

// URL is the JSON Lines download location, with the word written verbatim.
func (l Lookup) URL() string {
	return l.prefix() + "/" + strings.Join(l.segments(), "/")
}

// HTMLURL is the human readable page of the same entries.
func (l Lookup) HTMLURL() string {
	return strings.TrimSuffix(l.URL(), jsonlSuffix) + htmlSuffix
}

func (l Lookup) requestURL() string {
	segments := l.segments()
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}
	return l.prefix() + "/" + strings.Join(escaped, "/")
}
