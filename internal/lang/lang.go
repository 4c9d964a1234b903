// Package lang defines the language codes supported by the kty test suite
// and the table of source-target pairs that have fixtures.
package lang

import (
	"fmt"
	"sort"
)

// Code is an ISO-like language code used as a lookup key.
type Code string

const (
	Czech        Code = "cs"
	German       Code = "de"
	Greek        Code = "el"
	English      Code = "en"
	Spanish      Code = "es"
	Persian      Code = "fa"
	French       Code = "fr"
	AncientGreek Code = "grc"
	Japanese     Code = "ja"
	Korean       Code = "ko"
	Latin        Code = "la"
	Russian      Code = "ru"
	Albanian     Code = "sq"
	Thai         Code = "th"
	Chinese      Code = "zh"
)

var supported = map[Code]struct{}{
	Czech: {}, German: {}, Greek: {}, English: {}, Spanish: {},
	Persian: {}, French: {}, AncientGreek: {}, Japanese: {}, Korean: {},
	Latin: {}, Russian: {}, Albanian: {}, Thai: {}, Chinese: {},
}

// All returns every supported code in lexical order.
func All() []Code {
	codes := make([]Code, 0, len(supported))
	for code := range supported {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return codes[i] < codes[j]
	})
	return codes
}

func IsSupported(s string) bool {
	_, ok := supported[Code(s)]
	return ok
}

func Parse(s string) (Code, error) {
	if !IsSupported(s) {
		return "", fmt.Errorf("unsupported language code %q. Possible values are %v", s, All())
	}
	return Code(s), nil
}

// UnmarshalText accepts only supported codes.
func (c *Code) UnmarshalText(text []byte) error {
	code, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// Pair is a source language whose entries are explained in a target language.
type Pair struct {
	Source Code
	Target Code
}

func (p Pair) String() string {
	return string(p.Source) + "-" + string(p.Target)
}

// Pairs maps a source language to the target languages that have fixtures.
type Pairs map[Code][]Code

// List flattens the table. Sources are sorted and targets keep their table order.
func (pairs Pairs) List() []Pair {
	sources := make([]Code, 0, len(pairs))
	for source := range pairs {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i] < sources[j]
	})

	result := make([]Pair, 0)
	for _, source := range sources {
		for _, target := range pairs[source] {
			result = append(result, Pair{Source: source, Target: target})
		}
	}
	return result
}

// DefaultPairs is the table of fixtures shipped with the kty test suite.
func DefaultPairs() Pairs {
	return Pairs{
		Czech:        {English},
		German:       {German, English},
		Greek:        {Greek},
		English:      {German, English, Spanish},
		Spanish:      {English},
		Persian:      {English},
		French:       {English, French},
		AncientGreek: {English},
		Japanese:     {English},
		Korean:       {English},
		Latin:        {English},
		Russian:      {English, Russian},
		Albanian:     {English},
		Chinese:      {English},
	}
}
