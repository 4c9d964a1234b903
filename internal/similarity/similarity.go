// Package similarity ranks JSON records against each other by comparing their
// flattened "path: value" text.
package similarity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Decode parses a raw record into the generic form accepted by Flatten.
// Numbers are kept as json.Number so they print as written.
func Decode(raw json.RawMessage) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decoder.Decode > %w", err)
	}
	return value, nil
}

// Flatten maps the path of every scalar in value to its text.
// Object keys are joined with dots and array elements are suffixed with [i].
func Flatten(value any) map[string]string {
	items := make(map[string]string)
	flatten(items, value, "")
	return items
}

func flatten(items map[string]string, value any, prefix string) {
	switch v := value.(type) {
	case map[string]any:
		// Sorted keys make colliding paths such as "a.b" and a/b resolve the
		// same way on every run: the later key wins.
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			flatten(items, v[key], path)
		}
	case []any:
		for i, child := range v {
			flatten(items, child, prefix+"["+strconv.Itoa(i)+"]")
		}
	default:
		items[prefix] = leafText(v)
	}
}

// leafText spells scalars the way the reference kty scorer prints them:
// True/False, None, integers as written and floats in shortest repr form.
func leafText(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case json.Number:
		return numberText(v.String())
	case float64:
		return floatText(v)
	default:
		return fmt.Sprint(v)
	}
}

func numberText(literal string) string {
	if !strings.ContainsAny(literal, ".eE") {
		if literal == "-0" {
			return "0"
		}
		return literal
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !math.IsInf(f, 0) {
		return literal
	}
	return floatText(f)
}

// floatText uses positional notation with a fractional part for decimal
// exponents in [-4, 16) and scientific notation otherwise.
func floatText(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	scientific := strconv.FormatFloat(f, 'e', -1, 64)
	exponent, _ := strconv.Atoi(scientific[strings.IndexByte(scientific, 'e')+1:])
	if exponent < -4 || exponent >= 16 {
		return scientific
	}
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// Serialize renders the flattened value as "path: value" lines sorted by path.
func Serialize(value any) string {
	items := Flatten(value)
	paths := make([]string, 0, len(items))
	for path := range items {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	lines := make([]string, 0, len(paths))
	for _, path := range paths {
		lines = append(lines, path+": "+items[path])
	}
	return strings.Join(lines, "\n")
}

// Ratio returns the sequence matcher ratio 2*M/T of the characters of a and b.
// The matcher is not symmetric on its own, so the operands are put in lexical
// order first. Identical texts, including two empty ones, score 1 even when
// the auto-junk heuristic would discard all of their characters.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	if b < a {
		a, b = b, a
	}
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}

// Similarity scores two decoded JSON values between 0 and 1.
func Similarity(a, b any) float64 {
	return Ratio(Serialize(a), Serialize(b))
}
