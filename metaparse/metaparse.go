// Package metaparse turns a raw metadata value string into a typed
// value for recognized keys (currently only "servings"). Values are
// decoded through github.com/goccy/go-yaml, which handles flow
// sequences, quoting and whitespace correctly instead of re-implementing
// a partial YAML grammar by hand.
package metaparse

import (
	"strings"

	"github.com/goccy/go-yaml"
)

// Typed is the recognized-key slot alongside the free-form metadata map.
type Typed struct {
	Servings []int
}

// Parse attempts to decode value as the typed representation of key.
// ok is false for keys with no typed slot (the caller then stores the
// raw string in the metadata map unchanged). warning is non-nil when
// the key is recognized but the value could not be decoded into its
// expected shape.
func Parse(key, value string) (typed Typed, ok bool, warning error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "servings":
		nums, err := parseServings(value)
		if err != nil {
			return Typed{}, true, err
		}
		return Typed{Servings: nums}, true, nil
	default:
		return Typed{}, false, nil
	}
}

func parseServings(value string) ([]int, error) {
	value = strings.TrimSpace(value)
	// Accept either a bare number ("4") or a YAML flow sequence
	// ("[2, 4, 6]"); both are valid YAML scalars/sequences on their own.
	var asSlice []int
	if err := yaml.Unmarshal([]byte(value), &asSlice); err == nil && len(asSlice) > 0 {
		return asSlice, nil
	}
	var single int
	if err := yaml.Unmarshal([]byte(value), &single); err == nil {
		return []int{single}, nil
	}
	return nil, &ParseError{Key: "servings", Value: value}
}

type ParseError struct {
	Key, Value string
}

func (e *ParseError) Error() string {
	return "could not parse value for '" + e.Key + "': " + e.Value
}
