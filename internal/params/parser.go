package params

import (
	"fmt"
	"strings"

	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

// Pair is one key=value entry of a query string.
type Pair struct {
	Key   string
	Value string
}

// ParseQuery splits a query string into ordered pairs.
// An empty query yields no pairs. A pair that does not contain exactly
// one '=' returns a *mediaurl.MalformedPairError.
//
// Example:
//
//	pairs, err := ParseQuery("action=listfolder&channel=chn_nos")
//	// Returns: []Pair{{"action", "listfolder"}, {"channel", "chn_nos"}}
func ParseQuery(query string) ([]Pair, error) {
	if query == "" {
		return nil, nil
	}

	parts := strings.Split(query, "&")
	pairs := make([]Pair, 0, len(parts))
	for _, part := range parts {
		if strings.Count(part, "=") != 1 {
			return nil, &mediaurl.MalformedPairError{Pair: part}
		}
		key, value, _ := strings.Cut(part, "=")
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}

// ToMap collapses pairs into a map. Later keys win.
func ToMap(pairs []Pair) map[string]string {
	result := make(map[string]string, len(pairs))
	for _, p := range pairs {
		result[p.Key] = p.Value
	}
	return result
}

// JoinQuery renders pairs as k=v joined by '&', without escaping.
func JoinQuery(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
//
// Example:
//
//	fields, err := ParseKeyValuePairs([]string{"name=News", "live=true"})
//	// Returns: map[string]string{"name": "News", "live": "true"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not in key=value format (example: --item-field name=News)", mediaurl.ErrUsage, pair)
		}

		if key == "" {
			return nil, fmt.Errorf("%w: parameter has empty key: %q", mediaurl.ErrUsage, pair)
		}

		result[key] = value
	}

	return result, nil
}
