package sqlite

import (
	"strings"
	"time"
)

// Timestamps are stored as RFC 3339 TEXT; tag and path lists as delimited
// TEXT, matching the single-file schema's flat columns.

const (
	timeLayout = time.RFC3339Nano
	tagSep     = ","
	pathSep    = "\n"
)

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func encodeList(items []string, sep string) string {
	return strings.Join(items, sep)
}

func decodeList(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
