package listing

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/odyssey-erp/medicare-web/internal/backend"
)

// Fold normalises s for case-insensitive comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Filter keeps the records where any of fields contains term, ignoring
// case. An empty term keeps everything.
func Filter(records []backend.Record, term string, fields []string) []backend.Record {
	if term == "" {
		return records
	}
	needle := Fold(term)
	out := make([]backend.Record, 0, len(records))
	for _, rec := range records {
		for _, field := range fields {
			if strings.Contains(Fold(rec.String(field)), needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// haystack is the folded text a row is matched against in the browser. The
// fields are separated by a newline so a term cannot match across two.
func haystack(rec backend.Record, fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if v := rec.String(field); v != "" {
			parts = append(parts, Fold(v))
		}
	}
	return strings.Join(parts, "\n")
}
