package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odyssey-erp/medicare-web/internal/backend"
)

func customers() []backend.Record {
	return []backend.Record{
		{"name": "Apollo Pharmacy", "phone": "9876543210", "email": "orders@apollo.in"},
		{"name": "City Chemist", "phone": "9123456780", "email": nil},
		{"name": "Straße Medical", "phone": "9000000000", "email": "info@strasse.de"},
	}
}

func names(records []backend.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String("name")
	}
	return out
}

func TestFilterEmptyTermKeepsEverything(t *testing.T) {
	all := customers()
	assert.Len(t, Filter(all, "", []string{"name"}), len(all))
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	fields := []string{"name", "phone", "email"}

	assert.Equal(t, []string{"Apollo Pharmacy"}, names(Filter(customers(), "APOLLO", fields)))
	assert.Equal(t, []string{"City Chemist"}, names(Filter(customers(), "chem", fields)))
	assert.Equal(t, []string{"City Chemist"}, names(Filter(customers(), "345", fields)))
	assert.Equal(t, []string{"Apollo Pharmacy", "Straße Medical"}, names(Filter(customers(), "@", fields)))
}

func TestFilterFoldsUnicode(t *testing.T) {
	got := Filter(customers(), "STRASSE", []string{"name"})
	assert.Equal(t, []string{"Straße Medical"}, names(got))
}

func TestHaystackFoldsLikeTheBrowser(t *testing.T) {
	rec := backend.Record{"name": "Straße Medical", "email": "INFO@Strasse.de"}
	assert.Equal(t, "strasse medical\ninfo@strasse.de", haystack(rec, []string{"name", "email"}))
}

func TestFilterOnlySearchesConfiguredFields(t *testing.T) {
	assert.Empty(t, Filter(customers(), "apollo.in", []string{"name", "phone"}))
}

func TestHaystackSkipsEmptyFields(t *testing.T) {
	rec := backend.Record{"name": "City Chemist", "phone": "9123456780", "email": nil}
	assert.Equal(t, "city chemist\n9123456780", haystack(rec, []string{"name", "phone", "email"}))
}
