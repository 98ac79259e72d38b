// Package listing implements the list-management page shared by every
// entity screen: fetch the company's collection, filter it by a search term,
// render it as a table and offer modal forms that create new records.
//
// A screen is described by a Resource; one Handler serves any Resource.
package listing

// Format selects how a value is rendered in a table cell.
type Format int

const (
	FormatText Format = iota
	FormatTitle
	FormatMoney
	FormatNumber
	FormatPercent
	FormatFlag
	FormatLookup
	FormatDate
	// FormatShortID shows the first eight characters of an identifier.
	FormatShortID
)

// Line is one line of a table cell. The formatted, non-empty values of
// Fields are joined by Sep and wrapped in Prefix and Suffix.
type Line struct {
	Fields []string
	Sep    string
	Format Format
	// Lookup names the Lookup resolving FormatLookup values.
	Lookup string
	Prefix string
	Suffix string
	// Labels shown by FormatFlag.
	True  string
	False string
}

// Column is a table column. The first line of a cell is its primary text.
type Column struct {
	Header string
	Lines  []Line
	// Empty is shown, muted, when no line has a value.
	Empty string
	Badge bool
}

// FieldKind is the input control a form field renders as.
type FieldKind int

const (
	KindText FieldKind = iota
	KindEmail
	KindTel
	KindPassword
	KindTextarea
	KindNumber
	KindInteger
	KindSelect
	KindSwitch
)

// Option is a select choice.
type Option struct {
	Value string
	Label string
}

// Field is one input of a create form.
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Required    bool
	Placeholder string
	Default     string
	Options     []Option
	// OptionsFrom fills a select from a Lookup's records.
	OptionsFrom string
	Wide        bool
}

// Form is a modal that creates one record.
type Form struct {
	Key         string
	Title       string
	Description string
	// Trigger labels the button that opens the modal.
	Trigger  string
	Submit   string
	Endpoint string
	Fields   []Field
	Success  string
	Failure  string
	// Secondary forms render as outlined buttons.
	Secondary bool
}

// Lookup is an auxiliary collection read alongside the main one, used to
// resolve references and to fill selects.
type Lookup struct {
	Name     string
	Endpoint string
	Key      string
	Label    string
	// Missing is shown for references that resolve to nothing.
	Missing string
	Failure string
}

// Resource describes one list-management screen.
type Resource struct {
	Slug     string
	Path     string
	Title    string
	Subtitle string
	// Card heading above the table.
	Heading     string
	Description string
	Icon        string
	Endpoint    string
	// Plural noun used in "No customers found" and "Failed to fetch customers".
	Plural            string
	SearchFields      []string
	SearchPlaceholder string
	EmptyHint         string
	Columns           []Column
	Forms             []Form
	Lookups           []Lookup
	// RowActions renders the edit and view affordances.
	RowActions bool
}

// BasePath returns where the resource is mounted.
func (r Resource) BasePath() string {
	if r.Path != "" {
		return r.Path
	}
	return "/" + r.Slug
}

// EmptyText is the canonical empty state.
func (r Resource) EmptyText() string {
	return "No " + r.Plural + " found"
}

// FetchFailure is the notice shown when the collection cannot be read.
func (r Resource) FetchFailure() string {
	return "Failed to fetch " + r.Plural
}

// Form looks up a form by key.
func (r Resource) Form(key string) (Form, bool) {
	for _, f := range r.Forms {
		if f.Key == key {
			return f, true
		}
	}
	return Form{}, false
}

// Headers returns the column headers in order.
func (r Resource) Headers() []string {
	out := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		out[i] = c.Header
	}
	return out
}
