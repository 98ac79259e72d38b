package listing

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/odyssey-erp/medicare-web/internal/backend"
	"github.com/odyssey-erp/medicare-web/internal/view"
)

// Cell is a rendered table cell.
type Cell struct {
	Lines []string
	// Muted marks a cell showing its column's Empty text.
	Muted bool
	Badge bool
}

// Text joins the cell's lines for plain-text consumers.
func (c Cell) Text() string {
	return strings.Join(c.Lines, " / ")
}

// Row is a rendered table row.
type Row struct {
	Cells  []Cell
	Search string
}

// Rows renders records as table rows.
func (r Resource) Rows(records []backend.Record, lookups map[string]LookupTable) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{Cells: make([]Cell, 0, len(r.Columns)), Search: haystack(rec, r.SearchFields)}
		for _, col := range r.Columns {
			row.Cells = append(row.Cells, col.render(rec, lookups))
		}
		rows = append(rows, row)
	}
	return rows
}

func (c Column) render(rec backend.Record, lookups map[string]LookupTable) Cell {
	cell := Cell{Badge: c.Badge}
	for _, line := range c.Lines {
		if text := line.render(rec, lookups); text != "" {
			cell.Lines = append(cell.Lines, text)
		}
	}
	if len(cell.Lines) == 0 && c.Empty != "" {
		cell.Lines = []string{c.Empty}
		cell.Muted = true
		cell.Badge = false
	}
	return cell
}

func (l Line) render(rec backend.Record, lookups map[string]LookupTable) string {
	values := make([]string, 0, len(l.Fields))
	for _, field := range l.Fields {
		if v := l.format(rec, field, lookups); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return ""
	}
	sep := l.Sep
	if sep == "" {
		sep = " "
	}
	return l.Prefix + strings.Join(values, sep) + l.Suffix
}

func (l Line) format(rec backend.Record, field string, lookups map[string]LookupTable) string {
	switch l.Format {
	case FormatFlag:
		if rec.Bool(field) {
			return l.True
		}
		return l.False
	case FormatMoney:
		if f, ok := rec.Float(field); ok {
			return view.FormatMoney(f)
		}
	case FormatNumber:
		if f, ok := rec.Float(field); ok {
			return view.FormatNumber(f)
		}
	case FormatPercent:
		if f, ok := rec.Float(field); ok {
			return view.FormatNumber(f) + "%"
		}
	case FormatLookup:
		return lookups[l.Lookup].Label(rec.String(field))
	case FormatTitle:
		return cases.Title(language.English).String(strings.ReplaceAll(rec.String(field), "_", " "))
	case FormatDate:
		return formatDate(rec.String(field))
	case FormatShortID:
		id := rec.String(field)
		if len(id) > 8 {
			return id[:8] + "..."
		}
		return id
	}
	return rec.String(field)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func formatDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return raw
}
