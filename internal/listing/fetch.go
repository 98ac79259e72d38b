package listing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/backend"
)

// Gateway is the slice of the backend a list page needs.
type Gateway interface {
	ListRecords(ctx context.Context, token, endpoint, companyID string) ([]backend.Record, error)
	CreateRecord(ctx context.Context, token, endpoint string, payload backend.Record) error
}

// LookupTable resolves references for one Lookup.
type LookupTable struct {
	labels  map[string]string
	options []Option
	missing string
}

// Label returns the label for id, or the lookup's missing text.
func (t LookupTable) Label(id string) string {
	if label, ok := t.labels[id]; ok {
		return label
	}
	return t.missing
}

// Options returns the lookup's records as select options.
func (t LookupTable) Options() []Option {
	return t.options
}

func newLookupTable(l Lookup, records []backend.Record) LookupTable {
	t := LookupTable{labels: make(map[string]string, len(records)), missing: l.Missing}
	for _, rec := range records {
		key, label := rec.String(l.Key), rec.String(l.Label)
		if key == "" {
			continue
		}
		t.labels[key] = label
		t.options = append(t.options, Option{Value: key, Label: label})
	}
	return t
}

// Dataset is everything read for one rendering of a resource.
type Dataset struct {
	Records []backend.Record
	Lookups map[string]LookupTable
	// Err is the failure reading the main collection, if any.
	Err error
	// Notices are the user-facing messages for every failed read.
	Notices []string
}

// Fetch reads the resource's collection and its lookups concurrently for
// the principal's company. Reads are independent: one failing leaves the
// others intact, and a failed read yields an empty collection.
func Fetch(ctx context.Context, gw Gateway, p *auth.Principal, res Resource) Dataset {
	company := p.CompanyID()
	lookupRecords := make([][]backend.Record, len(res.Lookups))
	lookupErrs := make([]error, len(res.Lookups))
	var ds Dataset

	var g errgroup.Group
	g.Go(func() error {
		ds.Records, ds.Err = gw.ListRecords(ctx, p.Token, res.Endpoint, company)
		return nil
	})
	for i, l := range res.Lookups {
		i, l := i, l
		g.Go(func() error {
			lookupRecords[i], lookupErrs[i] = gw.ListRecords(ctx, p.Token, l.Endpoint, company)
			return nil
		})
	}
	_ = g.Wait()

	if ds.Err != nil {
		ds.Records = nil
		ds.Notices = append(ds.Notices, res.FetchFailure())
	}
	ds.Lookups = make(map[string]LookupTable, len(res.Lookups))
	for i, l := range res.Lookups {
		if lookupErrs[i] != nil {
			lookupRecords[i] = nil
			ds.Notices = append(ds.Notices, l.Failure)
		}
		ds.Lookups[l.Name] = newLookupTable(l, lookupRecords[i])
	}
	return ds
}
