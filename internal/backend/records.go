package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Record is an entity as the backend sends it. The web tier does not own
// entity schemas, so records stay loosely typed.
type Record map[string]any

// String renders field as display text. Missing and null fields are empty.
func (r Record) String(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Float reads field as a number. Numeric strings are accepted.
func (r Record) Float(field string) (float64, bool) {
	switch v := r[field].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool reads field as a flag.
func (r Record) Bool(field string) bool {
	switch v := r[field].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// ListRecords loads the full collection at endpoint for companyID.
func (c *Client) ListRecords(ctx context.Context, token, endpoint, companyID string) ([]Record, error) {
	req := c.request(ctx, token).SetQueryParam("company_id", companyID)
	resp, err := c.do(req, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("backend: decode %s: %w", endpoint, err)
	}
	return records, nil
}

// CreateRecord posts payload to endpoint. The created record is not read.
func (c *Client) CreateRecord(ctx context.Context, token, endpoint string, payload Record) error {
	_, err := c.do(c.request(ctx, token).SetBody(payload), http.MethodPost, endpoint)
	return err
}
