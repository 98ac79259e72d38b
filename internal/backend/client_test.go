package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/medicare-web/internal/backend"
)

type recordedCall struct {
	method, endpoint string
	status           int
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (o *recordingObserver) ObserveBackend(method, endpoint string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, recordedCall{method: method, endpoint: endpoint, status: status})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newClient(t *testing.T, handler http.HandlerFunc) (*backend.Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	observer := &recordingObserver{}
	return backend.NewClient(backend.Config{BaseURL: srv.URL + "/", Observer: observer}), observer
}

func TestLoginPostsCredentialsUnderAPIPrefix(t *testing.T) {
	client, observer := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var body backend.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body.Email)
		assert.Equal(t, "x", body.Password)
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "t1",
			"token_type":   "bearer",
			"user":         map[string]any{"name": "A", "role": "admin", "company_id": "c1"},
		})
	})

	result, err := client.Login(context.Background(), backend.LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "t1", result.AccessToken)
	assert.JSONEq(t, `{"name":"A","role":"admin","company_id":"c1"}`, string(result.User))
	require.Len(t, observer.calls, 1)
	assert.Equal(t, recordedCall{method: http.MethodPost, endpoint: "/auth/login", status: http.StatusOK}, observer.calls[0])
}

func TestLoginFailureCarriesDetail(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Incorrect email or password"})
	})

	_, err := client.Login(context.Background(), backend.LoginRequest{Email: "a@b.com", Password: "bad"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, backend.ErrUnauthorized))
	assert.Equal(t, "Incorrect email or password", backend.Detail(err, "Login failed"))
}

func TestValidationDetailListIsFlattened(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{
				{"loc": []any{"body", "gst_rate"}, "msg": "value is not a valid float"},
			},
		})
	})

	err := client.CreateRecord(context.Background(), "t1", "/items", backend.Record{"name": "x"})
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "gst_rate: value is not a valid float", apiErr.Detail)
	assert.False(t, errors.Is(err, backend.ErrUnauthorized))
}

func TestListRecordsScopesByCompanyAndSendsBearer(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers", r.URL.Path)
		assert.Equal(t, "c1", r.URL.Query().Get("company_id"))
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []map[string]any{
			{"name": "Apollo Pharmacy", "phone": "98450", "credit_days": 30},
			{"name": "City Chemist", "phone": "98451", "email": nil},
		})
	})

	records, err := client.ListRecords(context.Background(), "t1", "/customers", "c1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Apollo Pharmacy", records[0].String("name"))
	assert.Equal(t, "30", records[0].String("credit_days"))
	assert.Equal(t, "", records[1].String("email"))
}

func TestTransportFailureUsesFallbackDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	observer := &recordingObserver{}
	client := backend.NewClient(backend.Config{BaseURL: url, Observer: observer})

	_, err := client.ListRecords(context.Background(), "t1", "/items", "c1")
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch items", backend.Detail(err, "Failed to fetch items"))
	require.Len(t, observer.calls, 1)
	assert.Equal(t, 0, observer.calls[0].status)
}

func TestDashboardSummaryDecodesAbsentFieldsAsZero(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard/summary", r.URL.Path)
		assert.Equal(t, "c1", r.URL.Query().Get("company_id"))
		writeJSON(w, http.StatusOK, map[string]any{
			"total_customers": 4,
			"low_stock_items": []map[string]any{{"item_name": "Paracetamol", "current_stock": 2, "min_level": 10}},
		})
	})

	summary, err := client.DashboardSummary(context.Background(), "t1", "c1")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalCustomers)
	assert.Zero(t, summary.PendingPurchaseOrders)
	require.Len(t, summary.LowStockItems, 1)
	assert.Equal(t, "Paracetamol", summary.LowStockItems[0].ItemName)
	assert.Equal(t, 2.0, summary.LowStockItems[0].CurrentStock)
}

func TestRecordAccessors(t *testing.T) {
	rec := backend.Record{"price": "12.5", "rate": 18.0, "tracked": true, "flag": "true"}

	f, ok := rec.Float("price")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)
	f, ok = rec.Float("rate")
	assert.True(t, ok)
	assert.Equal(t, 18.0, f)
	_, ok = rec.Float("missing")
	assert.False(t, ok)
	assert.True(t, rec.Bool("tracked"))
	assert.True(t, rec.Bool("flag"))
	assert.False(t, rec.Bool("missing"))
}
