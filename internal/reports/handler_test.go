package reports_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/backend"
	"github.com/odyssey-erp/medicare-web/internal/reports"
	"github.com/odyssey-erp/medicare-web/internal/shared"
	"github.com/odyssey-erp/medicare-web/internal/shell"
	"github.com/odyssey-erp/medicare-web/internal/view"
	_ "github.com/odyssey-erp/medicare-web/testing"
)

type stubGateway struct {
	records map[string][]backend.Record
	err     error
}

func (s *stubGateway) ListRecords(ctx context.Context, token, endpoint, companyID string) ([]backend.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[endpoint], nil
}

func (s *stubGateway) CreateRecord(ctx context.Context, token, endpoint string, payload backend.Record) error {
	return errors.New("not supported")
}

func serve(t *testing.T, gw *stubGateway, target string) (*httptest.ResponseRecorder, *shared.Session) {
	t.Helper()
	mr := miniredis.RunT(t)
	sessions := shared.NewSessionManager(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test_session", "secret", time.Hour, false)
	csrf := shared.NewCSRFManager("csrfsecret")
	templates, err := view.NewEngine()
	require.NoError(t, err)
	h := reports.NewHandler(nil, gw, templates, shell.NewLayout(shell.DefaultNavigation(), csrf))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	sess, err := sessions.Load(req.Context(), req)
	require.NoError(t, err)
	ctx := shared.ContextWithSession(req.Context(), sess)
	ctx = auth.ContextWithPrincipal(ctx, auth.NewPrincipal(auth.Identity{Name: "Asha", CompanyID: "c1"}, "tok", ""))

	r := chi.NewRouter()
	r.Route(reports.Path, h.MountRoutes)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req.WithContext(ctx))
	return rr, sess
}

func TestCatalogueLinksExports(t *testing.T) {
	catalogue := reports.Catalogue()

	require.Len(t, catalogue, 6)
	for _, r := range catalogue {
		assert.NotEmpty(t, r.Export, r.Title)
	}
	assert.Equal(t, "/reports/export/customers.xlsx", catalogue[5].Export)
}

func TestIndexRendersCatalogue(t *testing.T) {
	rr, _ := serve(t, &stubGateway{}, "/reports")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "GST Report")
	assert.Contains(t, body, "/reports/export/invoices.xlsx")
}

func TestExportWritesWorkbook(t *testing.T) {
	gw := &stubGateway{records: map[string][]backend.Record{
		"/customers": {
			{"name": "Apollo Pharmacy", "phone": "9876543210", "city": "Mumbai", "state": "Maharashtra"},
		},
	}}

	rr, _ := serve(t, gw, "/reports/export/customers.xlsx")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "customers_")

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Customers")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Customer Name", "Contact", "Location", "GSTIN", "Credit Terms"}, rows[0])
	assert.Equal(t, "Apollo Pharmacy", rows[1][0])
	assert.Equal(t, "Mumbai, Maharashtra", rows[1][2])
}

func TestExportFailureRedirects(t *testing.T) {
	rr, sess := serve(t, &stubGateway{err: errors.New("boom")}, "/reports/export/payments.xlsx")

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/reports", rr.Header().Get("Location"))
	flash := sess.PopFlash()
	require.NotNil(t, flash)
	assert.Equal(t, "Failed to export payments", flash.Message)
}

func TestExportUnknownReport(t *testing.T) {
	rr, _ := serve(t, &stubGateway{}, "/reports/export/users.xlsx")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
