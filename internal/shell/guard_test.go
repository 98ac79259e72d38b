package shell

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/backend"
	"github.com/odyssey-erp/medicare-web/internal/shared"
)

type probe struct{ err error }

func (p probe) DashboardSummary(ctx context.Context, token, companyID string) (*backend.DashboardSummary, error) {
	return &backend.DashboardSummary{}, p.err
}

func newTestSession(t *testing.T) (*shared.SessionManager, *shared.Session) {
	t.Helper()
	mr := miniredis.RunT(t)
	sm := shared.NewSessionManager(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test_session", "secret", time.Hour, false)
	sess, err := sm.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	return sm, sess
}

func guarded(g *Guard, sess *shared.Session, seen **auth.Principal) (*httptest.ResponseRecorder, bool) {
	called := false
	h := g.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		*seen = auth.PrincipalFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req = req.WithContext(shared.ContextWithSession(req.Context(), sess))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr, called
}

func TestGuardRedirectsAnonymous(t *testing.T) {
	sm, sess := newTestSession(t)
	g := NewGuard(auth.NewStore(nil, probe{}, sm, auth.StoreConfig{}), nil)

	var p *auth.Principal
	rr, called := guarded(g, sess, &p)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, LoginPath, rr.Header().Get("Location"))
}

func TestGuardAttachesPrincipal(t *testing.T) {
	sm, sess := newTestSession(t)
	store := auth.NewStore(nil, probe{}, sm, auth.StoreConfig{FallbackCompany: "fallback-co"})
	require.NoError(t, store.Login(sess, auth.Identity{Email: "a@b.com", Name: "Asha"}, "tok"))
	g := NewGuard(store, nil)

	var p *auth.Principal
	rr, called := guarded(g, sess, &p)

	require.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, p)
	assert.Equal(t, "tok", p.Token)
	assert.Equal(t, "fallback-co", p.CompanyID())
}

func TestGuardLogsOutRejectedCredential(t *testing.T) {
	sm, sess := newTestSession(t)
	first := auth.NewStore(nil, probe{}, sm, auth.StoreConfig{})
	require.NoError(t, first.Login(sess, auth.Identity{Email: "a@b.com", CompanyID: "c1"}, "tok"))

	// A new store stands in for a restarted process.
	restarted := auth.NewStore(nil, probe{err: errors.New("401")}, sm, auth.StoreConfig{})
	var p *auth.Principal
	rr, called := guarded(NewGuard(restarted, nil), sess, &p)

	assert.False(t, called)
	assert.Equal(t, LoginPath, rr.Header().Get("Location"))
	assert.Empty(t, sess.Get(auth.TokenKey))
}
