package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*SessionManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionManager(client, "test_session", "secret", time.Hour, false), mr
}

func commit(t *testing.T, sm *SessionManager, sess *Session) *http.Cookie {
	t.Helper()
	rr := httptest.NewRecorder()
	require.NoError(t, sm.Commit(context.Background(), rr, sess))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func reload(t *testing.T, sm *SessionManager, cookie *http.Cookie) *Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	sess, err := sm.Load(context.Background(), req)
	require.NoError(t, err)
	return sess
}

func TestSessionRoundTrip(t *testing.T) {
	sm, mr := newTestManager(t)

	sess, err := sm.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	sess.Set("token", "abc")
	sess.SetUser("a@b.com")
	cookie := commit(t, sm, sess)

	assert.True(t, mr.Exists("medicare:session:"+sess.ID))
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.True(t, cookie.HttpOnly)

	loaded := reload(t, sm, cookie)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, "abc", loaded.Get("token"))
	assert.Equal(t, "a@b.com", loaded.User())
}

func TestLoadNeverAdoptsUnknownID(t *testing.T) {
	sm, _ := newTestManager(t)

	loaded := reload(t, sm, &http.Cookie{Name: "test_session", Value: "attacker-chosen"})

	assert.NotEqual(t, "attacker-chosen", loaded.ID)
	assert.Empty(t, loaded.Get("token"))
}

func TestLoadRejectsForgedSignature(t *testing.T) {
	sm, _ := newTestManager(t)

	sess, err := sm.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	sess.Set("token", "abc")
	cookie := commit(t, sm, sess)

	other := NewSessionManager(sm.client, "test_session", "another-secret", time.Hour, false)
	loaded := reload(t, other, cookie)
	assert.NotEqual(t, sess.ID, loaded.ID)

	bare := reload(t, sm, &http.Cookie{Name: "test_session", Value: sess.ID})
	assert.Empty(t, bare.Get("token"))
}

func TestCommitSlidesExpiry(t *testing.T) {
	sm, mr := newTestManager(t)

	sess, err := sm.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	cookie := commit(t, sm, sess)
	assert.Equal(t, 3600, cookie.MaxAge)

	mr.FastForward(50 * time.Minute)
	commit(t, sm, reload(t, sm, cookie))
	mr.FastForward(50 * time.Minute)

	assert.True(t, mr.Exists("medicare:session:"+sess.ID))
}

func TestFlashSurvivesUntilPopped(t *testing.T) {
	sm, _ := newTestManager(t)

	sess, err := sm.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	sess.AddFlash(FlashMessage{Kind: FlashSuccess, Message: "Login successful!"})
	cookie := commit(t, sm, sess)

	next := reload(t, sm, cookie)
	flash := next.PopFlash()
	require.NotNil(t, flash)
	assert.Equal(t, "Login successful!", flash.Message)
	commit(t, sm, next)

	assert.Nil(t, reload(t, sm, cookie).PopFlash())
}

func TestRenewRotatesIDAndDropsOldKey(t *testing.T) {
	sm, mr := newTestManager(t)

	sess, err := sm.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	sess.Set("k", "v")
	cookie := commit(t, sm, sess)
	oldID := sess.ID

	loaded := reload(t, sm, cookie)
	sm.Renew(loaded)
	newCookie := commit(t, sm, loaded)

	assert.NotContains(t, newCookie.Value, oldID)
	assert.False(t, mr.Exists("medicare:session:"+oldID))
	assert.Equal(t, "v", reload(t, sm, newCookie).Get("k"))
}

func TestDestroyExpiresCookie(t *testing.T) {
	sm, mr := newTestManager(t)

	sess, err := sm.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	commit(t, sm, sess)

	sm.Destroy(sess)
	cookie := commit(t, sm, sess)

	assert.Equal(t, -1, cookie.MaxAge)
	assert.False(t, mr.Exists("medicare:session:"+sess.ID))
}

func TestDeleteOnlyMarksDirtyWhenPresent(t *testing.T) {
	sess := &Session{values: map[string]string{"a": "1"}}

	sess.Delete("missing")
	assert.False(t, sess.dirty)

	sess.Delete("a", "missing")
	assert.True(t, sess.dirty)
	assert.Empty(t, sess.Get("a"))
}

func TestCSRFTokenLifecycle(t *testing.T) {
	m := NewCSRFManager("csrfsecret")
	sess := &Session{ID: "s1", values: map[string]string{}}

	token, err := m.EnsureToken(context.Background(), sess)
	require.NoError(t, err)
	again, err := m.EnsureToken(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, token, again)

	assert.NoError(t, m.VerifyToken(context.Background(), sess, token))
	assert.ErrorIs(t, m.VerifyToken(context.Background(), sess, "forged"), ErrCSRFTokenMismatch)
	assert.ErrorIs(t, m.VerifyToken(context.Background(), sess, ""), ErrCSRFTokenMissing)

	_, err = m.EnsureToken(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSessionMissing)
}

func TestCSRFCheckReadsFormThenHeader(t *testing.T) {
	m := NewCSRFManager("csrfsecret")
	sess := &Session{ID: "s1", values: map[string]string{}}
	token, err := m.EnsureToken(context.Background(), sess)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/items/item", nil)
	req.Header.Set(CSRFHeader, token)
	assert.NoError(t, m.Check(req, sess))

	req = httptest.NewRequest(http.MethodPost, "/items/item", nil)
	assert.ErrorIs(t, m.Check(req, sess), ErrCSRFTokenMissing)

	assert.True(t, SafeMethod(http.MethodGet))
	assert.False(t, SafeMethod(http.MethodPost))
}
