package shell

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/shared"
)

func layoutRequest(sess *shared.Session, p *auth.Principal) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	ctx := shared.ContextWithSession(req.Context(), sess)
	if p != nil {
		ctx = auth.ContextWithPrincipal(ctx, p)
	}
	return req.WithContext(ctx)
}

func TestLayoutPopsFlashAndFramesShell(t *testing.T) {
	_, sess := newTestSession(t)
	layout := NewLayout(DefaultNavigation(), shared.NewCSRFManager("csrf"))
	p := auth.NewPrincipal(auth.Identity{Name: "Asha", Role: "manager", CompanyID: "c1"}, "tok", "")
	req := layoutRequest(sess, p)
	Flash(req, shared.FlashSuccess, "Saved")

	td := layout.TemplateData(req, "Customers", nil, nil)

	require.NotNil(t, td.Flash)
	assert.Equal(t, "Saved", td.Flash.Message)
	assert.NotEmpty(t, td.CSRFToken)
	require.NotNil(t, td.Shell)
	assert.Equal(t, "Asha", td.Shell.UserName)
	assert.Equal(t, "Manager", td.Shell.UserRole)
	assert.Nil(t, sess.PopFlash())
}

func TestLayoutNoticeDefersFlash(t *testing.T) {
	_, sess := newTestSession(t)
	layout := NewLayout(DefaultNavigation(), shared.NewCSRFManager("csrf"))
	req := layoutRequest(sess, nil)
	Flash(req, shared.FlashSuccess, "Saved")

	notice := &shared.FlashMessage{Kind: shared.FlashError, Message: "Failed to fetch customers"}
	td := layout.TemplateData(req, "Customers", notice, nil)

	assert.Equal(t, notice, td.Flash)
	assert.Nil(t, td.Shell, "no principal, no shell")
	pending := sess.PopFlash()
	require.NotNil(t, pending)
	assert.Equal(t, "Saved", pending.Message)
}
