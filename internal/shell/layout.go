package shell

import (
	"net/http"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/shared"
	"github.com/odyssey-erp/medicare-web/internal/view"
)

// Layout assembles the TemplateData every authenticated page renders with.
type Layout struct {
	nav  Navigation
	csrf *shared.CSRFManager
}

// NewLayout constructs a Layout.
func NewLayout(nav Navigation, csrf *shared.CSRFManager) *Layout {
	return &Layout{nav: nav, csrf: csrf}
}

// TemplateData pops the pending flash, ensures a CSRF token and frames data
// in the navigation shell. notice, when set, is shown instead and the
// pending flash waits for the next page.
func (l *Layout) TemplateData(r *http.Request, title string, notice *shared.FlashMessage, data any) view.TemplateData {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := l.csrf.EnsureToken(r.Context(), sess)
	flash := notice
	if flash == nil && sess != nil {
		flash = sess.PopFlash()
	}
	td := view.TemplateData{
		Title:       title,
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if p := auth.PrincipalFromContext(r.Context()); p != nil {
		td.Shell = &view.Shell{
			Sections: l.nav.Links(r.URL.Path),
			UserName: p.Identity.Name,
			UserRole: p.Identity.RoleLabel(),
		}
	}
	return td
}

// Flash queues a notification for the next rendered page.
func Flash(r *http.Request, kind, message string) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash(shared.FlashMessage{Kind: kind, Message: message})
	}
}
