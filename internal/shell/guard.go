package shell

import (
	"log/slog"
	"net/http"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/shared"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

// Guard admits only authenticated sessions to the application.
type Guard struct {
	store  *auth.Store
	logger *slog.Logger
}

// NewGuard constructs a Guard over store.
func NewGuard(store *auth.Store, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{store: store, logger: logger}
}

// Require resolves the session and either redirects to the login screen or
// hands the request on with its Principal attached.
func (g *Guard) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		state, principal := g.store.Restore(r.Context(), sess)
		if state != auth.StateAuthenticated {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		if principal.UsesFallbackCompany() {
			g.logger.Warn("identity has no company, using fallback scope",
				slog.String("user", principal.Identity.Key()),
				slog.String("company_id", principal.CompanyID()))
		}
		next.ServeHTTP(w, r.WithContext(auth.ContextWithPrincipal(r.Context(), principal)))
	})
}
