package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/dashboard"
	"github.com/odyssey-erp/medicare-web/internal/listing"
	"github.com/odyssey-erp/medicare-web/internal/observability"
	"github.com/odyssey-erp/medicare-web/internal/platform/httpx"
	"github.com/odyssey-erp/medicare-web/internal/reports"
	"github.com/odyssey-erp/medicare-web/internal/settings"
	"github.com/odyssey-erp/medicare-web/internal/shared"
	"github.com/odyssey-erp/medicare-web/internal/shell"
	"github.com/odyssey-erp/medicare-web/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager
	Metrics        *observability.Metrics
	Guard          *shell.Guard

	AuthHandler      *auth.Handler
	DashboardHandler *dashboard.Handler
	ListHandlers     []*listing.Handler
	SettingsHandler  *settings.Handler
	ReportsHandler   *reports.Handler
}

// NewRouter constructs the chi.Router serving the web application.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	// Routes registered outside the session group never touch Redis.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}
	if static, err := web.Static(); err != nil {
		params.Logger.Error("open embedded assets", slog.Any("error", err))
	} else {
		r.Handle("/static/*", assetHandler(static))
	}

	r.Group(func(r chi.Router) {
		for _, mw := range MiddlewareStack(MiddlewareConfig{
			Logger:         params.Logger,
			Config:         params.Config,
			SessionManager: params.SessionManager,
			CSRFManager:    params.CSRFManager,
			Metrics:        params.Metrics,
		}) {
			r.Use(mw)
		}
		r.Use(chimw.Logger)

		params.AuthHandler.MountRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(params.Guard.Require)

			if params.DashboardHandler != nil {
				params.DashboardHandler.MountRoutes(r)
			}
			for _, h := range params.ListHandlers {
				r.Route(h.Resource().BasePath(), h.MountRoutes)
			}
			if params.SettingsHandler != nil {
				r.Route(settings.Path, params.SettingsHandler.MountRoutes)
			}
			if params.ReportsHandler != nil {
				r.Route(reports.Path, params.ReportsHandler.MountRoutes)
			}
		})
	})

	return r
}
