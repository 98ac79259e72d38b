package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/backend"
	"github.com/odyssey-erp/medicare-web/internal/shared"
	"github.com/odyssey-erp/medicare-web/internal/shell"
	"github.com/odyssey-erp/medicare-web/internal/view"
)

// Gateway reads the dashboard aggregate.
type Gateway interface {
	DashboardSummary(ctx context.Context, token, companyID string) (*backend.DashboardSummary, error)
}

// Handler serves the dashboard.
type Handler struct {
	logger    *slog.Logger
	gateway   Gateway
	templates *view.Engine
	layout    *shell.Layout
}

// NewHandler constructs a dashboard handler.
func NewHandler(logger *slog.Logger, gateway Gateway, templates *view.Engine, layout *shell.Layout) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, gateway: gateway, templates: templates, layout: layout}
}

// MountRoutes registers the dashboard route.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.show)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFromContext(r.Context())
	var notice *shared.FlashMessage
	summary, err := h.gateway.DashboardSummary(r.Context(), p.Token, p.CompanyID())
	if err != nil {
		h.logger.Error("load dashboard summary", slog.Any("error", err), slog.String("company_id", p.CompanyID()))
		notice = &shared.FlashMessage{Kind: shared.FlashError, Message: "Failed to load dashboard data"}
		summary = &backend.DashboardSummary{}
	}
	td := h.layout.TemplateData(r, "Dashboard", notice, BuildPage(*summary))
	if err := h.templates.Render(w, "pages/dashboard.html", td); err != nil {
		h.logger.Error("render dashboard", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
