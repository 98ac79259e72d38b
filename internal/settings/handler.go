// Package settings serves the company profile page.
package settings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/backend"
	"github.com/odyssey-erp/medicare-web/internal/listing"
	"github.com/odyssey-erp/medicare-web/internal/shared"
	"github.com/odyssey-erp/medicare-web/internal/shell"
	"github.com/odyssey-erp/medicare-web/internal/view"
)

// Path is where the company page is mounted.
const Path = "/settings/company"

// CompanyForm is the company profile form.
var CompanyForm = listing.Form{
	Key:         "company",
	Title:       "Company Information",
	Description: "Details printed on invoices and used for GST filing",
	Submit:      "Save Settings",
	Endpoint:    "/companies",
	Success:     "Company settings saved successfully",
	Failure:     "Failed to save company settings",
	Fields: []listing.Field{
		{Name: "name", Label: "Company Name", Required: true, Placeholder: "Medicare Distributors Pvt Ltd"},
		{Name: "gstin", Label: "GSTIN", Required: true, Placeholder: "22AAAAA0000A1Z5"},
		{Name: "pan", Label: "PAN", Placeholder: "AAAAA0000A"},
		{Name: "phone", Label: "Phone", Kind: listing.KindTel, Placeholder: "9876543210"},
		{Name: "email", Label: "Email", Kind: listing.KindEmail, Placeholder: "accounts@company.com"},
		{Name: "address", Label: "Address", Kind: listing.KindTextarea, Placeholder: "Registered office address", Wide: true},
		{Name: "city", Label: "City", Placeholder: "Mumbai"},
		{Name: "state", Label: "State", Placeholder: "Maharashtra"},
		{Name: "pincode", Label: "Pincode", Placeholder: "400001"},
	},
}

// PageData is what pages/settings.html renders.
type PageData struct {
	Form listing.FormView
}

// Handler serves the company settings page.
type Handler struct {
	logger    *slog.Logger
	gateway   listing.Gateway
	templates *view.Engine
	layout    *shell.Layout
	validator *validator.Validate
}

// NewHandler constructs a settings handler.
func NewHandler(logger *slog.Logger, gateway listing.Gateway, templates *view.Engine, layout *shell.Layout) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:    logger,
		gateway:   gateway,
		templates: templates,
		layout:    layout,
		validator: validator.New(),
	}
}

// MountRoutes registers the company page routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.show)
	r.Post("/", h.save)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFromContext(r.Context())
	values := CompanyForm.Defaults()
	if current := h.current(r, p); current != nil {
		for _, field := range CompanyForm.Fields {
			if v := current.String(field.Name); v != "" {
				values[field.Name] = v
			}
		}
	}
	h.render(w, r, http.StatusOK, nil, values, nil)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	p := auth.PrincipalFromContext(r.Context())
	sub := CompanyForm.Parse(r.PostForm, h.validator, p.CompanyID())
	if !sub.Valid() {
		notice := &shared.FlashMessage{Kind: shared.FlashError, Message: "Please fill in the required fields"}
		h.render(w, r, http.StatusBadRequest, notice, sub.Values, sub.Errors)
		return
	}
	if err := h.gateway.CreateRecord(r.Context(), p.Token, CompanyForm.Endpoint, sub.Payload); err != nil {
		h.logger.Error("save company settings", slog.Any("error", err), slog.String("company_id", p.CompanyID()))
		notice := &shared.FlashMessage{Kind: shared.FlashError, Message: backend.Detail(err, CompanyForm.Failure)}
		h.render(w, r, http.StatusBadRequest, notice, sub.Values, nil)
		return
	}
	h.logger.Info("company settings saved", slog.String("company_id", p.CompanyID()))
	shell.Flash(r, shared.FlashSuccess, CompanyForm.Success)
	http.Redirect(w, r, Path, http.StatusSeeOther)
}

// current finds the principal's company among those the backend lists. The
// backend has no update route, so every save appends a record and the last
// one wins. A failed read leaves the form blank.
func (h *Handler) current(r *http.Request, p *auth.Principal) backend.Record {
	companies, err := h.gateway.ListRecords(r.Context(), p.Token, CompanyForm.Endpoint, p.CompanyID())
	if err != nil {
		h.logger.Warn("load company settings", slog.Any("error", err))
		return nil
	}
	for i := len(companies) - 1; i >= 0; i-- {
		if companies[i].String("company_id") == p.CompanyID() {
			return companies[i]
		}
	}
	return nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, notice *shared.FlashMessage, values, errs map[string]string) {
	data := PageData{Form: listing.BuildFormView(CompanyForm, Path, values, errs, nil)}
	td := h.layout.TemplateData(r, "Company Settings", notice, data)
	if err := h.templates.RenderStatus(w, status, "pages/settings.html", td); err != nil {
		h.logger.Error("render settings", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
