// Package reports serves the report catalogue and its spreadsheet exports.
package reports

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/catalog"
	"github.com/odyssey-erp/medicare-web/internal/listing"
	"github.com/odyssey-erp/medicare-web/internal/shared"
	"github.com/odyssey-erp/medicare-web/internal/shell"
	"github.com/odyssey-erp/medicare-web/internal/view"
)

// Path is where reports are mounted.
const Path = "/reports"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Report is a catalogue card. Source names the exported resource.
type Report struct {
	Title       string
	Description string
	Icon        string
	Source      string
	Export      string
}

// Catalogue lists the available reports.
func Catalogue() []Report {
	reports := []Report{
		{Title: "Sales Report", Description: "Sales orders with customer and status", Icon: "chart", Source: "sales-orders"},
		{Title: "Purchase Report", Description: "Purchase orders placed with suppliers", Icon: "cart", Source: "purchase-orders"},
		{Title: "Inventory Report", Description: "Stock levels by item, location and batch", Icon: "warehouse", Source: "inventory"},
		{Title: "GST Report", Description: "Invoices with billed and outstanding amounts", Icon: "file", Source: "invoices"},
		{Title: "Financial Report", Description: "Payments received by mode and status", Icon: "card", Source: "payments"},
		{Title: "Customer Report", Description: "Customer contacts and credit terms", Icon: "users", Source: "customers"},
	}
	for i := range reports {
		if _, ok := catalog.BySlug(reports[i].Source); ok {
			reports[i].Export = Path + "/export/" + reports[i].Source + ".xlsx"
		}
	}
	return reports
}

// PageData is what pages/reports.html renders.
type PageData struct {
	Reports []Report
}

// Handler serves reports.
type Handler struct {
	logger    *slog.Logger
	gateway   listing.Gateway
	templates *view.Engine
	layout    *shell.Layout
	now       func() time.Time
}

// NewHandler constructs a reports handler.
func NewHandler(logger *slog.Logger, gateway listing.Gateway, templates *view.Engine, layout *shell.Layout) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, gateway: gateway, templates: templates, layout: layout, now: time.Now}
}

// MountRoutes registers the catalogue and export routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/export/{slug}.xlsx", h.export)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	td := h.layout.TemplateData(r, "Reports", nil, PageData{Reports: Catalogue()})
	if err := h.templates.Render(w, "pages/reports.html", td); err != nil {
		h.logger.Error("render reports", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	res, ok := exportable(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}
	p := auth.PrincipalFromContext(r.Context())
	ds := listing.Fetch(r.Context(), h.gateway, p, res)
	if ds.Err != nil {
		h.logger.Error("export fetch failed", slog.String("resource", slug), slog.Any("error", ds.Err))
		shell.Flash(r, shared.FlashError, "Failed to export "+res.Plural)
		http.Redirect(w, r, Path, http.StatusSeeOther)
		return
	}

	buf, err := WriteWorkbook(res, res.Rows(ds.Records, ds.Lookups))
	if err != nil {
		h.logger.Error("export workbook failed", slog.String("resource", slug), slog.Any("error", err))
		shell.Flash(r, shared.FlashError, "Failed to export "+res.Plural)
		http.Redirect(w, r, Path, http.StatusSeeOther)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", slug, h.now().Format("20060102_150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("export write interrupted", slog.String("resource", slug), slog.Any("error", err))
	}
}

func exportable(slug string) (listing.Resource, bool) {
	for _, report := range Catalogue() {
		if report.Source == slug && report.Export != "" {
			return catalog.BySlug(slug)
		}
	}
	return listing.Resource{}, false
}
