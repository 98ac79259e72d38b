package listing

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/backend"
	"github.com/odyssey-erp/medicare-web/internal/shared"
	"github.com/odyssey-erp/medicare-web/internal/shell"
	"github.com/odyssey-erp/medicare-web/internal/view"
)

// Handler serves one Resource.
type Handler struct {
	logger    *slog.Logger
	gateway   Gateway
	templates *view.Engine
	layout    *shell.Layout
	validator *validator.Validate
	resource  Resource
}

// NewHandler constructs a Handler for resource.
func NewHandler(logger *slog.Logger, gateway Gateway, templates *view.Engine, layout *shell.Layout, resource Resource) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:    logger.With(slog.String("resource", resource.Slug)),
		gateway:   gateway,
		templates: templates,
		layout:    layout,
		validator: validator.New(),
		resource:  resource,
	}
}

// Resource returns the served resource.
func (h *Handler) Resource() Resource {
	return h.resource
}

// MountRoutes registers the list and create routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/{form}", h.create)
}

// PageData is what pages/list.html renders.
type PageData struct {
	Resource  Resource
	Query     string
	Headers   []string
	Rows      []Row
	Total     int
	Forms     []FormView
	Notices   []string
	EmptyText string
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFromContext(r.Context())
	query := r.URL.Query().Get("q")
	ds := Fetch(r.Context(), h.gateway, p, h.resource)
	if ds.Err != nil {
		h.logger.Error("list records failed", slog.Any("error", ds.Err), slog.String("company_id", p.CompanyID()))
	}
	data := h.page(ds, query, r.URL.Query().Get("form"), nil, nil)
	h.render(w, r, http.StatusOK, nil, data)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.resource.Form(chi.URLParam(r, "form"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	p := auth.PrincipalFromContext(r.Context())
	sub := form.Parse(r.PostForm, h.validator, p.CompanyID())

	var notice string
	if sub.Valid() {
		err := h.gateway.CreateRecord(r.Context(), p.Token, form.Endpoint, sub.Payload)
		if err == nil {
			h.logger.Info("record created", slog.String("form", form.Key), slog.String("company_id", p.CompanyID()))
			shell.Flash(r, shared.FlashSuccess, form.Success)
			http.Redirect(w, r, h.resource.BasePath(), http.StatusSeeOther)
			return
		}
		h.logger.Error("create record failed", slog.String("form", form.Key), slog.Any("error", err))
		notice = backend.Detail(err, form.Failure)
	} else {
		notice = "Please fill in the required fields"
	}

	ds := Fetch(r.Context(), h.gateway, p, h.resource)
	data := h.page(ds, r.URL.Query().Get("q"), form.Key, sub.Values, sub.Errors)
	h.render(w, r, http.StatusBadRequest, &shared.FlashMessage{Kind: shared.FlashError, Message: notice}, data)
}

// page assembles PageData. open names the form whose modal is shown; values
// and errs refill it after a failed submission.
func (h *Handler) page(ds Dataset, query, open string, values, errs map[string]string) PageData {
	records := Filter(ds.Records, query, h.resource.SearchFields)
	data := PageData{
		Resource:  h.resource,
		Query:     query,
		Headers:   h.resource.Headers(),
		Rows:      h.resource.Rows(records, ds.Lookups),
		Total:     len(ds.Records),
		Notices:   ds.Notices,
		EmptyText: h.resource.EmptyText(),
	}
	for _, form := range h.resource.Forms {
		formValues := form.Defaults()
		var formErrs map[string]string
		if form.Key == open && values != nil {
			formValues, formErrs = values, errs
		}
		fv := BuildFormView(form, h.resource.BasePath()+"/"+form.Key, formValues, formErrs, ds.Lookups)
		fv.Open = form.Key == open
		data.Forms = append(data.Forms, fv)
	}
	return data
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, notice *shared.FlashMessage, data PageData) {
	td := h.layout.TemplateData(r, h.resource.Title, notice, data)
	if err := h.templates.RenderStatus(w, status, "pages/list.html", td); err != nil {
		h.logger.Error("render list", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
