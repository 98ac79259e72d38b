package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/medicare-web/internal/backend"
	"github.com/odyssey-erp/medicare-web/internal/shared"
	"github.com/odyssey-erp/medicare-web/internal/view"
)

// Gateway is the slice of the backend the authentication screens need.
type Gateway interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.LoginResult, error)
	Register(ctx context.Context, token string, req backend.RegisterRequest) error
}

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger      *slog.Logger
	gateway     Gateway
	store       *Store
	templates   *view.Engine
	csrfManager *shared.CSRFManager
	validator   *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, gateway Gateway, store *Store, templates *view.Engine, csrf *shared.CSRFManager) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:      logger,
		gateway:     gateway,
		store:       store,
		templates:   templates,
		csrfManager: csrf,
		validator:   validator.New(),
	}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/login", h.showLogin)
	r.Post("/login", h.handleLogin)
	r.Post("/register", h.handleRegister)
	r.Post("/logout", h.handleLogout)
}

const (
	tabLogin    = "login"
	tabRegister = "register"
)

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type registerForm struct {
	Email     string `validate:"required"`
	Name      string `validate:"required"`
	Phone     string `validate:"required"`
	Role      string `validate:"required"`
	CompanyID string `validate:"required"`
	Password  string `validate:"required"`
}

type loginPageData struct {
	Tab      string
	Login    loginForm
	Register registerForm
	Roles    []Role
	Errors   map[string]string
	Error    string
}

func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if state, _ := h.store.Restore(r.Context(), sess); state == StateAuthenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	tab := tabLogin
	if r.URL.Query().Get("tab") == tabRegister {
		tab = tabRegister
	}
	h.render(w, r, http.StatusOK, loginPageData{Tab: tab})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sess := shared.SessionFromContext(r.Context())
	form := loginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	data := loginPageData{Tab: tabLogin, Login: form, Errors: h.fieldErrors(form)}

	if len(data.Errors) == 0 {
		result, err := h.gateway.Login(r.Context(), backend.LoginRequest{Email: form.Email, Password: form.Password})
		if err == nil {
			identity, decodeErr := IdentityFromJSON(result.User)
			if decodeErr != nil {
				err = decodeErr
			} else if err = h.store.Login(sess, identity, result.AccessToken); err == nil {
				sess.AddFlash(shared.FlashMessage{Kind: shared.FlashSuccess, Message: "Login successful!"})
				h.logger.Info("user signed in", slog.String("user", identity.Key()), slog.String("role", identity.Role))
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
		}
		h.logger.Warn("login failed", slog.Any("error", err))
		data.Error = backend.Detail(err, "Login failed")
	}

	// Never echo the password back into the form.
	data.Login.Password = ""
	h.render(w, r, http.StatusBadRequest, data)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sess := shared.SessionFromContext(r.Context())
	form := registerForm{
		Email:     r.PostFormValue("email"),
		Name:      r.PostFormValue("name"),
		Phone:     r.PostFormValue("phone"),
		Role:      r.PostFormValue("role"),
		CompanyID: r.PostFormValue("company_id"),
		Password:  r.PostFormValue("password"),
	}
	data := loginPageData{Tab: tabRegister, Register: form, Errors: h.fieldErrors(form)}

	if len(data.Errors) == 0 {
		err := h.gateway.Register(r.Context(), "", backend.RegisterRequest{
			Email:     form.Email,
			Name:      form.Name,
			Phone:     form.Phone,
			Role:      form.Role,
			CompanyID: form.CompanyID,
			Password:  form.Password,
		})
		if err == nil {
			if sess != nil {
				sess.AddFlash(shared.FlashMessage{Kind: shared.FlashSuccess, Message: "Registration successful! Please login."})
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.logger.Warn("registration failed", slog.Any("error", err))
		data.Error = backend.Detail(err, "Registration failed")
	}

	data.Register.Password = ""
	h.render(w, r, http.StatusBadRequest, data)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(shared.SessionFromContext(r.Context()))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) fieldErrors(form any) map[string]string {
	errs := make(map[string]string)
	err := h.validator.Struct(form)
	if err == nil {
		return errs
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["general"] = err.Error()
		return errs
	}
	for _, fieldErr := range fieldErrs {
		errs[fieldErr.Field()] = "This field is required"
	}
	return errs
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data loginPageData) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrfManager.EnsureToken(r.Context(), sess)
	var flash *shared.FlashMessage
	if data.Error != "" {
		flash = &shared.FlashMessage{Kind: shared.FlashError, Message: data.Error}
	} else if sess != nil {
		flash = sess.PopFlash()
	}
	data.Roles = Roles
	title := "Sign in"
	if data.Tab == tabRegister {
		title = "Register"
	}
	viewData := view.TemplateData{
		Title:       title,
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := h.templates.RenderStatus(w, status, "pages/login.html", viewData); err != nil {
		h.logger.Error("render login", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
