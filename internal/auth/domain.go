package auth

import (
	"context"
	"encoding/json"
)

// Storage keys under which the session persists the signed-in state.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// DefaultFallbackCompany scopes requests when an identity carries no company.
const DefaultFallbackCompany = "demo-company"

// Roles offered on the registration form. The role is displayed only.
var Roles = []Role{
	{Value: "super_admin", Label: "Super Admin"},
	{Value: "admin", Label: "Admin"},
	{Value: "manager", Label: "Manager"},
	{Value: "staff", Label: "Staff"},
	{Value: "accountant", Label: "Accountant"},
}

// Role pairs a backend role value with its label.
type Role struct {
	Value string
	Label string
}

// Identity is the signed-in user as the backend described it at login.
type Identity struct {
	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}

// Key returns the value used to tie the session to this user.
func (i Identity) Key() string {
	switch {
	case i.UserID != "":
		return i.UserID
	case i.Email != "":
		return i.Email
	default:
		return i.Name
	}
}

// RoleLabel renders the role string for display.
func (i Identity) RoleLabel() string {
	for _, r := range Roles {
		if r.Value == i.Role {
			return r.Label
		}
	}
	return i.Role
}

// IdentityFromJSON decodes the backend's user object.
func IdentityFromJSON(raw []byte) (Identity, error) {
	var id Identity
	if len(raw) == 0 {
		return id, nil
	}
	err := json.Unmarshal(raw, &id)
	return id, err
}

// Principal is the authenticated caller of one request: who it is and the
// credential that proves it to the backend.
type Principal struct {
	Identity Identity
	Token    string
	fallback string
}

// NewPrincipal builds a Principal that scopes to fallback when the identity
// has no company.
func NewPrincipal(identity Identity, token, fallback string) *Principal {
	return &Principal{Identity: identity, Token: token, fallback: fallback}
}

// CompanyID returns the company every read and write is scoped to.
func (p *Principal) CompanyID() string {
	if p == nil {
		return ""
	}
	if p.Identity.CompanyID != "" {
		return p.Identity.CompanyID
	}
	if p.fallback != "" {
		return p.fallback
	}
	return DefaultFallbackCompany
}

// UsesFallbackCompany reports whether CompanyID is the configured fallback.
func (p *Principal) UsesFallbackCompany() bool {
	return p != nil && p.Identity.CompanyID == ""
}

type principalContextKey struct{}

// ContextWithPrincipal stores the principal for downstream handlers.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal installed by the route guard.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey{}).(*Principal)
	return p
}
