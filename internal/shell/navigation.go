// Package shell holds the authenticated frame: the route guard deciding
// between the sign-in screen and the application, and the navigation that
// surrounds every page.
package shell

import (
	"strings"

	"github.com/odyssey-erp/medicare-web/internal/view"
)

// Destination is a navigation target.
type Destination struct {
	Name string
	Href string
	Icon string
}

// Section groups destinations.
type Section struct {
	Title        string
	Destinations []Destination
}

// Navigation is the ordered set of destinations offered by the shell.
type Navigation struct {
	Sections []Section
}

// DefaultNavigation lists every page of the application.
func DefaultNavigation() Navigation {
	return Navigation{Sections: []Section{
		{Destinations: []Destination{
			{Name: "Dashboard", Href: "/", Icon: "dashboard"},
			{Name: "Items", Href: "/items", Icon: "package"},
			{Name: "Customers", Href: "/customers", Icon: "users"},
			{Name: "Suppliers", Href: "/suppliers", Icon: "truck"},
			{Name: "Purchase Orders", Href: "/purchase-orders", Icon: "cart"},
			{Name: "Sales Orders", Href: "/sales-orders", Icon: "file"},
			{Name: "Invoices", Href: "/invoices", Icon: "file"},
			{Name: "Inventory", Href: "/inventory", Icon: "warehouse"},
			{Name: "Payments", Href: "/payments", Icon: "card"},
			{Name: "Reports", Href: "/reports", Icon: "chart"},
		}},
		{Title: "Settings", Destinations: []Destination{
			{Name: "Company Settings", Href: "/settings/company", Icon: "building"},
			{Name: "User Management", Href: "/settings/users", Icon: "user-plus"},
		}},
	}}
}

// IsActive reports whether href is the destination for path. The root is
// only active on an exact match; other destinations also own their sub-paths.
func IsActive(href, path string) bool {
	if path == "" {
		path = "/"
	}
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

// Links renders the navigation for path with the active destination marked.
func (n Navigation) Links(path string) []view.NavSection {
	out := make([]view.NavSection, 0, len(n.Sections))
	for _, section := range n.Sections {
		links := make([]view.NavLink, 0, len(section.Destinations))
		for _, d := range section.Destinations {
			links = append(links, view.NavLink{
				Name:   d.Name,
				Href:   d.Href,
				Icon:   d.Icon,
				Active: IsActive(d.Href, path),
			})
		}
		out = append(out, view.NavSection{Title: section.Title, Links: links})
	}
	return out
}
