package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsActive(t *testing.T) {
	cases := []struct {
		href, path string
		want       bool
	}{
		{"/", "/", true},
		{"/", "", true},
		{"/", "/items", false},
		{"/items", "/items", true},
		{"/items", "/items/new", true},
		{"/items", "/items-archive", false},
		{"/settings/company", "/settings/users", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsActive(tc.href, tc.path), "%s on %s", tc.href, tc.path)
	}
}

func TestLinksMarkSingleActiveDestination(t *testing.T) {
	sections := DefaultNavigation().Links("/settings/users")
	require.Len(t, sections, 2)
	assert.Equal(t, "Settings", sections[1].Title)

	var active []string
	for _, s := range sections {
		for _, l := range s.Links {
			if l.Active {
				active = append(active, l.Name)
			}
		}
	}
	assert.Equal(t, []string{"User Management"}, active)
}

func TestDefaultNavigationOrder(t *testing.T) {
	nav := DefaultNavigation()
	var names []string
	for _, d := range nav.Sections[0].Destinations {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"Dashboard", "Items", "Customers", "Suppliers", "Purchase Orders",
		"Sales Orders", "Invoices", "Inventory", "Payments", "Reports",
	}, names)
}
