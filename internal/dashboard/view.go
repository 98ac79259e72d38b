// Package dashboard renders the landing page: company counts, shortcuts and
// the alerts that need attention.
package dashboard

import "github.com/odyssey-erp/medicare-web/internal/backend"

// MaxLowStockShown bounds the low-stock items listed inline.
const MaxLowStockShown = 3

// Tile is a count linking to its page.
type Tile struct {
	Title       string
	Value       int
	Href        string
	Icon        string
	Description string
}

// QuickAction is a shortcut to a frequent operation.
type QuickAction struct {
	Title       string
	Description string
	Href        string
	Icon        string
}

// Alerts are the banners derived from a summary.
type Alerts struct {
	PendingPurchaseOrders int
	OverdueInvoices       int
	// LowStock holds at most MaxLowStockShown items.
	LowStock      []backend.LowStockItem
	LowStockTotal int
	MoreLowStock  int
	None          bool
}

// PageData is what pages/dashboard.html renders.
type PageData struct {
	Tiles   []Tile
	Actions []QuickAction
	Alerts  Alerts
}

// BuildAlerts derives the alert banners. Each banner appears only when its
// count is positive; None is set when no banner appears.
func BuildAlerts(s backend.DashboardSummary) Alerts {
	a := Alerts{
		PendingPurchaseOrders: max(s.PendingPurchaseOrders, 0),
		OverdueInvoices:       max(s.OverdueInvoices, 0),
		LowStockTotal:         len(s.LowStockItems),
	}
	if a.LowStockTotal > 0 {
		shown := min(a.LowStockTotal, MaxLowStockShown)
		a.LowStock = s.LowStockItems[:shown]
		a.MoreLowStock = a.LowStockTotal - shown
	}
	a.None = a.PendingPurchaseOrders == 0 && a.OverdueInvoices == 0 && a.LowStockTotal == 0
	return a
}

// BuildPage assembles the dashboard from a summary. A zero summary renders
// zero counts.
func BuildPage(s backend.DashboardSummary) PageData {
	return PageData{
		Tiles: []Tile{
			{Title: "Total Customers", Value: s.TotalCustomers, Href: "/customers", Icon: "users", Description: "Active customers"},
			{Title: "Total Suppliers", Value: s.TotalSuppliers, Href: "/suppliers", Icon: "truck", Description: "Active suppliers"},
			{Title: "Total Items", Value: s.TotalItems, Href: "/items", Icon: "package", Description: "Items in inventory"},
			{Title: "Pending Sales Orders", Value: s.PendingSalesOrders, Href: "/sales-orders", Icon: "file", Description: "Orders to fulfil"},
		},
		Actions: []QuickAction{
			{Title: "New Purchase Order", Description: "Create purchase order", Href: "/purchase-orders", Icon: "cart"},
			{Title: "New Sales Order", Description: "Create sales order", Href: "/sales-orders", Icon: "file"},
			{Title: "Add Item", Description: "Add new inventory item", Href: "/items?form=item", Icon: "package"},
			{Title: "Create Invoice", Description: "Generate new invoice", Href: "/invoices", Icon: "file"},
		},
		Alerts: BuildAlerts(s),
	}
}
