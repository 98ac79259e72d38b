package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odyssey-erp/medicare-web/internal/backend"
)

func lowStock(n int) []backend.LowStockItem {
	items := make([]backend.LowStockItem, n)
	for i := range items {
		items[i] = backend.LowStockItem{ItemID: string(rune('a' + i)), ItemName: "Item " + string(rune('A'+i)), CurrentStock: 2, MinLevel: 10}
	}
	return items
}

func TestBuildAlerts(t *testing.T) {
	tests := []struct {
		name       string
		summary    backend.DashboardSummary
		pendingPOs int
		overdue    int
		shown      int
		more       int
		none       bool
	}{
		{name: "nothing to report", summary: backend.DashboardSummary{}, none: true},
		{name: "pending purchase orders", summary: backend.DashboardSummary{PendingPurchaseOrders: 2}, pendingPOs: 2},
		{name: "overdue invoices", summary: backend.DashboardSummary{OverdueInvoices: 1}, overdue: 1},
		{name: "low stock within limit", summary: backend.DashboardSummary{LowStockItems: lowStock(3)}, shown: 3},
		{name: "low stock overflow", summary: backend.DashboardSummary{LowStockItems: lowStock(5)}, shown: 3, more: 2},
		{name: "negative counts ignored", summary: backend.DashboardSummary{PendingPurchaseOrders: -1}, none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := BuildAlerts(tt.summary)
			assert.Equal(t, tt.pendingPOs, a.PendingPurchaseOrders)
			assert.Equal(t, tt.overdue, a.OverdueInvoices)
			assert.Len(t, a.LowStock, tt.shown)
			assert.Equal(t, tt.more, a.MoreLowStock)
			assert.Equal(t, tt.none, a.None)
		})
	}
}

func TestBuildPageTiles(t *testing.T) {
	page := BuildPage(backend.DashboardSummary{TotalCustomers: 4, TotalSuppliers: 3, TotalItems: 12, PendingSalesOrders: 1})

	hrefs := make(map[string]int, len(page.Tiles))
	for _, tile := range page.Tiles {
		hrefs[tile.Href] = tile.Value
	}
	assert.Equal(t, map[string]int{"/customers": 4, "/suppliers": 3, "/items": 12, "/sales-orders": 1}, hrefs)
	assert.Len(t, page.Actions, 4)
}
