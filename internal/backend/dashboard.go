package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// LowStockItem is a snapshot of an item at or below its minimum level.
type LowStockItem struct {
	ItemID       string  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	CurrentStock float64 `json:"current_stock"`
	MinLevel     float64 `json:"min_level"`
}

// DashboardSummary aggregates the counts shown on the dashboard.
type DashboardSummary struct {
	TotalCustomers        int            `json:"total_customers"`
	TotalSuppliers        int            `json:"total_suppliers"`
	TotalItems            int            `json:"total_items"`
	PendingSalesOrders    int            `json:"pending_sales_orders"`
	PendingPurchaseOrders int            `json:"pending_purchase_orders"`
	OverdueInvoices       int            `json:"overdue_invoices"`
	LowStockItems         []LowStockItem `json:"low_stock_items"`
}

// DashboardSummary loads the aggregate for companyID.
func (c *Client) DashboardSummary(ctx context.Context, token, companyID string) (*DashboardSummary, error) {
	req := c.request(ctx, token).SetQueryParam("company_id", companyID)
	resp, err := c.do(req, http.MethodGet, "/dashboard/summary")
	if err != nil {
		return nil, err
	}
	summary := new(DashboardSummary)
	if err := json.Unmarshal(resp.Body(), summary); err != nil {
		return nil, fmt.Errorf("backend: decode dashboard summary: %w", err)
	}
	return summary, nil
}
