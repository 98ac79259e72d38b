// Package catalog configures the list-management screens of the ERP.
package catalog

import (
	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/listing"
)

// All returns every list-management resource in navigation order.
func All() []listing.Resource {
	return []listing.Resource{
		Items(),
		Customers(),
		Suppliers(),
		PurchaseOrders(),
		SalesOrders(),
		Invoices(),
		Inventory(),
		Payments(),
		Users(),
	}
}

// BySlug finds a resource by slug.
func BySlug(slug string) (listing.Resource, bool) {
	for _, res := range All() {
		if res.Slug == slug {
			return res, true
		}
	}
	return listing.Resource{}, false
}

var statusColumn = listing.Column{
	Header: "Status",
	Lines:  []listing.Line{{Fields: []string{"status"}, Format: listing.FormatTitle}},
	Badge:  true,
}

var gstRates = []listing.Option{
	{Value: "0", Label: "0%"},
	{Value: "5", Label: "5%"},
	{Value: "12", Label: "12%"},
	{Value: "18", Label: "18%"},
	{Value: "28", Label: "28%"},
}

var units = []listing.Option{
	{Value: "pieces", Label: "Pieces"},
	{Value: "tablets", Label: "Tablets"},
	{Value: "bottles", Label: "Bottles"},
	{Value: "vials", Label: "Vials"},
	{Value: "kg", Label: "Kilograms"},
	{Value: "grams", Label: "Grams"},
	{Value: "liters", Label: "Liters"},
	{Value: "ml", Label: "Milliliters"},
}

func customerLookup() listing.Lookup {
	return listing.Lookup{
		Name:     "customers",
		Endpoint: "/customers",
		Key:      "customer_id",
		Label:    "name",
		Missing:  "Unknown Customer",
		Failure:  "Failed to fetch customers",
	}
}

// Items is the item master together with its categories.
func Items() listing.Resource {
	return listing.Resource{
		Slug:              "items",
		Title:             "Items Management",
		Subtitle:          "Manage your pharmaceutical inventory items",
		Heading:           "Items",
		Description:       "All items in your inventory",
		Icon:              "package",
		Endpoint:          "/items",
		Plural:            "items",
		SearchFields:      []string{"name", "sku"},
		SearchPlaceholder: "Search items by name or SKU...",
		EmptyHint:         "Start by adding your first item",
		RowActions:        true,
		Lookups: []listing.Lookup{{
			Name:     "categories",
			Endpoint: "/categories",
			Key:      "category_id",
			Label:    "name",
			Missing:  "Unknown Category",
			Failure:  "Failed to fetch categories",
		}},
		Columns: []listing.Column{
			{Header: "Item Name", Lines: []listing.Line{
				{Fields: []string{"name"}},
				{Fields: []string{"description"}},
			}},
			{Header: "SKU", Lines: []listing.Line{{Fields: []string{"sku"}}}, Badge: true},
			{Header: "Category", Lines: []listing.Line{{Fields: []string{"category_id"}, Format: listing.FormatLookup, Lookup: "categories"}}},
			{Header: "Unit", Lines: []listing.Line{{Fields: []string{"unit"}, Format: listing.FormatTitle}}},
			{Header: "Purchase Price", Lines: []listing.Line{{Fields: []string{"purchase_price"}, Format: listing.FormatMoney}}},
			{Header: "Selling Price", Lines: []listing.Line{{Fields: []string{"selling_price"}, Format: listing.FormatMoney}}},
			{Header: "GST Rate", Lines: []listing.Line{{Fields: []string{"gst_rate"}, Format: listing.FormatPercent}}},
			{Header: "Min Stock", Lines: []listing.Line{{Fields: []string{"min_stock_level"}, Format: listing.FormatNumber}}},
			{Header: "Batch Tracked", Lines: []listing.Line{{Fields: []string{"is_batch_tracked"}, Format: listing.FormatFlag, True: "Batch Tracked", False: "Standard"}}, Badge: true},
		},
		Forms: []listing.Form{
			{
				Key:         "item",
				Title:       "Add New Item",
				Description: "Add a new item to your inventory",
				Trigger:     "Add Item",
				Submit:      "Add Item",
				Endpoint:    "/items",
				Success:     "Item added successfully",
				Failure:     "Failed to add item",
				Fields: []listing.Field{
					{Name: "name", Label: "Item Name", Required: true, Placeholder: "Paracetamol 500mg"},
					{Name: "sku", Label: "SKU", Required: true, Placeholder: "MED-001"},
					{Name: "description", Label: "Description", Kind: listing.KindTextarea, Placeholder: "Item description", Wide: true},
					{Name: "category_id", Label: "Category", Kind: listing.KindSelect, Required: true, OptionsFrom: "categories"},
					{Name: "unit", Label: "Unit", Kind: listing.KindSelect, Required: true, Default: "pieces", Options: units},
					{Name: "hsn_code", Label: "HSN Code", Required: true, Placeholder: "30049099"},
					{Name: "gst_rate", Label: "GST Rate", Kind: listing.KindSelect, Required: true, Default: "12", Options: gstRates},
					{Name: "purchase_price", Label: "Purchase Price", Kind: listing.KindNumber, Required: true, Placeholder: "100.00"},
					{Name: "selling_price", Label: "Selling Price", Kind: listing.KindNumber, Required: true, Placeholder: "150.00"},
					{Name: "min_stock_level", Label: "Min Stock Level", Kind: listing.KindInteger, Required: true, Placeholder: "10"},
					{Name: "max_stock_level", Label: "Max Stock Level", Kind: listing.KindInteger, Placeholder: "1000"},
					{Name: "is_batch_tracked", Label: "Enable Batch Tracking", Kind: listing.KindSwitch, Wide: true},
				},
			},
			{
				Key:         "category",
				Title:       "Add New Category",
				Description: "Create a new item category",
				Trigger:     "Add Category",
				Submit:      "Add Category",
				Endpoint:    "/categories",
				Success:     "Category added successfully",
				Failure:     "Failed to add category",
				Secondary:   true,
				Fields: []listing.Field{
					{Name: "name", Label: "Category Name", Required: true, Placeholder: "Medicines, Surgical Items, etc."},
					{Name: "description", Label: "Description", Kind: listing.KindTextarea, Placeholder: "Category description", Wide: true},
				},
			},
		},
	}
}

// Customers is the customer master.
func Customers() listing.Resource {
	return listing.Resource{
		Slug:              "customers",
		Title:             "Customers Management",
		Subtitle:          "Manage your customer database",
		Heading:           "Customers",
		Description:       "All customers in your database",
		Icon:              "users",
		Endpoint:          "/customers",
		Plural:            "customers",
		SearchFields:      []string{"name", "phone", "email"},
		SearchPlaceholder: "Search customers by name, phone, or email...",
		EmptyHint:         "Start by adding your first customer",
		RowActions:        true,
		Columns: []listing.Column{
			{Header: "Customer Name", Lines: []listing.Line{
				{Fields: []string{"name"}},
				{Fields: []string{"customer_id"}, Format: listing.FormatShortID, Prefix: "ID: "},
			}},
			{Header: "Contact", Lines: []listing.Line{
				{Fields: []string{"phone"}},
				{Fields: []string{"email"}},
			}},
			{Header: "Location", Lines: []listing.Line{
				{Fields: []string{"city", "state"}, Sep: ", "},
				{Fields: []string{"pincode"}},
			}},
			{Header: "GSTIN", Lines: []listing.Line{{Fields: []string{"gstin"}}}, Badge: true, Empty: "No GSTIN"},
			{Header: "Credit Terms", Lines: []listing.Line{
				{Fields: []string{"credit_limit"}, Format: listing.FormatMoney},
				{Fields: []string{"credit_days"}, Suffix: " days"},
			}},
		},
		Forms: []listing.Form{{
			Key:         "customer",
			Title:       "Add New Customer",
			Description: "Add a new customer to your database",
			Trigger:     "Add Customer",
			Submit:      "Add Customer",
			Endpoint:    "/customers",
			Success:     "Customer added successfully",
			Failure:     "Failed to add customer",
			Fields: []listing.Field{
				{Name: "name", Label: "Customer Name", Required: true, Placeholder: "Customer Name"},
				{Name: "phone", Label: "Phone", Kind: listing.KindTel, Required: true, Placeholder: "9876543210"},
				{Name: "email", Label: "Email", Kind: listing.KindEmail, Placeholder: "customer@company.com"},
				{Name: "gstin", Label: "GSTIN", Placeholder: "22AAAAA0000A1Z5"},
				{Name: "billing_address", Label: "Billing Address", Kind: listing.KindTextarea, Required: true, Placeholder: "Complete billing address", Wide: true},
				{Name: "shipping_address", Label: "Shipping Address", Kind: listing.KindTextarea, Placeholder: "Leave empty if same as billing address", Wide: true},
				{Name: "city", Label: "City", Required: true, Placeholder: "Mumbai"},
				{Name: "state", Label: "State", Required: true, Placeholder: "Maharashtra"},
				{Name: "pincode", Label: "Pincode", Required: true, Placeholder: "400001"},
				{Name: "credit_limit", Label: "Credit Limit", Kind: listing.KindNumber, Placeholder: "50000"},
				{Name: "credit_days", Label: "Credit Days", Kind: listing.KindInteger, Placeholder: "30"},
			},
		}},
	}
}

// Suppliers is the supplier master.
func Suppliers() listing.Resource {
	return listing.Resource{
		Slug:              "suppliers",
		Title:             "Suppliers Management",
		Subtitle:          "Manage your supplier network",
		Heading:           "Suppliers",
		Description:       "All suppliers in your network",
		Icon:              "truck",
		Endpoint:          "/suppliers",
		Plural:            "suppliers",
		SearchFields:      []string{"name", "phone", "email"},
		SearchPlaceholder: "Search suppliers by name, phone, or email...",
		EmptyHint:         "Start by adding your first supplier",
		RowActions:        true,
		Columns: []listing.Column{
			{Header: "Supplier Name", Lines: []listing.Line{
				{Fields: []string{"name"}},
				{Fields: []string{"supplier_id"}, Format: listing.FormatShortID, Prefix: "ID: "},
			}},
			{Header: "Contact", Lines: []listing.Line{
				{Fields: []string{"phone"}},
				{Fields: []string{"email"}},
			}},
			{Header: "Location", Lines: []listing.Line{
				{Fields: []string{"city", "state"}, Sep: ", "},
				{Fields: []string{"pincode"}},
			}},
			{Header: "GSTIN", Lines: []listing.Line{{Fields: []string{"gstin"}}}, Badge: true, Empty: "No GSTIN"},
			{Header: "Payment Terms", Lines: []listing.Line{{Fields: []string{"payment_terms"}}}, Badge: true},
		},
		Forms: []listing.Form{{
			Key:         "supplier",
			Title:       "Add New Supplier",
			Description: "Add a new supplier to your network",
			Trigger:     "Add Supplier",
			Submit:      "Add Supplier",
			Endpoint:    "/suppliers",
			Success:     "Supplier added successfully",
			Failure:     "Failed to add supplier",
			Fields: []listing.Field{
				{Name: "name", Label: "Supplier Name", Required: true, Placeholder: "Supplier Name"},
				{Name: "phone", Label: "Phone", Kind: listing.KindTel, Required: true, Placeholder: "9876543210"},
				{Name: "email", Label: "Email", Kind: listing.KindEmail, Placeholder: "supplier@company.com"},
				{Name: "gstin", Label: "GSTIN", Placeholder: "22AAAAA0000A1Z5"},
				{Name: "address", Label: "Address", Kind: listing.KindTextarea, Required: true, Placeholder: "Complete address", Wide: true},
				{Name: "city", Label: "City", Required: true, Placeholder: "Mumbai"},
				{Name: "state", Label: "State", Required: true, Placeholder: "Maharashtra"},
				{Name: "pincode", Label: "Pincode", Required: true, Placeholder: "400001"},
				{Name: "payment_terms", Label: "Payment Terms", Required: true, Default: "Net 30", Placeholder: "Net 30"},
			},
		}},
	}
}

// PurchaseOrders lists purchase orders with their supplier.
func PurchaseOrders() listing.Resource {
	return listing.Resource{
		Slug:              "purchase-orders",
		Title:             "Purchase Orders",
		Subtitle:          "Track orders placed with your suppliers",
		Heading:           "Purchase Orders",
		Description:       "All purchase orders for your company",
		Icon:              "cart",
		Endpoint:          "/purchase-orders",
		Plural:            "purchase orders",
		SearchFields:      []string{"po_number", "status"},
		SearchPlaceholder: "Search purchase orders by number or status...",
		EmptyHint:         "Purchase orders raised in the backend appear here",
		Lookups: []listing.Lookup{{
			Name:     "suppliers",
			Endpoint: "/suppliers",
			Key:      "supplier_id",
			Label:    "name",
			Missing:  "Unknown Supplier",
			Failure:  "Failed to fetch suppliers",
		}},
		Columns: []listing.Column{
			{Header: "PO Number", Lines: []listing.Line{{Fields: []string{"po_number"}}}},
			{Header: "Date", Lines: []listing.Line{{Fields: []string{"po_date"}, Format: listing.FormatDate}}},
			{Header: "Supplier", Lines: []listing.Line{{Fields: []string{"supplier_id"}, Format: listing.FormatLookup, Lookup: "suppliers"}}},
			{Header: "Expected Delivery", Lines: []listing.Line{{Fields: []string{"expected_delivery"}, Format: listing.FormatDate}}, Empty: "Not scheduled"},
			{Header: "Total", Lines: []listing.Line{{Fields: []string{"total_amount"}, Format: listing.FormatMoney}}},
			statusColumn,
		},
	}
}

// SalesOrders lists sales orders with their customer.
func SalesOrders() listing.Resource {
	return listing.Resource{
		Slug:              "sales-orders",
		Title:             "Sales Orders",
		Subtitle:          "Track orders received from your customers",
		Heading:           "Sales Orders",
		Description:       "All sales orders for your company",
		Icon:              "file",
		Endpoint:          "/sales-orders",
		Plural:            "sales orders",
		SearchFields:      []string{"so_number", "status"},
		SearchPlaceholder: "Search sales orders by number or status...",
		EmptyHint:         "Sales orders raised in the backend appear here",
		Lookups:           []listing.Lookup{customerLookup()},
		Columns: []listing.Column{
			{Header: "SO Number", Lines: []listing.Line{{Fields: []string{"so_number"}}}},
			{Header: "Date", Lines: []listing.Line{{Fields: []string{"so_date"}, Format: listing.FormatDate}}},
			{Header: "Customer", Lines: []listing.Line{{Fields: []string{"customer_id"}, Format: listing.FormatLookup, Lookup: "customers"}}},
			{Header: "Total", Lines: []listing.Line{{Fields: []string{"total_amount"}, Format: listing.FormatMoney}}},
			statusColumn,
		},
	}
}

// Invoices lists invoices with their outstanding balance.
func Invoices() listing.Resource {
	return listing.Resource{
		Slug:              "invoices",
		Title:             "Invoices",
		Subtitle:          "Review billed amounts and outstanding balances",
		Heading:           "Invoices",
		Description:       "All invoices for your company",
		Icon:              "file",
		Endpoint:          "/invoices",
		Plural:            "invoices",
		SearchFields:      []string{"invoice_number", "status"},
		SearchPlaceholder: "Search invoices by number or status...",
		EmptyHint:         "Invoices generated in the backend appear here",
		Lookups:           []listing.Lookup{customerLookup()},
		Columns: []listing.Column{
			{Header: "Invoice Number", Lines: []listing.Line{{Fields: []string{"invoice_number"}}}},
			{Header: "Customer", Lines: []listing.Line{{Fields: []string{"customer_id"}, Format: listing.FormatLookup, Lookup: "customers"}}},
			{Header: "Invoice Date", Lines: []listing.Line{{Fields: []string{"invoice_date"}, Format: listing.FormatDate}}},
			{Header: "Due Date", Lines: []listing.Line{{Fields: []string{"due_date"}, Format: listing.FormatDate}}},
			{Header: "Total", Lines: []listing.Line{{Fields: []string{"total_amount"}, Format: listing.FormatMoney}}},
			{Header: "Balance", Lines: []listing.Line{{Fields: []string{"balance_amount"}, Format: listing.FormatMoney}}},
			statusColumn,
		},
	}
}

// Inventory lists stock positions per item, location and batch.
func Inventory() listing.Resource {
	return listing.Resource{
		Slug:              "inventory",
		Title:             "Inventory",
		Subtitle:          "Current stock across locations and batches",
		Heading:           "Stock",
		Description:       "Stock positions for your company",
		Icon:              "warehouse",
		Endpoint:          "/stock",
		Plural:            "stock records",
		SearchFields:      []string{"item_id", "location_id", "batch_id"},
		SearchPlaceholder: "Search stock by item, location, or batch...",
		EmptyHint:         "Stock appears here once goods are received",
		Lookups: []listing.Lookup{{
			Name:     "items",
			Endpoint: "/items",
			Key:      "item_id",
			Label:    "name",
			Missing:  "Unknown Item",
			Failure:  "Failed to fetch items",
		}},
		Columns: []listing.Column{
			{Header: "Item", Lines: []listing.Line{
				{Fields: []string{"item_id"}, Format: listing.FormatLookup, Lookup: "items"},
				{Fields: []string{"item_id"}, Format: listing.FormatShortID, Prefix: "ID: "},
			}},
			{Header: "Location", Lines: []listing.Line{{Fields: []string{"location_id"}, Format: listing.FormatShortID}}, Empty: "Default"},
			{Header: "Batch", Lines: []listing.Line{{Fields: []string{"batch_id"}, Format: listing.FormatShortID}}, Badge: true, Empty: "No batch"},
			{Header: "Quantity", Lines: []listing.Line{{Fields: []string{"quantity"}, Format: listing.FormatNumber}}},
			{Header: "Reserved", Lines: []listing.Line{{Fields: []string{"reserved_quantity"}, Format: listing.FormatNumber}}},
			{Header: "Last Updated", Lines: []listing.Line{{Fields: []string{"last_updated"}, Format: listing.FormatDate}}},
		},
	}
}

// Payments lists received payments.
func Payments() listing.Resource {
	return listing.Resource{
		Slug:              "payments",
		Title:             "Payments",
		Subtitle:          "Payments received against invoices",
		Heading:           "Payments",
		Description:       "All payments for your company",
		Icon:              "card",
		Endpoint:          "/payments",
		Plural:            "payments",
		SearchFields:      []string{"payment_id", "payment_mode", "status"},
		SearchPlaceholder: "Search payments by reference, mode, or status...",
		EmptyHint:         "Payments recorded in the backend appear here",
		Lookups:           []listing.Lookup{customerLookup()},
		Columns: []listing.Column{
			{Header: "Payment", Lines: []listing.Line{
				{Fields: []string{"payment_id"}, Format: listing.FormatShortID},
				{Fields: []string{"reference_number"}, Prefix: "Ref: "},
			}},
			{Header: "Customer", Lines: []listing.Line{{Fields: []string{"customer_id"}, Format: listing.FormatLookup, Lookup: "customers"}}},
			{Header: "Date", Lines: []listing.Line{{Fields: []string{"payment_date"}, Format: listing.FormatDate}}},
			{Header: "Mode", Lines: []listing.Line{{Fields: []string{"payment_mode"}, Format: listing.FormatTitle}}, Badge: true},
			{Header: "Amount", Lines: []listing.Line{{Fields: []string{"amount"}, Format: listing.FormatMoney}}},
			statusColumn,
		},
	}
}

func roleOptions() []listing.Option {
	out := make([]listing.Option, len(auth.Roles))
	for i, r := range auth.Roles {
		out[i] = listing.Option{Value: r.Value, Label: r.Label}
	}
	return out
}

// Users lists the company's users and registers new ones.
func Users() listing.Resource {
	return listing.Resource{
		Slug:              "users",
		Path:              "/settings/users",
		Title:             "User Management",
		Subtitle:          "Manage who can sign in to your company",
		Heading:           "Users",
		Description:       "All users of your company",
		Icon:              "user-plus",
		Endpoint:          "/users",
		Plural:            "users",
		SearchFields:      []string{"name", "email"},
		SearchPlaceholder: "Search users by name or email...",
		EmptyHint:         "Add a user to give them access",
		Columns: []listing.Column{
			{Header: "Name", Lines: []listing.Line{{Fields: []string{"name"}}}},
			{Header: "Email", Lines: []listing.Line{{Fields: []string{"email"}}}},
			{Header: "Phone", Lines: []listing.Line{{Fields: []string{"phone"}}}},
			{Header: "Role", Lines: []listing.Line{{Fields: []string{"role"}, Format: listing.FormatTitle}}, Badge: true},
			{Header: "Active", Lines: []listing.Line{{Fields: []string{"is_active"}, Format: listing.FormatFlag, True: "Active", False: "Inactive"}}},
		},
		Forms: []listing.Form{{
			Key:         "user",
			Title:       "Add New User",
			Description: "Create a login for a member of your company",
			Trigger:     "Add User",
			Submit:      "Create User",
			Endpoint:    "/auth/register",
			Success:     "User created successfully",
			Failure:     "Failed to create user",
			Fields: []listing.Field{
				{Name: "name", Label: "Full Name", Required: true, Placeholder: "Full Name"},
				{Name: "email", Label: "Email", Kind: listing.KindEmail, Required: true, Placeholder: "user@company.com"},
				{Name: "phone", Label: "Phone", Kind: listing.KindTel, Required: true, Placeholder: "9876543210"},
				{Name: "role", Label: "Role", Kind: listing.KindSelect, Required: true, Default: "staff", Options: roleOptions()},
				{Name: "password", Label: "Password", Kind: listing.KindPassword, Required: true},
			},
		}},
	}
}
