package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are shown the way the Indian market reads them on invoices.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatMoney renders an amount in rupees with two decimals.
func FormatMoney(v float64) string {
	return "₹" + printer.Sprintf("%.2f", v)
}

// FormatCount renders a whole number with digit grouping.
func FormatCount(v int) string {
	return printer.Sprintf("%d", v)
}

// FormatNumber renders a quantity without trailing zero decimals.
func FormatNumber(v float64) string {
	if v == float64(int64(v)) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}
