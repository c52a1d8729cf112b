package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "₹"

// Render a price in rupees with thousands separators and two decimals,
// e.g. ₹12,345.60.
func FormatPrice(price float64) string {
	p := message.NewPrinter(language.English)
	return currencySymbol + p.Sprintf("%.2f", price)
}
