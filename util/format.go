// Package util provides formatting helpers for the storefront client.
package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders numbers with European conventions (comma decimal).
var printer = message.NewPrinter(language.Spanish)

// FormatPrice renders a price in euros, e.g. 19.99 -> "19,99 €".
func FormatPrice(price float64) string {
	return printer.Sprintf("%.2f €", price)
}
