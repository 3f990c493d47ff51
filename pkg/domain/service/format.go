package service

import "github.com/shopspring/decimal"

// FormatPrice renders an amount in minor currency units for display,
// e.g. 150000 -> "$1500.00".
func FormatPrice(amountCents int64) string {
	return "$" + decimal.New(amountCents, -2).StringFixed(2)
}
