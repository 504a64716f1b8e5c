package models

import "github.com/shopspring/decimal"

// FormatMoney renders an amount with two decimals, rounding half away from zero.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// LineTotal is price x quantity.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
