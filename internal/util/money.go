package util

import "github.com/shopspring/decimal"

// FormatMoney renders an amount with two decimals and a currency symbol,
// e.g. "₹1200.50" or "-₹200.00".
func FormatMoney(symbol string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// Capitalize upper-cases the first byte of an ASCII word ("income" ->
// "Income"), matching the export format.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
