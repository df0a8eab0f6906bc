package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, the way the storefront sends them.
	decimal.MarshalJSONWithoutQuotes = true
}

// FormatMoney renders an amount with a currency symbol and two decimals, e.g. £4200.00.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// MinorUnits converts an amount to the smallest currency unit (pence, cents).
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromMinorUnits is the inverse of MinorUnits.
func FromMinorUnits(units int64) decimal.Decimal {
	return decimal.New(units, -2)
}
