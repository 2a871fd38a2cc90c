package calc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyDecimals is the fraction-digit count used for all monetary values.
const CurrencyDecimals = 2

// RoundToCurrency rounds an amount to the given number of fraction digits.
// The value goes through a decimal representation so the result carries no
// binary floating-point drift beyond the requested precision. Non-finite
// input yields zero.
func RoundToCurrency(amount float64, decimals int) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(amount).Round(int32(decimals)).Float64()
	return f
}

// FormatCurrency renders an amount as a locale- and currency-correct display
// string with two fraction digits, symbol flush against the number
// ("$1,234.50"). Unknown locales or currency codes fall back to
// "<CODE> <amount>"; this function never fails.
func FormatCurrency(amount float64, code, locale string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	unit, errUnit := currency.ParseISO(code)
	tag, errTag := language.Parse(locale)
	if errUnit != nil || errTag != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}

	p := message.NewPrinter(tag)
	symbol := p.Sprint(currency.Symbol(unit))
	if amount < 0 {
		return "-" + symbol + p.Sprintf("%.2f", -amount)
	}
	return symbol + p.Sprintf("%.2f", amount)
}

// FormatPercentage renders a value as "<value>%" with the given number of
// fraction digits.
func FormatPercentage(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return strconv.FormatFloat(value, 'f', decimals, 64) + "%"
}
