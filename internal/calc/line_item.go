package calc

import (
	"math"

	"invoicedesk/internal/models"
)

// itemBase is quantity x unit price with blank/garbage input coerced to zero.
func itemBase(item *models.InvoiceItem) float64 {
	return item.Quantity.Float() * item.UnitPrice.Float()
}

// ItemTotal returns the line total for a single item after its own discount.
// A fixed discount is clamped to the line's base amount so no line ever goes
// negative.
func ItemTotal(item *models.InvoiceItem) float64 {
	base := itemBase(item)
	if item.Discount == nil {
		return RoundToCurrency(base, CurrencyDecimals)
	}

	var discountAmount float64
	if item.Discount.Type == models.TypePercent {
		discountAmount = base * (item.Discount.Value.Float() / 100)
	} else {
		discountAmount = math.Min(item.Discount.Value.Float(), base)
	}

	return RoundToCurrency(math.Max(0, base-discountAmount), CurrencyDecimals)
}

// ItemDiscount returns the discount amount for a single item, zero when the
// item carries no discount.
func ItemDiscount(item *models.InvoiceItem) float64 {
	if item.Discount == nil {
		return 0
	}

	base := itemBase(item)
	if item.Discount.Type == models.TypePercent {
		return RoundToCurrency(base*(item.Discount.Value.Float()/100), CurrencyDecimals)
	}
	return RoundToCurrency(math.Min(item.Discount.Value.Float(), base), CurrencyDecimals)
}
