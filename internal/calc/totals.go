// Package calc is the invoice financial calculation engine: per-line totals,
// the multi-stage invoice totals pipeline, and monetary formatting. Every
// function here is pure and synchronous; malformed numeric input is coerced
// to zero instead of failing, so the engine can run on every keystroke.
package calc

import (
	"math"
	"sort"

	"invoicedesk/internal/models"
)

// FeeBases are the running subtotals a fee's applyBase tag can select.
// GrandTotalPreTax equals the subtotal after invoice discounts: fees are
// evaluated in a single pass before tax, so this base is a pre-fee
// approximation. Known design choice, kept as documented behavior.
type FeeBases struct {
	Subtotal              float64
	AfterItemDiscounts    float64
	AfterInvoiceDiscounts float64
	GrandTotalPreTax      float64
}

// Subtotal sums quantity x unit price across items, before any discount.
func Subtotal(items []models.InvoiceItem) float64 {
	var sum float64
	for i := range items {
		sum += itemBase(&items[i])
	}
	return RoundToCurrency(sum, CurrencyDecimals)
}

// TotalItemDiscounts sums the per-item discount amounts.
func TotalItemDiscounts(items []models.InvoiceItem) float64 {
	var sum float64
	for i := range items {
		sum += ItemDiscount(&items[i])
	}
	return RoundToCurrency(sum, CurrencyDecimals)
}

// SubtotalAfterItemDiscounts sums the per-item totals. This is computed item
// by item rather than as subtotal minus discounts so each line's own
// clamping is respected.
func SubtotalAfterItemDiscounts(items []models.InvoiceItem) float64 {
	var sum float64
	for i := range items {
		sum += ItemTotal(&items[i])
	}
	return RoundToCurrency(sum, CurrencyDecimals)
}

// InvoiceDiscounts sums the invoice-level discounts against the given base.
// Fixed discounts are clamped to the base amount.
func InvoiceDiscounts(discounts []models.Discount, base float64) float64 {
	var sum float64
	for _, d := range discounts {
		if d.Type == models.TypePercent {
			sum += base * (d.Value.Float() / 100)
		} else {
			sum += math.Min(d.Value.Float(), base)
		}
	}
	return RoundToCurrency(sum, CurrencyDecimals)
}

// Fees sums the invoice fees, each computed against the running subtotal its
// applyBase selects. Unknown tags fall back to the post-item-discount
// subtotal.
func Fees(fees []models.Fee, bases FeeBases) float64 {
	var sum float64
	for _, fee := range fees {
		var base float64
		switch fee.ApplyBase {
		case models.FeeBaseSubtotal:
			base = bases.Subtotal
		case models.FeeBaseAfterItemDiscounts:
			base = bases.AfterItemDiscounts
		case models.FeeBaseAfterInvoiceDiscounts:
			base = bases.AfterInvoiceDiscounts
		case models.FeeBaseGrandTotalPreTax:
			base = bases.GrandTotalPreTax
		default:
			base = bases.AfterItemDiscounts
		}

		if fee.Type == models.TypePercent {
			sum += base * (fee.Value.Float() / 100)
		} else {
			sum += fee.Value.Float()
		}
	}
	return RoundToCurrency(sum, CurrencyDecimals)
}

// Taxes sums the invoice taxes against the taxable amount, processing taxes
// in ascending priority (stable for ties). Each tax applies to the portion
// of the taxable amount given by the count ratio of matching items, a
// coarse proxy for the taxable portion rather than a per-item recomputation,
// preserved from the legacy behavior. With zero items every tax contributes
// nothing.
func Taxes(taxes []models.Tax, items []models.InvoiceItem, taxableAmount float64) float64 {
	sorted := make([]models.Tax, len(taxes))
	copy(sorted, taxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	var sum float64
	for _, tax := range sorted {
		applicable := 0
		for i := range items {
			if tax.Category == "" || tax.Category == models.TaxCategoryAll || items[i].TaxCategory == tax.Category {
				applicable++
			}
		}
		if applicable == 0 {
			continue
		}

		ratio := float64(applicable) / float64(len(items))
		sum += taxableAmount * ratio * (tax.Rate.Float() / 100)
	}
	return RoundToCurrency(sum, CurrencyDecimals)
}

// TotalPaid sums the recorded payments.
func TotalPaid(payments []models.Payment) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount.Float()
	}
	return RoundToCurrency(sum, CurrencyDecimals)
}

// CalculateTotals runs the full totals pipeline over an invoice. Each stage
// is rounded before feeding the next so rounding error cannot compound.
// Calling it twice on the same invoice yields identical results; it touches
// no shared state.
func CalculateTotals(inv *models.Invoice) models.InvoiceTotals {
	subtotal := Subtotal(inv.Items)
	itemDiscounts := TotalItemDiscounts(inv.Items)
	afterItemDiscounts := SubtotalAfterItemDiscounts(inv.Items)

	invoiceDiscounts := InvoiceDiscounts(inv.Discounts, afterItemDiscounts)
	afterInvoiceDiscounts := RoundToCurrency(math.Max(0, afterItemDiscounts-invoiceDiscounts), CurrencyDecimals)

	fees := Fees(inv.Fees, FeeBases{
		Subtotal:              subtotal,
		AfterItemDiscounts:    afterItemDiscounts,
		AfterInvoiceDiscounts: afterInvoiceDiscounts,
		GrandTotalPreTax:      afterInvoiceDiscounts,
	})

	taxableAmount := RoundToCurrency(afterInvoiceDiscounts+fees, CurrencyDecimals)
	tax := Taxes(inv.Taxes, inv.Items, taxableAmount)

	grandTotal := RoundToCurrency(taxableAmount+tax, CurrencyDecimals)
	paid := TotalPaid(inv.Payments)
	balanceDue := RoundToCurrency(math.Max(0, grandTotal-paid), CurrencyDecimals)

	return models.InvoiceTotals{
		Subtotal:         subtotal,
		ItemDiscounts:    itemDiscounts,
		InvoiceDiscounts: invoiceDiscounts,
		Fees:             fees,
		Tax:              tax,
		GrandTotal:       grandTotal,
		Paid:             paid,
		BalanceDue:       balanceDue,
	}
}
