package models

import (
	"fmt"
	"strings"
	"time"
)

// SchemaVersion is written into every new invoice document.
const SchemaVersion = "1.0"

// NewID returns a unique document id. Documents live in a single-user local
// store, so a timestamp-based id is sufficient.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// InvoiceNumberFromPattern expands a pattern like "INV-{YYYY}-{#####}".
// {YYYY} becomes the year, a run of '#' becomes the zero-padded sequence.
func InvoiceNumberFromPattern(pattern string, now time.Time, seq int64) string {
	out := strings.ReplaceAll(pattern, "{YYYY}", fmt.Sprintf("%04d", now.Year()))
	start := strings.Index(out, "{#")
	if start < 0 {
		return out
	}
	end := strings.Index(out[start:], "}")
	if end < 0 {
		return out
	}
	width := strings.Count(out[start:start+end], "#")
	num := fmt.Sprintf("%0*d", width, seq)
	if len(num) > width {
		num = num[len(num)-width:]
	}
	return out[:start] + num + out[start+end+1:]
}

// NewInvoice creates an empty invoice seeded from the workspace settings:
// issue date today, due in 14 days, NET_14 terms, zeroed totals.
func NewInvoice(settings AppSettings, templateID string, now time.Time) *Invoice {
	if templateID == "" {
		templateID = settings.DefaultTemplateID
	}
	taxes := make([]Tax, len(settings.DefaultTaxes))
	copy(taxes, settings.DefaultTaxes)
	fees := make([]Fee, len(settings.DefaultFees))
	copy(fees, settings.DefaultFees)

	return &Invoice{
		Version:           SchemaVersion,
		ID:                NewID("inv"),
		TemplateID:        templateID,
		BusinessProfileID: settings.DefaultBusinessProfileID,
		InvoiceNumber:     InvoiceNumberFromPattern(settings.InvoiceNumberPattern, now, now.UnixMilli()),
		IssueDate:         now.Format("2006-01-02"),
		DueDate:           now.AddDate(0, 0, 14).Format("2006-01-02"),
		PaymentTerms:      "NET_14",
		Currency:          settings.Currency,
		Locale:            settings.Locale,
		Items:             []InvoiceItem{},
		Discounts:         []Discount{},
		Fees:              fees,
		Taxes:             taxes,
		Payments:          []Payment{},
		Terms:             "Payment due within 14 days.",
		CreatedAt:         now.UTC().Format(time.RFC3339),
		UpdatedAt:         now.UTC().Format(time.RFC3339),
	}
}

// Duplicate returns a copy of the invoice under a fresh id and a "-COPY"
// number, with reset timestamps. Nested collections are deep-copied so the
// copies never share state.
func (inv *Invoice) Duplicate(now time.Time) *Invoice {
	dup := *inv
	dup.ID = NewID("inv")
	dup.InvoiceNumber = inv.InvoiceNumber + "-COPY"
	dup.CreatedAt = now.UTC().Format(time.RFC3339)
	dup.UpdatedAt = dup.CreatedAt

	dup.Items = make([]InvoiceItem, len(inv.Items))
	copy(dup.Items, inv.Items)
	for i := range dup.Items {
		if d := dup.Items[i].Discount; d != nil {
			c := *d
			dup.Items[i].Discount = &c
		}
	}
	dup.Discounts = append([]Discount(nil), inv.Discounts...)
	dup.Fees = append([]Fee(nil), inv.Fees...)
	dup.Taxes = append([]Tax(nil), inv.Taxes...)
	dup.Payments = append([]Payment(nil), inv.Payments...)
	return &dup
}
