// Package state replaces the original application's implicit reactive store
// with plain values and an explicit mutation set. Every edit to an invoice
// goes through Apply, which recomputes the derived totals exactly once after
// the mutations run. Recalculation is never a hidden side effect of a
// setter.
package state

import (
	"time"

	"invoicedesk/internal/calc"
	"invoicedesk/internal/models"
)

// Mutation is one typed edit operation against an invoice.
type Mutation interface {
	apply(inv *models.Invoice)
}

// Apply runs the mutations in order, then recomputes totals and bumps the
// update timestamp. Totals are valid again the moment Apply returns.
func Apply(inv *models.Invoice, muts ...Mutation) {
	for _, m := range muts {
		m.apply(inv)
	}
	inv.Totals = calc.CalculateTotals(inv)
	inv.Touch(time.Now())
}

// Recalculate refreshes derived totals without changing any input field,
// e.g. after loading a stored document.
func Recalculate(inv *models.Invoice) {
	inv.Totals = calc.CalculateTotals(inv)
}

// AddItem appends a line item. A missing id is generated.
type AddItem struct {
	Item models.InvoiceItem
}

func (m AddItem) apply(inv *models.Invoice) {
	item := m.Item
	if item.ID == "" {
		item.ID = models.NewID("item")
	}
	inv.Items = append(inv.Items, item)
}

// ItemPatch carries the fields of a line item an edit may change. Nil fields
// are left untouched.
type ItemPatch struct {
	SKU         *string
	Name        *string
	Description *string
	Quantity    *models.Amount
	UnitPrice   *models.Amount
	Discount    **models.ItemDiscount
	TaxCategory *string
	Notes       *string
}

// UpdateItem patches the item with the given id; unknown ids are ignored.
type UpdateItem struct {
	ID    string
	Patch ItemPatch
}

func (m UpdateItem) apply(inv *models.Invoice) {
	item := inv.ItemByID(m.ID)
	if item == nil {
		return
	}
	p := m.Patch
	if p.SKU != nil {
		item.SKU = *p.SKU
	}
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		item.UnitPrice = *p.UnitPrice
	}
	if p.Discount != nil {
		item.Discount = *p.Discount
	}
	if p.TaxCategory != nil {
		item.TaxCategory = *p.TaxCategory
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
}

// RemoveItem deletes the item with the given id.
type RemoveItem struct {
	ID string
}

func (m RemoveItem) apply(inv *models.Invoice) {
	for i := range inv.Items {
		if inv.Items[i].ID == m.ID {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return
		}
	}
}

// SetClient replaces the billed party.
type SetClient struct {
	Client models.Client
}

func (m SetClient) apply(inv *models.Invoice) { inv.Client = m.Client }

// AddDiscount appends an invoice-level discount.
type AddDiscount struct {
	Discount models.Discount
}

func (m AddDiscount) apply(inv *models.Invoice) {
	d := m.Discount
	if d.ID == "" {
		d.ID = models.NewID("disc")
	}
	inv.Discounts = append(inv.Discounts, d)
}

// RemoveDiscount deletes the invoice-level discount with the given id.
type RemoveDiscount struct {
	ID string
}

func (m RemoveDiscount) apply(inv *models.Invoice) {
	for i := range inv.Discounts {
		if inv.Discounts[i].ID == m.ID {
			inv.Discounts = append(inv.Discounts[:i], inv.Discounts[i+1:]...)
			return
		}
	}
}

// AddFee appends a fee.
type AddFee struct {
	Fee models.Fee
}

func (m AddFee) apply(inv *models.Invoice) {
	f := m.Fee
	if f.ID == "" {
		f.ID = models.NewID("fee")
	}
	inv.Fees = append(inv.Fees, f)
}

// RemoveFee deletes the fee with the given id.
type RemoveFee struct {
	ID string
}

func (m RemoveFee) apply(inv *models.Invoice) {
	for i := range inv.Fees {
		if inv.Fees[i].ID == m.ID {
			inv.Fees = append(inv.Fees[:i], inv.Fees[i+1:]...)
			return
		}
	}
}

// AddTax appends a tax rule.
type AddTax struct {
	Tax models.Tax
}

func (m AddTax) apply(inv *models.Invoice) {
	t := m.Tax
	if t.ID == "" {
		t.ID = models.NewID("tax")
	}
	inv.Taxes = append(inv.Taxes, t)
}

// RemoveTax deletes the tax rule with the given id.
type RemoveTax struct {
	ID string
}

func (m RemoveTax) apply(inv *models.Invoice) {
	for i := range inv.Taxes {
		if inv.Taxes[i].ID == m.ID {
			inv.Taxes = append(inv.Taxes[:i], inv.Taxes[i+1:]...)
			return
		}
	}
}

// AddPayment records a payment.
type AddPayment struct {
	Payment models.Payment
}

func (m AddPayment) apply(inv *models.Invoice) {
	p := m.Payment
	if p.ID == "" {
		p.ID = models.NewID("pay")
	}
	inv.Payments = append(inv.Payments, p)
}

// RemovePayment deletes the payment with the given id.
type RemovePayment struct {
	ID string
}

func (m RemovePayment) apply(inv *models.Invoice) {
	for i := range inv.Payments {
		if inv.Payments[i].ID == m.ID {
			inv.Payments = append(inv.Payments[:i], inv.Payments[i+1:]...)
			return
		}
	}
}

// SetWorkDetails replaces the rich-text work details block.
type SetWorkDetails struct {
	WorkDetails string
}

func (m SetWorkDetails) apply(inv *models.Invoice) { inv.WorkDetails = m.WorkDetails }

// SetNotes replaces the notes block.
type SetNotes struct {
	Notes string
}

func (m SetNotes) apply(inv *models.Invoice) { inv.Notes = m.Notes }

// SetTerms replaces the terms block.
type SetTerms struct {
	Terms string
}

func (m SetTerms) apply(inv *models.Invoice) { inv.Terms = m.Terms }

// SetCurrency changes currency and display locale together.
type SetCurrency struct {
	Currency string
	Locale   string
}

func (m SetCurrency) apply(inv *models.Invoice) {
	if m.Currency != "" {
		inv.Currency = m.Currency
	}
	if m.Locale != "" {
		inv.Locale = m.Locale
	}
}

// SetDates changes issue and/or due date; empty strings leave a date as-is.
type SetDates struct {
	IssueDate string
	DueDate   string
}

func (m SetDates) apply(inv *models.Invoice) {
	if m.IssueDate != "" {
		inv.IssueDate = m.IssueDate
	}
	if m.DueDate != "" {
		inv.DueDate = m.DueDate
	}
}

// SetPaymentTerms changes the payment-terms code.
type SetPaymentTerms struct {
	PaymentTerms string
}

func (m SetPaymentTerms) apply(inv *models.Invoice) { inv.PaymentTerms = m.PaymentTerms }

// SetPaymentLinks replaces the online payment options.
type SetPaymentLinks struct {
	Links models.PaymentLinks
}

func (m SetPaymentLinks) apply(inv *models.Invoice) { inv.PaymentLinks = m.Links }
