package models

import (
	"fmt"
	"strings"
	"time"
)

// Discount and fee value types.
const (
	TypePercent = "percent"
	TypeFixed   = "fixed"
)

// Fee apply bases select which running subtotal a fee is computed against.
const (
	FeeBaseSubtotal              = "subtotal"
	FeeBaseAfterItemDiscounts    = "subtotal_after_item_discounts"
	FeeBaseAfterInvoiceDiscounts = "subtotal_after_invoice_discounts"
	FeeBaseGrandTotalPreTax      = "grand_total_pre_tax"
)

// TaxCategoryAll matches every line item regardless of its tax category tag.
const TaxCategoryAll = "all"

// Invoice is the persisted invoice document. Template and BusinessProfile
// are referenced by id and looked up from their own stores; everything else
// is owned by the invoice.
type Invoice struct {
	Version           string        `json:"version"`
	ID                string        `json:"id"`
	TemplateID        string        `json:"templateId"`
	BusinessProfileID string        `json:"businessProfileId"`
	InvoiceNumber     string        `json:"invoiceNumber"`
	PONumber          string        `json:"poNumber"`
	IssueDate         string        `json:"issueDate"`
	DueDate           string        `json:"dueDate"`
	PaymentTerms      string        `json:"paymentTerms"`
	Currency          string        `json:"currency"`
	Locale            string        `json:"locale"`
	Client            Client        `json:"client"`
	Items             []InvoiceItem `json:"items"`
	Discounts         []Discount    `json:"discounts"`
	Fees              []Fee         `json:"fees"`
	Taxes             []Tax         `json:"taxes"`
	Payments          []Payment     `json:"payments"`
	WorkDetails       string        `json:"workDetails"`
	Notes             string        `json:"notes"`
	Terms             string        `json:"terms"`
	PaymentLinks      PaymentLinks  `json:"paymentLinks"`
	Totals            InvoiceTotals `json:"totals"`
	CreatedAt         string        `json:"createdAt"`
	UpdatedAt         string        `json:"updatedAt"`
}

// Client is the billed party, embedded in the invoice document.
type Client struct {
	Name            string `json:"name"`
	Company         string `json:"company"`
	Contact         string `json:"contact"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	BillingAddress  string `json:"billingAddress"`
	ShippingAddress string `json:"shippingAddress"`
}

// InvoiceItem is a single invoice row. Quantity and unit price stay editable
// in the UI, so both tolerate blank input (see Amount).
type InvoiceItem struct {
	ID          string        `json:"id"`
	SKU         string        `json:"sku"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Quantity    Amount        `json:"quantity"`
	UnitPrice   Amount        `json:"unitPrice"`
	Discount    *ItemDiscount `json:"discount"`
	TaxCategory string        `json:"taxCategory"`
	Notes       string        `json:"notes"`
}

// ItemDiscount is an optional per-line discount.
type ItemDiscount struct {
	Type  string `json:"type"`
	Value Amount `json:"value"`
}

// Discount is an invoice-level discount, applied after item discounts.
type Discount struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Value Amount `json:"value"`
}

// Fee is an invoice-level surcharge computed against a selectable base.
type Fee struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	Value     Amount `json:"value"`
	ApplyBase string `json:"applyBase"`
}

// Tax applies a percentage rate to the items matching its category.
// Lower priority values are processed first.
type Tax struct {
	ID                  string `json:"id"`
	Label               string `json:"label"`
	Rate                Amount `json:"rate"`
	Category            string `json:"category"`
	Priority            int    `json:"priority"`
	ApplyAfterDiscounts bool   `json:"applyAfterDiscounts"`
}

// Payment records money received against the invoice. Payments reduce the
// balance due only; they never feed back into tax or fee computation.
type Payment struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Method string `json:"method"`
	Amount Amount `json:"amount"`
}

// PaymentLinks carries optional online payment options shown on the invoice.
type PaymentLinks struct {
	StripeURL    string `json:"stripeUrl"`
	PaypalURL    string `json:"paypalUrl"`
	Instructions string `json:"instructions"`
}

// Empty reports whether no payment option is filled in.
func (p PaymentLinks) Empty() bool {
	return p.StripeURL == "" && p.PaypalURL == "" && p.Instructions == ""
}

// InvoiceTotals is derived state, recomputed by the calculation engine and
// never edited by hand.
type InvoiceTotals struct {
	Subtotal         float64 `json:"subtotal"`
	ItemDiscounts    float64 `json:"itemDiscounts"`
	InvoiceDiscounts float64 `json:"invoiceDiscounts"`
	Fees             float64 `json:"fees"`
	Tax              float64 `json:"tax"`
	GrandTotal       float64 `json:"grandTotal"`
	Paid             float64 `json:"paid"`
	BalanceDue       float64 `json:"balanceDue"`
}

// Validate checks the fields a caller must supply before an invoice can be
// stored. Calculation never depends on validity; this guards the CRUD path.
func (inv *Invoice) Validate() error {
	if strings.TrimSpace(inv.ID) == "" {
		return fmt.Errorf("invoice id is required")
	}
	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		return fmt.Errorf("invoice number is required")
	}
	for i, item := range inv.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %v", i+1, err)
		}
	}
	for i, fee := range inv.Fees {
		switch fee.ApplyBase {
		case "", FeeBaseSubtotal, FeeBaseAfterItemDiscounts, FeeBaseAfterInvoiceDiscounts, FeeBaseGrandTotalPreTax:
		default:
			return fmt.Errorf("fee %d: unknown apply base %q", i+1, fee.ApplyBase)
		}
	}
	return nil
}

// Validate validates a single line item.
func (it *InvoiceItem) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return fmt.Errorf("item id is required")
	}
	if it.Quantity.Float() < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	if it.UnitPrice.Float() < 0 {
		return fmt.Errorf("unit price cannot be negative")
	}
	if it.Discount != nil && it.Discount.Type != TypePercent && it.Discount.Type != TypeFixed {
		return fmt.Errorf("unknown discount type %q", it.Discount.Type)
	}
	return nil
}

// ItemByID returns the item with the given id, or nil.
func (inv *Invoice) ItemByID(id string) *InvoiceItem {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			return &inv.Items[i]
		}
	}
	return nil
}

// Touch bumps the document's update timestamp.
func (inv *Invoice) Touch(now time.Time) {
	inv.UpdatedAt = now.UTC().Format(time.RFC3339)
}
