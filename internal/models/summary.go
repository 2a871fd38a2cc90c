package models

// InvoiceSummary is the list-view projection of a stored invoice.
type InvoiceSummary struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	ClientName    string  `json:"clientName"`
	IssueDate     string  `json:"issueDate"`
	DueDate       string  `json:"dueDate"`
	Currency      string  `json:"currency"`
	GrandTotal    float64 `json:"grandTotal"`
	BalanceDue    float64 `json:"balanceDue"`
	UpdatedAt     string  `json:"updatedAt"`
}

// Summary projects the invoice into its list-view form.
func (inv *Invoice) Summary() InvoiceSummary {
	return InvoiceSummary{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.Client.Name,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Currency:      inv.Currency,
		GrandTotal:    inv.Totals.GrandTotal,
		BalanceDue:    inv.Totals.BalanceDue,
		UpdatedAt:     inv.UpdatedAt,
	}
}
