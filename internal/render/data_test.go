package render

import (
	"strings"
	"testing"
	"time"

	"invoicedesk/internal/calc"
	"invoicedesk/internal/models"
	"invoicedesk/internal/templates"
)

func sampleInvoice() *models.Invoice {
	inv := models.NewInvoice(models.DefaultSettings(), "", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	inv.InvoiceNumber = "INV-2026-00001"
	inv.Client = models.Client{Name: "Jane Cooper", Company: "Cooper Co"}
	inv.Items = []models.InvoiceItem{
		{ID: "item_1", Name: "Design", Quantity: 2, UnitPrice: 50,
			Discount: &models.ItemDiscount{Type: models.TypePercent, Value: 10}},
		{ID: "item_2", Name: "Hosting", Quantity: 1, UnitPrice: 20},
	}
	inv.Totals = calc.CalculateTotals(inv)
	return inv
}

func sampleContext() (*models.Invoice, *models.Template, *models.BusinessProfile) {
	inv := sampleInvoice()
	tmpl := templates.ByID("clean-professional")
	profile := templates.DefaultBusinessProfile()
	return inv, tmpl, &profile
}

func TestPaymentTermsDisplay(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"NET_0", "Payment due upon receipt"},
		{"NET_14", "Payment due within 14 days"},
		{"NET_30", "Payment due within 30 days"},
		{"NET_90", "Payment due within 90 days"},
		{"CUSTOM_X", "CUSTOM_X"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PaymentTermsDisplay(tt.code); got != tt.want {
			t.Errorf("PaymentTermsDisplay(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		locale string
		want   string
	}{
		{"us", "2026-03-05", "en-US", "3/5/2026"},
		{"german", "2026-03-05", "de-DE", "05.03.2026"},
		{"unknown locale iso", "2026-03-05", "xx-XX", "2026-03-05"},
		{"rfc3339 input", "2026-03-05T10:30:00Z", "en-US", "3/5/2026"},
		{"unparseable passes through", "not-a-date", "en-US", "not-a-date"},
		{"blank", "", "en-US", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.value, tt.locale); got != tt.want {
				t.Errorf("FormatDate(%q, %q) = %q, want %q", tt.value, tt.locale, got, tt.want)
			}
		})
	}
}

func TestPrepareTemplateDataItems(t *testing.T) {
	inv, tmpl, profile := sampleContext()
	data := PrepareTemplateData(inv, tmpl, profile)

	items, ok := data["items"].([]map[string]interface{})
	if !ok {
		t.Fatalf("items has type %T, want []map[string]interface{}", data["items"])
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	first := items[0]
	if first["formattedQuantity"] != "2" {
		t.Errorf("formattedQuantity = %v, want 2", first["formattedQuantity"])
	}
	if first["formattedUnitPrice"] != "$50.00" {
		t.Errorf("formattedUnitPrice = %v, want $50.00", first["formattedUnitPrice"])
	}
	if first["calculatedLineTotal"] != "$90.00" {
		t.Errorf("calculatedLineTotal = %v, want $90.00", first["calculatedLineTotal"])
	}
	if first["discountDisplay"] != "10%" {
		t.Errorf("discountDisplay = %v, want 10%%", first["discountDisplay"])
	}

	second := items[1]
	if second["discountDisplay"] != "" {
		t.Errorf("undiscounted item discountDisplay = %v, want empty", second["discountDisplay"])
	}
}

func TestPrepareTemplateDataTotals(t *testing.T) {
	inv, tmpl, profile := sampleContext()
	data := PrepareTemplateData(inv, tmpl, profile)

	totals, ok := data["totals"].(map[string]interface{})
	if !ok {
		t.Fatalf("totals has type %T", data["totals"])
	}
	if totals["subtotal"] != "$120.00" {
		t.Errorf("subtotal = %v, want $120.00", totals["subtotal"])
	}
	if totals["grandTotal"] != "$110.00" {
		t.Errorf("grandTotal = %v, want $110.00", totals["grandTotal"])
	}
	if _, exists := totals["totalTax"]; exists {
		t.Error("totals must not expose a totalTax key")
	}
}

func TestPrepareTemplateDataTaxes(t *testing.T) {
	inv, tmpl, profile := sampleContext()
	inv.Taxes = []models.Tax{
		{ID: "t1", Label: "VAT", Rate: 7.5, Category: models.TaxCategoryAll, Priority: 1, ApplyAfterDiscounts: true},
	}
	data := PrepareTemplateData(inv, tmpl, profile)

	taxes, ok := data["taxes"].([]map[string]interface{})
	if !ok || len(taxes) != 1 {
		t.Fatalf("taxes = %#v", data["taxes"])
	}
	tax := taxes[0]
	if tax["formattedRate"] != "7.5%" {
		t.Errorf("formattedRate = %v, want 7.5%%", tax["formattedRate"])
	}
	// Raw fields travel alongside the formatted ones.
	if tax["rate"] != 7.5 || tax["category"] != models.TaxCategoryAll || tax["priority"] != 1 {
		t.Errorf("raw tax fields = %v/%v/%v", tax["rate"], tax["category"], tax["priority"])
	}
	if tax["applyAfterDiscounts"] != true {
		t.Errorf("applyAfterDiscounts = %v, want true", tax["applyAfterDiscounts"])
	}
}

func TestPrepareTemplateDataWorkDetailsFlag(t *testing.T) {
	inv, tmpl, profile := sampleContext()

	data := PrepareTemplateData(inv, tmpl, profile)
	if data["workDetails"] != false {
		t.Errorf("workDetails = %v, want false when absent", data["workDetails"])
	}

	inv.WorkDetails = "   "
	data = PrepareTemplateData(inv, tmpl, profile)
	if data["workDetails"] != false {
		t.Errorf("workDetails = %v, want false for whitespace-only", data["workDetails"])
	}

	inv.WorkDetails = "<p>Replaced panel</p>"
	data = PrepareTemplateData(inv, tmpl, profile)
	if data["workDetails"] != "<p>Replaced panel</p>" {
		t.Errorf("workDetails = %v, want the raw markup", data["workDetails"])
	}
}

func TestPrepareTemplateDataPaymentLinks(t *testing.T) {
	inv, tmpl, profile := sampleContext()

	data := PrepareTemplateData(inv, tmpl, profile)
	if data["paymentLinks"] != false {
		t.Errorf("paymentLinks = %v, want false when empty", data["paymentLinks"])
	}

	inv.PaymentLinks = models.PaymentLinks{StripeURL: "https://pay.example/abc"}
	data = PrepareTemplateData(inv, tmpl, profile)
	links, ok := data["paymentLinks"].(map[string]interface{})
	if !ok {
		t.Fatalf("paymentLinks has type %T, want map", data["paymentLinks"])
	}
	if links["stripeUrl"] != "https://pay.example/abc" {
		t.Errorf("stripeUrl = %v", links["stripeUrl"])
	}
}

func TestPrepareTemplateDataInvoiceFields(t *testing.T) {
	inv, tmpl, profile := sampleContext()
	data := PrepareTemplateData(inv, tmpl, profile)

	invoice := data["invoice"].(map[string]interface{})
	if invoice["formattedIssueDate"] != "3/15/2026" {
		t.Errorf("formattedIssueDate = %v, want 3/15/2026", invoice["formattedIssueDate"])
	}
	if invoice["paymentTermsDisplay"] != "Payment due within 14 days" {
		t.Errorf("paymentTermsDisplay = %v", invoice["paymentTermsDisplay"])
	}

	business := data["business"].(map[string]interface{})
	if business["name"] != profile.Name {
		t.Errorf("business.name = %v, want %v", business["name"], profile.Name)
	}
}

func TestPreviewRendersThroughTemplate(t *testing.T) {
	inv, tmpl, profile := sampleContext()
	html := Preview(inv, tmpl, profile)

	if strings.Contains(html, `<div class="error">`) {
		t.Fatalf("Preview produced an error fragment: %s", html)
	}
	for _, want := range []string{"INV-2026-00001", "Jane Cooper", "$90.00", "$110.00"} {
		if !strings.Contains(html, want) {
			t.Errorf("Preview output missing %q", want)
		}
	}
}

func TestInvoiceHTMLDocumentShell(t *testing.T) {
	inv, tmpl, profile := sampleContext()
	html := InvoiceHTML(inv, tmpl, profile)

	for _, want := range []string{"<!DOCTYPE html>", "<title>Invoice INV-2026-00001</title>", "@media print"} {
		if !strings.Contains(html, want) {
			t.Errorf("InvoiceHTML output missing %q", want)
		}
	}
}
