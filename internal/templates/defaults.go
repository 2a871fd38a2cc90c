// Package templates bundles the built-in invoice templates and the starter
// business profile used before the user stores any of their own.
package templates

import "invoicedesk/internal/models"

// Defaults returns the built-in templates. Callers get fresh copies; the
// bundled templates themselves are never mutated.
func Defaults() []models.Template {
	return []models.Template{cleanProfessional(), compactLedger()}
}

// ByID returns the built-in template with the given id, or nil.
func ByID(id string) *models.Template {
	for _, t := range Defaults() {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

// DefaultBusinessProfile is the starter profile for a fresh workspace.
func DefaultBusinessProfile() models.BusinessProfile {
	return models.BusinessProfile{
		ID:          "default",
		Name:        "Your Business",
		Address:     "100 Main St\nCity, ST 00000",
		Email:       "billing@example.com",
		Phone:       "555-555-5555",
		TaxID:       "",
		BankDetails: "",
		LogoPath:    "",
		Color:       "#111827",
	}
}

func cleanProfessional() models.Template {
	return models.Template{
		ID:      "clean-professional",
		Name:    "Clean Professional",
		BuiltIn: true,
		Brand: models.TemplateBrand{
			PrimaryColor:     "#1F2937",
			AccentColor:      "#3B82F6",
			FontFamilyHeader: "Inter",
			FontFamilyBody:   "Inter",
		},
		Layout: models.TemplateLayout{
			HeaderStyle:   "left-logo-right-details",
			FooterText:    "Thank you for your business!",
			ShowSignature: false,
			Margins:       models.TemplateMargins{Top: 48, Right: 48, Bottom: 64, Left: 48},
		},
		Defaults: models.TemplateDefaults{
			TaxRules: []string{"standard"},
			Terms:    "Payment due within 30 days.",
		},
		HTML: `
<div class="invoice" style="font-family: 'Inter', sans-serif;">
  <div style="display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 24px;">
    <div>
      {{#business.logoPath}}
      <img src="{{business.logoPath}}" alt="Logo" style="max-height: 60px; max-width: 180px; object-fit: contain; margin-bottom: 10px;">
      {{/business.logoPath}}
      <div style="font-weight: 600; font-size: 16px; color: {{business.color}};">{{business.name}}</div>
      <div style="white-space: pre-line; color: #374151; font-size: 13px;">{{business.address}}</div>
      <div style="color: #374151; font-size: 13px;">{{business.email}}</div>
      <div style="color: #374151; font-size: 13px;">{{business.phone}}</div>
    </div>
    <div style="text-align: right;">
      <h1 style="color: {{brand.accentColor}}; margin: 0; font-size: 28px;">INVOICE</h1>
      <div style="margin-top: 12px; color: #6B7280; font-size: 13px;">
        <div><strong>Invoice #:</strong> {{invoice.invoiceNumber}}</div>
        {{#invoice.poNumber}}<div><strong>PO #:</strong> {{invoice.poNumber}}</div>{{/invoice.poNumber}}
        <div><strong>Date:</strong> {{invoice.formattedIssueDate}}</div>
        <div><strong>Due:</strong> {{invoice.formattedDueDate}}</div>
        <div>{{invoice.paymentTermsDisplay}}</div>
      </div>
    </div>
  </div>

  <div style="margin-bottom: 20px; padding: 15px; background: #F9FAFB; border-radius: 6px;">
    <div style="font-weight: 600; margin-bottom: 8px; font-size: 14px;">Bill To:</div>
    <div style="color: #6B7280; font-size: 13px;">
      <div style="font-weight: 600; font-size: 14px;">{{client.name}}</div>
      {{#client.company}}<div>{{client.company}}</div>{{/client.company}}
      {{#client.billingAddress}}<div style="white-space: pre-line;">{{client.billingAddress}}</div>{{/client.billingAddress}}
      {{#client.email}}<div>{{client.email}}</div>{{/client.email}}
    </div>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
    <thead>
      <tr style="background: {{business.color}}; color: white;">
        <th style="padding: 10px; text-align: left;">Description</th>
        <th style="padding: 10px; text-align: right; width: 70px;">Qty</th>
        <th style="padding: 10px; text-align: right; width: 100px;">Rate</th>
        <th style="padding: 10px; text-align: right; width: 90px;">Discount</th>
        <th style="padding: 10px; text-align: right; width: 100px;">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{#items}}
      <tr style="border-bottom: 1px solid #E5E7EB;">
        <td style="padding: 10px;">
          <div style="font-weight: 600; font-size: 14px;">{{name}}</div>
          {{#description}}<div style="color: #6B7280; font-size: 12px;">{{description}}</div>{{/description}}
        </td>
        <td style="padding: 10px; text-align: right;">{{formattedQuantity}}</td>
        <td style="padding: 10px; text-align: right;">{{formattedUnitPrice}}</td>
        <td style="padding: 10px; text-align: right;">{{discountDisplay}}</td>
        <td style="padding: 10px; text-align: right; font-weight: 600;">{{calculatedLineTotal}}</td>
      </tr>
      {{/items}}
    </tbody>
  </table>

  {{#workDetails}}
  <div style="margin: 20px 0; padding: 15px; background: #F0F9FF; border-left: 4px solid {{brand.accentColor}};">
    <div style="font-weight: 600; margin-bottom: 8px;">Work Details</div>
    <div style="white-space: pre-line; font-size: 13px;">{{workDetails}}</div>
  </div>
  {{/workDetails}}

  <div style="display: flex; justify-content: flex-end;">
    <div style="min-width: 280px; border-top: 2px solid {{business.color}}; padding-top: 12px; font-size: 13px;">
      <div style="display: flex; justify-content: space-between; margin-bottom: 6px;">
        <span>Subtotal:</span><span>{{totals.subtotal}}</span>
      </div>
      {{#discounts}}
      <div style="display: flex; justify-content: space-between; margin-bottom: 6px; color: #6B7280;">
        <span>{{label}}:</span><span>-{{formattedValue}}</span>
      </div>
      {{/discounts}}
      {{#fees}}
      <div style="display: flex; justify-content: space-between; margin-bottom: 6px; color: #6B7280;">
        <span>{{label}}:</span><span>{{formattedValue}}</span>
      </div>
      {{/fees}}
      {{#taxes}}
      <div style="display: flex; justify-content: space-between; margin-bottom: 6px; color: #6B7280;">
        <span>{{label}} ({{formattedRate}}):</span><span></span>
      </div>
      {{/taxes}}
      <div style="display: flex; justify-content: space-between; margin-bottom: 6px;">
        <span>Tax:</span><span>{{totals.tax}}</span>
      </div>
      <div style="display: flex; justify-content: space-between; font-size: 16px; font-weight: 700; color: {{business.color}}; border-top: 1px solid #E5E7EB; padding-top: 8px;">
        <span>Total:</span><span>{{totals.grandTotal}}</span>
      </div>
      {{#payments}}
      <div style="display: flex; justify-content: space-between; margin-top: 6px; color: #059669;">
        <span>Paid {{formattedDate}} ({{method}}):</span><span>-{{formattedAmount}}</span>
      </div>
      {{/payments}}
      <div style="display: flex; justify-content: space-between; font-weight: 700; margin-top: 8px;">
        <span>Balance Due:</span><span>{{totals.balanceDue}}</span>
      </div>
    </div>
  </div>

  {{#paymentLinks}}
  <div style="margin-top: 20px; padding: 15px; background: #F0FDF4; border-left: 4px solid #10B981;">
    <div style="font-weight: 600; margin-bottom: 8px;">Payment Options</div>
    {{#paymentLinks.stripeUrl}}
    <div style="margin-bottom: 6px;"><a href="{{paymentLinks.stripeUrl}}">Pay with Card</a></div>
    {{/paymentLinks.stripeUrl}}
    {{#paymentLinks.paypalUrl}}
    <div style="margin-bottom: 6px;"><a href="{{paymentLinks.paypalUrl}}">Pay with PayPal</a></div>
    {{/paymentLinks.paypalUrl}}
    {{#paymentLinks.qrDataUri}}
    <img src="{{paymentLinks.qrDataUri}}" alt="Payment QR" style="width: 96px; height: 96px; margin: 6px 0;">
    {{/paymentLinks.qrDataUri}}
    {{#paymentLinks.instructions}}
    <div style="white-space: pre-line; font-size: 12px;">{{paymentLinks.instructions}}</div>
    {{/paymentLinks.instructions}}
  </div>
  {{/paymentLinks}}

  {{#invoice.notes}}
  <div style="margin-top: 20px; padding: 15px; background: #F9FAFB;">
    <div style="font-weight: 600; margin-bottom: 6px;">Notes:</div>
    <div style="white-space: pre-line; color: #6B7280; font-size: 13px;">{{invoice.notes}}</div>
  </div>
  {{/invoice.notes}}

  {{#terms}}
  <div style="margin-top: 12px; color: #9CA3AF; font-size: 12px;">{{terms}}</div>
  {{/terms}}

  <div style="margin-top: 24px; text-align: center; color: #9CA3AF; font-size: 12px;">{{layout.footerText}}</div>
</div>
`,
		CSS: `.invoice { color: #1F2937; }`,
	}
}

func compactLedger() models.Template {
	return models.Template{
		ID:      "compact-ledger",
		Name:    "Compact Ledger",
		BuiltIn: true,
		Brand: models.TemplateBrand{
			PrimaryColor:     "#1F2937",
			AccentColor:      "#374151",
			FontFamilyHeader: "Roboto Slab",
			FontFamilyBody:   "Inter",
		},
		Layout: models.TemplateLayout{
			HeaderStyle:   "compact-header",
			FooterText:    "Thank you for your business!",
			ShowSignature: false,
			Margins:       models.TemplateMargins{Top: 32, Right: 32, Bottom: 48, Left: 32},
		},
		Defaults: models.TemplateDefaults{
			TaxRules: []string{"standard"},
			Terms:    "Payment due within 30 days.",
		},
		HTML: `
<div class="invoice" style="font-size: 12px; line-height: 1.4;">
  <header style="display: flex; justify-content: space-between; margin-bottom: 20px; padding-bottom: 12px; border-bottom: 2px solid {{brand.primaryColor}};">
    <div>
      <h1 style="font-family: '{{brand.fontFamilyHeader}}', serif; font-size: 18px; color: {{brand.primaryColor}}; margin: 0;">{{business.name}}</h1>
      <div style="font-size: 10px; color: #6B7280;">{{business.email}} | {{business.phone}}</div>
      <div style="font-size: 11px; color: #6B7280; white-space: pre-line;">{{business.address}}</div>
      {{#business.taxId}}<div style="font-size: 10px; color: #9CA3AF;">Tax ID: {{business.taxId}}</div>{{/business.taxId}}
    </div>
    <div style="text-align: right;">
      <div style="font-weight: 700; font-size: 14px;">INVOICE {{invoice.invoiceNumber}}</div>
      <div style="color: #6B7280;">{{invoice.formattedIssueDate}} / due {{invoice.formattedDueDate}}</div>
      <div style="color: #6B7280;">{{invoice.paymentTermsDisplay}}</div>
    </div>
  </header>

  <div style="margin-bottom: 16px;">
    <span style="font-weight: 600;">Bill To:</span> {{client.name}}{{#client.company}}, {{client.company}}{{/client.company}}
  </div>

  <table style="width: 100%; border-collapse: collapse;">
    <thead>
      <tr style="border-bottom: 1px solid {{brand.accentColor}};">
        <th style="text-align: left; padding: 4px;">Item</th>
        <th style="text-align: right; padding: 4px;">Qty</th>
        <th style="text-align: right; padding: 4px;">Rate</th>
        <th style="text-align: right; padding: 4px;">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{#items}}
      <tr style="border-bottom: 1px solid #E5E7EB;">
        <td style="padding: 4px;">{{name}}{{#sku}} <span style="color: #9CA3AF;">[{{sku}}]</span>{{/sku}}</td>
        <td style="padding: 4px; text-align: right;">{{formattedQuantity}}</td>
        <td style="padding: 4px; text-align: right;">{{formattedUnitPrice}}</td>
        <td style="padding: 4px; text-align: right;">{{calculatedLineTotal}}</td>
      </tr>
      {{/items}}
    </tbody>
  </table>

  <div style="display: flex; justify-content: flex-end; margin-top: 12px;">
    <table style="width: 260px; border-collapse: collapse; font-size: 12px;">
      <tr><td>Subtotal</td><td style="text-align: right;">{{totals.subtotal}}</td></tr>
      <tr><td>Item discounts</td><td style="text-align: right;">-{{totals.itemDiscounts}}</td></tr>
      <tr><td>Invoice discounts</td><td style="text-align: right;">-{{totals.invoiceDiscounts}}</td></tr>
      <tr><td>Fees</td><td style="text-align: right;">{{totals.fees}}</td></tr>
      <tr><td>Tax</td><td style="text-align: right;">{{totals.tax}}</td></tr>
      <tr style="font-weight: 700; border-top: 1px solid {{brand.primaryColor}};"><td>Total</td><td style="text-align: right;">{{totals.grandTotal}}</td></tr>
      <tr><td>Paid</td><td style="text-align: right;">-{{totals.paid}}</td></tr>
      <tr style="font-weight: 700;"><td>Balance Due</td><td style="text-align: right;">{{totals.balanceDue}}</td></tr>
    </table>
  </div>

  {{#workDetails}}
  <div style="margin-top: 16px;">
    <div style="font-weight: 600;">Work Details</div>
    <div style="white-space: pre-line;">{{workDetails}}</div>
  </div>
  {{/workDetails}}

  {{^items}}
  <div style="margin-top: 16px; color: #9CA3AF; text-align: center;">No items on this invoice.</div>
  {{/items}}

  <footer style="margin-top: 24px; text-align: center; color: #9CA3AF; font-size: 10px;">{{layout.footerText}}</footer>
</div>
`,
		CSS: `.invoice { color: #1F2937; }`,
	}
}
