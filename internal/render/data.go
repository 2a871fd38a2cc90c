package render

import (
	"strconv"
	"strings"
	"time"

	"invoicedesk/internal/calc"
	"invoicedesk/internal/models"
)

// paymentTermsPhrases maps the payment-terms codes to human-readable
// phrases. Unrecognized codes pass through unchanged.
var paymentTermsPhrases = map[string]string{
	"NET_0":  "Payment due upon receipt",
	"NET_7":  "Payment due within 7 days",
	"NET_14": "Payment due within 14 days",
	"NET_15": "Payment due within 15 days",
	"NET_30": "Payment due within 30 days",
	"NET_45": "Payment due within 45 days",
	"NET_60": "Payment due within 60 days",
	"NET_90": "Payment due within 90 days",
}

// PaymentTermsDisplay returns the display phrase for a payment-terms code.
func PaymentTermsDisplay(code string) string {
	if phrase, ok := paymentTermsPhrases[code]; ok {
		return phrase
	}
	return code
}

// dateLayouts holds the short-date layout per locale; unknown locales use
// ISO dates.
var dateLayouts = map[string]string{
	"en-US": "1/2/2006",
	"en-GB": "02/01/2006",
	"en-AU": "02/01/2006",
	"de-DE": "02.01.2006",
	"de-AT": "02.01.2006",
	"fr-FR": "02/01/2006",
	"es-ES": "02/01/2006",
	"it-IT": "02/01/2006",
	"nl-NL": "02-01-2006",
	"ja-JP": "2006/01/02",
}

// FormatDate renders an ISO date string for the given locale. Values that do
// not parse come back unchanged; a half-typed date must never break the
// preview.
func FormatDate(value, locale string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, value); err != nil {
			return value
		}
	}
	layout, ok := dateLayouts[locale]
	if !ok {
		layout = "2006-01-02"
	}
	return t.Format(layout)
}

// PrepareTemplateData flattens an invoice, its template and the issuing
// business profile into the view-model handed to the substitution engine.
// Every monetary and date value is pre-rendered as a display string; the
// template layer performs no computation of its own.
func PrepareTemplateData(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile) map[string]interface{} {
	money := func(amount float64) string {
		return calc.FormatCurrency(amount, inv.Currency, inv.Locale)
	}
	plain := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	items := make([]map[string]interface{}, 0, len(inv.Items))
	for i := range inv.Items {
		item := &inv.Items[i]

		discountDisplay := ""
		calculatedDiscount := ""
		if item.Discount != nil {
			if item.Discount.Type == models.TypePercent {
				discountDisplay = plain(item.Discount.Value.Float()) + "%"
			} else {
				discountDisplay = money(item.Discount.Value.Float())
			}
			calculatedDiscount = money(calc.ItemDiscount(item))
		}

		items = append(items, map[string]interface{}{
			"id":                  item.ID,
			"sku":                 item.SKU,
			"name":                item.Name,
			"description":         item.Description,
			"quantity":            item.Quantity.Float(),
			"unitPrice":           item.UnitPrice.Float(),
			"taxCategory":         item.TaxCategory,
			"notes":               item.Notes,
			"formattedQuantity":   plain(item.Quantity.Float()),
			"formattedUnitPrice":  money(item.UnitPrice.Float()),
			"calculatedLineTotal": money(calc.ItemTotal(item)),
			"calculatedDiscount":  calculatedDiscount,
			"discountDisplay":     discountDisplay,
		})
	}

	totals := map[string]interface{}{
		"subtotal":         money(inv.Totals.Subtotal),
		"itemDiscounts":    money(inv.Totals.ItemDiscounts),
		"invoiceDiscounts": money(inv.Totals.InvoiceDiscounts),
		"fees":             money(inv.Totals.Fees),
		"tax":              money(inv.Totals.Tax),
		"grandTotal":       money(inv.Totals.GrandTotal),
		"paid":             money(inv.Totals.Paid),
		"balanceDue":       money(inv.Totals.BalanceDue),
	}

	fees := make([]map[string]interface{}, 0, len(inv.Fees))
	for _, fee := range inv.Fees {
		formatted := money(fee.Value.Float())
		if fee.Type == models.TypePercent {
			formatted = plain(fee.Value.Float()) + "%"
		}
		fees = append(fees, map[string]interface{}{
			"id":             fee.ID,
			"label":          fee.Label,
			"type":           fee.Type,
			"value":          fee.Value.Float(),
			"applyBase":      fee.ApplyBase,
			"formattedValue": formatted,
		})
	}

	taxes := make([]map[string]interface{}, 0, len(inv.Taxes))
	for _, tax := range inv.Taxes {
		taxes = append(taxes, map[string]interface{}{
			"id":                  tax.ID,
			"label":               tax.Label,
			"rate":                tax.Rate.Float(),
			"category":            tax.Category,
			"priority":            tax.Priority,
			"applyAfterDiscounts": tax.ApplyAfterDiscounts,
			"formattedRate":       plain(tax.Rate.Float()) + "%",
		})
	}

	payments := make([]map[string]interface{}, 0, len(inv.Payments))
	for _, payment := range inv.Payments {
		payments = append(payments, map[string]interface{}{
			"id":              payment.ID,
			"date":            payment.Date,
			"method":          payment.Method,
			"amount":          payment.Amount.Float(),
			"formattedAmount": money(payment.Amount.Float()),
			"formattedDate":   FormatDate(payment.Date, inv.Locale),
		})
	}

	discounts := make([]map[string]interface{}, 0, len(inv.Discounts))
	for _, discount := range inv.Discounts {
		formatted := money(discount.Value.Float())
		if discount.Type == models.TypePercent {
			formatted = plain(discount.Value.Float()) + "%"
		}
		discounts = append(discounts, map[string]interface{}{
			"id":             discount.ID,
			"label":          discount.Label,
			"type":           discount.Type,
			"value":          discount.Value.Float(),
			"formattedValue": formatted,
		})
	}

	client := map[string]interface{}{
		"name":            inv.Client.Name,
		"company":         inv.Client.Company,
		"contact":         inv.Client.Contact,
		"email":           inv.Client.Email,
		"phone":           inv.Client.Phone,
		"billingAddress":  inv.Client.BillingAddress,
		"shippingAddress": inv.Client.ShippingAddress,
	}

	invoice := map[string]interface{}{
		"version":             inv.Version,
		"id":                  inv.ID,
		"invoiceNumber":       inv.InvoiceNumber,
		"poNumber":            inv.PONumber,
		"issueDate":           inv.IssueDate,
		"dueDate":             inv.DueDate,
		"currency":            inv.Currency,
		"locale":              inv.Locale,
		"notes":               inv.Notes,
		"terms":               inv.Terms,
		"paymentTerms":        inv.PaymentTerms,
		"formattedIssueDate":  FormatDate(inv.IssueDate, inv.Locale),
		"formattedDueDate":    FormatDate(inv.DueDate, inv.Locale),
		"paymentTermsDisplay": PaymentTermsDisplay(inv.PaymentTerms),
	}

	// Sections gate on these: the raw value only when genuinely present,
	// an explicit false otherwise.
	var workDetails interface{} = false
	if strings.TrimSpace(inv.WorkDetails) != "" {
		workDetails = inv.WorkDetails
	}
	var paymentLinks interface{} = false
	if !inv.PaymentLinks.Empty() {
		paymentLinks = map[string]interface{}{
			"stripeUrl":    inv.PaymentLinks.StripeURL,
			"paypalUrl":    inv.PaymentLinks.PaypalURL,
			"instructions": inv.PaymentLinks.Instructions,
		}
	}

	business := map[string]interface{}{}
	if profile != nil {
		business = map[string]interface{}{
			"name":        profile.Name,
			"address":     profile.Address,
			"email":       profile.Email,
			"phone":       profile.Phone,
			"taxId":       profile.TaxID,
			"bankDetails": profile.BankDetails,
			"logoPath":    profile.LogoPath,
			"color":       profile.Color,
		}
	}

	brand := map[string]interface{}{}
	layout := map[string]interface{}{}
	if tmpl != nil {
		brand = map[string]interface{}{
			"primaryColor":     tmpl.Brand.PrimaryColor,
			"accentColor":      tmpl.Brand.AccentColor,
			"fontFamilyHeader": tmpl.Brand.FontFamilyHeader,
			"fontFamilyBody":   tmpl.Brand.FontFamilyBody,
			"logoPath":         tmpl.Brand.LogoPath,
		}
		layout = map[string]interface{}{
			"headerStyle":   tmpl.Layout.HeaderStyle,
			"footerText":    tmpl.Layout.FooterText,
			"showSignature": tmpl.Layout.ShowSignature,
		}
	}

	return map[string]interface{}{
		"invoice":      invoice,
		"business":     business,
		"client":       client,
		"brand":        brand,
		"layout":       layout,
		"items":        items,
		"fees":         fees,
		"taxes":        taxes,
		"payments":     payments,
		"discounts":    discounts,
		"totals":       totals,
		"workDetails":  workDetails,
		"paymentLinks": paymentLinks,
		"notes":        inv.Notes,
		"terms":        inv.Terms,
	}
}
