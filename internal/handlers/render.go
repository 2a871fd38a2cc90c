package handlers

import (
	"invoicedesk/internal/models"
	"invoicedesk/internal/render"
	"invoicedesk/internal/services"
)

// renderPreview produces the template fragment, optionally injecting a
// payment QR code into the view-model first.
func renderPreview(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile, withQR bool) string {
	data := render.PrepareTemplateData(inv, tmpl, profile)
	if withQR {
		services.AttachPaymentQR(data)
	}
	return render.Render(tmpl.HTML, data)
}

// renderDocument wraps the fragment in the standalone document shell.
func renderDocument(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile, withQR bool) string {
	return render.Document(inv, tmpl, renderPreview(inv, tmpl, profile, withQR))
}
