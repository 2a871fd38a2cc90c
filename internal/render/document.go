package render

import (
	"fmt"
	"strings"

	"invoicedesk/internal/models"
)

// Preview renders the invoice into its template as a bare HTML fragment,
// suitable for embedding in the live on-screen preview.
func Preview(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile) string {
	data := PrepareTemplateData(inv, tmpl, profile)
	return Render(tmpl.HTML, data)
}

// Document wraps rendered template content in a complete HTML document with
// the base style sheet, template fonts and layout margins. The result is the
// string handed to the external print-to-PDF collaborator.
func Document(inv *models.Invoice, tmpl *models.Template, content string) string {
	margins := tmpl.Layout.Margins
	var b strings.Builder
	b.Grow(len(content) + 2048)

	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Invoice %s</title>
<style>
@import url('https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&family=Roboto+Slab:wght@300;400;500;600;700&display=swap');

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: '%s', -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;
  font-size: 14px;
  line-height: 1.5;
  color: #1f2937;
  background: white;
  -webkit-print-color-adjust: exact;
}

.invoice {
  max-width: 8.5in;
  margin: 0 auto;
  padding: %dpx %dpx %dpx %dpx;
  background: white;
}

h1, h2, h3, h4, h5, h6 {
  font-family: '%s', -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;
}

table { width: 100%%; border-collapse: collapse; margin: 1rem 0; }
th, td { padding: 8px 12px; text-align: left; border-bottom: 1px solid #e5e7eb; }
th { background-color: #f9fafb; font-weight: 600; border-bottom: 2px solid #d1d5db; }

.text-right { text-align: right; }
.text-center { text-align: center; }
.font-bold { font-weight: 700; }
.font-semibold { font-weight: 600; }
.flex { display: flex; }
.items-start { align-items: flex-start; }
.justify-between { justify-content: space-between; }
.border-t { border-top: 1px solid #e5e7eb; }
.border-b { border-bottom: 1px solid #e5e7eb; }

@media print {
  .invoice { margin: 0; padding: 0.5in; box-shadow: none; border: none; }
  .page-break { page-break-before: always; }
  table, tr { page-break-inside: avoid; }
}

%s
</style>
</head>
<body>
%s
</body>
</html>`,
		inv.Locale,
		inv.InvoiceNumber,
		tmpl.Brand.FontFamilyBody,
		margins.Top, margins.Right, margins.Bottom, margins.Left,
		tmpl.Brand.FontFamilyHeader,
		tmpl.CSS,
		content)

	return b.String()
}

// InvoiceHTML is the full export path: prepare the view-model, substitute it
// into the template and wrap the result in the document shell.
func InvoiceHTML(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile) string {
	return Document(inv, tmpl, Preview(inv, tmpl, profile))
}
